package testutil

import "errors"

// MockDirectoryLister is a mock implementation of ports.DirectoryLister for testing.
type MockDirectoryLister struct {
	ListSubdirectoriesFunc func(path string) ([]string, error)
}

func (m *MockDirectoryLister) ListSubdirectories(path string) ([]string, error) {
	if m.ListSubdirectoriesFunc != nil {
		return m.ListSubdirectoriesFunc(path)
	}
	return nil, errors.New("MockDirectoryLister: ListSubdirectoriesFunc not implemented")
}
