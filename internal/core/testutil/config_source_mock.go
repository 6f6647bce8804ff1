package testutil

import "errors"

// MockConfigSource is a mock implementation of ports.ConfigSource for testing.
type MockConfigSource struct {
	PathFunc func() string
	ReadFunc func() (string, error)
}

func (m *MockConfigSource) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return "/mock/.dalia/config"
}

func (m *MockConfigSource) Read() (string, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc()
	}
	return "", errors.New("MockConfigSource: ReadFunc not implemented")
}
