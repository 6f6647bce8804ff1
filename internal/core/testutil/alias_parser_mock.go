package testutil

import (
	"errors"

	"github.com/dalia-sh/dalia/internal/core/domain/alias"
	"github.com/dalia-sh/dalia/internal/core/domain/config"
)

// MockAliasParser is a mock implementation of ports.AliasParser for testing.
type MockAliasParser struct {
	ParseFunc      func(text string) ([]alias.Alias, []config.Warning)
	ParseEntryFunc func(name, path string) (alias.Alias, error)
}

func (m *MockAliasParser) Parse(text string) ([]alias.Alias, []config.Warning) {
	if m.ParseFunc != nil {
		return m.ParseFunc(text)
	}
	return nil, nil
}

func (m *MockAliasParser) ParseEntry(name, path string) (alias.Alias, error) {
	if m.ParseEntryFunc != nil {
		return m.ParseEntryFunc(name, path)
	}
	return alias.Alias{}, errors.New("MockAliasParser: ParseEntryFunc not implemented")
}
