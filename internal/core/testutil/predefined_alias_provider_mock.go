package testutil

import (
	"errors"

	"github.com/dalia-sh/dalia/internal/core/domain/alias"
)

// MockPredefinedAliasProvider is a mock implementation of
// ports.PredefinedAliasProvider for testing.
type MockPredefinedAliasProvider struct {
	GetPredefinedAliasesFunc func() ([]alias.Alias, error)
}

func (m *MockPredefinedAliasProvider) GetPredefinedAliases() ([]alias.Alias, error) {
	if m.GetPredefinedAliasesFunc != nil {
		return m.GetPredefinedAliasesFunc()
	}
	return nil, errors.New("MockPredefinedAliasProvider: GetPredefinedAliasesFunc not implemented")
}
