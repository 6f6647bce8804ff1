package ports

import "github.com/dalia-sh/dalia/internal/core/domain/alias"

// PredefinedAliasProvider defines the interface for sourcing extra
// directory aliases from a predefined list, like a YAML file next to the
// main configuration.
type PredefinedAliasProvider interface {
	// GetPredefinedAliases loads aliases from a predefined source.
	// Entries are returned unvalidated; callers apply the same rules the
	// line grammar does.
	GetPredefinedAliases() ([]alias.Alias, error)
}
