package ports

import (
	"github.com/dalia-sh/dalia/internal/core/domain/alias"
	"github.com/dalia-sh/dalia/internal/core/domain/config"
)

/*
AliasParser defines the contract for turning raw configuration text into
directory aliases. This is a driven port, representing a domain capability.
*/
type AliasParser interface {
	// Parse transforms configuration text into aliases, in input order.
	// Invalid lines never abort the parse; each one is reported as a
	// warning and skipped.
	Parse(text string) ([]alias.Alias, []config.Warning)

	// ParseEntry validates a single externally supplied name/path pair
	// under the same rules the line grammar applies, returning the
	// normalized alias. An empty name derives the name from the path.
	ParseEntry(name, path string) (alias.Alias, error)
}
