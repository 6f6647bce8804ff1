package ports

import (
	"github.com/dalia-sh/dalia/internal/core/domain/alias"
	"github.com/dalia-sh/dalia/internal/core/domain/config"
)

// GenerationResult holds the generated aliases and any warnings collected
// along the way.
type GenerationResult struct {
	Aliases  []alias.Alias
	Warnings []config.Warning
}

// AliasGenerationService defines the contract for producing the full set
// of directory aliases for the current configuration.
type AliasGenerationService interface {
	// GenerateAliases reads the configuration, parses it, merges any
	// predefined aliases and returns everything in emission order.
	// A configuration file that cannot be read is an error; a
	// configuration that yields zero aliases is not.
	GenerateAliases() (GenerationResult, error)
}
