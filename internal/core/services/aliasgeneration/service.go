package aliasgeneration

import (
	"fmt"

	"github.com/dalia-sh/dalia/internal/core/ports"
)

type service struct {
	configSource ports.ConfigSource
	parser       ports.AliasParser
	predefined   ports.PredefinedAliasProvider // Can be nil if no predefined aliases are configured.
}

// NewService creates a new alias generation service.
// It panics if configSource or parser are nil.
// predefinedAliasProvider can be nil if not used.
func NewService(
	cs ports.ConfigSource,
	p ports.AliasParser,
	pap ports.PredefinedAliasProvider,
) ports.AliasGenerationService {
	if cs == nil {
		panic("configSource cannot be nil")
	}
	if p == nil {
		panic("parser cannot be nil")
	}
	// predefinedAliasProvider is allowed to be nil.
	return &service{
		configSource: cs,
		parser:       p,
		predefined:   pap,
	}
}

// GenerateAliases reads and parses the configuration, appends any valid
// predefined aliases and returns the result in emission order. Only a
// configuration file that cannot be read is an error; skipped entries are
// reported through the result's warnings.
func (s *service) GenerateAliases() (ports.GenerationResult, error) {
	var result ports.GenerationResult

	text, err := s.configSource.Read()
	if err != nil {
		return result, fmt.Errorf("failed to load alias configuration: %w", err)
	}

	aliases, warnings := s.parser.Parse(text)

	predefined, predefinedWarnings := s.loadAndValidatePredefined()
	result.Aliases = append(aliases, predefined...)
	result.Warnings = append(warnings, predefinedWarnings...)

	return result, nil
}
