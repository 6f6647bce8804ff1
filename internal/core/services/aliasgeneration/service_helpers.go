package aliasgeneration

import (
	"fmt"

	"github.com/dalia-sh/dalia/internal/core/domain/alias"
	"github.com/dalia-sh/dalia/internal/core/domain/config"
)

// loadAndValidatePredefined loads predefined aliases from the provider (if
// configured) and validates each entry under the same rules the line
// grammar applies. Entries that fail validation become warnings, as does a
// provider that fails to load: predefined aliases are optional and must
// never cost the user the aliases parsed from the main configuration.
func (s *service) loadAndValidatePredefined() ([]alias.Alias, []config.Warning) {
	if s.predefined == nil {
		return nil, nil
	}

	loaded, err := s.predefined.GetPredefinedAliases()
	if err != nil {
		return nil, []config.Warning{{Reason: fmt.Sprintf("could not load predefined aliases: %v", err)}}
	}

	valid := make([]alias.Alias, 0, len(loaded))
	warnings := []config.Warning{}
	for _, pa := range loaded {
		parsed, err := s.parser.ParseEntry(pa.Name, pa.Path)
		if err != nil {
			warnings = append(warnings, config.Warning{Reason: fmt.Sprintf("predefined alias %q: %v", pa.Name, err)})
			continue
		}
		valid = append(valid, parsed)
	}
	return valid, warnings
}
