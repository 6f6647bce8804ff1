package configparsing

import (
	"fmt"
	"strings"

	"github.com/dalia-sh/dalia/internal/core/domain/alias"
	"github.com/dalia-sh/dalia/internal/core/domain/config"
	"github.com/dalia-sh/dalia/internal/core/ports"
)

// Parser implements the configuration line grammar.
type Parser struct {
	lister ports.DirectoryLister
}

// NewParser creates a new Parser. lister may be nil, in which case the [*]
// expansion form is reported as unavailable instead of expanding.
func NewParser(lister ports.DirectoryLister) ports.AliasParser {
	return &Parser{lister: lister}
}

/*
Parse transforms raw configuration text into directory aliases.

Lines are processed in file order and that order is preserved in the
result. Blank lines and comment lines (first non-space character '#') are
skipped silently. Every other line must be one of:

	/absolute/path
	~/tilde/path
	[name]/absolute/path
	[*]/absolute/path

A line that fails the grammar is skipped and reported as a warning; a
single bad line never costs the remaining aliases. Names are not
deduplicated, so a name defined twice is emitted twice and the evaluating
shell's last definition wins.
*/
func (p *Parser) Parse(text string) ([]alias.Alias, []config.Warning) {
	aliases := []alias.Alias{}
	warnings := []config.Warning{}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			warnings = append(warnings, config.Warning{LineNumber: i + 1, Reason: err.Error()})
			continue
		}

		if entry.expand {
			expanded, err := p.expandDirectory(entry.path)
			if err != nil {
				warnings = append(warnings, config.Warning{LineNumber: i + 1, Reason: err.Error()})
				continue
			}
			aliases = append(aliases, expanded...)
			continue
		}

		aliases = append(aliases, alias.Alias{Name: entry.name, Path: entry.path})
	}

	return aliases, warnings
}

// ParseEntry validates a single name/path pair under the line grammar's
// rules. An empty name derives the alias name from the path's basename.
func (p *Parser) ParseEntry(name, path string) (alias.Alias, error) {
	if path == "" {
		return alias.Alias{}, fmt.Errorf("missing path")
	}
	if !isAbsolutePath(path) {
		return alias.Alias{}, fmt.Errorf("path %q is not absolute", path)
	}
	if name == "" {
		derived := aliasNameFromPath(path)
		if derived == "" {
			return alias.Alias{}, fmt.Errorf("cannot derive an alias name from %q", path)
		}
		return alias.Alias{Name: derived, Path: path}, nil
	}
	if !validAliasNameRegex.MatchString(name) {
		return alias.Alias{}, fmt.Errorf("invalid alias name %q", name)
	}
	return alias.Alias{Name: strings.ToLower(name), Path: path}, nil
}
