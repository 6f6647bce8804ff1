package configparsing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dalia-sh/dalia/internal/core/domain/alias"
)

// expansionMarker inside brackets turns a line into a directory expansion.
const expansionMarker = "*"

// validAliasNameRegex restricts custom alias names to characters every
// POSIX shell accepts in an alias name.
var validAliasNameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// configEntry is the intermediate result of parsing one line.
type configEntry struct {
	name   string
	path   string
	expand bool
}

/*
parseLine applies the line grammar to one trimmed, non-blank, non-comment
line.

A leading '[' opens a custom name which must be terminated by ']' on the
same line; whitespace between ']' and the path is trimmed. The remainder
is the path, kept byte-for-byte: backslash escapes stay as written and a
leading tilde is never expanded. The path must be absolute, meaning its
first character is '~' or '/'.
*/
func parseLine(line string) (configEntry, error) {
	var entry configEntry

	rest := line
	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return entry, fmt.Errorf("unterminated '[' in %q", line)
		}
		name := rest[1:end]
		rest = strings.TrimLeft(rest[end+1:], " \t")

		switch {
		case name == expansionMarker:
			entry.expand = true
		case name != "":
			if !validAliasNameRegex.MatchString(name) {
				return entry, fmt.Errorf("invalid alias name %q", name)
			}
			entry.name = strings.ToLower(name)
		}
		// An empty [] falls through to basename derivation.
	}

	if rest == "" {
		return entry, fmt.Errorf("missing path")
	}
	if !isAbsolutePath(rest) {
		return entry, fmt.Errorf("path %q is not absolute", rest)
	}

	if entry.name == "" && !entry.expand {
		derived := aliasNameFromPath(rest)
		if derived == "" {
			return entry, fmt.Errorf("cannot derive an alias name from %q", rest)
		}
		entry.name = derived
	}

	entry.path = rest
	return entry, nil
}

// isAbsolutePath reports whether the path is anchored at the filesystem
// root or the user's home directory. Callers guarantee path is non-empty.
func isAbsolutePath(path string) bool {
	return path[0] == '~' || path[0] == '/'
}

// aliasNameFromPath derives a lowercase alias name from the final path
// segment, stripping any trailing separators first. It returns "" when no
// usable segment exists, e.g. for "/" or "~".
func aliasNameFromPath(path string) string {
	trimmed := strings.TrimRight(path, "/")
	base := trimmed[strings.LastIndexByte(trimmed, '/')+1:]
	if base == "" || base == "~" {
		return ""
	}
	return strings.ToLower(base)
}

// expandDirectory turns a [*] line into one alias per immediate child
// directory. The configured path prefixes each child verbatim, so a tilde
// prefix survives into the generated aliases.
func (p *Parser) expandDirectory(path string) ([]alias.Alias, error) {
	if p.lister == nil {
		return nil, fmt.Errorf("directory expansion is not available")
	}

	names, err := p.lister.ListSubdirectories(path)
	if err != nil {
		return nil, fmt.Errorf("cannot expand %q: %w", path, err)
	}

	prefix := strings.TrimRight(path, "/")
	aliases := make([]alias.Alias, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		aliases = append(aliases, alias.Alias{
			Name: strings.ToLower(name),
			Path: prefix + "/" + name,
		})
	}
	return aliases, nil
}
