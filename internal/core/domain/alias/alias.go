/*
Package alias defines the core domain entity for a directory alias.
*/
package alias

import (
	"fmt"
	"strings"
)

/*
Alias represents one generated shell alias, consisting of a short name and
the directory it changes into. This is a core domain entity.

Path is kept byte-for-byte as it appeared in the configuration: backslash
escapes are preserved and a leading tilde is never expanded. Expansion is
the job of the shell that eventually evaluates the alias.
*/
type Alias struct {
	Name string `yaml:"alias"`
	Path string `yaml:"path"`
}

// Command returns the command the alias expands to, e.g. "cd ~/Desktop".
func (a Alias) Command() string {
	return "cd " + a.Path
}

// Statement returns the full shell statement for the alias, e.g.
// alias desktop='cd ~/Desktop'.
//
// The path is wrapped in single quotes verbatim. An embedded single quote
// in the path breaks the quoting; this is a known limitation inherited
// from the configuration format rather than something to repair here.
func (a Alias) Statement() string {
	return fmt.Sprintf("alias %s='%s'", a.Name, a.Command())
}

// Script renders the given aliases as a newline-terminated shell script,
// one alias statement per line, preserving order.
func Script(aliases []Alias) string {
	var sb strings.Builder
	for _, a := range aliases {
		sb.WriteString(a.Statement())
		sb.WriteByte('\n')
	}
	return sb.String()
}
