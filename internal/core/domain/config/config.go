/*
Package config defines core domain entities related to alias configuration.
*/
package config

import "fmt"

/*
Warning describes a configuration entry that was skipped rather than
aborting the run. This is a core domain entity.

LineNumber is 1-based. Entries that do not originate from a configuration
file line (e.g. a predefined alias) carry a LineNumber of 0.
*/
type Warning struct {
	LineNumber int
	Reason     string
}

func (w Warning) String() string {
	if w.LineNumber > 0 {
		return fmt.Sprintf("line %d: %s", w.LineNumber, w.Reason)
	}
	return w.Reason
}
