// File: params/internal/argset/help.go
package argset

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// Help writes the usage listing for all registered entries.
func (s *Set) Help(w io.Writer) {
	prog := s.prog
	if prog == "" {
		prog = "program"
	}
	fmt.Fprintf(w, "%s %s", bold("Usage:"), prog)
	for _, p := range s.positionals {
		fmt.Fprintf(w, " [%s]", cyan(p.descr))
	}
	fmt.Fprintf(w, " [%s]...\n", dim("--name value"))

	for _, e := range s.entries {
		if e.positional {
			continue
		}
		names := "--" + e.name
		for _, a := range e.aliases {
			names += ", --" + a
		}
		fmt.Fprintf(w, "  %s %s", cyan(names), yellow(e.kind))
		if def, ok := e.Default(); ok {
			fmt.Fprintf(w, " %s", dim("(default: "+def+")"))
		}
		fmt.Fprintln(w)
		if e.descr != "" {
			fmt.Fprintf(w, "      %s\n", e.descr)
		}
	}
}

// Print writes every entry with its current resolved value and, for
// explicitly set entries, the source the value came from.
func (s *Set) Print(w io.Writer) {
	for _, e := range s.entries {
		name := e.name
		if e.positional {
			name = "<" + e.descr + ">"
		}
		value, ok := e.Raw()
		if !ok {
			value = dim("<unset>")
		}
		marker := ""
		if e.IsSet() {
			marker = " " + dim("["+string(e.source)+"]")
		}
		fmt.Fprintf(w, "%s = %s%s\n", cyan(name), value, marker)
	}
}
