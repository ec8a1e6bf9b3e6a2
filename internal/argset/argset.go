// File: params/internal/argset/argset.go

// Package argset is the low-level flag engine behind the parameter
// registry. It recognizes --name value, --name=value and -name value
// syntax over pre-split tokens, binds positional tokens in declaration
// order, and keeps raw values for names that are not registered yet so
// entries declared after a parse still pick up their command-line
// values. All values are strings; typed conversion is the caller's
// concern.
package argset

import (
	"fmt"
	"strings"
)

// Set owns the registered entries and the state of the last parse.
type Set struct {
	prog        string
	entries     []*Entry
	byName      map[string]*Entry
	positionals []*Entry
	rawFlags    map[string]string
	gen         int
	parsed      bool
	help        bool
}

// New creates an empty flag set.
func New() *Set {
	return &Set{
		byName:   make(map[string]*Entry),
		rawFlags: make(map[string]string),
	}
}

// Prog returns the program name seen by the last parse.
func (s *Set) Prog() string { return s.prog }

// Parsed reports whether Parse has been called.
func (s *Set) Parsed() bool { return s.parsed }

// HelpRequested reports whether a help flag was seen.
func (s *Set) HelpRequested() bool { return s.help }

// Positional registers a positional entry with a description.
// Positional tokens bind in declaration order.
func (s *Set) Positional(descr string) *Entry {
	e := &Entry{descr: descr, kind: "STRING", positional: true, source: SourceNone}
	s.entries = append(s.entries, e)
	s.positionals = append(s.positionals, e)
	return e
}

// Flag registers a named entry. If a previous parse stored a raw value
// for the name, the entry binds it immediately.
func (s *Set) Flag(name, descr, kind string, vector bool) (*Entry, error) {
	if _, exists := s.byName[name]; exists {
		return nil, fmt.Errorf("flag %q is already registered", name)
	}
	e := &Entry{name: name, descr: descr, kind: kind, vector: vector, source: SourceNone}
	s.entries = append(s.entries, e)
	s.byName[name] = e
	s.bindRaw(e, name)
	return e, nil
}

// Alias binds an additional name to an existing entry. Raw values
// stored under the alias bind the same way late-registered flags do.
func (s *Set) Alias(e *Entry, name string) error {
	if _, exists := s.byName[name]; exists {
		return fmt.Errorf("flag %q is already registered", name)
	}
	e.aliases = append(e.aliases, name)
	s.byName[name] = e
	s.bindRaw(e, name)
	return nil
}

// Lookup returns the entry bound to name, primary or alias.
func (s *Set) Lookup(name string) (*Entry, bool) {
	e, ok := s.byName[name]
	return e, ok
}

// bindRaw applies a raw command-line value stored before the entry
// existed. A value the user already typed must not be lost to
// registration order.
func (s *Set) bindRaw(e *Entry, name string) {
	v, ok := s.rawFlags[name]
	if !ok {
		return
	}
	delete(s.rawFlags, name)
	if e.source != SourceCLI {
		e.Update(v, SourceCLI)
		e.gen = s.gen
	}
}

// Parse scans argument tokens. args[0] is the program name. Unknown
// flags are kept in a raw store instead of failing; malformed repeats
// of a non-vector flag record a deferred error on the entry.
func (s *Set) Parse(args []string) {
	s.gen++
	s.parsed = true
	if len(args) > 0 {
		s.prog = args[0]
	}

	posIdx := 0
	for i := 1; i < len(args); {
		tok := args[i]

		if !isFlagToken(tok) {
			// Positional token: bind to the next declared positional,
			// extra positionals are ignored.
			if posIdx < len(s.positionals) {
				p := s.positionals[posIdx]
				p.Update(unquote(tok), SourceCLI)
				p.gen = s.gen
				posIdx++
			}
			i++
			continue
		}

		name := strings.TrimLeft(tok, "-")
		if name == "" {
			// A bare dash run carries no name and must not swallow the
			// following token as its value.
			i++
			continue
		}
		if name == "?" || name == "h" || name == "help" {
			s.help = true
			i++
			continue
		}

		var value string
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			value = name[eq+1:]
			name = name[:eq]
			i++
		} else if i+1 < len(args) && !isFlagToken(args[i+1]) {
			value = args[i+1]
			i += 2
		} else {
			// A bare flag with no value reads as boolean true.
			value = "true"
			i++
		}
		if name == "" {
			continue
		}
		value = unquote(value)

		e, known := s.byName[name]
		if !known {
			s.rawFlags[name] = value
			continue
		}

		if e.source == SourceCLI && e.gen == s.gen {
			// Repeated occurrence within one parse: vectors append,
			// scalars keep the last value and record the error.
			if e.vector {
				e.value += "," + value
			} else {
				e.value = value
				e.setErr(fmt.Errorf("flag %q provided more than once", name))
			}
			continue
		}
		e.Update(value, SourceCLI)
		e.gen = s.gen
	}
}

// Build runs the post-parse validation pass and reports whether a help
// flag was seen. Required-value checks stay deferred to access time.
func (s *Set) Build() bool {
	return s.help
}

// isFlagToken reports whether tok looks like a flag rather than a
// value. Negative numbers count as values.
func isFlagToken(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	c := tok[1]
	return (c < '0' || c > '9') && c != '.'
}

// unquote strips one level of matching surrounding quotes from a
// value. The tokenizer keeps quote characters in tokens.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
