// File: params/internal/argset/entry.go
package argset

// Source identifies where an entry's current value came from.
type Source string

const (
	// SourceNone marks an entry without an explicit value.
	SourceNone Source = "none"
	// SourceCLI marks a value bound from command-line tokens.
	SourceCLI Source = "cli"
	// SourceFile marks a value back-filled from a parameter file.
	SourceFile Source = "file"
	// SourceSet marks a value written by explicit assignment.
	SourceSet Source = "set"
)

// Entry is the mutable holder of a single flag's raw string state: the
// current value, its source, the default, and a deferred error. One
// entry may be reachable under several names; every alias observes the
// same state immediately.
type Entry struct {
	name       string
	aliases    []string
	descr      string
	kind       string
	positional bool
	vector     bool

	value  string
	source Source
	gen    int // parse generation that last bound a CLI value

	def    string
	hasDef bool

	err error
}

// Name returns the primary registered name, empty for positionals.
func (e *Entry) Name() string { return e.name }

// Aliases returns the additional names bound to this entry.
func (e *Entry) Aliases() []string { return e.aliases }

// Description returns the user-facing description.
func (e *Entry) Description() string { return e.descr }

// Kind returns the display tag the entry was registered with.
func (e *Entry) Kind() string { return e.kind }

// Vector reports whether the entry accepts repeated or comma-separated
// values.
func (e *Entry) Vector() bool { return e.vector }

// Value returns the current explicit value. The boolean is false when
// no explicit value has been bound from any source.
func (e *Entry) Value() (string, bool) {
	if e.source == SourceNone {
		return "", false
	}
	return e.value, true
}

// Default returns the default value, if one was registered.
func (e *Entry) Default() (string, bool) {
	return e.def, e.hasDef
}

// Raw returns the explicit value if set, otherwise the default.
func (e *Entry) Raw() (string, bool) {
	if v, ok := e.Value(); ok {
		return v, true
	}
	return e.Default()
}

// IsSet reports whether the entry carries an explicit value from any
// source: command line, parameter file, or assignment.
func (e *Entry) IsSet() bool { return e.source != SourceNone }

// Source returns the provenance of the current value.
func (e *Entry) Source() Source { return e.source }

// Err returns the deferred error recorded during parsing, if any.
func (e *Entry) Err() error { return e.err }

// Update writes a new value with its source and clears any prior
// error state.
func (e *Entry) Update(value string, source Source) {
	e.value = value
	e.source = source
	e.err = nil
}

// SetDefault registers or replaces the default value.
func (e *Entry) SetDefault(value string) {
	e.def = value
	e.hasDef = true
}

// SetDescription replaces the user-facing description.
func (e *Entry) SetDescription(descr string) {
	e.descr = descr
}

func (e *Entry) setErr(err error) {
	e.err = err
}
