// File: params/errors.go
package params

import "errors"

// Sentinel errors returned by the registry. All errors produced by
// this package wrap one of these, so callers can classify failures
// with errors.Is.
var (
	// ErrStringParse reports an unmatched quote during tokenization.
	ErrStringParse = errors.New("unmatched quote in arguments string")

	// ErrEmptyName reports a Define call with an empty name specifier.
	ErrEmptyName = errors.New("empty parameter name")

	// ErrRedefinition reports a name collision with a different
	// declared kind, or an alias list spanning two distinct parameters.
	ErrRedefinition = errors.New("parameter redefinition")

	// ErrValue reports a read of a non-optional, unset parameter, or a
	// value cell carrying an engine error surfaced at access time.
	ErrValue = errors.New("parameter value")

	// ErrConvert reports a string-to-type conversion failure during a
	// typed read.
	ErrConvert = errors.New("parameter conversion")

	// ErrNotFound reports a query of an undeclared name.
	ErrNotFound = errors.New("parameter not found")

	// ErrNotParsed reports access before Parse was called.
	ErrNotParsed = errors.New("parameters not parsed")

	// ErrNotBuilt reports read-only access before the build pass ran.
	ErrNotBuilt = errors.New("parameters not built")

	// ErrIniFile reports a parameter file path that does not exist or
	// cannot be read.
	ErrIniFile = errors.New("parameter file")
)
