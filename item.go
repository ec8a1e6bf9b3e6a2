// File: params/item.go
package params

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/averin/params/internal/argset"
)

// Kind enumerates the closed set of scalar parameter kinds. Vector
// parameters carry a Kind plus the vector flag; all integer widths
// share KindInt and all float widths share KindFloat.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
)

// String returns the display tag used in help listings.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "BOOL"
	case KindInt:
		return "INT"
	case KindFloat:
		return "FLOAT"
	case KindString:
		return "STRING"
	}
	return "UNKNOWN"
}

// Source identifies where a parameter's current value came from.
type Source string

const (
	SourceNone        Source = "none"
	SourceCommandLine Source = "command-line"
	SourceFile        Source = "file"
	SourceAssignment  Source = "assignment"
)

// Item identifies one logical parameter: a primary name, the aliases
// that share its value cell, and its declared kind. Reads convert the
// cell's raw string (or its default) lazily, so conversion problems
// only surface for parameters that are actually used.
type Item struct {
	name     string
	aliases  []string
	kind     Kind
	vector   bool
	optional bool
	entry    *argset.Entry
}

// Name returns the primary name.
func (it *Item) Name() string { return it.name }

// Aliases returns the alias names in the order they were attached.
func (it *Item) Aliases() []string {
	out := make([]string, len(it.aliases))
	copy(out, it.aliases)
	return out
}

// Kind returns the declared kind.
func (it *Item) Kind() Kind { return it.kind }

// IsVector reports whether the parameter accepts repeated or
// comma-separated values.
func (it *Item) IsVector() bool { return it.vector }

// IsSet reports whether the parameter has an explicit value from the
// command line, the parameter file, or an assignment.
func (it *Item) IsSet() bool { return it.entry.IsSet() }

// IsOptional reports whether the parameter has a default value or was
// already set when it was defined.
func (it *Item) IsOptional() bool { return it.optional }

// Source returns the provenance of the current value.
func (it *Item) Source() Source {
	switch it.entry.Source() {
	case argset.SourceCLI:
		return SourceCommandLine
	case argset.SourceFile:
		return SourceFile
	case argset.SourceSet:
		return SourceAssignment
	}
	return SourceNone
}

// Set writes the string form of value back into the value cell,
// clearing any prior error state. Every alias observes the new value
// immediately.
func (it *Item) Set(value any) error {
	s, err := stringify(value)
	if err != nil {
		return err
	}
	it.entry.Update(s, argset.SourceSet)
	return nil
}

func (it *Item) kindLabel() string {
	if it.vector {
		return it.kind.String() + " LIST"
	}
	return it.kind.String()
}

// raw returns the explicit value if set, otherwise the default.
func (it *Item) raw() (string, bool) {
	return it.entry.Raw()
}

// String returns the parameter value as a string.
func (it *Item) String() (string, error) {
	raw, ok := it.raw()
	if !ok {
		return "", fmt.Errorf("%w: no value provided for non-optional parameter %q", ErrValue, it.name)
	}
	return raw, nil
}

// Int64 returns the parameter value converted to an integer.
// Hexadecimal and octal prefixes are accepted; a float string is
// truncated.
func (it *Item) Int64() (int64, error) {
	raw, err := it.String()
	if err != nil {
		return 0, err
	}
	return parseInt(raw, it.name)
}

// Float64 returns the parameter value converted to a float.
func (it *Item) Float64() (float64, error) {
	raw, err := it.String()
	if err != nil {
		return 0, err
	}
	return parseFloat(raw, it.name)
}

// Bool returns the parameter value converted to a boolean.
func (it *Item) Bool() (bool, error) {
	raw, err := it.String()
	if err != nil {
		return false, err
	}
	return parseBool(raw, it.name)
}

// Strings returns the parameter value split on commas, with each
// element trimmed of surrounding spaces.
func (it *Item) Strings() ([]string, error) {
	raw, err := it.String()
	if err != nil {
		return nil, err
	}
	return splitList(raw), nil
}

// Int64s returns the parameter value as a sequence of integers.
func (it *Item) Int64s() ([]int64, error) {
	parts, err := it.Strings()
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(parts))
	for i, p := range parts {
		if out[i], err = parseInt(p, it.name); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Float64s returns the parameter value as a sequence of floats.
func (it *Item) Float64s() ([]float64, error) {
	parts, err := it.Strings()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(parts))
	for i, p := range parts {
		if out[i], err = parseFloat(p, it.name); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Bools returns the parameter value as a sequence of booleans.
func (it *Item) Bools() ([]bool, error) {
	parts, err := it.Strings()
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(parts))
	for i, p := range parts {
		if out[i], err = parseBool(p, it.name); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func parseInt(s, name string) (int64, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), nil
	}
	return 0, fmt.Errorf("%w: cannot convert %q to int for parameter %q", ErrConvert, s, name)
}

func parseFloat(s, name string) (float64, error) {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	return 0, fmt.Errorf("%w: cannot convert %q to float for parameter %q", ErrConvert, s, name)
}

func parseBool(s, name string) (bool, error) {
	s = strings.TrimSpace(s)
	if b, err := strconv.ParseBool(s); err == nil {
		return b, nil
	}
	return false, fmt.Errorf("%w: cannot convert %q to bool for parameter %q", ErrConvert, s, name)
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// stringify renders a value in the raw string form value cells hold.
// Sequences become comma-separated lists.
func stringify(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case []string:
		return strings.Join(v, ","), nil
	case fmt.Stringer:
		return v.String(), nil
	}

	// Named types and the remaining slice kinds go through reflection.
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Slice:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s, err := stringify(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), nil
	}
	return "", fmt.Errorf("%w: unsupported value type %T", ErrConvert, value)
}
