// File: params/registry.go
package params

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/averin/params/internal/argset"
)

// Value is the closed set of parameter value types accepted by Define
// and Get. Named types with one of these underlying types are allowed,
// so string-backed enums work directly.
type Value interface {
	~bool | ~int | ~int64 | ~float64 | ~string |
		~[]bool | ~[]int | ~[]int64 | ~[]float64 | ~[]string
}

// Registry owns the full set of named parameters and drives the
// parse -> build -> resolve lifecycle. Values are merged with
// command-line precedence over file precedence over declared defaults.
//
// A Registry is not safe for concurrent use; parameter parsing happens
// once at process start-up before concurrent work begins.
type Registry struct {
	description string
	engine      *argset.Set
	names       map[string]*Item // every primary name and alias
	items       []*Item          // distinct items, definition order
	iniFile     *argset.Entry    // reserved first positional
	parsed      bool
	built       bool
}

// New creates an empty registry. The first positional command-line
// argument is reserved for the parameter INI file path.
func New(description string) *Registry {
	engine := argset.New()
	return &Registry{
		description: description,
		engine:      engine,
		names:       make(map[string]*Item),
		iniFile:     engine.Positional("Parameters INI File"),
	}
}

// Description returns the user-facing description of the registry.
func (r *Registry) Description() string { return r.description }

// Params returns the distinct parameter items in definition order.
// Aliases do not add entries: each logical parameter appears once no
// matter how many names point to it.
func (r *Registry) Params() []*Item {
	out := make([]*Item, len(r.items))
	copy(out, r.items)
	return out
}

// IsSet reports whether name is a known parameter with an explicit
// value. Unknown names report false rather than an error.
func (r *Registry) IsSet(name string) bool {
	it, ok := r.names[name]
	return ok && it.IsSet()
}

// Define declares a parameter of type T under one or more
// comma-separated names; the first name is primary, the rest are
// aliases. If some names are already known they must all resolve to
// the same existing item of the same kind, and any new names attach to
// it as additional aliases. A trailing default value makes the
// parameter optional; redefining with a default makes a previously
// required parameter optional and never the reverse. Slice types
// declare vector parameters that accept comma-separated values.
//
// Define may be called before or after Parse; definitions added after
// a build clear the built state, and values already present on the
// command line bind to late definitions.
func Define[T Value](r *Registry, nameSpec, descr string, def ...T) error {
	kind, vector, err := kindOf[T]()
	if err != nil {
		return err
	}
	var defStr *string
	if len(def) > 0 {
		s, err := stringify(def[len(def)-1])
		if err != nil {
			return err
		}
		defStr = &s
	}
	return r.define(nameSpec, descr, kind, vector, defStr)
}

// Get reads the parameter under name converted to T, going through the
// same guarded accessor as Param. The requested type does not have to
// match the declared kind: conversion happens from the raw string at
// read time.
func Get[T Value](r *Registry, name string) (T, error) {
	var zero T
	it, err := r.Param(name)
	if err != nil {
		return zero, err
	}
	return convertItem[T](it)
}

// Parse parses command-line tokens; args[0] is the program name. The
// returned help flag is true when a help flag was seen, in which case
// the caller should display help and stop. Parse marks the registry
// parsed unconditionally; if nothing has been defined yet but more
// than a bare program name was supplied, the build is deferred so
// declarations can still be registered and built explicitly.
func (r *Registry) Parse(args []string) (help bool, err error) {
	r.engine.Parse(args)
	r.parsed = true
	// A re-parse invalidates any earlier build: new tokens may name a
	// parameter file that still has to be merged.
	r.built = false
	if len(r.items) == 0 && len(args) > 1 {
		return r.engine.HelpRequested(), nil
	}
	return r.Build()
}

// ParseString tokenizes a raw command line, honoring single and double
// quotes, and parses the result.
func (r *Registry) ParseString(commandLine string) (help bool, err error) {
	args, err := Tokenize(commandLine)
	if err != nil {
		return false, err
	}
	return r.Parse(args)
}

// Build runs the engine's validation pass and merges parameter-file
// values into cells that have no explicit value yet. It is idempotent;
// a help request short-circuits the merge and leaves the registry
// unbuilt. Definitions added later clear the built state, forcing a
// re-build on the next access without disturbing values already
// resolved for untouched parameters.
func (r *Registry) Build() (help bool, err error) {
	if r.built {
		return false, nil
	}
	if r.engine.Build() {
		return true, nil
	}
	if err := r.mergeFile(); err != nil {
		return false, err
	}
	r.built = true
	return false, nil
}

// Param returns the item for name, building first if needed. It fails
// with ErrNotParsed before Parse, ErrNotFound for unknown names, and
// ErrValue when the parameter is neither optional nor set or its cell
// carries a deferred engine error. Missing-required and malformed
// values surface here, at point of use, not at define or parse time.
func (r *Registry) Param(name string) (*Item, error) {
	if err := r.ensureBuilt(); err != nil {
		return nil, err
	}
	return r.resolve(name)
}

// Peek is the read-only form of Param: it never triggers a build and
// reports ErrNotBuilt instead.
func (r *Registry) Peek(name string) (*Item, error) {
	if !r.parsed {
		return nil, fmt.Errorf("%w: parameters must be parsed before access", ErrNotParsed)
	}
	if !r.built {
		return nil, fmt.Errorf("%w: parameters must be built before read-only access", ErrNotBuilt)
	}
	return r.resolve(name)
}

// Print writes the registry description and every parameter with its
// current value. The registry must be parsed; it is built on demand.
func (r *Registry) Print(w io.Writer) error {
	if err := r.ensureBuilt(); err != nil {
		return err
	}
	fmt.Fprintln(w, r.description)
	r.engine.Print(w)
	return nil
}

// Help writes the registry description and the usage listing.
func (r *Registry) Help(w io.Writer) error {
	if err := r.ensureBuilt(); err != nil {
		return err
	}
	fmt.Fprintln(w, r.description)
	r.engine.Help(w)
	return nil
}

func (r *Registry) ensureBuilt() error {
	if !r.parsed {
		return fmt.Errorf("%w: parameters must be parsed before access", ErrNotParsed)
	}
	if !r.built {
		// A help request leaves the registry unbuilt on purpose;
		// access is still allowed.
		if _, err := r.Build(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) resolve(name string) (*Item, error) {
	it, ok := r.names[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err := it.entry.Err(); err != nil {
		return nil, fmt.Errorf("%w: parameter %q: %v", ErrValue, name, err)
	}
	if !it.IsOptional() && !it.IsSet() {
		return nil, fmt.Errorf("%w: no value provided for non-optional parameter %q", ErrValue, name)
	}
	return it, nil
}

func (r *Registry) define(nameSpec, descr string, kind Kind, vector bool, def *string) error {
	names, err := splitNames(nameSpec)
	if err != nil {
		return err
	}

	// Partition the requested names into known and new, checking that
	// every known name resolves to one and the same item of the same
	// kind. Anything else would silently merge or split parameter
	// identities.
	var existing *Item
	var fresh []string
	for _, name := range names {
		it, ok := r.names[name]
		if !ok {
			fresh = append(fresh, name)
			continue
		}
		if it.kind != kind || it.vector != vector {
			return fmt.Errorf("%w: parameter %q is already defined as %s", ErrRedefinition, name, it.kindLabel())
		}
		if existing != nil && existing != it {
			return fmt.Errorf("%w: names %q and %q belong to different parameters", ErrRedefinition, existing.name, name)
		}
		existing = it
	}

	r.built = false

	if existing == nil {
		// All names are new: create the item.
		entry, err := r.engine.Flag(names[0], descr, kindTag(kind, vector), vector)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRedefinition, err)
		}
		it := &Item{name: names[0], kind: kind, vector: vector, entry: entry}
		for _, alias := range names[1:] {
			if err := r.engine.Alias(entry, alias); err != nil {
				return fmt.Errorf("%w: %v", ErrRedefinition, err)
			}
			it.aliases = append(it.aliases, alias)
		}
		if def != nil {
			entry.SetDefault(*def)
		}
		it.optional = def != nil || entry.IsSet()
		for _, name := range names {
			r.names[name] = it
		}
		r.items = append(r.items, it)
		return nil
	}

	// Alias merge: attach the new names to the known item. The item is
	// mutated in place, so every existing alias sees the change.
	for _, name := range fresh {
		if err := r.engine.Alias(existing.entry, name); err != nil {
			return fmt.Errorf("%w: %v", ErrRedefinition, err)
		}
		existing.aliases = append(existing.aliases, name)
		r.names[name] = existing
	}
	if descr != "" {
		existing.entry.SetDescription(descr)
	}
	if def != nil {
		existing.entry.SetDefault(*def)
	}
	if def != nil || existing.entry.IsSet() {
		existing.optional = true
	}
	return nil
}

func splitNames(nameSpec string) ([]string, error) {
	if strings.TrimSpace(nameSpec) == "" {
		return nil, fmt.Errorf("%w: name specifier is empty", ErrEmptyName)
	}
	parts := strings.Split(nameSpec, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("%w: empty name in specifier %q", ErrEmptyName, nameSpec)
		}
		names = append(names, p)
	}
	return names, nil
}

func kindTag(kind Kind, vector bool) string {
	if vector {
		return kind.String() + " LIST"
	}
	return kind.String()
}

// kindOf maps a Value type parameter onto the closed kind set.
// Reflection handles named types, which a type switch on the zero
// value would miss.
func kindOf[T Value]() (Kind, bool, error) {
	var zero T
	rt := reflect.TypeOf(zero)
	kind, ok := scalarKind(rt.Kind())
	if ok {
		return kind, false, nil
	}
	if rt.Kind() == reflect.Slice {
		if kind, ok := scalarKind(rt.Elem().Kind()); ok {
			return kind, true, nil
		}
	}
	return 0, false, fmt.Errorf("%w: unsupported parameter type %v", ErrConvert, rt)
}

func scalarKind(k reflect.Kind) (Kind, bool) {
	switch k {
	case reflect.Bool:
		return KindBool, true
	case reflect.Int, reflect.Int64:
		return KindInt, true
	case reflect.Float64:
		return KindFloat, true
	case reflect.String:
		return KindString, true
	}
	return 0, false
}

// convertItem performs the typed read for Get, building the result
// through reflection so named types convert cleanly.
func convertItem[T Value](it *Item) (T, error) {
	var zero T
	rt := reflect.TypeOf(zero)
	rv := reflect.New(rt).Elem()

	switch rt.Kind() {
	case reflect.Bool:
		b, err := it.Bool()
		if err != nil {
			return zero, err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int64:
		i, err := it.Int64()
		if err != nil {
			return zero, err
		}
		rv.SetInt(i)
	case reflect.Float64:
		f, err := it.Float64()
		if err != nil {
			return zero, err
		}
		rv.SetFloat(f)
	case reflect.String:
		s, err := it.String()
		if err != nil {
			return zero, err
		}
		rv.SetString(s)
	case reflect.Slice:
		parts, err := it.Strings()
		if err != nil {
			return zero, err
		}
		rv.Set(reflect.MakeSlice(rt, len(parts), len(parts)))
		for i, p := range parts {
			switch rt.Elem().Kind() {
			case reflect.Bool:
				b, err := parseBool(p, it.name)
				if err != nil {
					return zero, err
				}
				rv.Index(i).SetBool(b)
			case reflect.Int, reflect.Int64:
				n, err := parseInt(p, it.name)
				if err != nil {
					return zero, err
				}
				rv.Index(i).SetInt(n)
			case reflect.Float64:
				f, err := parseFloat(p, it.name)
				if err != nil {
					return zero, err
				}
				rv.Index(i).SetFloat(f)
			case reflect.String:
				rv.Index(i).SetString(p)
			}
		}
	}

	return rv.Interface().(T), nil
}
