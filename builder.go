// File: params/builder.go
package params

import (
	"fmt"
	"os"
)

// ValidatorFunc validates a fully parsed and built Registry. It runs
// at the end of the build chain and should return an error when the
// resolved parameters are unacceptable.
type ValidatorFunc func(r *Registry) error

// Builder provides a fluent interface for declaring and parsing
// parameters in one chain. Declaration errors are held and reported by
// Build, so chains stay unconditional.
type Builder struct {
	reg         *Registry
	args        []string
	commandLine string
	err         error
	validators  []ValidatorFunc
}

// NewBuilder creates a builder around a fresh registry. Arguments
// default to os.Args.
func NewBuilder(description string) *Builder {
	return &Builder{
		reg:  New(description),
		args: os.Args,
	}
}

// WithArgs sets the command-line tokens to parse; args[0] is the
// program name.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithString sets a raw command line to tokenize and parse instead of
// pre-split tokens.
func (b *Builder) WithString(commandLine string) *Builder {
	b.commandLine = commandLine
	return b
}

// WithValidator adds a validation function executed after a successful
// build, in the order added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Registry exposes the underlying registry for declarations that need
// it directly.
func (b *Builder) Registry() *Registry { return b.reg }

// With declares a parameter on the builder's registry, keeping the
// chain going. The first declaration error wins and surfaces in Build.
func With[T Value](b *Builder, nameSpec, descr string, def ...T) *Builder {
	if b.err == nil {
		b.err = Define[T](b.reg, nameSpec, descr, def...)
	}
	return b
}

// Build parses, builds and validates. The returned help flag is true
// when the user asked for help; the caller should print help and stop
// without treating it as an error.
func (b *Builder) Build() (reg *Registry, help bool, err error) {
	if b.err != nil {
		return nil, false, b.err
	}

	if b.commandLine != "" {
		help, err = b.reg.ParseString(b.commandLine)
	} else {
		help, err = b.reg.Parse(b.args)
	}
	if err != nil {
		return nil, false, err
	}
	if help {
		return b.reg, true, nil
	}

	for _, validate := range b.validators {
		if err := validate(b.reg); err != nil {
			return nil, false, fmt.Errorf("parameter validation failed: %w", err)
		}
	}
	return b.reg, false, nil
}
