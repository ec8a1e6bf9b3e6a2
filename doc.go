// File: params/doc.go

// Package params is a typed command-line and INI-file parameter
// registry. Callers declare named, typed parameters with optional
// aliases and default values, parse a command line (pre-split or as a
// raw quoted string), and query parameters by name. Values merge with
// command-line precedence over file precedence over defaults.
//
// Quick start:
//
//	p := params.New("my solver")
//	params.Define[int64](p, "iterations,it", "max iterations", 100)
//	params.Define[string](p, "input.file", "input data path")
//
//	help, err := p.Parse(os.Args)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if help {
//	    p.Help(os.Stdout)
//	    return
//	}
//
//	iterations, _ := params.Get[int64](p, "it")
//
// The first positional argument names an optional parameter file.
// By extension it may be INI (the default), TOML, JSON or YAML; dotted
// parameter names such as "input.file" address section-qualified keys.
// File values only fill parameters the command line left unset.
//
// Validation is deferred: a missing required value or a malformed one
// is reported when the parameter is read, not when it is defined or
// parsed, so callers pay the cost only for parameters they use.
// Reads go through the guarded accessor and classify failures with
// the package's sentinel errors (ErrNotFound, ErrValue, ErrConvert,
// ...), matched via errors.Is.
//
// A Registry is not safe for concurrent use: parameter parsing is a
// one-shot operation at process start-up.
package params
