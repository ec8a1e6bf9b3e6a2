// File: params/tokenize.go
package params

import (
	"fmt"
	"strings"
)

// Tokenize splits a raw command line into argv-style tokens. The first
// token is the program name. Spaces inside single or double quotes do
// not split tokens; quote characters toggle naively (a double quote
// inside a single-quoted region still toggles double-quote state) and
// are kept in the token, the flag engine strips them from values.
// Consecutive spaces collapse. An unmatched quote at end of input
// returns ErrStringParse.
func Tokenize(commandLine string) ([]string, error) {
	s := strings.TrimLeft(commandLine, " ")

	var tokens []string
	var inSingle, inDouble, inSpace bool
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inSpace && c != ' ' {
			inSpace = false
			start = i
		}
		switch {
		case c == '"':
			inDouble = !inDouble
		case c == '\'':
			inSingle = !inSingle
		case c == ' ' && !inSingle && !inDouble && !inSpace:
			tokens = append(tokens, s[start:i])
			inSpace = true
		}
	}

	if inSingle || inDouble {
		return nil, fmt.Errorf("%w: %q", ErrStringParse, commandLine)
	}
	if !inSpace && len(s) > 0 {
		tokens = append(tokens, s[start:])
	}

	return tokens, nil
}
