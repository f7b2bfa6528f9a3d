// Package parser turns raw shell input lines into a command name and its arguments.
// Arguments are separated by spaces; double quotes group words into a single argument.
package parser

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNoCommand is returned when a line carries no command name.
var ErrNoCommand = errors.New("no command provided")

// Tokenize splits a line into the command name and its ordered arguments.
// The name is everything before the first whitespace character and is used verbatim.
// The remainder is split by splitArgs. An empty line or an empty name yields ErrNoCommand.
func Tokenize(line string) (string, []string, error) {
	name, rest, found := cutSpace(line)
	if name == "" {
		return "", nil, ErrNoCommand
	}
	if !found {
		return name, []string{}, nil
	}
	return name, splitArgs(rest), nil
}

// cutSpace slices s around the first whitespace character.
func cutSpace(s string) (before, after string, found bool) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, "", false
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[:i], s[i+size:], true
}

// splitArgs tokenizes the argument region of a line.
//
// A space outside quotes ends the current argument; runs of spaces never produce
// empty arguments. A double quote always ends the current argument (if any) and
// toggles the quoted state; quote characters are never part of an argument.
// An unterminated quote is not an error: whatever was collected is emitted.
func splitArgs(s string) []string {
	args := []string{}
	var current strings.Builder
	inQuotes := false

	flush := func() {
		if current.Len() > 0 {
			args = append(args, current.String())
			current.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r == ' ' && !inQuotes:
			flush()
		case r == '"':
			flush()
			inQuotes = !inQuotes
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return args
}
