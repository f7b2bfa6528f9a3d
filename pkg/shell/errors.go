package shell

import (
	"errors"

	"modeshell/pkg/parser"
)

// Recoverable failures. They are folded into the shell State by the loop.
var (
	// ErrNoCommand is returned when an input line has no command name.
	ErrNoCommand = parser.ErrNoCommand

	// ErrCommandNotFound is returned when no registered alias matches.
	ErrCommandNotFound = errors.New("command not found")

	// ErrModeNotFound is returned when a mode switch names an unknown mode.
	ErrModeNotFound = errors.New("no mode")

	// ErrNotImplemented is returned by placeholder commands.
	ErrNotImplemented = errors.New("not yet implemented")
)

// Fatal input signals. A LineReader returns these (possibly wrapped) to end the process.
var (
	ErrInterrupted = errors.New("interrupted")
	ErrEndOfInput  = errors.New("end of input")
)

// IsFatalInput reports whether err is an interrupt or end-of-input signal.
func IsFatalInput(err error) bool {
	return errors.Is(err, ErrInterrupted) || errors.Is(err, ErrEndOfInput)
}
