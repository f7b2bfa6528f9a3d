package shell

import (
	"errors"
	"fmt"

	"modeshell/pkg/parser"
)

// LineReader supplies input lines. ReadLine shows prompt, blocks until a line is
// available and remembers it in history. It returns ErrInterrupted or
// ErrEndOfInput (possibly wrapped) for Ctrl-C and end of stream.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// HandleLine tokenizes line, resolves the command and runs it.
func (s *Shell) HandleLine(line string) error {
	name, args, err := parser.Tokenize(line)
	if err != nil {
		return err
	}
	cmd, err := s.FindCommand(name)
	if err != nil {
		return err
	}
	s.log.Debug("Executing command", "command", cmd.name, "input", name, "args", args)
	return cmd.Run(s, args)
}

// Step runs one loop iteration and reports whether the loop should continue.
// Fatal input signals terminate through the exit function with code 1.
func (s *Shell) Step(in LineReader) bool {
	line, err := in.ReadLine(s.Prompt())
	if err != nil {
		switch {
		case errors.Is(err, ErrInterrupted):
			fmt.Fprintln(s.errOut, "! CTRL-C")
			s.Exit(1)
			return false
		case errors.Is(err, ErrEndOfInput):
			fmt.Fprintln(s.errOut, "! EOF")
			s.Exit(1)
			return false
		}
		s.fail(err)
		return true
	}

	if err := s.HandleLine(line); err != nil {
		s.fail(err)
	} else {
		s.Ok()
	}
	return !s.stopped
}

func (s *Shell) fail(err error) {
	s.log.Debug("Command failed", "error", err)
	s.Println("err:", err.Error())
	s.Err(err.Error())
}

// Run drives the loop until a command calls Exit or input ends.
// It only returns when the exit function returns, which os.Exit never does,
// and then yields the requested exit code.
func (s *Shell) Run(in LineReader) int {
	s.log.Debug("Shell started", "builtin", len(s.builtin), "modes", len(s.modes))
	for s.Step(in) {
	}
	return s.exitCode
}

// Exit stops the loop and terminates the process with code.
func (s *Shell) Exit(code int) {
	s.log.Debug("Exiting", "code", code)
	s.stopped = true
	s.exitCode = code
	s.exit(code)
}

// Stopped reports whether Exit has been called.
func (s *Shell) Stopped() bool {
	return s.stopped
}
