package shell

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

// testShell builds a shell whose output is captured and whose exit function records codes.
type testShell struct {
	*Shell
	out   *bytes.Buffer
	err   *bytes.Buffer
	exits []int
}

func newTestShell(t *testing.T) *testShell {
	t.Helper()
	ts := &testShell{out: &bytes.Buffer{}, err: &bytes.Buffer{}}
	ts.Shell = New(
		WithOutput(ts.out),
		WithErrorOutput(ts.err),
		WithExit(func(code int) { ts.exits = append(ts.exits, code) }),
		WithLogger(log.New(io.Discard)),
		WithSessionID("test-session"),
	)
	return ts
}

type readStep struct {
	line string
	err  error
}

// scriptedReader replays canned lines and errors, then reports end of input.
type scriptedReader struct {
	steps   []readStep
	prompts []string
}

func lines(ls ...string) *scriptedReader {
	r := &scriptedReader{}
	for _, l := range ls {
		r.steps = append(r.steps, readStep{line: l})
	}
	return r
}

func (r *scriptedReader) ReadLine(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.steps) == 0 {
		return "", ErrEndOfInput
	}
	st := r.steps[0]
	r.steps = r.steps[1:]
	return st.line, st.err
}

func succeed(name string, aliases ...string) *Command {
	return NewCommand(name, name+" command").Aliases(aliases...).Build()
}

func failWith(name, msg string) *Command {
	return NewCommand(name, "always fails").
		ActionFunc(func(*Shell, []string) error { return errors.New(msg) }).
		Build()
}
