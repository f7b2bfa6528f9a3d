package testutils

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"modeshell/pkg/shell"
)

// Harness is a shell with captured output and a recording exit function.
type Harness struct {
	*shell.Shell
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
	Exits  []int
}

// NewHarness builds a silent shell. Extra options are applied after the harness defaults.
func NewHarness(t *testing.T, opts ...shell.Option) *Harness {
	t.Helper()
	h := &Harness{Out: &bytes.Buffer{}, ErrOut: &bytes.Buffer{}}
	base := []shell.Option{
		shell.WithOutput(h.Out),
		shell.WithErrorOutput(h.ErrOut),
		shell.WithLogger(log.New(io.Discard)),
		shell.WithExit(func(code int) { h.Exits = append(h.Exits, code) }),
		shell.WithSessionID(NextSessionID()),
	}
	h.Shell = shell.New(append(base, opts...)...)
	return h
}

// Exec handles one line, requires success and returns what it printed.
func (h *Harness) Exec(t *testing.T, line string) string {
	t.Helper()
	h.Out.Reset()
	require.NoError(t, h.HandleLine(line), line)
	return h.Out.String()
}

// ScriptedReader is a shell.LineReader replaying canned input, then end of input.
type ScriptedReader struct {
	Steps   []ReadStep
	Prompts []string
}

// ReadStep is one ReadLine result.
type ReadStep struct {
	Line string
	Err  error
}

// Lines returns a reader yielding each line in turn.
func Lines(lines ...string) *ScriptedReader {
	r := &ScriptedReader{}
	for _, l := range lines {
		r.Steps = append(r.Steps, ReadStep{Line: l})
	}
	return r
}

// ReadLine records the prompt and returns the next step.
func (r *ScriptedReader) ReadLine(prompt string) (string, error) {
	r.Prompts = append(r.Prompts, prompt)
	if len(r.Steps) == 0 {
		return "", shell.ErrEndOfInput
	}
	st := r.Steps[0]
	r.Steps = r.Steps[1:]
	return st.Line, st.Err
}
