// Package lineinput reads shell input lines with line editing and history.
package lineinput

import (
	"errors"
	"io"

	"github.com/chzyer/readline"

	"modeshell/pkg/shell"
)

var (
	errTakeLine   = errors.New("couldn't take line")
	errAddHistory = errors.New("couldn't add line to history")
)

// Options configures a Reader. Zero values use the terminal and keep history in memory.
type Options struct {
	HistoryFile  string
	HistoryLimit int
	Stdin        io.ReadCloser
	Stdout       io.Writer
	Stderr       io.Writer
}

// historySaver is the part of readline.Instance used after a line is read.
type historySaver interface {
	SaveHistory(content string) error
}

// Reader is a shell.LineReader backed by readline.
type Reader struct {
	rl *readline.Instance
}

var _ shell.LineReader = (*Reader)(nil)

// New opens a readline instance. History is saved explicitly for every accepted line.
// A supplied Stdin is read as a plain stream: the process terminal is never put in raw mode.
func New(opts Options) (*Reader, error) {
	cfg := &readline.Config{
		HistoryFile:            opts.HistoryFile,
		HistoryLimit:           opts.HistoryLimit,
		DisableAutoSaveHistory: true,
		Stdin:                  opts.Stdin,
		Stdout:                 opts.Stdout,
		Stderr:                 opts.Stderr,
	}
	if opts.Stdin != nil {
		cfg.FuncIsTerminal = func() bool { return false }
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	return &Reader{rl: rl}, nil
}

// ReadLine shows prompt and blocks for one line, then records it in history.
func (r *Reader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err != nil {
		return "", translate(err)
	}
	if err := remember(r.rl, line); err != nil {
		return "", err
	}
	return line, nil
}

// Close restores the terminal and flushes history.
func (r *Reader) Close() error {
	return r.rl.Close()
}

// translate maps readline errors onto the shell's fatal input signals.
func translate(err error) error {
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return shell.ErrInterrupted
	case errors.Is(err, io.EOF):
		return shell.ErrEndOfInput
	default:
		return errTakeLine
	}
}

func remember(h historySaver, line string) error {
	if err := h.SaveHistory(line); err != nil {
		return errAddHistory
	}
	return nil
}
