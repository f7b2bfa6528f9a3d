// Package builtin provides the always-available modesh commands:
// debug, help, mode, flag, version and exit.
package builtin

import (
	"github.com/charmbracelet/glamour"

	"modeshell/pkg/shell"
)

// Options tunes how builtins present their output.
type Options struct {
	// Markdown renders detailed help when set; nil prints plain text.
	Markdown *glamour.TermRenderer
}

// All returns the builtin commands in the order help lists them.
func All(opts Options) []*shell.Command {
	return []*shell.Command{
		Debug(),
		Help(opts.Markdown),
		Mode(),
		Flag(),
		Version(),
		Exit(),
	}
}

// NewMarkdownRenderer returns a glamour renderer for help output.
// style is a glamour standard style name such as "dark", "light" or "notty".
func NewMarkdownRenderer(style string, width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
}
