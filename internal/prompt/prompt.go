// Package prompt renders the shell prompt from the result of the last command.
package prompt

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"modeshell/pkg/shell"
)

const (
	okIndicator    = "> "
	errorIndicator = "! "
)

// Renderer picks the prompt indicator for a shell state.
type Renderer struct {
	color      bool
	errorStyle lipgloss.Style
	okStyle    lipgloss.Style
}

// New returns a renderer. Colors are used only when color is true and the
// terminal supports them.
func New(color bool) *Renderer {
	if lipgloss.ColorProfile() == termenv.Ascii {
		color = false
	}
	return &Renderer{
		color:      color,
		errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		okStyle:    lipgloss.NewStyle(),
	}
}

// Render returns "! " in red after a failure and "> " otherwise.
func (r *Renderer) Render(st shell.State) string {
	if st.IsError() {
		if r.color {
			return r.errorStyle.Render(errorIndicator)
		}
		return errorIndicator
	}
	if r.color {
		return r.okStyle.Render(okIndicator)
	}
	return okIndicator
}
