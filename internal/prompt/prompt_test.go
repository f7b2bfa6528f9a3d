package prompt

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"modeshell/pkg/shell"
)

func TestRender_Plain(t *testing.T) {
	r := New(false)

	assert.Equal(t, "> ", r.Render(shell.OkState()))
	assert.Equal(t, "! ", r.Render(shell.ErrorState("boom")))
}

func TestRender_Colored(t *testing.T) {
	original := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(original) })

	r := New(true)

	errPrompt := r.Render(shell.ErrorState("boom"))
	assert.NotEqual(t, "! ", errPrompt, "error prompt carries escape codes")
	assert.Equal(t, "! ", ansi.Strip(errPrompt))
	assert.Equal(t, 2, ansi.StringWidth(errPrompt))

	assert.Equal(t, "> ", ansi.Strip(r.Render(shell.OkState())))
}

func TestNew_AsciiProfileDisablesColor(t *testing.T) {
	original := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(original) })

	r := New(true)
	assert.Equal(t, "! ", r.Render(shell.ErrorState("boom")))
}

func TestRender_DependsOnlyOnKind(t *testing.T) {
	r := New(false)
	assert.Equal(t, r.Render(shell.ErrorState("a")), r.Render(shell.ErrorState("something else")))
}
