package builtin

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modeshell/pkg/shell"
)

func TestHelp_ListsBuiltins(t *testing.T) {
	ts := newTestShell(t)

	assert.Equal(t,
		"debug - print debug information\n"+
			"help - print help information\n"+
			"mode - change or print the current mode\n"+
			"flag - list, get or set shell flags\n"+
			"version - print version information\n"+
			"exit - exit the shell\n",
		ts.Exec(t, "help"))
}

func TestHelp_ListsModeCommands(t *testing.T) {
	ts := newTestShell(t)
	ts.SetMode(0)

	out := ts.Exec(t, "?")
	assert.Contains(t, out, "exit - exit the shell\n"+
		"add - not yet implemented (bookmark)\n"+
		"list - not yet implemented (bookmark)\n")
}

func TestHelp_DescribesCommand(t *testing.T) {
	ts := newTestShell(t)

	assert.Equal(t,
		"debug - print debug information\n"+
			"aliases: dbg, !\n"+
			"Usage: debug [dump]\n",
		ts.Exec(t, "help !"))

	assert.Equal(t,
		"mode - change or print the current mode\n"+
			"Usage: mode [name | none]\n",
		ts.Exec(t, "help mode"))
}

func TestHelp_UnknownCommand(t *testing.T) {
	ts := newTestShell(t)

	err := ts.HandleLine("help add")
	assert.ErrorIs(t, err, shell.ErrCommandNotFound)
	assert.EqualError(t, err, "command not found: add")
}

func TestHelp_Markdown(t *testing.T) {
	md, err := NewMarkdownRenderer("notty", 80)
	require.NoError(t, err)

	ts := newTestShell(t)
	ts.AddBuiltin(Help(md))
	// The first "help" wins resolution, so call the markdown one directly.
	cmds := ts.Builtin()
	markdownHelp := cmds[len(cmds)-1]

	ts.Out.Reset()
	require.NoError(t, markdownHelp.Run(ts.Shell, []string{"exit"}))

	out := ansi.Strip(ts.Out.String())
	assert.Contains(t, out, "exit")
	assert.Contains(t, out, "exit the shell")
	assert.Contains(t, out, "quit")
	assert.Contains(t, out, "exit [code]")
}
