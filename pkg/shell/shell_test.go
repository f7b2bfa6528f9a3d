package shell

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookmarkMode() *Mode {
	return NewMode("bookmark", "Bookmark mode",
		TodoCommand("add").Build(),
		TodoCommand("list").Build(),
	)
}

func populated(t *testing.T) *testShell {
	t.Helper()
	sh := newTestShell(t)
	sh.AddBuiltin(
		succeed("debug", "dbg", "!"),
		succeed("help", "?"),
		succeed("mode"),
	)
	sh.AddMode(
		bookmarkMode(),
		NewMode("notes", "Notes mode", succeed("add", "a"), succeed("help")),
	)
	return sh
}

func TestNew_InitialState(t *testing.T) {
	sh := newTestShell(t)

	assert.Equal(t, OkState(), sh.State())
	_, ok := sh.CurrentMode()
	assert.False(t, ok)
	assert.Empty(t, sh.Builtin())
	assert.Empty(t, sh.Modes())
	assert.Empty(t, sh.Commands())
	assert.Empty(t, sh.FlagNames())
	assert.Equal(t, "test-session", sh.SessionID())
}

func TestNew_GeneratesSessionID(t *testing.T) {
	a := New(WithLogger(log.New(&bytes.Buffer{})))
	b := New(WithLogger(log.New(&bytes.Buffer{})))
	assert.NotEmpty(t, a.SessionID())
	assert.NotEqual(t, a.SessionID(), b.SessionID())
}

func TestShell_StateSetters(t *testing.T) {
	sh := newTestShell(t)

	sh.Err("error message")
	assert.Equal(t, ErrorState("error message"), sh.State())
	assert.True(t, sh.State().IsError())
	assert.Equal(t, `Error("error message")`, sh.State().String())

	sh.Ok()
	assert.Equal(t, OkState(), sh.State())
	assert.Equal(t, "Ok", sh.State().String())
}

func TestShell_Commands_Order(t *testing.T) {
	sh := populated(t)

	names := func() []string {
		var out []string
		for _, c := range sh.Commands() {
			out = append(out, c.Name())
		}
		return out
	}

	assert.Equal(t, []string{"debug", "help", "mode"}, names())

	sh.SetMode(0)
	assert.Equal(t, []string{"debug", "help", "mode", "add", "list"}, names())

	sh.SetMode(1)
	assert.Equal(t, []string{"debug", "help", "mode", "add", "help"}, names())
}

func TestShell_Commands_Length(t *testing.T) {
	sh := populated(t)
	builtin := len(sh.Builtin())

	assert.Len(t, sh.Commands(), builtin)
	for i, m := range sh.Modes() {
		sh.SetMode(i)
		assert.Len(t, sh.Commands(), builtin+len(m.Commands()))
		assert.Equal(t, sh.Builtin(), sh.Commands()[:builtin], "builtins come first")
	}
}

func TestShell_FindCommand_EveryAlias(t *testing.T) {
	sh := populated(t)
	sh.SetMode(0)

	for _, cmd := range sh.Commands() {
		for _, alias := range cmd.Aliases() {
			found, err := sh.FindCommand(alias)
			require.NoError(t, err, alias)
			assert.Same(t, cmd, found, alias)
		}
	}
}

func TestShell_FindCommand_NotFound(t *testing.T) {
	sh := populated(t)

	for _, name := range []string{"nope", "Debug", "add", " help", ""} {
		t.Run(name, func(t *testing.T) {
			cmd, err := sh.FindCommand(name)
			assert.Nil(t, cmd)
			assert.ErrorIs(t, err, ErrCommandNotFound)
			assert.EqualError(t, err, "command not found: "+name)
		})
	}
}

func TestShell_FindCommand_BuiltinPrecedence(t *testing.T) {
	sh := populated(t)
	sh.SetMode(1)

	cmd, err := sh.FindCommand("help")
	require.NoError(t, err)
	assert.Same(t, sh.Builtin()[1], cmd)

	cmd, err = sh.FindCommand("a")
	require.NoError(t, err)
	assert.Equal(t, "add", cmd.Name())
	assert.Equal(t, "add command", cmd.Description())
}

func TestShell_FindCommand_FirstMatchWins(t *testing.T) {
	sh := newTestShell(t)
	first := succeed("one", "x")
	second := succeed("two", "x")
	sh.AddBuiltin(first, second)

	cmd, err := sh.FindCommand("x")
	require.NoError(t, err)
	assert.Same(t, first, cmd)
}

func TestShell_SetMode(t *testing.T) {
	sh := populated(t)

	sh.SetMode(1)
	idx, ok := sh.ModeIndex()
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	for _, bad := range []int{2, 99, -1} {
		sh.SetMode(bad)
		idx, ok = sh.ModeIndex()
		assert.True(t, ok, "index %d", bad)
		assert.Equal(t, 1, idx, "out-of-range index %d leaves mode unchanged", bad)
	}

	m, ok := sh.CurrentMode()
	require.True(t, ok)
	assert.Equal(t, "notes", m.Name())
}

func TestShell_SetMode_NoModes(t *testing.T) {
	sh := newTestShell(t)
	sh.SetMode(0)
	_, ok := sh.CurrentMode()
	assert.False(t, ok)
}

func TestShell_ClearMode(t *testing.T) {
	sh := populated(t)

	sh.ClearMode()
	_, ok := sh.CurrentMode()
	assert.False(t, ok, "clearing with no mode active")

	sh.SetMode(0)
	sh.ClearMode()
	_, ok = sh.ModeIndex()
	assert.False(t, ok)
	assert.Len(t, sh.Commands(), 3)
}

func TestShell_SelectMode(t *testing.T) {
	sh := populated(t)

	require.NoError(t, sh.SelectMode("notes"))
	m, ok := sh.CurrentMode()
	require.True(t, ok)
	assert.Equal(t, "notes", m.Name())

	require.NoError(t, sh.SelectMode("none"))
	_, ok = sh.CurrentMode()
	assert.False(t, ok)

	require.NoError(t, sh.SelectMode("bookmark"))
	err := sh.SelectMode("recipes")
	assert.ErrorIs(t, err, ErrModeNotFound)
	assert.EqualError(t, err, "no mode 'recipes'")
	m, _ = sh.CurrentMode()
	assert.Equal(t, "bookmark", m.Name(), "failed switch keeps the current mode")
}

func TestShell_SelectMode_NamedNone(t *testing.T) {
	sh := newTestShell(t)
	sh.AddMode(NewMode("none", "a mode literally called none"))

	require.NoError(t, sh.SelectMode("none"))
	m, ok := sh.CurrentMode()
	require.True(t, ok)
	assert.Equal(t, "none", m.Name())
}

func TestShell_DuplicateModeNames(t *testing.T) {
	sh := newTestShell(t)
	first := NewMode("dup", "first")
	sh.AddMode(first, NewMode("dup", "second"))

	assert.Equal(t, 0, sh.FindModeIndex("dup"))
	assert.Equal(t, -1, sh.FindModeIndex("missing"))
	require.NoError(t, sh.SelectMode("dup"))
	m, _ := sh.CurrentMode()
	assert.Same(t, first, m)
}

func TestShell_DuplicateAliasesAreLogged(t *testing.T) {
	var buf bytes.Buffer
	sh := New(WithLogger(log.New(&buf)))

	sh.AddBuiltin(succeed("help", "?"), succeed("query", "?"))
	sh.AddMode(NewMode("m", "m", succeed("help")), NewMode("m", "again"))

	out := buf.String()
	assert.Contains(t, out, "Alias already registered")
	assert.Contains(t, out, "Mode alias shadowed by builtin")
	assert.Contains(t, out, "Mode already registered")
}

func TestMode_Accessors(t *testing.T) {
	add := succeed("add")
	cmds := []*Command{add}
	m := NewMode("bookmark", "Bookmark mode", cmds...)
	cmds[0] = nil

	assert.Equal(t, "bookmark", m.Name())
	assert.Equal(t, "Bookmark mode", m.Description())
	assert.Equal(t, []*Command{add}, m.Commands())
}
