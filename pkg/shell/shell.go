// Package shell provides an embeddable interactive command shell runtime.
// A Shell holds builtin commands, switchable modes, a typed flag store and the
// result of the last command, and drives a read-eval-print loop over a LineReader.
package shell

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"modeshell/internal/logger"
)

// PromptFunc renders the prompt for a given state.
type PromptFunc func(State) string

// DefaultPrompt renders "! " after a failure and "> " otherwise.
func DefaultPrompt(st State) string {
	if st.IsError() {
		return "! "
	}
	return "> "
}

// Shell is the mutable runtime context handed to every command action.
// It is owned by a single loop and is not safe for concurrent use.
type Shell struct {
	state   State
	mode    int
	hasMode bool
	modes   []*Mode
	builtin []*Command
	flags   map[string]Flag

	id       string
	out      io.Writer
	errOut   io.Writer
	prompt   PromptFunc
	exit     func(int)
	log      *log.Logger
	stopped  bool
	exitCode int
}

// Option configures a Shell.
type Option func(*Shell)

// WithOutput sets where command output and "err:" lines go. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Shell) { s.out = w }
}

// WithErrorOutput sets where fatal input notices go. Defaults to stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(s *Shell) { s.errOut = w }
}

// WithPrompt replaces the prompt renderer.
func WithPrompt(fn PromptFunc) Option {
	return func(s *Shell) {
		if fn != nil {
			s.prompt = fn
		}
	}
}

// WithExit replaces the function used to terminate the process. Defaults to os.Exit.
func WithExit(fn func(int)) Option {
	return func(s *Shell) {
		if fn != nil {
			s.exit = fn
		}
	}
}

// WithLogger replaces the shell logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSessionID fixes the session ID instead of generating one.
func WithSessionID(id string) Option {
	return func(s *Shell) { s.id = id }
}

// New returns a shell in the Ok state with no mode, commands or flags.
func New(opts ...Option) *Shell {
	s := &Shell{
		state:  OkState(),
		flags:  make(map[string]Flag),
		id:     uuid.NewString(),
		out:    os.Stdout,
		errOut: os.Stderr,
		prompt: DefaultPrompt,
		exit:   os.Exit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.NewStyledLogger("shell")
	}
	s.log = s.log.With("session", s.id)
	return s
}

// SessionID identifies this shell in log output.
func (s *Shell) SessionID() string {
	return s.id
}

// Out is the writer commands should print to.
func (s *Shell) Out() io.Writer {
	return s.out
}

// Printf writes formatted output to Out.
func (s *Shell) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// Println writes a line to Out.
func (s *Shell) Println(args ...any) {
	fmt.Fprintln(s.out, args...)
}

// State returns the result of the last loop iteration.
func (s *Shell) State() State {
	return s.state
}

// Ok resets the state to success.
func (s *Shell) Ok() {
	s.state = OkState()
}

// Err sets the state to a failure carrying msg.
func (s *Shell) Err(msg string) {
	s.state = ErrorState(msg)
}

// Prompt renders the prompt for the current state.
func (s *Shell) Prompt() string {
	return s.prompt(s.state)
}

// AddBuiltin appends always-available commands.
// An alias already claimed by another builtin is accepted but never resolves to the newcomer.
func (s *Shell) AddBuiltin(cmds ...*Command) {
	for _, cmd := range cmds {
		for _, alias := range cmd.aliases {
			if owner := findAlias(s.builtin, alias); owner != nil {
				s.log.Warn("Alias already registered", "alias", alias, "command", cmd.name, "owner", owner.name)
			}
		}
		s.builtin = append(s.builtin, cmd)
	}
}

// AddMode appends modes. Mode names are not required to be unique; lookups use the first match.
func (s *Shell) AddMode(modes ...*Mode) {
	for _, m := range modes {
		if s.FindModeIndex(m.name) >= 0 {
			s.log.Warn("Mode already registered", "mode", m.name)
		}
		for _, cmd := range m.commands {
			for _, alias := range cmd.aliases {
				if owner := findAlias(s.builtin, alias); owner != nil {
					s.log.Warn("Mode alias shadowed by builtin", "mode", m.name, "alias", alias, "owner", owner.name)
				}
			}
		}
		s.modes = append(s.modes, m)
	}
}

// Builtin returns the builtin commands in registration order.
func (s *Shell) Builtin() []*Command {
	return slices.Clone(s.builtin)
}

// Modes returns the registered modes in registration order.
func (s *Shell) Modes() []*Mode {
	return slices.Clone(s.modes)
}

// Commands returns the builtins followed by the active mode's commands.
// This order is the resolution order.
func (s *Shell) Commands() []*Command {
	cmds := slices.Clone(s.builtin)
	if m, ok := s.CurrentMode(); ok {
		cmds = append(cmds, m.commands...)
	}
	return cmds
}

// FindCommand returns the first command in Commands that has name as an alias.
func (s *Shell) FindCommand(name string) (*Command, error) {
	if cmd := findAlias(s.Commands(), name); cmd != nil {
		return cmd, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrCommandNotFound, name)
}

func findAlias(cmds []*Command, alias string) *Command {
	for _, cmd := range cmds {
		if cmd.HasAlias(alias) {
			return cmd
		}
	}
	return nil
}

// CurrentMode returns the active mode, if any.
func (s *Shell) CurrentMode() (*Mode, bool) {
	if !s.hasMode {
		return nil, false
	}
	return s.modes[s.mode], true
}

// ModeIndex returns the index of the active mode, if any.
func (s *Shell) ModeIndex() (int, bool) {
	return s.mode, s.hasMode
}

// SetMode activates the mode at index i. An out-of-range index leaves the
// current mode unchanged and reports nothing.
func (s *Shell) SetMode(i int) {
	if i < 0 || i >= len(s.modes) {
		s.log.Debug("Ignoring out-of-range mode index", "index", i, "modes", len(s.modes))
		return
	}
	s.mode = i
	s.hasMode = true
}

// ClearMode deactivates the current mode.
func (s *Shell) ClearMode() {
	s.mode = 0
	s.hasMode = false
}

// FindModeIndex returns the index of the first mode called name, or -1.
func (s *Shell) FindModeIndex(name string) int {
	return slices.IndexFunc(s.modes, func(m *Mode) bool { return m.name == name })
}

// SelectMode activates the mode called name. The name "none" clears the mode
// unless a mode is actually registered under that name.
func (s *Shell) SelectMode(name string) error {
	if i := s.FindModeIndex(name); i >= 0 {
		s.SetMode(i)
		return nil
	}
	if name == "none" {
		s.ClearMode()
		return nil
	}
	return fmt.Errorf("%w '%s'", ErrModeNotFound, name)
}
