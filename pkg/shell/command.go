package shell

import "slices"

// Action is the behavior behind a Command. It receives exclusive access to the
// shell and the command's arguments, and returns nil on success.
type Action interface {
	Invoke(sh *Shell, args []string) error
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func(sh *Shell, args []string) error

// Invoke calls f(sh, args).
func (f ActionFunc) Invoke(sh *Shell, args []string) error {
	return f(sh, args)
}

var noop = ActionFunc(func(*Shell, []string) error { return nil })

// Command is a named unit of behavior resolvable by any of its aliases.
// Commands are built with NewCommand and are immutable afterwards.
type Command struct {
	name        string
	description string
	usage       string
	aliases     []string
	action      Action
}

// Name returns the command's stable identifier.
func (c *Command) Name() string {
	return c.name
}

// Description returns the one-line description shown by help.
func (c *Command) Description() string {
	return c.description
}

// Usage returns the usage line, e.g. "mode [name | none]".
func (c *Command) Usage() string {
	return c.usage
}

// Aliases returns every string the command resolves from. The first entry is the name.
func (c *Command) Aliases() []string {
	return slices.Clone(c.aliases)
}

// HasAlias reports whether name resolves to this command. Matching is exact and case-sensitive.
func (c *Command) HasAlias(name string) bool {
	return slices.Contains(c.aliases, name)
}

// Run invokes the command's action.
func (c *Command) Run(sh *Shell, args []string) error {
	return c.action.Invoke(sh, args)
}
