package shell

import "slices"

// Arg describes one positional argument in a usage line.
type Arg struct {
	label    string
	required bool
}

// Optional returns an argument rendered as "[label]".
func Optional(label string) Arg {
	return Arg{label: label}
}

// Required returns an argument rendered as "<label>".
func Required(label string) Arg {
	return Arg{label: label, required: true}
}

func (a Arg) String() string {
	if a.required {
		return "<" + a.label + ">"
	}
	return "[" + a.label + "]"
}

// CommandBuilder composes a Command step by step.
//
//	shell.NewCommand("help", "print help information").
//		ActionFunc(help).
//		Arg(shell.Optional("command")).
//		Alias("?").
//		Build()
type CommandBuilder struct {
	cmd Command
}

// NewCommand starts a command whose usage is its name, whose only alias is its
// name and whose action does nothing.
func NewCommand(name, description string) *CommandBuilder {
	return &CommandBuilder{
		cmd: Command{
			name:        name,
			description: description,
			usage:       name,
			aliases:     []string{name},
			action:      noop,
		},
	}
}

// TodoCommand returns a placeholder whose action always fails with ErrNotImplemented.
func TodoCommand(name string) *CommandBuilder {
	return NewCommand(name, ErrNotImplemented.Error()).
		ActionFunc(func(*Shell, []string) error {
			return ErrNotImplemented
		})
}

// Action replaces the command's action. A nil action keeps the current one.
func (b *CommandBuilder) Action(a Action) *CommandBuilder {
	if a != nil {
		b.cmd.action = a
	}
	return b
}

// ActionFunc replaces the command's action with fn.
func (b *CommandBuilder) ActionFunc(fn func(sh *Shell, args []string) error) *CommandBuilder {
	if fn == nil {
		return b
	}
	return b.Action(ActionFunc(fn))
}

// Arg appends an argument to the usage line.
func (b *CommandBuilder) Arg(a Arg) *CommandBuilder {
	b.cmd.usage += " " + a.String()
	return b
}

// Alias adds one alias. Duplicates are kept as given.
func (b *CommandBuilder) Alias(alias string) *CommandBuilder {
	b.cmd.aliases = append(b.cmd.aliases, alias)
	return b
}

// Aliases adds several aliases in order.
func (b *CommandBuilder) Aliases(aliases ...string) *CommandBuilder {
	b.cmd.aliases = append(b.cmd.aliases, aliases...)
	return b
}

// Build returns the finished command. Later builder calls do not affect it.
func (b *CommandBuilder) Build() *Command {
	cmd := b.cmd
	cmd.aliases = slices.Clone(b.cmd.aliases)
	return &cmd
}
