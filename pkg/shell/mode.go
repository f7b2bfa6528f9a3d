package shell

import "slices"

// Mode is a named bundle of commands layered on top of the builtins.
// Its commands are only resolvable while it is the active mode.
type Mode struct {
	name        string
	description string
	commands    []*Command
}

// NewMode returns a mode owning commands in the given order.
func NewMode(name, description string, commands ...*Command) *Mode {
	return &Mode{
		name:        name,
		description: description,
		commands:    slices.Clone(commands),
	}
}

// Name returns the mode name used by SelectMode.
func (m *Mode) Name() string {
	return m.name
}

// Description returns the mode description.
func (m *Mode) Description() string {
	return m.description
}

// Commands returns the mode's commands in registration order.
func (m *Mode) Commands() []*Command {
	return slices.Clone(m.commands)
}
