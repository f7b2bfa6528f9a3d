// Package modes provides the modes registered by default.
package modes

import "modeshell/pkg/shell"

// All returns the default modes. The first one is active at startup unless configured otherwise.
func All() []*shell.Mode {
	return []*shell.Mode{Bookmark()}
}

// Bookmark groups bookmark management commands. They are placeholders for now.
func Bookmark() *shell.Mode {
	return shell.NewMode("bookmark", "Bookmark mode",
		shell.TodoCommand("add").Arg(shell.Required("url")).Arg(shell.Optional("title")).Build(),
		shell.TodoCommand("list").Alias("ls").Build(),
	)
}
