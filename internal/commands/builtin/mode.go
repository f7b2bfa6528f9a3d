package builtin

import "modeshell/pkg/shell"

// Mode prints the current mode, or switches with "mode <name>" / "mode none".
func Mode() *shell.Command {
	return shell.NewCommand("mode", "change or print the current mode").
		ActionFunc(func(sh *shell.Shell, args []string) error {
			if len(args) > 0 {
				return sh.SelectMode(args[0])
			}
			printModes(sh)
			return nil
		}).
		Arg(shell.Optional("name | none")).
		Build()
}

func printModes(sh *shell.Shell) {
	current := "none"
	m, active := sh.CurrentMode()
	if active {
		current = m.Name()
	}
	sh.Printf("mode: %s\n", current)

	modes := sh.Modes()
	if len(modes) > 1 || (!active && len(modes) > 0) {
		sh.Println("available:")
		for _, other := range modes {
			if other.Name() != current {
				sh.Printf("  - %s\n", other.Name())
			}
		}
		return
	}
	sh.Println("no other modes")
}
