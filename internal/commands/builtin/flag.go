package builtin

import (
	"fmt"
	"strings"

	"modeshell/pkg/shell"
)

// Flag lists, reads or writes entries of the shell flag store.
// Values are typed with shell.ParseFlag; words after the name are joined with spaces.
func Flag() *shell.Command {
	return shell.NewCommand("flag", "list, get or set shell flags").
		ActionFunc(func(sh *shell.Shell, args []string) error {
			switch len(args) {
			case 0:
				names := sh.FlagNames()
				if len(names) == 0 {
					sh.Println("no flags")
				}
				for _, name := range names {
					f, _ := sh.GetFlag(name)
					printFlag(sh, name, f)
				}
				return nil
			case 1:
				f, ok := sh.GetFlag(args[0])
				if !ok {
					return fmt.Errorf("no flag '%s'", args[0])
				}
				printFlag(sh, args[0], f)
				return nil
			default:
				sh.SetFlag(args[0], shell.ParseFlag(strings.Join(args[1:], " ")))
				return nil
			}
		}).
		Arg(shell.Optional("name")).
		Arg(shell.Optional("value")).
		Build()
}

func printFlag(sh *shell.Shell, name string, f shell.Flag) {
	sh.Printf("%s = %s (%s)\n", name, f, f.Kind())
}
