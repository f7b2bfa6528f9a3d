package builtin

import (
	"fmt"
	"strconv"

	"modeshell/pkg/shell"
)

// Exit terminates the session with code 0, or with the given code.
func Exit() *shell.Command {
	return shell.NewCommand("exit", "exit the shell").
		ActionFunc(func(sh *shell.Shell, args []string) error {
			code := 0
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid exit code '%s'", args[0])
				}
				code = n
			}
			sh.Println("Goodbye!")
			sh.Exit(code)
			return nil
		}).
		Arg(shell.Optional("code")).
		Aliases("quit", "q").
		Build()
}
