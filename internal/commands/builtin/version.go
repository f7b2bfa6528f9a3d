package builtin

import (
	"fmt"

	"modeshell/internal/version"
	"modeshell/pkg/shell"
)

// Version prints build information; "version full" adds toolchain and platform details.
func Version() *shell.Command {
	return shell.NewCommand("version", "print version information").
		ActionFunc(func(sh *shell.Shell, args []string) error {
			if len(args) == 0 {
				sh.Println(version.GetFormattedVersion())
				return nil
			}
			if args[0] != "full" {
				return fmt.Errorf("unknown version detail '%s'", args[0])
			}
			sh.Println(version.GetDetailedVersion())
			return nil
		}).
		Arg(shell.Optional("full")).
		Build()
}
