package builtin

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"modeshell/pkg/shell"
)

// Help lists commands, or describes one command with "help <command>".
// Detailed help is rendered as markdown when md is non-nil.
func Help(md *glamour.TermRenderer) *shell.Command {
	return shell.NewCommand("help", "print help information").
		ActionFunc(func(sh *shell.Shell, args []string) error {
			if len(args) == 0 {
				listCommands(sh)
				return nil
			}
			cmd, err := sh.FindCommand(args[0])
			if err != nil {
				return err
			}
			if md != nil {
				return describeMarkdown(sh, md, cmd)
			}
			describe(sh, cmd)
			return nil
		}).
		Arg(shell.Optional("command")).
		Alias("?").
		Build()
}

func listCommands(sh *shell.Shell) {
	for _, cmd := range sh.Builtin() {
		sh.Printf("%s - %s\n", cmd.Name(), cmd.Description())
	}
	if m, ok := sh.CurrentMode(); ok {
		for _, cmd := range m.Commands() {
			sh.Printf("%s - %s (%s)\n", cmd.Name(), cmd.Description(), m.Name())
		}
	}
}

func describe(sh *shell.Shell, cmd *shell.Command) {
	sh.Printf("%s - %s\n", cmd.Name(), cmd.Description())
	if aliases := cmd.Aliases(); len(aliases) > 1 {
		sh.Printf("aliases: %s\n", strings.Join(aliases[1:], ", "))
	}
	sh.Printf("Usage: %s\n", cmd.Usage())
}

func describeMarkdown(sh *shell.Shell, md *glamour.TermRenderer, cmd *shell.Command) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", cmd.Name(), cmd.Description())
	if aliases := cmd.Aliases(); len(aliases) > 1 {
		fmt.Fprintf(&b, "**aliases:** `%s`\n\n", strings.Join(aliases[1:], "`, `"))
	}
	fmt.Fprintf(&b, "**usage:** `%s`\n", cmd.Usage())

	out, err := md.Render(b.String())
	if err != nil {
		return fmt.Errorf("failed to render help: %w", err)
	}
	sh.Printf("%s", out)
	return nil
}
