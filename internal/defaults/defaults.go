// Package defaults populates a shell with the standard builtins, modes and configured flags.
package defaults

import (
	"github.com/charmbracelet/glamour"

	"modeshell/internal/commands/builtin"
	"modeshell/internal/logger"
	"modeshell/internal/modes"
	"modeshell/pkg/shell"
)

// Options carries the configuration the setup needs.
type Options struct {
	// Mode names the startup mode. Empty selects the first registered mode.
	Mode string
	// Flags are preset into the flag store, typed with shell.ParseFlag.
	Flags map[string]string
	// Markdown renders detailed help; nil keeps it plain.
	Markdown *glamour.TermRenderer
}

// Populate registers builtins and modes on sh, activates the startup mode and presets flags.
func Populate(sh *shell.Shell, opts Options) error {
	sh.AddBuiltin(builtin.All(builtin.Options{Markdown: opts.Markdown})...)
	sh.AddMode(modes.All()...)

	if opts.Mode == "" {
		sh.SetMode(0)
	} else if err := sh.SelectMode(opts.Mode); err != nil {
		return err
	}

	for name, raw := range opts.Flags {
		sh.SetFlag(name, shell.ParseFlag(raw))
	}

	logger.Debug("Shell populated", "builtin", len(sh.Builtin()), "modes", len(sh.Modes()), "flags", len(opts.Flags))
	return nil
}
