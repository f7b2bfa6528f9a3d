package builtin

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"gopkg.in/yaml.v3"

	"modeshell/pkg/shell"
)

// snapshot is the YAML shape printed by "debug dump".
type snapshot struct {
	Session string                `yaml:"session"`
	State   string                `yaml:"state"`
	Prompt  string                `yaml:"prompt"`
	Mode    string                `yaml:"mode"`
	Builtin []string              `yaml:"builtin"`
	Modes   []modeSnapshot        `yaml:"modes,omitempty"`
	Flags   map[string]shell.Flag `yaml:"flags,omitempty"`
}

type modeSnapshot struct {
	Name     string   `yaml:"name"`
	Commands []string `yaml:"commands"`
}

// Debug prints a summary of the shell state, or a full YAML dump with "debug dump".
func Debug() *shell.Command {
	return shell.NewCommand("debug", "print debug information").
		ActionFunc(debug).
		Arg(shell.Optional("dump")).
		Aliases("dbg", "!").
		Build()
}

func debug(sh *shell.Shell, args []string) error {
	if len(args) == 0 {
		sh.Printf("state: %s\n", sh.State())
		sh.Printf("builtin: %d\n", len(sh.Builtin()))
		if m, ok := sh.CurrentMode(); ok {
			sh.Printf("mode: %s\n", m.Name())
			sh.Printf("  '%s'\n", m.Description())
			sh.Printf("  commands: %d\n", len(m.Commands()))
		} else {
			sh.Println("no mode")
		}
		return nil
	}

	if args[0] != "dump" {
		return fmt.Errorf("unknown debug target '%s'", args[0])
	}

	enc := yaml.NewEncoder(sh.Out())
	enc.SetIndent(2)
	if err := enc.Encode(takeSnapshot(sh)); err != nil {
		return fmt.Errorf("failed to encode shell state: %w", err)
	}
	return enc.Close()
}

func takeSnapshot(sh *shell.Shell) snapshot {
	snap := snapshot{
		Session: sh.SessionID(),
		State:   sh.State().String(),
		Prompt:  ansi.Strip(sh.Prompt()),
		Mode:    "none",
		Flags:   make(map[string]shell.Flag),
	}
	if m, ok := sh.CurrentMode(); ok {
		snap.Mode = m.Name()
	}
	for _, cmd := range sh.Builtin() {
		snap.Builtin = append(snap.Builtin, cmd.Name())
	}
	for _, m := range sh.Modes() {
		ms := modeSnapshot{Name: m.Name(), Commands: []string{}}
		for _, cmd := range m.Commands() {
			ms.Commands = append(ms.Commands, cmd.Name())
		}
		snap.Modes = append(snap.Modes, ms)
	}
	for _, name := range sh.FlagNames() {
		f, _ := sh.GetFlag(name)
		snap.Flags[name] = f
	}
	return snap
}
