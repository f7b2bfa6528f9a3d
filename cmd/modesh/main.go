// Package main provides the modesh CLI entry point.
// modesh is an interactive, mode-aware command shell.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"modeshell/internal/commands/builtin"
	"modeshell/internal/config"
	"modeshell/internal/defaults"
	"modeshell/internal/lineinput"
	"modeshell/internal/logger"
	"modeshell/internal/prompt"
	"modeshell/internal/version"
	"modeshell/pkg/shell"
)

var cfg = &config.Config{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "modesh",
	Short: "modesh - interactive mode-aware command shell",
	Long: `modesh reads commands interactively and runs them against a shared shell state.
Builtin commands are always available; the active mode adds its own commands on top.`,
	Run: runShell,
}

// shellCmd is the explicit form of the default behavior
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell",
	Run:   runShell,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyConfig, "", "Config file (default is $XDG_CONFIG_HOME/modesh/config.yaml)")
	flags.String(config.KeyEnvFile, ".env", "Read MODESH_* settings from this .env file if it exists")
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: warn]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.String(config.KeyHistoryFile, "", "Persist line history to this file")
	flags.Int(config.KeyHistoryLimit, 500, "Maximum number of history entries")
	flags.String(config.KeyMode, "", "Mode to activate at startup (name or none) [default: first mode]")
	flags.Bool(config.KeyNoColor, false, "Disable colored prompt and help")

	for _, key := range []string{
		config.KeyConfig,
		config.KeyEnvFile,
		config.KeyLogLevel,
		config.KeyLogFile,
		config.KeyHistoryFile,
		config.KeyHistoryLimit,
		config.KeyMode,
		config.KeyNoColor,
	} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", key, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
	if cfg.ConfigFile != "" {
		logger.Info("Loaded config file", "path", cfg.ConfigFile)
	}
}

func runShell(_ *cobra.Command, _ []string) {
	logger.Debug("Starting modesh", "version", version.GetVersion())

	reader, err := lineinput.New(lineinput.Options{
		HistoryFile:  cfg.HistoryFile,
		HistoryLimit: cfg.HistoryLimit,
	})
	if err != nil {
		logger.Fatal("Failed to open line input", "error", err)
	}

	exit := func(code int) {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close line input", "error", err)
		}
		os.Exit(code)
	}

	sh, err := newShell(cfg, os.Stdout, exit)
	if err != nil {
		_ = reader.Close()
		logger.Fatal("Failed to set up shell", "error", err)
	}

	exit(sh.Run(reader))
}

// newShell builds a populated shell from configuration.
func newShell(cfg *config.Config, out io.Writer, exit func(int)) (*shell.Shell, error) {
	style := "auto"
	if cfg.NoColor {
		style = "notty"
	}

	sh := shell.New(
		shell.WithOutput(out),
		shell.WithPrompt(prompt.New(!cfg.NoColor).Render),
		shell.WithExit(exit),
	)
	if err := defaults.Populate(sh, defaults.Options{
		Mode:     cfg.Mode,
		Flags:    cfg.Flags,
		Markdown: helpRenderer(style),
	}); err != nil {
		return nil, err
	}
	return sh, nil
}

// helpRenderer returns a markdown renderer for detailed help, or nil to keep help plain.
func helpRenderer(style string) *glamour.TermRenderer {
	md, err := builtin.NewMarkdownRenderer(style, 80)
	if err != nil {
		logger.Warn("Falling back to plain help", "style", style, "error", err)
		return nil
	}
	return md
}
