// Package config loads modesh settings from flags, environment, a YAML config file and .env files.
//
// Precedence, highest first: command-line flags, MODESH_* environment variables,
// the config file, a local .env file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "MODESH"

// Keys shared by viper, cobra flags and the config file.
const (
	KeyConfig       = "config"
	KeyEnvFile      = "env-file"
	KeyLogLevel     = "log-level"
	KeyLogFile      = "log-file"
	KeyHistoryFile  = "history-file"
	KeyHistoryLimit = "history-limit"
	KeyMode         = "mode"
	KeyNoColor      = "no-color"
	KeyFlags        = "flags"
)

// Config is the resolved configuration for one run.
type Config struct {
	LogLevel     string
	LogFile      string
	HistoryFile  string
	HistoryLimit int
	// Mode is the startup mode name; empty selects the first registered mode.
	Mode    string
	NoColor bool
	// Flags are preset into the shell flag store, typed with shell.ParseFlag.
	Flags map[string]string
	// ConfigFile is the config file actually read, if any.
	ConfigFile string
}

// SetDefaults registers built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyEnvFile, ".env")
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyHistoryLimit, 500)
	v.SetDefault(KeyNoColor, false)
}

// Load resolves configuration from v. Flags must already be bound to v.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := LoadDotEnv(v, v.GetString(KeyEnvFile)); err != nil {
		return nil, err
	}

	file, err := readConfigFile(v)
	if err != nil {
		return nil, err
	}

	return &Config{
		LogLevel:     v.GetString(KeyLogLevel),
		LogFile:      v.GetString(KeyLogFile),
		HistoryFile:  expandHome(v.GetString(KeyHistoryFile)),
		HistoryLimit: v.GetInt(KeyHistoryLimit),
		Mode:         v.GetString(KeyMode),
		NoColor:      v.GetBool(KeyNoColor),
		Flags:        v.GetStringMapString(KeyFlags),
		ConfigFile:   file,
	}, nil
}

// LoadDotEnv reads MODESH_* entries from a .env file into v as defaults.
// A missing file is not an error.
func LoadDotEnv(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read .env file %s: %w", path, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse .env file %s: %w", path, err)
	}

	prefix := EnvPrefix + "_"
	for key, value := range envMap {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(key, prefix), "_", "-"))
		v.SetDefault(name, value)
	}
	return nil
}

// readConfigFile reads an explicit --config file, or config.yaml from the
// user config directory when present. It returns the path that was read.
func readConfigFile(v *viper.Viper) (string, error) {
	if explicit := v.GetString(KeyConfig); explicit != "" {
		v.SetConfigFile(expandHome(explicit))
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("failed to read config file %s: %w", explicit, err)
		}
		return v.ConfigFileUsed(), nil
	}

	dir, err := DefaultDir()
	if err != nil {
		return "", nil
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// DefaultDir is the directory searched for config.yaml, e.g. ~/.config/modesh.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "modesh"), nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
