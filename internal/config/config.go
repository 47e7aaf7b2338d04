// Package config resolves arranger settings from the config directory,
// environment variables, and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Resolve.
const (
	EnvConfigHome    = "ARRANGER_CONFIG_HOME"
	EnvShowSolutions = "ARRANGER_SHOW_SOLUTIONS"
	EnvColor         = "ARRANGER_COLOR"
)

// FileName is the name of the config file inside Dir.
const FileName = "config.yaml"

// Config holds user settings. Zero values mean "not set".
type Config struct {
	ShowSolutions bool   `yaml:"show_solutions"`
	Color         string `yaml:"color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Color: "auto"}
}

// Dir returns the arranger configuration directory.
//
// Resolution:
//   - $ARRANGER_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/arranger if set
//   - %AppData%/arranger on Windows
//   - ~/.config/arranger on macOS and Linux
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "arranger")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "arranger")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "arranger")
}

// Path returns the config file path, or "" when Dir cannot be resolved.
func Path() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, FileName)
}

// Load reads a config file on top of the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads the config file from Path and applies environment overrides.
func Resolve() (Config, error) {
	cfg, err := Load(Path())
	if err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("color must be auto, always, or never (got %q)", c.Color)
	}
}

func (c *Config) applyEnv() error {
	if value := os.Getenv(EnvShowSolutions); value != "" {
		show, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvShowSolutions, err)
		}
		c.ShowSolutions = show
	}
	if value := os.Getenv(EnvColor); value != "" {
		c.Color = strings.ToLower(value)
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%s: %w", EnvColor, err)
		}
	}
	return nil
}
