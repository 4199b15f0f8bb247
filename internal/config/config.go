// Package config loads rnamap settings from the environment and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables
const (
	EnvConfig  = "RNAMAP_CONFIG"
	EnvHistory = "RNAMAP_HISTORY"
)

// Config is the top-level rnamap configuration
type Config struct {
	Format    string        `yaml:"format"`     // text | json | yaml
	LogLevel  string        `yaml:"log_level"`  // debug | info | warn | error
	LogFormat string        `yaml:"log_format"` // text | json
	History   HistoryConfig `yaml:"history"`
}

// HistoryConfig controls the conversion history database
type HistoryConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"` // empty selects the XDG data directory
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Path returns the config file path from RNAMAP_CONFIG, falling back to
// $XDG_CONFIG_HOME/rnamap/config.yaml
func Path() string {
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "rnamap", "config.yaml")
}

// Load reads the configuration file at path. A missing file yields the
// defaults. RNAMAP_HISTORY overrides history.path.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if env := os.Getenv(EnvHistory); env != "" {
		cfg.History.Path = env
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = "text"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.History.Enabled == nil {
		enabled := true
		c.History.Enabled = &enabled
	}
}

func (c *Config) validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", c.LogFormat)
	}
	return nil
}

// HistoryEnabled reports whether conversions are recorded
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// ParseLevel maps a level name to a slog.Level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// NewLogger builds the logger described by the configuration. Logs go to
// w, normally os.Stderr, so they never mix with a mapping on stdout.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.ToLower(c.LogFormat) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
