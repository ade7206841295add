// Package config loads the socialpath CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level CLI configuration.
type Config struct {
	// Log controls the slog handler.
	Log LogConfig `yaml:"log"`

	// Search holds defaults for the search command.
	Search SearchConfig `yaml:"search"`

	// Output selects how command results are printed.
	Output OutputConfig `yaml:"output"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// SearchConfig contains traversal defaults.
type SearchConfig struct {
	// Limit bounds the number of vertices search emits; 0 means unbounded.
	Limit int `yaml:"limit"`
}

// OutputConfig contains result rendering settings.
type OutputConfig struct {
	Format string `yaml:"format"` // text or json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "warn", Format: "text"},
		Search: SearchConfig{Limit: 10},
		Output: OutputConfig{Format: "text"},
	}
}

// Load reads path over Default. An empty path returns Default unchanged.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects unknown levels and formats and negative limits.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if !validFormat(c.Log.Format) {
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if !validFormat(c.Output.Format) {
		return fmt.Errorf("%w: output.format %q", ErrInvalid, c.Output.Format)
	}
	if c.Search.Limit < 0 {
		return fmt.Errorf("%w: search.limit %d is negative", ErrInvalid, c.Search.Limit)
	}

	return nil
}

func validFormat(f string) bool { return f == "text" || f == "json" }
