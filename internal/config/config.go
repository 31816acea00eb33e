// Package config handles loading the tick config.toml file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/aBirrueta/Tick/internal/paths"
)

// Config represents the tick configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	Engine  Engine  `toml:"engine"`
}

// Storage contains persistence-related configuration.
type Storage struct {
	// Dir overrides the directory countdown data is stored in.
	// Defaults to ~/.local/share/tick.
	Dir string `toml:"dir"`
}

// Engine contains engine-related configuration.
type Engine struct {
	// TickRate is the number of refresh notifications per second while
	// any countdown is active. Defaults to 60.
	TickRate int `toml:"tick-rate"`

	// Seed controls whether example countdowns are created on first
	// run. Defaults to true.
	Seed *bool `toml:"seed"`
}

// Load loads configuration from the global config file.
// Returns an empty config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile loads configuration from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// DataDir returns the configured storage directory, falling back to
// the default data directory.
func (c *Config) DataDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	return paths.DefaultDataDir()
}

// TickInterval returns the configured refresh interval.
func (c *Config) TickInterval() time.Duration {
	rate := c.Engine.TickRate
	if rate <= 0 {
		rate = 60
	}
	interval := time.Second / time.Duration(rate)
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return interval
}

// SeedEnabled reports whether example countdowns should be created on
// first run.
func (c *Config) SeedEnabled() bool {
	if c.Engine.Seed == nil {
		return true
	}
	return *c.Engine.Seed
}
