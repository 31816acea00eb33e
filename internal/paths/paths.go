package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDataDir returns the default tick data directory.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "tick"), nil
}

// DefaultConfigPath returns the path of the global tick config file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "tick", "config.toml"), nil
}
