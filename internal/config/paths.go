package config

import (
	"os"
	"path/filepath"
)

// DefaultPath returns the default location of the chestman config file,
// honoring $XDG_CONFIG_HOME.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".config")
		} else {
			dir = "."
		}
	}
	return filepath.Join(dir, "chestman", "chestman.toml")
}
