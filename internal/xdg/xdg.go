// Package xdg resolves XDG Base Directory paths for anki-llm. It falls back
// to the traditional ~/.config location when the XDG environment variables
// are unset and creates directories with private permissions.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for anki-llm.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/anki-llm when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "anki-llm")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
