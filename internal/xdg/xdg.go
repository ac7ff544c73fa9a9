// Package xdg provides helpers to resolve XDG Base Directory paths for spade.
// It implements the XDG Base Directory specification for determining appropriate
// locations for the configuration file, the persistent build cache and the
// materialized documentation.
//
// The package handles fallback to traditional locations when XDG environment
// variables are not set.
package xdg

import (
	"os"
	"path/filepath"
)

const appName = "spade"

// ConfigDir returns the XDG config directory for spade.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/spade when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return resolve("XDG_CONFIG_HOME", ".config")
}

// CacheDir returns the XDG cache directory for spade.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.cache/spade when XDG_CACHE_HOME is unset.
func CacheDir() (string, error) {
	return resolve("XDG_CACHE_HOME", ".cache")
}

func resolve(envKey string, homeFallback ...string) (string, error) {
	base := os.Getenv(envKey)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(append([]string{home}, homeFallback...)...)
	}
	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
