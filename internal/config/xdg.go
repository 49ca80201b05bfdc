// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appDir = "wordle-helper"

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "WORDLE_HELPER_CONFIG"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultConfigPath returns the TOML config path, honoring EnvConfigPath.
func DefaultConfigPath() string {
	if v := os.Getenv(EnvConfigPath); v != "" {
		return v
	}
	return filepath.Join(XDGConfigHome(), appDir, "config.toml")
}

// DefaultDictionaryPath returns where `wordle-dict fetch` writes its word list.
func DefaultDictionaryPath() string {
	return filepath.Join(XDGDataHome(), appDir, "words.txt")
}

// DefaultWordfreqCacheDir returns the cache directory for wordfreq wheels.
func DefaultWordfreqCacheDir() string {
	return filepath.Join(XDGDataHome(), appDir, "wordfreq")
}
