// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Dictionary DictionaryConfig `toml:"dictionary"`
	Rank       RankConfig       `toml:"rank"`
	Log        LogConfig        `toml:"log"`
}

// DictionaryConfig maps dictionary settings.
type DictionaryConfig struct {
	Path *string `toml:"path"`
}

// RankConfig maps best-guess ranking settings.
type RankConfig struct {
	Strategy *string `toml:"strategy"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, &UnknownKeysError{Path: path, Keys: keyStrings(undecoded)}
	}
	return cfg, nil
}

// UnknownKeysError reports keys in the config file that are not recognized.
// The accompanying FileConfig is still usable.
type UnknownKeysError struct {
	Path string
	Keys []string
}

func (e *UnknownKeysError) Error() string {
	return fmt.Sprintf("unknown keys in %s: %v", e.Path, e.Keys)
}

func keyStrings(keys []toml.Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.String()
	}
	return out
}

// DictionaryPath returns the configured dictionary path or "".
func (c FileConfig) DictionaryPath() string {
	return deref(c.Dictionary.Path)
}

// RankStrategy returns the configured ranking strategy or "".
func (c FileConfig) RankStrategy() string {
	return deref(c.Rank.Strategy)
}

// LogLevel returns the configured log level or "".
func (c FileConfig) LogLevel() string {
	return deref(c.Log.Level)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DefaultTemplate returns the commented config file written by `wordle-dict config`.
func DefaultTemplate() string {
	return fmt.Sprintf(`# wordle-helper configuration
# Uncomment a value to enable it. WORDLE_DICTIONARY overrides the dictionary path.

[dictionary]
# path = %q

[rank]
# strategy = "letters"    # Best-guess scoring: letters | positions

[log]
# level = "warn"          # debug | info | warn | error
`, DefaultDictionaryPath())
}
