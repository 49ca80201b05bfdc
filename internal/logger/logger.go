// Package logger builds charmbracelet/log loggers for the command line tools.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// EnvLevel overrides the configured log level.
const EnvLevel = "WORDLE_HELPER_LOG_LEVEL"

// DefaultLevel keeps stderr quiet apart from error diagnostics.
const DefaultLevel = log.WarnLevel

// New creates a logger writing to w. Terminals get the styled text
// formatter, anything else gets logfmt.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	formatter := log.LogfmtFormatter
	if isTerminal(w) {
		formatter = log.TextFormatter
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    false,
		ReportTimestamp: level == log.DebugLevel,
		Formatter:       formatter,
	})
	logger.SetStyles(styles())
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ResolveLevel picks the level from the environment, then the configured
// value, then DefaultLevel. Unknown names fall back to DefaultLevel.
func ResolveLevel(configured string) log.Level {
	return ResolveLevelOr(configured, DefaultLevel)
}

// ResolveLevelOr is ResolveLevel with a caller-chosen fallback.
func ResolveLevelOr(configured string, fallback log.Level) log.Level {
	for _, candidate := range []string{os.Getenv(EnvLevel), configured} {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if level, err := log.ParseLevel(strings.ToLower(candidate)); err == nil {
			return level
		}
	}
	return fallback
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.DebugLevel] = s.Levels[log.DebugLevel].
		Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"})
	s.Levels[log.WarnLevel] = s.Levels[log.WarnLevel].
		Foreground(lipgloss.AdaptiveColor{Light: "#ea9d34", Dark: "#f6c177"})
	s.Levels[log.ErrorLevel] = s.Levels[log.ErrorLevel].
		Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"})
	s.Keys["path"] = lipgloss.NewStyle().Italic(true)
	s.Values["path"] = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	return s
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
