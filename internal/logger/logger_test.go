package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestResolveLevel(t *testing.T) {
	t.Setenv(EnvLevel, "")
	if got := ResolveLevel(""); got != DefaultLevel {
		t.Fatalf("expected default level, got %v", got)
	}
	if got := ResolveLevel("Debug"); got != log.DebugLevel {
		t.Fatalf("expected debug level, got %v", got)
	}
	if got := ResolveLevel("chatty"); got != DefaultLevel {
		t.Fatalf("expected default for unknown level, got %v", got)
	}
	t.Setenv(EnvLevel, "error")
	if got := ResolveLevel("debug"); got != log.ErrorLevel {
		t.Fatalf("expected env to win, got %v", got)
	}
}

func TestResolveLevelOr(t *testing.T) {
	t.Setenv(EnvLevel, "")
	if got := ResolveLevelOr("", log.InfoLevel); got != log.InfoLevel {
		t.Fatalf("expected fallback level, got %v", got)
	}
	if got := ResolveLevelOr("error", log.InfoLevel); got != log.ErrorLevel {
		t.Fatalf("expected configured level, got %v", got)
	}
}

func TestNewUsesLogfmtOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "wordle-helper", log.InfoLevel)
	logger.Info("dictionary resolved", "path", "/tmp/words")
	logger.Debug("hidden")
	out := buf.String()
	if !strings.Contains(out, "path=/tmp/words") {
		t.Fatalf("expected logfmt output, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered at info level: %q", out)
	}
}
