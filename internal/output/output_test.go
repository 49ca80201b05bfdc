package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/verte-zerg/wordle-helper/internal/model"
)

func TestEmitEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Emit(&buf, nil, model.SortAlpha); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestEmitUnsortedKeepsDuplicates(t *testing.T) {
	var buf bytes.Buffer
	if err := Emit(&buf, []string{"APPLE", "APPLE", "MANGO"}, model.SortNone); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if got := buf.String(); got != "APPLE\nAPPLE\nMANGO\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestEmitSortedCollapsesAdjacent(t *testing.T) {
	var buf bytes.Buffer
	words := []string{"APPLE", "APPLE", "APPLY", "MANGO", "MANGO"}
	if err := Emit(&buf, words, model.SortAlpha); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if got := buf.String(); got != "APPLE\nAPPLY\nMANGO\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestEmitSortedOnlyAdjacent(t *testing.T) {
	var buf bytes.Buffer
	if err := Emit(&buf, []string{"CRANE", "SLATE", "CRANE"}, model.SortBest); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if got := buf.String(); got != "CRANE\nSLATE\nCRANE\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestEmitWriteFailure(t *testing.T) {
	err := Emit(failingWriter{}, []string{"APPLE"}, model.SortNone)
	if err == nil || errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected write failure, got %v", err)
	}
}
