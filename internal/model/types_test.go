package model

import "testing"

func TestLettersMultiset(t *testing.T) {
	apple := LettersOf("APPLE")
	if apple.String() != "AELPP" {
		t.Fatalf("unexpected multiset %q", apple.String())
	}
	if !apple.Contains(LettersOf("PP")) {
		t.Fatalf("APPLE should contain two Ps")
	}
	if apple.Contains(LettersOf("PPP")) {
		t.Fatalf("APPLE should not contain three Ps")
	}
	if !apple.Contains(Letters{}) {
		t.Fatalf("every word contains the empty multiset")
	}
	if !apple.Disjoint(LettersOf("XZ")) || apple.Disjoint(LettersOf("XE")) {
		t.Fatalf("unexpected disjoint result")
	}
}

func TestLettersOfIgnoresNonUppercase(t *testing.T) {
	l := LettersOf("a_B-c")
	if l.String() != "B" {
		t.Fatalf("expected only B, got %q", l.String())
	}
	if !(Letters{}).Empty() || l.Empty() {
		t.Fatalf("unexpected Empty result")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.WordLength != DefaultWordLength || cfg.Sort != SortNone || cfg.HasPattern() {
		t.Fatalf("unexpected default config: %+v", cfg)
	}
	if SortBest.String() != "best" || SortAlpha.String() != "alpha" || SortNone.String() != "none" {
		t.Fatalf("unexpected sort mode names")
	}
}
