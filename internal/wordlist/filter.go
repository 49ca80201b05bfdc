// Package wordlist reads dictionaries and filters their words.
package wordlist

import "github.com/verte-zerg/wordle-helper/internal/model"

// Matcher applies the word constraints of a configuration.
type Matcher struct {
	length  int
	pattern string
	with    model.Letters
	without model.Letters
	hasWith bool
	hasOut  bool
}

// NewMatcher builds a Matcher for cfg.
func NewMatcher(cfg model.Config) *Matcher {
	return &Matcher{
		length:  cfg.WordLength,
		pattern: cfg.Pattern,
		with:    cfg.With,
		without: cfg.Without,
		hasWith: !cfg.With.Empty(),
		hasOut:  !cfg.Without.Empty(),
	}
}

// Match returns the uppercased token and true when it satisfies every
// constraint. Checks run in a fixed order and stop at the first failure:
// length, letters only, pattern, required letters, excluded letters.
func (m *Matcher) Match(token string) (string, bool) {
	if len(token) != m.length {
		return "", false
	}
	word, ok := Normalize(token)
	if !ok {
		return "", false
	}
	if !m.matchPattern(word) {
		return "", false
	}
	if m.hasWith || m.hasOut {
		counts := model.LettersOf(word)
		if m.hasWith && !counts.Contains(m.with) {
			return "", false
		}
		if m.hasOut && !counts.Disjoint(m.without) {
			return "", false
		}
	}
	return word, true
}

func (m *Matcher) matchPattern(word string) bool {
	if len(m.pattern) > len(word) {
		return false
	}
	for i := 0; i < len(m.pattern); i++ {
		if m.pattern[i] == model.Wildcard {
			continue
		}
		if m.pattern[i] != word[i] {
			return false
		}
	}
	return true
}
