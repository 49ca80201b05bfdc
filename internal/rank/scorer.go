package rank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/verte-zerg/wordle-helper/internal/stats"
)

// Scorer assigns a best-guess score to every word of a candidate set.
// The returned slice is parallel to words; higher is better.
type Scorer interface {
	Scores(words []string) []int
}

// LetterScorer scores a word by the sum, over its distinct letters, of the
// number of distinct candidate words containing that letter.
type LetterScorer struct{}

// Scores implements Scorer.
func (LetterScorer) Scores(words []string) []int {
	counts := stats.CountLetters(words)
	scores := make([]int, len(words))
	for i, word := range words {
		var seen [26]bool
		for j := 0; j < len(word); j++ {
			ch := word[j]
			if ch < 'A' || ch > 'Z' || seen[ch-'A'] {
				continue
			}
			seen[ch-'A'] = true
			scores[i] += counts[ch-'A']
		}
	}
	return scores
}

// PositionScorer scores a word by the sum, over its positions, of the number
// of distinct candidate words with the same letter at that position.
type PositionScorer struct{}

// Scores implements Scorer.
func (PositionScorer) Scores(words []string) []int {
	counts := stats.CountPositions(words)
	scores := make([]int, len(words))
	for i, word := range words {
		for j := 0; j < len(word); j++ {
			ch := word[j]
			if ch < 'A' || ch > 'Z' {
				continue
			}
			scores[i] += counts[j][ch-'A']
		}
	}
	return scores
}

var scorers = map[string]Scorer{
	"letters":   LetterScorer{},
	"positions": PositionScorer{},
}

// DefaultStrategy names the scorer used when none is configured.
const DefaultStrategy = "letters"

// ScorerFor returns the scorer registered under name. An empty name selects
// DefaultStrategy.
func ScorerFor(name string) (Scorer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultStrategy
	}
	scorer, ok := scorers[name]
	if !ok {
		return nil, fmt.Errorf("unknown ranking strategy %q (available: %s)", name, strings.Join(Strategies(), ", "))
	}
	return scorer, nil
}

// Strategies lists the registered scorer names.
func Strategies() []string {
	out := make([]string, 0, len(scorers))
	for name := range scorers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
