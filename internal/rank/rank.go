// Package rank orders matching words.
package rank

import (
	"sort"

	"github.com/verte-zerg/wordle-helper/internal/model"
)

// Apply orders words in place according to mode. SortNone keeps scan order.
func Apply(words []string, mode model.SortMode, scorer Scorer) {
	switch mode {
	case model.SortAlpha:
		Alphabetical(words)
	case model.SortBest:
		BestGuess(words, scorer)
	}
}

// Alphabetical sorts words in byte-wise lexicographic order.
func Alphabetical(words []string) {
	sort.Strings(words)
}

// BestGuess sorts words by descending score, breaking ties alphabetically.
// A nil scorer falls back to LetterScorer.
func BestGuess(words []string, scorer Scorer) {
	if len(words) < 2 {
		return
	}
	if scorer == nil {
		scorer = LetterScorer{}
	}
	scores := scorer.Scores(words)
	type item struct {
		word  string
		score int
	}
	items := make([]item, len(words))
	for i, word := range words {
		items[i] = item{word: word, score: scores[i]}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].score == items[j].score {
			return items[i].word < items[j].word
		}
		return items[i].score > items[j].score
	})
	for i, it := range items {
		words[i] = it.word
	}
}
