// Package stats tallies letter usage across word sets.
package stats

// LetterCounts holds, per letter A-Z, the number of distinct words that
// contain the letter at least once.
type LetterCounts [26]int

// PositionCounts holds, per position and letter, the number of distinct
// words with that letter at that position.
type PositionCounts [][26]int

// Distinct returns words without duplicates, keeping first occurrences.
func Distinct(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, word := range words {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}

// CountLetters tallies distinct uppercase words by the letters they contain.
// A letter repeated inside one word counts once for that word.
func CountLetters(words []string) LetterCounts {
	var counts LetterCounts
	for _, word := range Distinct(words) {
		var present [26]bool
		for i := 0; i < len(word); i++ {
			if idx, ok := letterIndex(word[i]); ok {
				present[idx] = true
			}
		}
		for idx, ok := range present {
			if ok {
				counts[idx]++
			}
		}
	}
	return counts
}

// CountPositions tallies distinct uppercase words by letter and position.
func CountPositions(words []string) PositionCounts {
	distinct := Distinct(words)
	width := 0
	for _, word := range distinct {
		if len(word) > width {
			width = len(word)
		}
	}
	counts := make(PositionCounts, width)
	for _, word := range distinct {
		for i := 0; i < len(word); i++ {
			if idx, ok := letterIndex(word[i]); ok {
				counts[i][idx]++
			}
		}
	}
	return counts
}

func letterIndex(ch byte) (int, bool) {
	if ch < 'A' || ch > 'Z' {
		return 0, false
	}
	return int(ch - 'A'), true
}
