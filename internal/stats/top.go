package stats

import "sort"

// LetterStat pairs a letter with the number of words containing it.
type LetterStat struct {
	Letter byte
	Words  int
}

// TopLetters returns the top n letters by word count, most common first and
// alphabetical among ties. Letters found in no word are skipped; n <= 0
// returns all of them.
func TopLetters(counts LetterCounts, n int) []LetterStat {
	items := make([]LetterStat, 0, len(counts))
	for i, c := range counts {
		if c == 0 {
			continue
		}
		items = append(items, LetterStat{Letter: byte('A' + i), Words: c})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Words == items[j].Words {
			return items[i].Letter < items[j].Letter
		}
		return items[i].Words > items[j].Words
	})
	if n > 0 && n < len(items) {
		items = items[:n]
	}
	return items
}
