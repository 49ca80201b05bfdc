// Package output writes the final word list.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/verte-zerg/wordle-helper/internal/model"
)

// ErrNoMatch reports that no dictionary word satisfied the constraints.
var ErrNoMatch = errors.New("no matching words")

// Emit writes words one per line. In the sorted modes a word equal to its
// immediate predecessor is skipped; SortNone writes every word. An empty
// list yields ErrNoMatch and writes nothing.
func Emit(w io.Writer, words []string, mode model.SortMode) error {
	if len(words) == 0 {
		return ErrNoMatch
	}
	collapse := mode != model.SortNone
	bw := bufio.NewWriter(w)
	for i, word := range words {
		if collapse && i > 0 && words[i-1] == word {
			continue
		}
		if _, err := bw.WriteString(word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
