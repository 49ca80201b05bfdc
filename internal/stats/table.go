package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// LetterTable renders letter stats as aligned rows; total is the number of
// distinct words the stats were computed over.
func LetterTable(items []LetterStat, total int) []string {
	headers := []string{"Letter", "Words", "Share"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		share := 0.0
		if total > 0 {
			share = 100 * float64(item.Words) / float64(total)
		}
		rows = append(rows, []string{
			string(item.Letter),
			humanize.Comma(int64(item.Words)),
			fmt.Sprintf("%.2f%%", share),
		})
	}
	return formatTable(headers, rows, map[int]bool{1: true, 2: true})
}

// WriteLetterTable writes LetterTable output, one row per line.
func WriteLetterTable(w io.Writer, items []LetterStat, total int) error {
	for _, line := range LetterTable(items, total) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func formatTable(headers []string, rows [][]string, rightAlign map[int]bool) []string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if len(row[i]) > widths[i] {
				widths[i] = len(row[i])
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(headers, widths, rightAlign))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlign))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlign map[int]bool) string {
	cells := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		pad := strings.Repeat(" ", width-len(cell))
		if rightAlign[i] {
			cells[i] = pad + cell
		} else {
			cells[i] = cell + pad
		}
	}
	return strings.TrimRight(strings.Join(cells, " "), " ")
}
