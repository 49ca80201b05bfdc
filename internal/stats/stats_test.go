package stats

import "testing"

func TestCountLettersCountsWordsNotOccurrences(t *testing.T) {
	counts := CountLetters([]string{"APPLE", "APPLY", "APPLE", "MANGO"})
	if counts['P'-'A'] != 2 {
		t.Fatalf("expected P in 2 distinct words, got %d", counts['P'-'A'])
	}
	if counts['A'-'A'] != 3 {
		t.Fatalf("expected A in 3 distinct words, got %d", counts['A'-'A'])
	}
	if counts['Z'-'A'] != 0 {
		t.Fatalf("expected no Z, got %d", counts['Z'-'A'])
	}
}

func TestCountPositions(t *testing.T) {
	counts := CountPositions([]string{"APPLE", "APPLY", "MANGO", "MANGO"})
	if len(counts) != 5 {
		t.Fatalf("expected 5 positions, got %d", len(counts))
	}
	if counts[0]['A'-'A'] != 2 || counts[0]['M'-'A'] != 1 {
		t.Fatalf("unexpected first position counts: %v", counts[0])
	}
	if counts[4]['E'-'A'] != 1 || counts[4]['Y'-'A'] != 1 || counts[4]['O'-'A'] != 1 {
		t.Fatalf("unexpected last position counts: %v", counts[4])
	}
}

func TestTopLetters(t *testing.T) {
	var counts LetterCounts
	counts['B'-'A'] = 4
	counts['A'-'A'] = 4
	counts['C'-'A'] = 1
	top := TopLetters(counts, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 letters, got %d", len(top))
	}
	if top[0].Letter != 'A' || top[1].Letter != 'B' {
		t.Fatalf("unexpected order: %+v", top)
	}
	if all := TopLetters(counts, 0); len(all) != 3 {
		t.Fatalf("expected 3 non-zero letters, got %d", len(all))
	}
}

func TestLetterTableAlignsColumns(t *testing.T) {
	lines := LetterTable([]LetterStat{
		{Letter: 'E', Words: 1234},
		{Letter: 'Z', Words: 5},
	}, 2000)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Letter Words  Share" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "E      1,234 61.70%" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Z          5  0.25%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}
