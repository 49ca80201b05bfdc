// Package model defines shared data structures.
package model

const (
	// MinWordLength is the shortest word length accepted by -len.
	MinWordLength = 4
	// MaxWordLength is the longest word length accepted by -len.
	MaxWordLength = 9
	// DefaultWordLength applies when -len is absent.
	DefaultWordLength = 5
)

// Wildcard marks a pattern position that matches any letter.
const Wildcard = '_'

// SortMode selects how matching words are ordered.
type SortMode int

const (
	// SortNone keeps dictionary scan order.
	SortNone SortMode = iota
	// SortAlpha orders words lexicographically.
	SortAlpha
	// SortBest orders words by best-guess score.
	SortBest
)

func (m SortMode) String() string {
	switch m {
	case SortAlpha:
		return "alpha"
	case SortBest:
		return "best"
	default:
		return "none"
	}
}

// Letters counts occurrences of each letter A-Z.
type Letters [26]int

// LettersOf counts the uppercase ASCII letters of s. Other bytes are ignored.
func LettersOf(s string) Letters {
	var l Letters
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'A' && ch <= 'Z' {
			l[ch-'A']++
		}
	}
	return l
}

// Empty reports whether no letter is counted.
func (l Letters) Empty() bool {
	for _, n := range l {
		if n != 0 {
			return false
		}
	}
	return true
}

// Contains reports whether every letter of other appears in l at least as
// many times as in other.
func (l Letters) Contains(other Letters) bool {
	for i, n := range other {
		if l[i] < n {
			return false
		}
	}
	return true
}

// Disjoint reports whether l and other share no letter.
func (l Letters) Disjoint(other Letters) bool {
	for i, n := range other {
		if n > 0 && l[i] > 0 {
			return false
		}
	}
	return true
}

// String renders the multiset in alphabetical order, e.g. "LLP".
func (l Letters) String() string {
	out := make([]byte, 0, len(l))
	for i, n := range l {
		for j := 0; j < n; j++ {
			out = append(out, byte('A'+i))
		}
	}
	return string(out)
}

// Config is the validated result of parsing the command line.
type Config struct {
	WordLength int
	With       Letters
	Without    Letters
	Pattern    string
	Sort       SortMode
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{WordLength: DefaultWordLength}
}

// HasPattern reports whether a positional pattern was supplied.
func (c Config) HasPattern() bool {
	return c.Pattern != ""
}
