package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const (
	// EnvDictionary names the environment variable overriding the dictionary path.
	EnvDictionary = "WORDLE_DICTIONARY"
	// DefaultPath is the platform word list used when nothing else is configured.
	DefaultPath = "/usr/share/dict/words"
)

const maxTokenSize = 1 << 20

// DictionaryError reports a dictionary that cannot be opened or read.
type DictionaryError struct {
	Path string
	Op   string
	Err  error
}

func (e *DictionaryError) Error() string {
	if e.Op == "read" {
		return fmt.Sprintf("dictionary file \"%s\" cannot be read", e.Path)
	}
	return fmt.Sprintf("dictionary file \"%s\" cannot be opened", e.Path)
}

func (e *DictionaryError) Unwrap() error {
	return e.Err
}

// ResolvePath picks the dictionary path: the environment variable when set
// (even to an empty value), then the configured path, then DefaultPath.
func ResolvePath(lookupEnv func(string) (string, bool), configured string) string {
	if lookupEnv != nil {
		if v, ok := lookupEnv(EnvDictionary); ok {
			return v
		}
	}
	if configured != "" {
		return configured
	}
	return DefaultPath
}

// Result holds the words kept by a scan.
type Result struct {
	Words  []string
	Tokens int
}

// Load opens the dictionary at path and collects the words accepted by m.
func Load(path string, m *Matcher) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, &DictionaryError{Path: path, Op: "open", Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only dictionary.
			_ = cerr
		}
	}()

	res, err := Collect(file, m)
	if err != nil {
		return Result{}, &DictionaryError{Path: path, Op: "read", Err: err}
	}
	return res, nil
}

// Collect reads whitespace-delimited tokens from r and keeps, in scan order,
// the uppercased words accepted by m.
func Collect(r io.Reader, m *Matcher) (Result, error) {
	var res Result
	err := Scan(r, func(token string) {
		res.Tokens++
		if word, ok := m.Match(token); ok {
			res.Words = append(res.Words, word)
		}
	})
	return res, err
}

// Scan calls fn for every token of r separated by ASCII whitespace.
func Scan(r io.Reader, fn func(token string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(scanTokens)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	return scanner.Err()
}

// scanTokens is a bufio.SplitFunc like bufio.ScanWords, but only ASCII
// whitespace separates tokens. Other bytes, including UTF-8 encoded
// Unicode spaces, stay inside the token.
func scanTokens(data []byte, atEOF bool) (int, []byte, error) {
	start := 0
	for start < len(data) && isSpace(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSpace(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
