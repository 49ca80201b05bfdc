// Package cliargs parses the wordle-helper command line.
//
// The grammar is
//
//	[-alpha|-best] [-len N] [-with LETTERS] [-without LETTERS] [pattern]
//
// with flags in any order. Parsing runs in two phases: every flag is
// resolved first, then the positional pattern is validated against the
// resolved word length. Usage errors therefore always win over pattern
// errors.
package cliargs

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/verte-zerg/wordle-helper/internal/model"
)

const (
	flagLen     = "-len"
	flagWith    = "-with"
	flagWithout = "-without"
	flagAlpha   = "-alpha"
	flagBest    = "-best"
)

// KnownFlags lists every flag accepted by Parse.
var KnownFlags = []string{flagAlpha, flagBest, flagLen, flagWith, flagWithout}

type parser struct {
	cfg         model.Config
	seen        map[string]bool
	positionals []string
}

// Parse validates args (without the program name) and returns the resulting
// configuration. Errors are *UsageError or *PatternError.
func Parse(args []string) (model.Config, error) {
	p := &parser{
		cfg:  model.DefaultConfig(),
		seen: make(map[string]bool, len(KnownFlags)),
	}
	if err := p.parseFlags(args); err != nil {
		return model.Config{}, err
	}
	if err := p.parsePattern(); err != nil {
		return model.Config{}, err
	}
	return p.cfg, nil
}

func (p *parser) parseFlags(args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			p.positionals = append(p.positionals, arg)
			continue
		}
		if p.seen[arg] {
			return usageErr(arg, "flag given more than once")
		}
		switch arg {
		case flagAlpha, flagBest:
			if err := p.setSort(arg); err != nil {
				return err
			}
		case flagLen, flagWith, flagWithout:
			if i+1 >= len(args) {
				return usageErr(arg, "flag needs a value")
			}
			i++
			if err := p.setValue(arg, args[i]); err != nil {
				return err
			}
		default:
			return unknownFlag(arg)
		}
		p.seen[arg] = true
	}
	return nil
}

func (p *parser) setSort(arg string) error {
	if p.cfg.Sort != model.SortNone {
		return usageErr(arg, "-alpha and -best are mutually exclusive")
	}
	if arg == flagAlpha {
		p.cfg.Sort = model.SortAlpha
	} else {
		p.cfg.Sort = model.SortBest
	}
	return nil
}

func (p *parser) setValue(flag, value string) error {
	switch flag {
	case flagLen:
		n, ok := parseLength(value)
		if !ok {
			return usageErr(value, "-len needs a single digit between 4 and 9")
		}
		p.cfg.WordLength = n
	case flagWith:
		letters, ok := parseLetters(value)
		if !ok {
			return usageErr(value, "-with needs letters")
		}
		p.cfg.With = letters
	case flagWithout:
		letters, ok := parseLetters(value)
		if !ok {
			return usageErr(value, "-without needs letters")
		}
		p.cfg.Without = letters
	}
	return nil
}

func (p *parser) parsePattern() error {
	for i, arg := range p.positionals {
		if i > 0 {
			return usageErr(arg, "more than one pattern")
		}
		pattern, ok := normalizePattern(arg)
		if !ok || len(pattern) != p.cfg.WordLength {
			return &PatternError{Pattern: arg, Length: p.cfg.WordLength}
		}
		p.cfg.Pattern = pattern
	}
	return nil
}

func parseLength(value string) (int, bool) {
	if len(value) != 1 || value[0] < '0' || value[0] > '9' {
		return 0, false
	}
	n := int(value[0] - '0')
	if n < model.MinWordLength || n > model.MaxWordLength {
		return 0, false
	}
	return n, true
}

func parseLetters(value string) (model.Letters, bool) {
	if value == "" {
		return model.Letters{}, false
	}
	upper, ok := upperLetters(value, false)
	if !ok {
		return model.Letters{}, false
	}
	return model.LettersOf(upper), true
}

func normalizePattern(value string) (string, bool) {
	return upperLetters(value, true)
}

// upperLetters uppercases value, rejecting anything but ASCII letters and,
// when allowWildcard is set, underscores.
func upperLetters(value string, allowWildcard bool) (string, bool) {
	out := make([]byte, len(value))
	for i := 0; i < len(value); i++ {
		ch := value[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			out[i] = ch
		case ch >= 'a' && ch <= 'z':
			out[i] = ch - 'a' + 'A'
		case allowWildcard && ch == model.Wildcard:
			out[i] = ch
		default:
			return "", false
		}
	}
	return string(out), true
}

func unknownFlag(arg string) *UsageError {
	err := usageErr(arg, "unknown flag")
	for _, match := range fuzzy.Find(arg, KnownFlags) {
		err.Suggestions = append(err.Suggestions, match.Str)
	}
	return err
}
