package app

import (
	"errors"

	"github.com/verte-zerg/wordle-helper/internal/cliargs"
	"github.com/verte-zerg/wordle-helper/internal/output"
	"github.com/verte-zerg/wordle-helper/internal/wordlist"
)

// Name is the program name used in diagnostics.
const Name = "wordle-helper"

// UsageLine is printed on usage errors.
const UsageLine = "Usage: wordle-helper [-alpha|-best] [-len len] [-with letters] [-without letters] [pattern]"

// Process exit codes.
const (
	ExitOK         = 0
	ExitUsage      = 1
	ExitPattern    = 2
	ExitDictionary = 3
	ExitNoMatch    = 4
	ExitFailure    = 1
)

// ExitCode maps an error returned by Run to the process exit code.
func ExitCode(err error) int {
	var (
		usageErr   *cliargs.UsageError
		patternErr *cliargs.PatternError
		dictErr    *wordlist.DictionaryError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usageErr):
		return ExitUsage
	case errors.As(err, &patternErr):
		return ExitPattern
	case errors.As(err, &dictErr):
		return ExitDictionary
	case errors.Is(err, output.ErrNoMatch):
		return ExitNoMatch
	default:
		return ExitFailure
	}
}

// Diagnostic returns the single stderr line for err, or "" when nothing
// should be printed.
func Diagnostic(err error) string {
	var usageErr *cliargs.UsageError
	switch {
	case err == nil, errors.Is(err, output.ErrNoMatch):
		return ""
	case errors.As(err, &usageErr):
		return UsageLine
	default:
		return Name + ": " + err.Error()
	}
}
