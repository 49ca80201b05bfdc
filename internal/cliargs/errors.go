package cliargs

import "fmt"

// UsageError reports a malformed, duplicate, conflicting or unknown flag.
type UsageError struct {
	Arg    string
	Reason string
	// Suggestions lists known flags resembling an unknown Arg.
	Suggestions []string
}

func (e *UsageError) Error() string {
	if e == nil {
		return "usage error"
	}
	if e.Arg == "" {
		return "usage error: " + e.Reason
	}
	return fmt.Sprintf("usage error: %s: %q", e.Reason, e.Arg)
}

// PatternError reports a pattern with a bad alphabet or length.
type PatternError struct {
	Pattern string
	// Length is the resolved word length the pattern was checked against.
	Length int
}

func (e *PatternError) Error() string {
	if e == nil {
		return "pattern error"
	}
	return fmt.Sprintf("pattern must be of length %d and only contain underscores and/or letters", e.Length)
}

func usageErr(arg, reason string) *UsageError {
	return &UsageError{Arg: arg, Reason: reason}
}
