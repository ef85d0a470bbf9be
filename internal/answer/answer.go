// Package answer grades learner-typed Python lines against expected
// answers using whitespace- and quote-insensitive comparison.
package answer

import "strings"

// Verdict is the outcome of grading one submission.
type Verdict int

const (
	// Incorrect means the submission does not match the expected answer.
	Incorrect Verdict = iota
	// Correct means the submission matches after normalization.
	Correct
	// Empty means the submission contained nothing but whitespace.
	Empty
)

// Normalize strips all whitespace (spaces, tabs, full-width spaces) and
// converts single quotes to double quotes so that cosmetic variations
// of the same line compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '　':
			continue
		case '\'':
			b.WriteRune('"')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Match grades a submission against the expected answer. A submission
// that normalizes to the empty string is reported as Empty, never as
// Incorrect, so callers can prompt again instead of penalizing.
func Match(submitted, expected string) Verdict {
	got := Normalize(submitted)
	if got == "" {
		return Empty
	}
	if got == Normalize(expected) {
		return Correct
	}
	return Incorrect
}

// IsNameAssignment reports whether the normalized submission is a
// well-formed assignment of a non-empty string literal to the variable
// name, like `name = "Luna"`.
func IsNameAssignment(s string) bool {
	n := Normalize(s)
	const prefix = `name="`
	if !strings.HasPrefix(n, prefix) || !strings.HasSuffix(n, `"`) {
		return false
	}
	inner := n[len(prefix) : len(n)-1]
	return inner != "" && !strings.Contains(inner, `"`)
}
