package match

import (
	"strings"
	"unicode"
)

// Verdict classifies a comparison set for display.
type Verdict string

const (
	VerdictExact     Verdict = "exact"
	VerdictDifferent Verdict = "different"
)

// Verdict reports whether both sides are equal once trailing whitespace is trimmed.
func (s ComparisonSet) Verdict() Verdict {
	if trimTrailing(s.Left.Content) == trimTrailing(s.Right.Content) {
		return VerdictExact
	}

	return VerdictDifferent
}

// SortByVerdict returns a copy of sets with exact matches first. Order within
// each group is kept, and the pairs themselves are not changed.
func SortByVerdict(sets []ComparisonSet) []ComparisonSet {
	if sets == nil {
		return nil
	}

	out := make([]ComparisonSet, 0, len(sets))

	var different []ComparisonSet

	for _, set := range sets {
		if set.Verdict() == VerdictExact {
			out = append(out, set)
		} else {
			different = append(different, set)
		}
	}

	return append(out, different...)
}

func trimTrailing(s string) string {
	return strings.TrimRightFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
