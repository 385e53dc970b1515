package window

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidWindow is returned for windows that violate Line >= 0, Start >= 0, End >= Start.
var ErrInvalidWindow = errors.New("invalid identifier window")

// lineSeparator is the only line boundary recognized by Extract.
// Carriage returns are kept so identifiers compare bit-for-bit.
const lineSeparator = "\n"

// Window selects the columns [Start, End) of line Line (zero-based).
// Columns count characters (runes), not bytes.
type Window struct {
	Line  int `yaml:"line"`
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// FromOneBased builds a Window from a line number starting at 1,
// the way users are asked to enter it.
func FromOneBased(line, start, end int) Window {
	return Window{Line: line - 1, Start: start, End: end}
}

// Validate checks the window invariants.
func (w Window) Validate() error {
	switch {
	case w.Line < 0:
		return fmt.Errorf("%w: line %d is negative", ErrInvalidWindow, w.Line)
	case w.Start < 0:
		return fmt.Errorf("%w: start %d is negative", ErrInvalidWindow, w.Start)
	case w.End < w.Start:
		return fmt.Errorf("%w: end %d is before start %d", ErrInvalidWindow, w.End, w.Start)
	}

	return nil
}

// String returns the window in the "line:start:end" form accepted by Parse.
func (w Window) String() string {
	return fmt.Sprintf("%d:%d:%d", w.Line+1, w.Start, w.End)
}

// Parse parses "line:start:end" where line starts at 1.
func Parse(s string) (Window, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return Window{}, fmt.Errorf("%w: %q is not line:start:end", ErrInvalidWindow, s)
	}

	var nums [3]int

	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Window{}, fmt.Errorf("%w: %q: %v", ErrInvalidWindow, s, err)
		}

		nums[i] = n
	}

	if nums[0] < 1 {
		return Window{}, fmt.Errorf("%w: line numbers start at 1, got %d", ErrInvalidWindow, nums[0])
	}

	w := FromOneBased(nums[0], nums[1], nums[2])
	if err := w.Validate(); err != nil {
		return Window{}, err
	}

	return w, nil
}

// Extract returns the identifier that w selects in content.
// The boolean is false when content has no line w.Line. Columns past the end
// of the line are clamped, so the result may be shorter than the window or empty.
func Extract(content string, w Window) (string, bool) {
	if w.Line < 0 {
		return "", false
	}

	lines := strings.SplitN(content, lineSeparator, w.Line+2)
	if w.Line >= len(lines) {
		return "", false
	}

	// With n = Line+2 the remainder lands past w.Line, so lines[w.Line] is a whole line.
	line := lines[w.Line]

	return substring(line, w.Start, w.End), true
}

// Usable reports whether an extracted identifier may serve as a match key.
// Missing lines and empty identifiers never match anything.
func Usable(id string, ok bool) bool {
	return ok && id != ""
}

// substring returns the runes [start, end) of s, clamped to its length.
// Offsets are found on the original bytes, so invalid UTF-8 is returned unchanged.
func substring(s string, start, end int) string {
	start = max(start, 0)
	if end <= start {
		return ""
	}

	from, to := len(s), len(s)
	n := 0

	for i := range s {
		if n == start {
			from = i
		}

		if n == end {
			to = i
			break
		}

		n++
	}

	if from > to {
		return ""
	}

	return s[from:to]
}
