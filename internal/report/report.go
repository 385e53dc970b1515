package report

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"diffpair/internal/match"
)

// Config holds configuration for report generation.
type Config struct {
	// Context is the number of unchanged lines shown around each change.
	Context int
	// OutputDir is where WriteFiles puts the report; empty means stdout.
	OutputDir string
}

// DefaultConfig returns the default report configuration.
func DefaultConfig() Config {
	return Config{Context: 3}
}

// File is one rendered report file.
type File struct {
	// Filename is relative to the output directory (e.g., "001-a.txt__b.txt.diff").
	Filename string
	Content  []byte
}

// Reporter renders a match.Result.
type Reporter struct {
	config Config
}

// NewReporter creates a Reporter with the given configuration.
func NewReporter(config Config) *Reporter {
	if config.Context < 0 {
		config.Context = 0
	}

	return &Reporter{config: config}
}

// Unified returns the unified diff of a set, or "" when both sides are identical.
func (r *Reporter) Unified(set match.ComparisonSet) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        splitLines(set.Left.Content),
		B:        splitLines(set.Right.Content),
		FromFile: set.Left.Name,
		ToFile:   set.Right.Name,
		Context:  r.config.Context,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diffing %s and %s: %w", set.Left.Name, set.Right.Name, err)
	}

	return text, nil
}

// Print writes the summary line, every set in verdict order, and the files
// that were left unmatched.
func (r *Reporter) Print(w io.Writer, res match.Result) error {
	var b strings.Builder

	b.WriteString(res.Summary())
	b.WriteByte('\n')

	for _, set := range match.SortByVerdict(res.Sets) {
		b.WriteByte('\n')
		b.WriteString(header(set))
		b.WriteByte('\n')

		if set.Verdict() == match.VerdictExact {
			continue
		}

		text, err := r.Unified(set)
		if err != nil {
			return err
		}

		b.WriteString(text)
	}

	if len(res.Unmatched) > 0 {
		b.WriteString("\nunmatched:\n")

		for _, u := range res.Unmatched {
			b.WriteString("  ")
			b.WriteString(describeUnmatched(u))
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// Generate renders one .diff file per set, in verdict order, plus summary.yaml.
func (r *Reporter) Generate(res match.Result) ([]File, error) {
	sets := match.SortByVerdict(res.Sets)
	files := make([]File, 0, len(sets)+1)
	names := make([]string, len(sets))

	for i, set := range sets {
		text, err := r.Unified(set)
		if err != nil {
			return nil, err
		}

		names[i] = diffFilename(i+1, set)
		files = append(files, File{
			Filename: names[i],
			Content:  []byte(header(set) + "\n" + text),
		})
	}

	summary, err := marshalSummary(res, sets, names)
	if err != nil {
		return nil, err
	}

	files = append(files, File{Filename: SummaryFilename, Content: summary})

	return files, nil
}

// Emit prints the report to w, or writes it to OutputDir and prints only the
// summary line and where the files went.
func (r *Reporter) Emit(w io.Writer, res match.Result) error {
	if r.config.OutputDir == "" {
		return r.Print(w, res)
	}

	files, err := r.Generate(res)
	if err != nil {
		return err
	}

	if err := WriteFiles(files, r.config.OutputDir); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\nreport written to %s (%d file(s))\n", res.Summary(), r.config.OutputDir, len(files))

	return err
}

func header(set match.ComparisonSet) string {
	h := fmt.Sprintf("=== [%s] %s <> %s", set.Verdict(), set.Left.Name, set.Right.Name)
	if set.Identifier != "" {
		h += fmt.Sprintf(" (identifier %q)", set.Identifier)
	}

	return h
}

func describeUnmatched(u match.Unmatched) string {
	switch u.Kind {
	case match.UnmatchedEmptyIdentifier:
		return fmt.Sprintf("%s: identifier window selects nothing", u.File.Name)
	case match.UnmatchedNoPartner:
		s := fmt.Sprintf("%s: no partner for identifier %q", u.File.Name, u.Identifier)
		if len(u.Suggestions) > 0 {
			s += fmt.Sprintf(" (closest: %s)", strings.Join(u.Suggestions, ", "))
		}

		return s
	default:
		return u.File.Name
	}
}

// splitLines keeps line terminators. A final line without one gets a newline
// so it does not run into the next diff line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.SplitAfter(s, "\n")
	if last := lines[len(lines)-1]; last == "" {
		lines = lines[:len(lines)-1]
	} else {
		lines[len(lines)-1] = last + "\n"
	}

	return lines
}

// diffFilename builds "NNN-left__right.diff" from the base names of both sides.
func diffFilename(n int, set match.ComparisonSet) string {
	return fmt.Sprintf("%03d-%s__%s.diff", n, sanitize(set.Left.Name), sanitize(set.Right.Name))
}

func sanitize(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))

	return strings.Map(func(r rune) rune {
		switch {
		case r == '.' || r == '-' || r == '_':
			return r
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return r
		default:
			return '_'
		}
	}, base)
}
