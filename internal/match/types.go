package match

import (
	"errors"
	"fmt"

	"diffpair/internal/diagnostic"
	"diffpair/internal/source"
	"diffpair/internal/window"
)

var (
	// ErrInsufficientInputs is returned when a call gets fewer files than it can pair.
	ErrInsufficientInputs = errors.New("need at least two files")
	// ErrTooManyInputs is returned by Pair for more than two files.
	ErrTooManyInputs = errors.New("direct pairing takes exactly two files")
	// ErrWindowRequired is returned by Auto when identifier matching has no window.
	ErrWindowRequired = errors.New("identifier window required")
)

//go:generate go tool stringer -type=Policy -trimprefix=Policy -output=policy_string.go
//go:generate go tool stringer -type=Reason -trimprefix=Reason -output=reason_string.go

// Policy identifies the matching policy that produced a Result.
type Policy int

const (
	_ Policy = iota // zero value means no policy ran

	PolicyPair
	PolicyPool
	PolicySourceTarget
)

// Reason distinguishes "nothing submitted" from "nothing matched".
type Reason int

const (
	_ Reason = iota

	ReasonMatched
	ReasonNothingMatched
	ReasonNothingSubmitted
)

// Summary renders the one-line outcome shown to the user.
func (r Reason) Summary(sets int) string {
	switch r {
	case ReasonMatched:
		return fmt.Sprintf("%d set(s) found", sets)
	case ReasonNothingMatched:
		return "no matching identifier found"
	case ReasonNothingSubmitted:
		return ErrInsufficientInputs.Error()
	default:
		return r.String()
	}
}

// UnmatchedKind tells why a file ended up in no comparison set.
type UnmatchedKind string

const (
	UnmatchedEmptyIdentifier UnmatchedKind = diagnostic.CodeEmptyIdentifier
	UnmatchedNoPartner       UnmatchedKind = diagnostic.CodeNoPartnerFound
)

// ComparisonSet is an ordered pair of files to be diffed against each other.
type ComparisonSet struct {
	Left  source.File
	Right source.File

	// Positions of Left and Right in their input pools; -1 for merged sets.
	LeftIndex  int
	RightIndex int

	// Identifier is the key that paired the files; empty for direct and merged pairs.
	Identifier string
}

// Unmatched describes an input file left out of every comparison set.
type Unmatched struct {
	File  source.File
	Index int
	Kind  UnmatchedKind

	// Identifier extracted from File; empty for UnmatchedEmptyIdentifier.
	Identifier string

	// Suggestions lists similar identifiers found on the other side (source-vs-target only).
	Suggestions []string
}

// Result is the outcome of one matching call.
type Result struct {
	Policy Policy
	Window window.Window

	Sets      []ComparisonSet
	Unmatched []Unmatched

	Reason      Reason
	Diagnostics diagnostic.Diagnostics
}

// Summary returns the user-facing outcome line.
func (r *Result) Summary() string {
	return r.Reason.Summary(len(r.Sets))
}

func (r *Result) addSet(set ComparisonSet) {
	r.Sets = append(r.Sets, set)
}

func (r *Result) addUnmatched(u Unmatched) {
	r.Unmatched = append(r.Unmatched, u)

	switch u.Kind {
	case UnmatchedEmptyIdentifier:
		r.Diagnostics.AddWarning(diagnostic.CodeEmptyIdentifier,
			fmt.Sprintf("identifier window %s selects nothing", r.Window), u.File.Name, "")
	case UnmatchedNoPartner:
		r.Diagnostics.AddWarning(diagnostic.CodeNoPartnerFound,
			"no partner contains this identifier", u.File.Name, u.Identifier, u.Suggestions...)
	}
}

// finish sets Reason once all sets are known.
func (r *Result) finish() {
	if len(r.Sets) > 0 {
		r.Reason = ReasonMatched
	} else {
		r.Reason = ReasonNothingMatched
	}
}

func insufficient(policy Policy, w window.Window, got int) (Result, error) {
	res := Result{Policy: policy, Window: w, Reason: ReasonNothingSubmitted}
	res.Diagnostics.AddError(diagnostic.CodeInsufficientInputs,
		fmt.Sprintf("%s (got %d)", ErrInsufficientInputs, got), "", "")

	return res, fmt.Errorf("%s: %w", policy, ErrInsufficientInputs)
}
