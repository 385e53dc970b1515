package match

import (
	"fmt"

	"diffpair/internal/source"
	"diffpair/internal/window"
)

// Pair pairs exactly two files as (files[0], files[1]) whatever their content.
// No identifier is extracted.
func Pair(files []source.File) (Result, error) {
	switch {
	case len(files) < 2:
		return insufficient(PolicyPair, window.Window{}, len(files))
	case len(files) > 2:
		return Result{Policy: PolicyPair}, fmt.Errorf("%w (got %d)", ErrTooManyInputs, len(files))
	}

	res := Result{Policy: PolicyPair}
	res.addSet(ComparisonSet{
		Left:       files[0],
		Right:      files[1],
		LeftIndex:  0,
		RightIndex: 1,
	})
	res.finish()

	return res, nil
}
