package match

import (
	"fmt"
	"strings"

	"diffpair/internal/source"
	"diffpair/internal/window"
)

// Pool pairs files of a single pool. Files are taken as anchors in order; an
// anchor pairs with the first later, unused file whose full content contains
// the anchor's identifier. Each file is used at most once and sets come out in
// anchor order.
func Pool(files []source.File, w window.Window) (Result, error) {
	if err := w.Validate(); err != nil {
		return Result{Policy: PolicyPool, Window: w}, fmt.Errorf("%s: %w", PolicyPool, err)
	}

	if len(files) < 2 {
		return insufficient(PolicyPool, w, len(files))
	}

	res := Result{Policy: PolicyPool, Window: w}
	used := make([]bool, len(files))

	for i := range files {
		if used[i] {
			continue
		}

		id, ok := window.Extract(files[i].Content, w)
		if !window.Usable(id, ok) {
			res.addUnmatched(Unmatched{File: files[i], Index: i, Kind: UnmatchedEmptyIdentifier})
			continue
		}

		partner := -1

		for j := i + 1; j < len(files); j++ {
			if !used[j] && strings.Contains(files[j].Content, id) {
				partner = j
				break
			}
		}

		if partner < 0 {
			res.addUnmatched(Unmatched{File: files[i], Index: i, Kind: UnmatchedNoPartner, Identifier: id})
			continue
		}

		used[i], used[partner] = true, true
		res.addSet(ComparisonSet{
			Left:       files[i],
			Right:      files[partner],
			LeftIndex:  i,
			RightIndex: partner,
			Identifier: id,
		})
	}

	res.finish()

	return res, nil
}
