package match

import (
	"fmt"

	"diffpair/internal/source"
	"diffpair/internal/window"
)

// SourceTarget pairs every source with the first target whose identifier is
// exactly equal to the source's. Targets may serve several sources. Sets follow
// source order; sources without a usable identifier or an equal target are
// reported as unmatched.
func SourceTarget(sources, targets []source.File, w window.Window) (Result, error) {
	if err := w.Validate(); err != nil {
		return Result{Policy: PolicySourceTarget, Window: w}, fmt.Errorf("%s: %w", PolicySourceTarget, err)
	}

	if len(sources) == 0 || len(targets) == 0 {
		return insufficient(PolicySourceTarget, w, len(sources)+len(targets))
	}

	res := Result{Policy: PolicySourceTarget, Window: w}

	targetIDs := make([]string, len(targets))
	// first target index per identifier; later duplicates never win
	firstTarget := make(map[string]int, len(targets))

	for ti := range targets {
		id, ok := window.Extract(targets[ti].Content, w)
		if !window.Usable(id, ok) {
			continue
		}

		targetIDs[ti] = id
		if _, seen := firstTarget[id]; !seen {
			firstTarget[id] = ti
		}
	}

	for si := range sources {
		id, ok := window.Extract(sources[si].Content, w)
		if !window.Usable(id, ok) {
			res.addUnmatched(Unmatched{File: sources[si], Index: si, Kind: UnmatchedEmptyIdentifier})
			continue
		}

		ti, found := firstTarget[id]
		if !found {
			res.addUnmatched(Unmatched{
				File:        sources[si],
				Index:       si,
				Kind:        UnmatchedNoPartner,
				Identifier:  id,
				Suggestions: Suggest(id, targetIDs, maxSuggestions),
			})

			continue
		}

		res.addSet(ComparisonSet{
			Left:       sources[si],
			Right:      targets[ti],
			LeftIndex:  si,
			RightIndex: ti,
			Identifier: id,
		})
	}

	res.finish()

	return res, nil
}
