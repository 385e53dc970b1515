package match

import (
	"cmp"
	"slices"
)

const (
	maxSuggestions = 3
	// minSimilarity drops suggestions that share less than half their characters.
	minSimilarity = 0.5
)

type suggestion struct {
	id    string
	score float64
}

// Suggest ranks the distinct non-empty candidates by similarity to id and
// returns at most n of them, best first. Ties are broken alphabetically.
// The exact id itself is never suggested.
func Suggest(id string, candidates []string, n int) []string {
	if n <= 0 || id == "" {
		return nil
	}

	seen := make(map[string]struct{}, len(candidates))

	var ranked []suggestion

	for _, c := range candidates {
		if c == "" || c == id {
			continue
		}

		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}

		score := LevenshteinNormalized(id, c)
		if score >= minSimilarity {
			ranked = append(ranked, suggestion{id: c, score: score})
		}
	}

	slices.SortFunc(ranked, func(a, b suggestion) int {
		if a.score != b.score {
			return cmp.Compare(b.score, a.score)
		}

		return cmp.Compare(a.id, b.id)
	})

	out := make([]string, 0, min(n, len(ranked)))
	for _, s := range ranked[:min(n, len(ranked))] {
		out = append(out, s.id)
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
