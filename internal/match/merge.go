package match

import (
	"strings"

	"diffpair/internal/source"
)

// Names of the synthetic files produced by Merge.
const (
	MergedSourceName = "merged-source"
	MergedTargetName = "merged-target"
)

// Merge concatenates all left contents, in set order, into one synthetic
// source and all right contents into one synthetic target. Contents are joined
// as they are, without separators. An empty list gives a pair of empty files.
func Merge(sets []ComparisonSet) ComparisonSet {
	var left, right strings.Builder

	for _, set := range sets {
		left.WriteString(set.Left.Content)
		right.WriteString(set.Right.Content)
	}

	return ComparisonSet{
		Left:       source.File{Name: MergedSourceName, Content: left.String()},
		Right:      source.File{Name: MergedTargetName, Content: right.String()},
		LeftIndex:  -1,
		RightIndex: -1,
	}
}
