package report

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"diffpair/internal/diagnostic"
	"diffpair/internal/match"
)

// SummaryFilename is the machine-readable part of a written report.
const SummaryFilename = "summary.yaml"

// Summary is the YAML document written next to the diff files.
type Summary struct {
	Policy      string                 `yaml:"policy"`
	Window      string                 `yaml:"window,omitempty"`
	Reason      string                 `yaml:"reason"`
	Summary     string                 `yaml:"summary"`
	Sets        []SetEntry             `yaml:"sets,omitempty"`
	Unmatched   []UnmatchedEntry       `yaml:"unmatched,omitempty"`
	Diagnostics diagnostic.Diagnostics `yaml:"diagnostics,omitempty"`
}

// SetEntry describes one comparison set.
type SetEntry struct {
	Left       string `yaml:"left"`
	Right      string `yaml:"right"`
	Identifier string `yaml:"identifier,omitempty"`
	Verdict    string `yaml:"verdict"`
	Diff       string `yaml:"diff"`
}

// UnmatchedEntry describes a file left out of every set.
type UnmatchedEntry struct {
	File        string   `yaml:"file"`
	Kind        string   `yaml:"kind"`
	Identifier  string   `yaml:"identifier,omitempty"`
	Suggestions []string `yaml:"suggestions,omitempty"`
}

// NewSummary builds the summary for res; sets and diffNames must be in the same order.
func NewSummary(res match.Result, sets []match.ComparisonSet, diffNames []string) Summary {
	s := Summary{
		Policy:      res.Policy.String(),
		Reason:      res.Reason.String(),
		Summary:     res.Summary(),
		Diagnostics: res.Diagnostics,
	}

	if res.Policy != match.PolicyPair {
		s.Window = res.Window.String()
	}

	for i, set := range sets {
		s.Sets = append(s.Sets, SetEntry{
			Left:       set.Left.Name,
			Right:      set.Right.Name,
			Identifier: set.Identifier,
			Verdict:    string(set.Verdict()),
			Diff:       diffNames[i],
		})
	}

	for _, u := range res.Unmatched {
		s.Unmatched = append(s.Unmatched, UnmatchedEntry{
			File:        u.File.Name,
			Kind:        string(u.Kind),
			Identifier:  u.Identifier,
			Suggestions: u.Suggestions,
		})
	}

	return s
}

func marshalSummary(res match.Result, sets []match.ComparisonSet, diffNames []string) ([]byte, error) {
	data, err := yaml.Marshal(NewSummary(res, sets, diffNames))
	if err != nil {
		return nil, fmt.Errorf("marshaling summary: %w", err)
	}

	return data, nil
}
