package config

import (
	"slices"

	"diffpair/internal/common"
	"diffpair/internal/logging"
	"diffpair/internal/window"
)

// CurrentVersion is the run file schema version written by Marshal.
const CurrentVersion = "1"

// File represents the root of a YAML run file.
type File struct {
	// Version of the run file schema.
	Version string `yaml:"version,omitempty"`

	// Window selects the identifier; nil when matching is positional.
	Window *WindowSpec `yaml:"window,omitempty"`

	// Files is a single unlabeled pool.
	Files StringOrArray `yaml:"files,omitempty"`

	// Sources and Targets are the labeled pools.
	Sources StringOrArray `yaml:"sources,omitempty"`
	Targets StringOrArray `yaml:"targets,omitempty"`

	// Merge reduces all comparison sets to a single one before reporting.
	Merge bool `yaml:"merge,omitempty"`

	Load   LoadConfig     `yaml:"load,omitempty"`
	Output OutputConfig   `yaml:"output,omitempty"`
	Log    logging.Config `yaml:"log,omitempty"`
}

// WindowSpec is the identifier window as users write it: Line starts at 1.
// YAML accepts either a mapping ({line: 1, start: 0, end: 3}) or the short
// scalar form "1:0:3".
type WindowSpec struct {
	Line  int `yaml:"line"`
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Window converts w to a zero-based window.
func (w WindowSpec) Window() window.Window {
	return window.FromOneBased(w.Line, w.Start, w.End)
}

// LoadConfig controls file loading.
type LoadConfig struct {
	Concurrency int      `yaml:"concurrency,omitempty"`
	MaxBytes    int64    `yaml:"max_bytes,omitempty"`
	ExcludeDirs []string `yaml:"exclude_dirs,omitempty"`
}

// OutputConfig controls the report.
type OutputConfig struct {
	// Dir receives one .diff file per set plus summary.yaml; empty prints to stdout.
	Dir string `yaml:"dir,omitempty"`
	// Context is the number of unchanged lines around each diff hunk.
	Context int `yaml:"context,omitempty"`
}

// StringOrArray is a list of strings that may be written as a single string.
type StringOrArray []string

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// IsSingle returns true if the array has exactly one element.
func (s StringOrArray) IsSingle() bool {
	return common.IsSingle(s)
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// HasPools reports whether labeled pools are configured.
func (f *File) HasPools() bool {
	return !f.Sources.IsEmpty() || !f.Targets.IsEmpty()
}
