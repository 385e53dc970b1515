package config

import (
	"fmt"

	"diffpair/internal/diagnostic"
	"diffpair/internal/source"
)

// Validate checks the structure of a run file. It does not touch the file system.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("run_file_is_nil", "run file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q", f.Version), "", "")
	}

	if f.Window != nil {
		if f.Window.Line < 1 {
			res.AddError("invalid_window", fmt.Sprintf("line numbers start at 1, got %d", f.Window.Line), "", "")
		} else if err := f.Window.Window().Validate(); err != nil {
			res.AddError("invalid_window", err.Error(), "", "")
		}
	}

	switch {
	case f.HasPools() && !f.Files.IsEmpty():
		res.AddError("files_and_pools", "files cannot be combined with sources or targets", "", "")

	case f.HasPools():
		if f.Sources.IsEmpty() {
			res.AddError("missing_sources", "targets are given but no sources", "", "")
		}

		if f.Targets.IsEmpty() {
			res.AddError("missing_targets", "sources are given but no targets", "", "")
		}

		if f.Window == nil {
			res.AddError("window_required", "source-vs-target matching needs a window", "", "")
		}

		if f.Sources.Contains(source.StdinPath) && f.Targets.Contains(source.StdinPath) {
			res.AddError("stdin_repeated", "standard input can only be read once", "", "")
		}

	case f.Files.IsEmpty():
		res.AddError("no_inputs", "no files, sources or targets given", "", "")
	}

	if f.Load.Concurrency < 0 {
		res.AddError("invalid_concurrency", fmt.Sprintf("concurrency %d is negative", f.Load.Concurrency), "", "")
	}

	if f.Load.MaxBytes < 0 {
		res.AddError("invalid_max_bytes", fmt.Sprintf("max_bytes %d is negative", f.Load.MaxBytes), "", "")
	}

	if f.Output.Context < 0 {
		res.AddError("invalid_context", fmt.Sprintf("context %d is negative", f.Output.Context), "", "")
	}

	return res
}

// ValidateAuto validates a run file whose policy is picked by match.Auto and
// adds hints about how the window will be used.
func ValidateAuto(f *File) *diagnostic.Diagnostics {
	res := Validate(f)
	if f == nil || f.HasPools() {
		return res
	}

	switch {
	case len(f.Files) > 2 && f.Window == nil:
		// A directory entry may expand to any number of files; the matcher reports it then.
		res.AddWarning("window_required", "more than two files usually need a window", "", "")

	case len(f.Files) == 2 && f.Window != nil:
		res.AddInfo("window_ignored", "two files are paired directly; the window is not used", "", "")
	}

	return res
}
