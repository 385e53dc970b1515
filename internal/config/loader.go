package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"diffpair/internal/source"
)

// File permission for written run files.
const filePerm = 0o644

// Defaults applied by Parse.
const (
	DefaultContext = 3
)

// LoadFile loads and parses a run file. Relative input paths and the output
// directory are resolved against the run file's directory.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.ResolvePaths(filepath.Dir(path))

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run file YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	if f.Load.MaxBytes == 0 {
		f.Load.MaxBytes = source.DefaultMaxBytes
	}

	if f.Output.Context == 0 {
		f.Output.Context = DefaultContext
	}
}

// ResolvePaths makes relative paths relative to dir. "-" (standard input) is kept.
func (f *File) ResolvePaths(dir string) {
	for _, list := range []StringOrArray{f.Files, f.Sources, f.Targets} {
		for i, p := range list {
			list[i] = resolve(dir, p)
		}
	}

	if f.Output.Dir != "" {
		f.Output.Dir = resolve(dir, f.Output.Dir)
	}

	if f.Log.File != "" {
		f.Log.File = resolve(dir, f.Log.File)
	}
}

func resolve(dir, p string) string {
	if p == source.StdinPath || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(dir, p)
}

// SourceOptions converts the load section for the source package.
func (f *File) SourceOptions() source.Options {
	return source.Options{
		Concurrency: f.Load.Concurrency,
		MaxBytes:    f.Load.MaxBytes,
		ExcludeDirs: f.Load.ExcludeDirs,
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal run file: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write run file %s: %w", path, err)
	}

	return nil
}
