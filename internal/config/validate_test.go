package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(t *testing.T, yaml string) []string {
	t.Helper()

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	d := Validate(f)

	var out []string
	for _, e := range d.Errors {
		out = append(out, e.Code)
	}

	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want []string
	}{
		{"two files", "files: [a, b]", nil},
		{"pool with window", "files: [a, b, c]\nwindow: 1:0:3", nil},
		{"pools", "sources: [l]\ntargets: [r]\nwindow: 1:0:3", nil},
		{"nothing", "merge: true", []string{"no_inputs"}},
		{"files and pools", "files: [a, b]\nsources: [l]\ntargets: [r]\nwindow: 1:0:3", []string{"files_and_pools"}},
		{"missing targets", "sources: [l]\nwindow: 1:0:3", []string{"missing_targets"}},
		{"missing sources", "targets: [r]\nwindow: 1:0:3", []string{"missing_sources"}},
		{"pools without window", "sources: [l]\ntargets: [r]", []string{"window_required"}},
		{"stdin twice", "sources: [\"-\"]\ntargets: [\"-\", r]\nwindow: 1:0:3", []string{"stdin_repeated"}},
		{"zero line", "files: [a, b, c]\nwindow: {line: 0, start: 0, end: 3}", []string{"invalid_window"}},
		{"end before start", "files: [a, b, c]\nwindow: {line: 1, start: 4, end: 3}", []string{"invalid_window"}},
		{"version", "version: \"9\"\nfiles: [a, b]", []string{"unsupported_version"}},
		{"negatives", "files: [a, b]\nload: {concurrency: -1, max_bytes: -5}\noutput: {context: -2}",
			[]string{"invalid_concurrency", "invalid_max_bytes", "invalid_context"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codes(t, tt.yaml))
		})
	}
}

func TestValidateAuto_WarningsAndInfos(t *testing.T) {
	f, err := Parse([]byte("files: [a, b, c]"))
	require.NoError(t, err)

	d := ValidateAuto(f)
	assert.True(t, d.IsValid())
	require.Len(t, d.Warnings, 1)
	assert.Equal(t, "window_required", d.Warnings[0].Code)

	f, err = Parse([]byte("files: [a, b]\nwindow: 1:0:1"))
	require.NoError(t, err)

	d = ValidateAuto(f)
	require.Len(t, d.Infos, 1)
	assert.Equal(t, "window_ignored", d.Infos[0].Code)

	// Commands that choose the policy themselves get no hints.
	d = Validate(f)
	assert.Empty(t, d.Infos)
	assert.Empty(t, d.Warnings)

	f, err = Parse([]byte("sources: [a, b]\ntargets: [c, d]\nwindow: 1:0:1"))
	require.NoError(t, err)

	d = ValidateAuto(f)
	assert.Empty(t, d.Infos)
	assert.Empty(t, d.Warnings)
}

func TestValidate_Nil(t *testing.T) {
	d := Validate(nil)
	require.Error(t, d.Error())
	assert.Equal(t, 1, d.Count("run_file_is_nil"))
}
