package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diffpair/internal/config"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return dir
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Pair(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.txt": "one\ntwo\n",
		"b.txt": "one\n2\n",
	})

	code, out, _ := runCLI(t, "", "pair", filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt"))

	assert.Equal(t, exitMatched, code)
	assert.Contains(t, out, "1 set(s) found\n")
	assert.Contains(t, out, "[different]")
	assert.Contains(t, out, "-two\n+2\n")
}

func TestRun_PairStdin(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "same\n"})

	code, out, _ := runCLI(t, "same\n", "pair", "-", filepath.Join(dir, "a.txt"))

	assert.Equal(t, exitMatched, code)
	assert.Contains(t, out, "=== [exact] stdin <> ")
}

func TestRun_PairWrongCount(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "x\n"})

	code, out, errOut := runCLI(t, "", "pair", filepath.Join(dir, "a.txt"))
	assert.Equal(t, exitUsage, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "need at least two files")

	code, _, _ = runCLI(t, "", "pair", dir, filepath.Join(dir, "a.txt"), filepath.Join(dir, "a.txt"))
	assert.Equal(t, exitUsage, code)
}

func TestRun_PoolDirectory(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.txt":          "X:1\nhello\n",
		"sub/b.txt":      "X:1\nhullo\n",
		"c.txt":          "X:2\nalone\n",
		"skip/d.txt":     "X:2\nalone\n",
		"sub/.git/e.txt": "X:2\nalone\n",
	})

	code, out, _ := runCLI(t, "", "pool", "-window", "1:0:3", "-exclude", "skip", "-exclude", ".git", dir)

	assert.Equal(t, exitMatched, code)
	assert.Contains(t, out, "1 set(s) found\n")
	assert.Contains(t, out, `(identifier "X:1")`)
	assert.Contains(t, out, "unmatched:\n")
	assert.Contains(t, out, `no partner for identifier "X:2"`)
}

func TestRun_PoolNeedsWindow(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "a\n", "b.txt": "b\n", "c.txt": "c\n"})

	code, _, errOut := runCLI(t, "", "pool", dir)

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "window")
}

func TestRun_InvalidWindow(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "a\n", "b.txt": "b\n", "c.txt": "c\n"})

	for _, w := range []string{"0:0:3", "1:3:1", "1:2", "x:0:1"} {
		code, _, _ := runCLI(t, "", "pool", "-window", w, dir)
		assert.Equal(t, exitUsage, code, w)
	}
}

func TestRun_MatchNothingMatched(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"src/a.txt": "ID-AAA\n",
		"dst/b.txt": "ID-BBB\n",
	})

	code, out, _ := runCLI(t, "",
		"match", "-window", "1:0:6",
		"-source", filepath.Join(dir, "src"),
		"-target", filepath.Join(dir, "dst"),
	)

	assert.Equal(t, exitNoMatch, code)
	assert.Contains(t, out, "no matching identifier found\n")
}

func TestRun_MatchMerge(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"src/1.txt": "K1\nleft one\n",
		"src/2.txt": "K2\nleft two\n",
		"dst/1.txt": "K1\nleft one\n",
		"dst/2.txt": "K2\nright two\n",
	})

	code, out, _ := runCLI(t, "",
		"match", "-window", "1:0:2", "-merge",
		"-source", filepath.Join(dir, "src"),
		"-target", filepath.Join(dir, "dst"),
	)

	assert.Equal(t, exitMatched, code)
	assert.Contains(t, out, "=== [different] merged-source <> merged-target")
	assert.Equal(t, 1, strings.Count(out, "==="))
}

func TestRun_MatchRejectsArguments(t *testing.T) {
	code, _, _ := runCLI(t, "", "match", "-window", "1:0:1", "-source", "a", "-target", "b", "extra")
	assert.Equal(t, exitUsage, code)
}

func TestRun_ConfigFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"in/a.txt": "X:1\nfoo\n",
		"in/b.txt": "X:1\nbar\n",
		"in/c.txt": "X:2\nbaz\n",
		"diffpair.yaml": `version: "1"
window: "1:0:3"
files: in
output:
  dir: out
  context: 1
`,
	})

	code, out, _ := runCLI(t, "", "run", "-config", filepath.Join(dir, "diffpair.yaml"))

	assert.Equal(t, exitMatched, code)
	assert.Contains(t, out, "report written to "+filepath.Join(dir, "out"))
	assert.FileExists(t, filepath.Join(dir, "out", "summary.yaml"))
	assert.FileExists(t, filepath.Join(dir, "out", "001-a.txt__b.txt.diff"))

	effective, err := config.LoadFile(filepath.Join(dir, "out", runFilename))
	require.NoError(t, err)
	assert.Equal(t, config.StringOrArray{filepath.Join(dir, "in")}, effective.Files)
	assert.Equal(t, 1, effective.Output.Context)
}

func TestRun_ConfigFileUnreadable(t *testing.T) {
	code, _, errOut := runCLI(t, "", "run", "-config", filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, exitIOFailure, code)
	assert.Contains(t, errOut, "missing.yaml")

	dir := writeFiles(t, map[string]string{"diffpair.yaml": "files: [unclosed\n"})

	code, _, _ = runCLI(t, "", "run", "-config", filepath.Join(dir, "diffpair.yaml"))
	assert.Equal(t, exitUsage, code)
}

func TestRun_ValidationHints(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.txt": "one\n",
		"b.txt": "bee\n",
		"diffpair.yaml": `files: [a.txt, empty, b.txt]
output:
  dir: out
`,
	})
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0o755))

	code, _, errOut := runCLI(t, "", "run", "-v", "-config", filepath.Join(dir, "diffpair.yaml"))
	require.Equal(t, exitMatched, code, errOut)
	assert.Contains(t, errOut, "warning: [window_required] more than two files usually need a window")

	summary, err := os.ReadFile(filepath.Join(dir, "out", "summary.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(summary), "code: window_required")

	// Two files with a window: "run" pairs them directly and says so.
	a, b := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")
	runFile := filepath.Join(dir, "two.yaml")
	require.NoError(t, os.WriteFile(runFile, []byte("window: 1:0:1\nfiles: [a.txt, b.txt]\n"), 0o644))

	code, _, errOut = runCLI(t, "", "run", "-v", "-config", runFile)
	require.Equal(t, exitMatched, code, errOut)
	assert.Contains(t, errOut, "info: [window_ignored]")

	// "pool" uses the window on two files, so there is nothing to report.
	code, _, errOut = runCLI(t, "", "pool", "-v", "-window", "1:0:1", a, b)
	assert.Equal(t, exitNoMatch, code, errOut)
	assert.NotContains(t, errOut, "window_ignored")
}

func TestRun_ConfigFileInvalid(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"diffpair.yaml": "files: [a.txt]\nsources: [b.txt]\n",
	})

	code, _, errOut := runCLI(t, "", "run", "-config", filepath.Join(dir, "diffpair.yaml"))

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "files_and_pools")
}

func TestRun_MissingFile(t *testing.T) {
	dir := t.TempDir()

	code, _, errOut := runCLI(t, "", "pair", filepath.Join(dir, "nope.txt"), filepath.Join(dir, "nope2.txt"))

	assert.Equal(t, exitIOFailure, code)
	assert.Contains(t, errOut, "nope.txt")
}

func TestRun_Environment(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "a\n", "b.txt": "a\n"})
	a, b := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")

	t.Setenv(envConcurrency, "many")

	code, _, errOut := runCLI(t, "", "pair", a, b)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, envConcurrency)

	// The flag wins over the environment.
	code, _, _ = runCLI(t, "", "pair", "-concurrency", "2", a, b)
	assert.Equal(t, exitMatched, code)

	t.Setenv(envConcurrency, "")
	t.Setenv(envOutputDir, filepath.Join(dir, "report"))

	code, out, _ := runCLI(t, "", "pair", a, b)
	assert.Equal(t, exitMatched, code)
	assert.Contains(t, out, "report written to")
	assert.FileExists(t, filepath.Join(dir, "report", "summary.yaml"))
}

func TestRun_LogFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "a\n", "b.txt": "b\n"})
	logFile := filepath.Join(dir, "logs", "diffpair.log")

	code, _, _ := runCLI(t, "", "pair", "-log", logFile, filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt"))
	require.Equal(t, exitMatched, code)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "policy Pair")
}

func TestRun_Usage(t *testing.T) {
	code, _, errOut := runCLI(t, "")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "Usage:")

	code, _, errOut = runCLI(t, "", "frobnicate")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, `unknown command "frobnicate"`)
}

func TestRun_Examples(t *testing.T) {
	tests := []struct {
		dir       string
		exact     string
		different string
		unmatched string
	}{
		{
			dir:       "pool",
			exact:     "monday-b.log <> ",
			different: "monday-a.log <> ",
			unmatched: `tuesday-c.log: no partner for identifier "nightly-c"`,
		},
		{
			dir:       "match",
			exact:     "order-01.txt <> ",
			different: "order-02.txt <> ",
			unmatched: `order-03.txt: no partner for identifier "ORD-03" (closest: ORD-01, ORD-02, ORD-04)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			config := filepath.Join("..", "..", "examples", tt.dir, "diffpair.yaml")

			code, out, errOut := runCLI(t, "", "run", "-config", config)
			require.Equal(t, exitMatched, code, errOut)

			assert.Contains(t, out, "2 set(s) found\n")
			assert.Contains(t, out, "[exact] ")
			assert.Contains(t, out, tt.exact)
			assert.Contains(t, out, tt.different)
			assert.Contains(t, out, tt.unmatched)
		})
	}
}
