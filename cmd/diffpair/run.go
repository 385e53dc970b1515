package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"diffpair/internal/config"
	"diffpair/internal/diagnostic"
	"diffpair/internal/logging"
	"diffpair/internal/match"
	"diffpair/internal/report"
	"diffpair/internal/source"
	"diffpair/internal/window"
)

const appName = "diffpair"

// runFilename is the effective run file written next to a report.
const runFilename = "run.yaml"

// Exit codes.
const (
	exitMatched   = 0
	exitNoMatch   = 1
	exitUsage     = 2
	exitIOFailure = 3
)

// Environment variables consulted when the flag is not set.
const (
	envLogFile     = "DIFFPAIR_LOG_FILE"
	envConcurrency = "DIFFPAIR_CONCURRENCY"
	envOutputDir   = "DIFFPAIR_OUTPUT_DIR"
)

type command string

const (
	cmdPair  command = "pair"
	cmdPool  command = "pool"
	cmdMatch command = "match"
	cmdRun   command = "run"
)

// usageError marks problems with the command line or the run file.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// stringsFlag collects a repeatable flag.
type stringsFlag []string

func (s *stringsFlag) String() string { return strings.Join(*s, ",") }

func (s *stringsFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// options are the flags shared by every command.
type options struct {
	window      string
	sources     stringsFlag
	targets     stringsFlag
	configPath  string
	merge       bool
	outDir      string
	context     int
	logFile     string
	concurrency int
	exclude     stringsFlag
	verbose     bool
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		printUsage(stderr)
		return exitUsage
	}

	cmd := command(args[0])

	cfg, opts, diags, err := parseCommand(cmd, args[1:], stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitUsage
		}

		fmt.Fprintf(stderr, "%s: %v\n", appName, err)

		var uerr usageError
		if errors.As(err, &uerr) {
			return exitUsage
		}

		return exitIOFailure
	}

	sink := io.Discard
	if opts.verbose {
		sink = stderr
	}

	closer, err := logging.Setup(cfg.Log, sink)
	if err != nil {
		fmt.Fprintf(stderr, "%s: setting up logging: %v\n", appName, err)
		return exitIOFailure
	}
	defer closer.Close()

	res, err := execute(ctx, cmd, cfg, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)

		var uerr usageError

		switch {
		case errors.As(err, &uerr),
			errors.Is(err, match.ErrInsufficientInputs),
			errors.Is(err, match.ErrTooManyInputs),
			errors.Is(err, match.ErrWindowRequired),
			errors.Is(err, window.ErrInvalidWindow),
			errors.Is(err, source.ErrStdinRepeated):
			return exitUsage
		default:
			return exitIOFailure
		}
	}

	res.Diagnostics.Merge(*diags)

	for _, w := range res.Diagnostics.Warnings {
		log.Printf("warning: %s", w)
	}

	for _, i := range res.Diagnostics.Infos {
		log.Printf("info: %s", i)
	}

	rc := report.DefaultConfig()
	rc.Context = cfg.Output.Context
	rc.OutputDir = cfg.Output.Dir

	if err := report.NewReporter(rc).Emit(stdout, res); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return exitIOFailure
	}

	if cfg.Output.Dir != "" {
		if err := config.WriteFile(cfg, filepath.Join(cfg.Output.Dir, runFilename)); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", appName, err)
			return exitIOFailure
		}
	}

	if len(res.Sets) == 0 {
		return exitNoMatch
	}

	return exitMatched
}

// parseCommand turns the command line into a run file, so every command
// shares validation and execution with "run". The returned diagnostics hold
// the validation warnings and infos.
func parseCommand(cmd command, args []string, stderr io.Writer) (*config.File, options, *diagnostic.Diagnostics, error) {
	var opts options

	flags := flag.NewFlagSet(appName+" "+string(cmd), flag.ContinueOnError)
	flags.SetOutput(stderr)

	switch cmd {
	case cmdPair:
	case cmdPool:
		flags.StringVar(&opts.window, "window", "", "identifier window as line:start:end (line starts at 1)")
	case cmdMatch:
		flags.StringVar(&opts.window, "window", "", "identifier window as line:start:end (line starts at 1)")
		flags.Var(&opts.sources, "source", "source file or directory (repeatable)")
		flags.Var(&opts.targets, "target", "target file or directory (repeatable)")
	case cmdRun:
		flags.StringVar(&opts.configPath, "config", "diffpair.yaml", "run file")
	default:
		return nil, opts, nil, usageError{fmt.Errorf("unknown command %q", cmd)}
	}

	flags.BoolVar(&opts.merge, "merge", false, "merge all sets into one before reporting")
	flags.StringVar(&opts.outDir, "out", "", "write .diff files and summary.yaml to this directory")
	flags.IntVar(&opts.context, "context", 0, "context lines around each change (default 3)")
	flags.StringVar(&opts.logFile, "log", "", "also log to this file (rotated)")
	flags.IntVar(&opts.concurrency, "concurrency", 0, "parallel file reads (default GOMAXPROCS)")
	flags.Var(&opts.exclude, "exclude", "directory name to skip while walking (repeatable)")
	flags.BoolVar(&opts.verbose, "v", false, "log progress to stderr")

	if err := flags.Parse(args); err != nil {
		return nil, opts, nil, usageError{err}
	}

	cfg, err := baseConfig(cmd, opts, flags.Args())
	if err != nil {
		return nil, opts, nil, err
	}

	if err := applyOverrides(cfg, opts); err != nil {
		return nil, opts, nil, err
	}

	validate := config.Validate
	if cmd == cmdRun {
		validate = config.ValidateAuto
	}

	diags := validate(cfg)
	if diags.HasErrors() {
		return nil, opts, nil, usageError{diags.Error()}
	}

	return cfg, opts, diags, nil
}

func baseConfig(cmd command, opts options, rest []string) (*config.File, error) {
	if cmd == cmdRun {
		if len(rest) > 0 {
			return nil, usageError{fmt.Errorf("run takes no arguments, got %q", rest)}
		}

		cfg, err := config.LoadFile(opts.configPath)

		var pathErr *fs.PathError
		if err != nil && !errors.As(err, &pathErr) {
			return nil, usageError{err}
		}

		return cfg, err
	}

	cfg, err := config.Parse(nil)
	if err != nil {
		return nil, usageError{err}
	}

	if opts.window != "" {
		w, err := window.Parse(opts.window)
		if err != nil {
			return nil, usageError{err}
		}

		cfg.Window = &config.WindowSpec{Line: w.Line + 1, Start: w.Start, End: w.End}
	}

	switch cmd {
	case cmdMatch:
		if len(rest) > 0 {
			return nil, usageError{fmt.Errorf("match takes -source and -target, not arguments %q", rest)}
		}

		cfg.Sources = config.StringOrArray(opts.sources)
		cfg.Targets = config.StringOrArray(opts.targets)

		if cfg.Window == nil {
			return nil, usageError{match.ErrWindowRequired}
		}
	case cmdPool:
		cfg.Files = config.StringOrArray(rest)

		if cfg.Window == nil {
			return nil, usageError{match.ErrWindowRequired}
		}
	default:
		cfg.Files = config.StringOrArray(rest)
	}

	return cfg, nil
}

// applyOverrides layers flags, then environment variables, over the run file.
func applyOverrides(cfg *config.File, opts options) error {
	if opts.merge {
		cfg.Merge = true
	}

	if opts.context > 0 {
		cfg.Output.Context = opts.context
	}

	if dir := firstNonEmpty(opts.outDir, os.Getenv(envOutputDir)); dir != "" {
		cfg.Output.Dir = dir
	}

	if file := firstNonEmpty(opts.logFile, os.Getenv(envLogFile)); file != "" {
		cfg.Log.File = file
	}

	if len(opts.exclude) > 0 {
		cfg.Load.ExcludeDirs = append(cfg.Load.ExcludeDirs, opts.exclude...)
	}

	switch {
	case opts.concurrency > 0:
		cfg.Load.Concurrency = opts.concurrency
	case os.Getenv(envConcurrency) != "":
		n, err := strconv.Atoi(os.Getenv(envConcurrency))
		if err != nil {
			return usageError{fmt.Errorf("%s: %w", envConcurrency, err)}
		}

		cfg.Load.Concurrency = n
	}

	return nil
}

// execute loads the inputs and runs the matcher chosen by cmd.
func execute(ctx context.Context, cmd command, cfg *config.File, stdin io.Reader) (match.Result, error) {
	opts := cfg.SourceOptions()
	opts.Stdin = stdin

	load := func(paths []string) ([]source.File, error) {
		files, err := source.Load(ctx, paths, opts)
		if err != nil {
			return nil, err
		}

		log.Printf("loaded %d file(s) from %d path(s)", len(files), len(paths))

		return files, nil
	}

	var (
		res match.Result
		err error
	)

	if cfg.HasPools() {
		sources, lerr := load(cfg.Sources)
		if lerr != nil {
			return res, lerr
		}

		targets, lerr := load(cfg.Targets)
		if lerr != nil {
			return res, lerr
		}

		res, err = match.SourceTarget(sources, targets, cfg.Window.Window())
	} else {
		files, lerr := load(cfg.Files)
		if lerr != nil {
			return res, lerr
		}

		switch cmd {
		case cmdPair:
			res, err = match.Pair(files)
		case cmdPool:
			res, err = match.Pool(files, cfg.Window.Window())
		default:
			req := match.Request{Files: files}
			if cfg.Window != nil {
				w := cfg.Window.Window()
				req.Window = &w
			}

			res, err = match.Auto(req)
		}
	}

	if err != nil {
		return res, err
	}

	log.Printf("policy %s: %s, %d unmatched", res.Policy, res.Summary(), len(res.Unmatched))

	if cfg.Merge && len(res.Sets) > 0 {
		log.Printf("merging %d set(s)", len(res.Sets))
		res.Sets = []match.ComparisonSet{match.Merge(res.Sets)}
	}

	return res, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `%[1]s - pair text files for diffing

Usage:
  %[1]s pair [flags] A B
  %[1]s pool -window LINE:START:END [flags] FILE|DIR...
  %[1]s match -window LINE:START:END -source PATH... -target PATH... [flags]
  %[1]s run [-config diffpair.yaml] [flags]

Run "%[1]s <command> -h" for the flags of a command.
`, appName)
}
