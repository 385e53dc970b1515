package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// StdinPath names standard input in a path list.
const StdinPath = "-"

// ErrStdinRepeated is returned when "-" appears more than once.
var ErrStdinRepeated = errors.New("standard input can only be read once")

// Options configures Load. The zero value is usable.
type Options struct {
	// Concurrency bounds parallel reads. Defaults to GOMAXPROCS.
	Concurrency int
	// MaxBytes caps a single file. Defaults to DefaultMaxBytes.
	MaxBytes int64
	// ExcludeDirs lists directory base names skipped while walking (case-insensitive).
	ExcludeDirs []string
	// Stdin replaces os.Stdin for the "-" path.
	Stdin io.Reader
}

// Load expands paths and reads every file. Directories are walked recursively in
// lexical order; symbolic links to directories are not followed. The result
// follows the expanded order, whichever read finishes first.
func Load(ctx context.Context, paths []string, opts Options) ([]File, error) {
	entries, err := Expand(ctx, paths, opts)
	if err != nil {
		return nil, err
	}

	files := make([]File, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency(opts))

	for i, path := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			f, err := readPath(path, opts)
			if err != nil {
				return err
			}

			files[i] = f

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

// Expand resolves directories in paths to the regular files below them.
func Expand(ctx context.Context, paths []string, opts Options) ([]string, error) {
	exclude := make(map[string]struct{}, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		if name != "" {
			exclude[strings.ToLower(name)] = struct{}{}
		}
	}

	var (
		out      []string
		sawStdin bool
	)

	for _, p := range paths {
		if p == StdinPath {
			if sawStdin {
				return nil, ErrStdinRepeated
			}

			sawStdin = true
			out = append(out, p)

			continue
		}

		found, err := expandOne(ctx, p, exclude)
		if err != nil {
			return nil, err
		}

		out = append(out, found...)
	}

	return out, nil
}

func expandOne(ctx context.Context, root string, exclude map[string]struct{}) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%s is not a regular file", root)
		}

		return []string{root}, nil
	}

	var out []string

	err = walkDir(ctx, root, exclude, &out)

	return out, err
}

func walkDir(ctx context.Context, dir string, exclude map[string]struct{}, out *[]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, e := range entries {
		p := filepath.Join(dir, e.Name())

		switch {
		case e.IsDir():
			if _, skip := exclude[strings.ToLower(e.Name())]; skip {
				continue
			}

			if err := walkDir(ctx, p, exclude, out); err != nil {
				return err
			}

		case e.Type()&os.ModeSymlink != 0:
			target, err := os.Stat(p)
			if err != nil {
				return fmt.Errorf("stat %s: %w", p, err)
			}

			if target.Mode().IsRegular() {
				*out = append(*out, p)
			}

		case e.Type().IsRegular():
			*out = append(*out, p)
		}
	}

	return nil
}

func readPath(path string, opts Options) (File, error) {
	if path == StdinPath {
		var r io.Reader = os.Stdin
		if opts.Stdin != nil {
			r = opts.Stdin
		}

		return Read("stdin", r, opts.MaxBytes)
	}

	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Read(filepath.ToSlash(path), f, opts.MaxBytes)
}

func concurrency(opts Options) int {
	if opts.Concurrency > 0 {
		return opts.Concurrency
	}

	return runtime.GOMAXPROCS(0)
}
