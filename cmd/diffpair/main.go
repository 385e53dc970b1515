// Package main provides the CLI entrypoint for diffpair.
//
// diffpair pairs up text files for diffing:
//   - pair: two files, compared directly
//   - pool: many files, paired by an identifier found in a line/column window
//   - match: source files paired with target files whose identifier is equal
//   - run: everything above, driven by a YAML run file
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
