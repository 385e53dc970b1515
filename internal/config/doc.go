// Package config provides the YAML run file, its defaults, and validation.
//
// A run file lets a comparison be repeated without retyping paths and the
// identifier window:
//
//	version: "1"
//	window: {line: 1, start: 0, end: 3}   # line numbers start at 1
//	files: [a.txt, b.txt, c.txt]          # one unlabeled pool
//	sources: [left/]                      # or two labeled pools
//	targets: [right/]
//	merge: false
//	load:
//	  concurrency: 8
//	  max_bytes: 33554432
//	  exclude_dirs: [.git]
//	output:
//	  dir: out
//	  context: 3
//	log:
//	  file: diffpair.log
//	  max_size: 10
//
// # Policy selection
//
// Files and labeled pools are mutually exclusive. With sources and targets the
// source-vs-target policy runs; with exactly two files they are paired
// directly; with more files the pool policy runs and a window is required.
package config
