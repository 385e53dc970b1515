// Package logging routes the standard logger to stderr and, optionally, to a
// size-rotated log file.
package logging
