// Package diagnostic provides structured warnings, errors, and
// explanations of matching outcomes.
//
// Key capabilities:
//   - Per-file warnings for files left out of every comparison set
//   - Call-level errors such as too few input files
//   - Suggestions that help the user pick a better identifier window
package diagnostic
