// Package match pairs loaded files into comparison sets.
//
// Three policies are available, chosen by the caller from the inputs at hand:
//   - Pair: exactly two files are paired unconditionally
//   - Pool: each file's identifier is searched for in the full content of later files
//   - SourceTarget: each source pairs with the first target whose identifier is equal
//
// Merge reduces a list of comparison sets to one, and SortByVerdict puts sets
// whose sides are equal (ignoring trailing whitespace) first.
//
// The matcher is a pure function of its inputs. Files that cannot be paired
// are not returned as sets; they are reported in Result.Unmatched.
package match
