// Package report renders matching results for people.
//
// Each comparison set becomes a unified diff. Line diffing is delegated to
// github.com/pmezard/go-difflib; this package only lays out the summary,
// orders sets so exact matches come first, and writes the files.
package report
