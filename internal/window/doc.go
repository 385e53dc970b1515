// Package window extracts identifiers from file content.
//
// An identifier window is a (line, start column, end column) triple. The same
// window is applied to every file taking part in one matching call, and the
// text it carves out of a file becomes that file's matching key.
//
// Key functions:
//   - Extract: returns the text inside the window, or reports that the line is missing
//   - Usable: tells whether an extracted identifier may be used as a match key
//   - Parse: reads the "line:start:end" form typed by users (line is one-based)
package window
