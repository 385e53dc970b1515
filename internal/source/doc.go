// Package source loads the text files that take part in matching.
//
// Load expands directories in a stable lexical order and reads every file
// concurrently; the returned slice always follows the expanded input order.
// File content is decoded to text, removing a UTF-8 or UTF-16 byte-order mark,
// and is otherwise kept byte-for-byte.
package source
