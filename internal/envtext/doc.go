// Package envtext parses and edits the section-structured env text format.
//
// A document is plain text made of assignment lines, comments, and blank
// lines. A comment of the form "# [name]" is a section header: every
// assignment after it belongs to that section until the next header.
//
//	# [Production]
//	API_KEY=prod_key
//	DB_URL=postgres://prod
//
//	# [Staging]
//	API_KEY=staging_key
//
// # Parsing
//
// Parse never fails. Lines without "=" and lines with an empty key are
// skipped and reported as diagnostics; headers that do not match the
// bracket grammar are ordinary comments. The first "=" on a line separates
// the key from the value, so values may contain "=".
//
// # Editing
//
// EncryptContent and RemoveSection rewrite the raw text line by line and
// leave every line they do not own untouched. Serialize renders a list of
// variables from scratch and does not reproduce the original layout.
package envtext
