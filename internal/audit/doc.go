// Package audit keeps a local history of gistenv operations.
//
// Every command that changes something (the remote gist or a local env file)
// appends one JSON object per line to the audit log, by default at:
//
//	$XDG_DATA_HOME/gistenv/audit.jsonl
//
// Each entry contains an ID, a UTC timestamp, the operation name, the gist ID
// and whatever else applies: section, variable count, merge mode, output path.
// Values are never recorded.
//
// Appends take an advisory file lock on audit.jsonl.lock so that two
// processes never interleave a line.
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error.
//
// Use ReadEntries to load the log for `gistenv log`. Malformed entries are
// skipped to tolerate partial writes.
package audit
