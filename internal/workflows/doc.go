// Package workflows provides high-level orchestration for gistenv commands.
//
// Workflows coordinate the gist store, the env-text model, local env files
// and the audit log to implement complete user-facing features. Each workflow
// handles a single command's business logic, independent of CLI concerns like
// flag parsing, spinners, and output formatting.
//
// Most workflows are methods on Service, which carries the resolved
// configuration: the gist store, the local file merger, the encryption codec
// and the audit log path. Build one with NewService from a configs.Config.
//
//   - Fetch, ListSections, ListKeys, ListVariables: read the gist
//   - CopySection, CopyKeys: write remote variables into a local file
//   - Push: replace one remote section with local variables
//   - DeleteSection: remove one remote section
//   - EncryptGist: encrypt every plaintext value in place
//
// ReadLog reads the audit log and needs no gist.
//
// # Error Handling
//
// Workflows return sentinel errors from the internal/errors package so the
// CLI layer can pick a message without string matching:
//
//	result, err := svc.CopySection(ctx, opts)
//	if errors.Is(err, kerrors.ErrSectionNotFound) {
//	    // list the sections that do exist
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// It bounds the HTTP calls to GitHub.
package workflows
