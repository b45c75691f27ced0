// Package gist reads and writes the env document stored in a GitHub Gist.
//
// A Gist can hold several files; the client works on the one named ".env",
// or failing that the first (by name) whose name ends in ".env". Updates
// replace that file's whole content; there is no versioning, so the last
// writer wins.
//
// HTTP status codes map to sentinel errors from internal/errors:
//
//   - 404: ErrGistNotFound
//   - 401, 403: ErrUnauthorized
//   - any other non-2xx: ErrRemoteRequest
package gist
