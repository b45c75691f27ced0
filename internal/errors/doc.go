// Package errors provides typed error values for the gistenv application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Remote errors: Gist lookup and authentication (ErrGistNotFound, ErrUnauthorized)
//   - Configuration errors: Missing settings (ErrGistIDNotSet, ErrEncryptionKeyNotSet)
//   - Crypto errors: Encryption/decryption failures (ErrDecryptFailed, DecryptionError)
//   - Content errors: Lookups inside the env text (ErrSectionNotFound, ErrKeyNotFound)
//
// # Usage
//
// Return errors from internal packages:
//
//	if id == "" {
//	    return nil, errors.ErrGistIDNotSet
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := svc.CopySection(ctx, opts)
//	if errors.Is(err, kerrors.ErrSectionNotFound) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("fetching gist %s: %w", id, errors.ErrGistNotFound)
package errors
