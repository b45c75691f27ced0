package errors

import "errors"

// Remote errors indicate the Gist could not be read or written.
var (
	// ErrGistNotFound indicates the configured Gist does not exist or is not visible.
	ErrGistNotFound = errors.New("gist not found")

	// ErrUnauthorized indicates the GitHub token is missing, invalid, or lacks the gist scope.
	ErrUnauthorized = errors.New("invalid or insufficient GitHub token")

	// ErrNoEnvFile indicates the Gist contains no file named .env or ending in .env.
	ErrNoEnvFile = errors.New("no .env file found in the gist")

	// ErrRemoteRequest indicates the GitHub API returned an unexpected response.
	ErrRemoteRequest = errors.New("github api request failed")
)

// Configuration errors indicate required settings are missing or invalid.
var (
	// ErrGistIDNotSet indicates no Gist ID was configured.
	ErrGistIDNotSet = errors.New("gist id not set")

	// ErrEncryptionKeyNotSet indicates no usable encryption key is configured.
	ErrEncryptionKeyNotSet = errors.New("encryption key not set or shorter than 16 characters")

	// ErrInvalidMode indicates an unknown write mode was requested.
	ErrInvalidMode = errors.New("invalid write mode")

	// ErrInvalidDateFormat indicates a date filter is not in YYYY-MM-DD format.
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// Cryptographic errors indicate failures during encryption or decryption operations.
var (
	// ErrDecryptFailed indicates a value could not be decrypted.
	ErrDecryptFailed = errors.New("failed to decrypt value")

	// ErrEncryptFailed indicates a value could not be encrypted.
	ErrEncryptFailed = errors.New("failed to encrypt value")
)

// Content errors indicate a lookup inside the env text found nothing.
var (
	// ErrSectionNotFound indicates the requested section has no variables.
	ErrSectionNotFound = errors.New("section not found")

	// ErrKeyNotFound indicates none of the requested keys exist.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidSectionName indicates a section name that cannot be written as a header.
	ErrInvalidSectionName = errors.New("invalid section name")
)

// Input errors indicate a command could not obtain what it needs from the user.
var (
	// ErrNotInteractive indicates a prompt was needed but stdin is not a terminal.
	ErrNotInteractive = errors.New("stdin is not a terminal")

	// ErrInvalidChoice indicates an answer to a pick list named no listed option.
	ErrInvalidChoice = errors.New("invalid choice")
)

// DecryptionError reports why an encrypted value could not be opened.
// It matches ErrDecryptFailed with errors.Is.
type DecryptionError struct {
	Err error
}

func (e *DecryptionError) Error() string {
	if e.Err == nil {
		return ErrDecryptFailed.Error()
	}
	return ErrDecryptFailed.Error() + ": " + e.Err.Error()
}

func (e *DecryptionError) Unwrap() error {
	return e.Err
}

func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryptFailed
}
