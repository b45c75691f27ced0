package workflows

import (
	"context"

	"github.com/PolarWolf314/gistenv/internal/audit"
	"github.com/PolarWolf314/gistenv/internal/envtext"
	kerrors "github.com/PolarWolf314/gistenv/internal/errors"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// DryRun counts the values that would be encrypted without uploading.
	DryRun bool
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	Filename string

	// Encrypted is the number of values that were plaintext before.
	Encrypted int

	// Updated is true when the gist was written.
	Updated bool

	// DryRun indicates whether this was a dry-run (gist not modified).
	DryRun bool
}

// EncryptGist encrypts every plaintext value in the gist in place. Values
// that are already encrypted are left alone, so running it twice is safe.
// The gist is not written when nothing changed.
//
// Returns ErrEncryptionKeyNotSet if the service has no usable key.
func (s *Service) EncryptGist(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	if !s.Codec.Available() {
		return nil, kerrors.ErrEncryptionKeyNotSet
	}

	remote, err := s.Store.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	updated, count, err := envtext.EncryptLines(remote.Content, s.Codec)
	if err != nil {
		return nil, err
	}

	result := &EncryptResult{Filename: remote.Filename, Encrypted: count, DryRun: opts.DryRun}
	if count == 0 || opts.DryRun {
		return result, nil
	}

	if err := s.Store.Update(ctx, remote.Filename, updated); err != nil {
		return nil, err
	}
	result.Updated = true
	s.Log.Infof("Encrypted %d values in %s", count, remote.Filename)

	s.audit(audit.Entry{
		Operation: audit.OpEncrypt,
		Filename:  remote.Filename,
		KeysCount: count,
	})

	return result, nil
}
