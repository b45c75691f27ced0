package workflows

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PolarWolf314/gistenv/internal/audit"
	"github.com/PolarWolf314/gistenv/internal/envfile"
	"github.com/PolarWolf314/gistenv/internal/envtext"
	kerrors "github.com/PolarWolf314/gistenv/internal/errors"
)

// PushOptions configures the push workflow.
type PushOptions struct {
	// Section is the header name to create or replace.
	Section string

	// Content is local env text. Its variables become the section body;
	// any section headers inside it are ignored.
	Content string

	// Encrypt encrypts the body's plaintext values before uploading.
	Encrypt bool

	// DryRun computes the new remote text without uploading it.
	DryRun bool
}

// PushResult contains the outcome of a push operation.
type PushResult struct {
	Section  string
	Filename string

	// KeysCount is the number of variables in the new section.
	KeysCount int

	// Encrypted is how many values were encrypted on the way up.
	Encrypted int

	// Replaced is true when the section already existed.
	Replaced bool

	// Content is the full remote text after the push.
	Content string

	// DryRun indicates whether this was a dry-run (gist not modified).
	DryRun bool
}

// Push replaces one section of the gist with the variables from local text.
// The section is removed wherever it was and re-added at the end. A gist
// without an env file gets a new .env file.
//
// Returns ErrInvalidSectionName if the section cannot be written as a header.
// Returns ErrEncryptionKeyNotSet if Encrypt is set without a usable key.
func (s *Service) Push(ctx context.Context, opts PushOptions) (*PushResult, error) {
	section := strings.TrimSpace(opts.Section)
	if err := validateSectionName(section); err != nil {
		return nil, err
	}
	if opts.Encrypt && !s.Codec.Available() {
		return nil, kerrors.ErrEncryptionKeyNotSet
	}

	local := envtext.Parse(opts.Content, envtext.ParseOptions{})
	body := make([]envtext.Variable, 0, len(local.Variables))
	for _, v := range local.Variables {
		body = append(body, envtext.Variable{Key: v.Key, Value: v.Value})
	}
	text := envtext.Serialize(body)

	result := &PushResult{Section: section, KeysCount: len(body), DryRun: opts.DryRun}

	if opts.Encrypt {
		var err error
		text, result.Encrypted, err = envtext.EncryptLines(text, s.Codec)
		if err != nil {
			return nil, err
		}
		s.Log.Infof("Encrypted %d values", result.Encrypted)
	}

	remote, err := s.Store.Fetch(ctx)
	switch {
	case errors.Is(err, kerrors.ErrNoEnvFile):
		s.Log.Infof("Gist has no env file, creating %s", envfile.DefaultPath)
		result.Filename = envfile.DefaultPath
	case err != nil:
		return nil, err
	default:
		result.Filename = remote.Filename
		result.Replaced = envtext.HasSection(remote.Content, section)
	}

	var current string
	if remote != nil {
		current = remote.Content
	}
	result.Content = envtext.ReplaceSection(current, section, text)

	if opts.DryRun {
		return result, nil
	}

	if err := s.Store.Update(ctx, result.Filename, result.Content); err != nil {
		return nil, err
	}
	s.Log.Infof("Updated %s in gist %s", result.Filename, s.GistID)

	s.audit(audit.Entry{
		Operation: audit.OpPush,
		Filename:  result.Filename,
		Section:   section,
		KeysCount: result.KeysCount,
	})

	return result, nil
}

func validateSectionName(name string) error {
	if name == "" || strings.ContainsAny(name, "[]\r\n") {
		return fmt.Errorf("%w: %q", kerrors.ErrInvalidSectionName, name)
	}
	return nil
}
