package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/gistenv/internal/audit"
	"github.com/PolarWolf314/gistenv/internal/envfile"
	"github.com/PolarWolf314/gistenv/internal/envtext"
	kerrors "github.com/PolarWolf314/gistenv/internal/errors"
)

// CopySectionOptions configures the copy-section workflow.
type CopySectionOptions struct {
	// Section is the header name to copy.
	Section string

	// Mode is append or replace. Empty means append.
	Mode envfile.Mode

	// OutputPath is the local file to write. Empty means .env.
	OutputPath string

	// Decrypt opens encrypted values before writing them.
	Decrypt bool

	// DryRun computes the resulting file without writing it.
	DryRun bool
}

// CopyKeysOptions configures the copy-keys workflow.
type CopyKeysOptions struct {
	// Keys are the variable names to copy.
	Keys []string

	Mode       envfile.Mode
	OutputPath string
	Decrypt    bool
	DryRun     bool
}

// CopyResult contains the outcome of a copy operation.
type CopyResult struct {
	// Variables are the remote variables selected for copying.
	Variables []envtext.Variable

	// Write describes what was (or would be) written locally.
	Write *envfile.WriteResult

	// Missing lists requested keys that are not in the gist (copy-keys only).
	Missing []string

	// Preview is the resulting file content. Only set for dry runs.
	Preview string

	// DryRun indicates whether this was a dry-run (no files modified).
	DryRun bool
}

// CopySection writes every variable of one section into a local env file.
//
// Returns ErrSectionNotFound if the section has no variables.
// Returns ErrInvalidMode for an unknown mode.
func (s *Service) CopySection(ctx context.Context, opts CopySectionOptions) (*CopyResult, error) {
	section := strings.TrimSpace(opts.Section)

	res, err := s.Fetch(ctx, opts.Decrypt)
	if err != nil {
		return nil, err
	}

	vars := res.Document.InSection(section)
	if len(vars) == 0 {
		return nil, fmt.Errorf("%w: %q", kerrors.ErrSectionNotFound, section)
	}
	s.Log.Infof("Section [%s] has %d variables", section, len(vars))

	result, err := s.writeLocal(vars, opts.OutputPath, opts.Mode, opts.DryRun)
	if err != nil {
		return nil, err
	}

	if !opts.DryRun {
		s.audit(audit.Entry{
			Operation:  audit.OpCopySection,
			Filename:   res.Filename,
			Section:    section,
			KeysCount:  result.Write.Written,
			Mode:       string(result.Write.Mode),
			OutputPath: result.Write.Path,
		})
	}

	return result, nil
}

// CopyKeys writes the named variables, whatever their section, into a local
// env file. Keys absent from the gist are reported in the result.
//
// Returns ErrKeyNotFound if none of the keys exist.
// Returns ErrInvalidMode for an unknown mode.
func (s *Service) CopyKeys(ctx context.Context, opts CopyKeysOptions) (*CopyResult, error) {
	res, err := s.Fetch(ctx, opts.Decrypt)
	if err != nil {
		return nil, err
	}

	vars := res.Document.WithKeys(opts.Keys...)
	if len(vars) == 0 {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrKeyNotFound, strings.Join(opts.Keys, ", "))
	}

	result, err := s.writeLocal(vars, opts.OutputPath, opts.Mode, opts.DryRun)
	if err != nil {
		return nil, err
	}

	found := envtext.ToMap(vars)
	for _, key := range opts.Keys {
		if _, ok := found[key]; !ok {
			result.Missing = append(result.Missing, key)
		}
	}

	if !opts.DryRun {
		s.audit(audit.Entry{
			Operation:  audit.OpCopyKeys,
			Filename:   res.Filename,
			KeysCount:  result.Write.Written,
			Mode:       string(result.Write.Mode),
			OutputPath: result.Write.Path,
		})
	}

	return result, nil
}

func (s *Service) writeLocal(vars []envtext.Variable, path string, mode envfile.Mode, dryRun bool) (*CopyResult, error) {
	if path == "" {
		path = envfile.DefaultPath
	}
	if mode == "" {
		mode = envfile.ModeAppend
	}

	result := &CopyResult{Variables: vars, DryRun: dryRun}

	if dryRun {
		preview, write, err := s.Files.Render(vars, path, mode)
		if err != nil {
			return nil, err
		}
		result.Write = write
		result.Preview = preview
		return result, nil
	}

	write, err := s.Files.Write(vars, path, mode)
	if err != nil {
		return nil, err
	}
	result.Write = write
	s.Log.Infof("Wrote %d variables to %s (%s)", write.Written, write.Path, write.Mode)
	for _, key := range write.Skipped {
		s.Log.Warnf("%s already defined in %s, skipped", key, path)
	}

	return result, nil
}
