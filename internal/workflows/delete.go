package workflows

import (
	"context"
	"strings"

	"github.com/PolarWolf314/gistenv/internal/audit"
	"github.com/PolarWolf314/gistenv/internal/envtext"
)

// DeleteResult contains the outcome of a delete-section operation.
type DeleteResult struct {
	Section  string
	Filename string

	// Removed is false when the gist had no such header; nothing was written.
	Removed bool
}

// DeleteSection removes a section header and its lines from the gist.
func (s *Service) DeleteSection(ctx context.Context, name string) (*DeleteResult, error) {
	section := strings.TrimSpace(name)

	remote, err := s.Store.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	result := &DeleteResult{Section: section, Filename: remote.Filename}
	if section == "" || !envtext.HasSection(remote.Content, section) {
		s.Log.Infof("Section [%s] not found in %s, nothing to delete", section, remote.Filename)
		return result, nil
	}

	updated := envtext.RemoveSectionNamed(remote.Content, section)
	if err := s.Store.Update(ctx, remote.Filename, updated); err != nil {
		return nil, err
	}
	result.Removed = true

	s.audit(audit.Entry{
		Operation: audit.OpDeleteSection,
		Filename:  remote.Filename,
		Section:   section,
	})

	return result, nil
}
