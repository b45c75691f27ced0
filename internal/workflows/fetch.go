package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/gistenv/internal/envtext"
)

// FetchResult is the parsed env file of the gist.
type FetchResult struct {
	// Filename is the env file's name inside the gist.
	Filename string

	// Content is the raw text as stored remotely.
	Content string

	// Document holds the parsed variables and any diagnostics.
	Document *envtext.Document
}

// Fetch downloads and parses the gist's env file. When decrypt is set and
// the service has a usable key, encrypted values are opened; values that
// fail to decrypt stay as their ENC: token and are reported as diagnostics.
//
// Returns ErrGistNotFound, ErrUnauthorized, ErrNoEnvFile or ErrRemoteRequest
// from the store.
func (s *Service) Fetch(ctx context.Context, decrypt bool) (*FetchResult, error) {
	s.Log.Debugf("Fetching gist %s", s.GistID)

	remote, err := s.Store.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.Log.Infof("Fetched %s (%d bytes)", remote.Filename, len(remote.Content))

	if decrypt && !s.Codec.Available() {
		s.Log.Debugf("No usable encryption key, encrypted values are shown as stored")
	}

	doc := envtext.Parse(remote.Content, envtext.ParseOptions{Decrypt: decrypt, Codec: s.Codec})
	for _, d := range doc.Diagnostics {
		if d.Kind == envtext.DecryptFailed {
			s.Log.WarnfAlways("%s: %s", remote.Filename, describeDiagnostic(d))
		} else {
			s.Log.Debugf("%s: skipped %s", remote.Filename, describeDiagnostic(d))
		}
	}

	return &FetchResult{Filename: remote.Filename, Content: remote.Content, Document: doc}, nil
}

// ListSections returns the section names in first-appearance order.
func (s *Service) ListSections(ctx context.Context) ([]string, error) {
	res, err := s.Fetch(ctx, false)
	if err != nil {
		return nil, err
	}
	return res.Document.Sections(), nil
}

// ListKeys returns the distinct variable names in first-appearance order.
func (s *Service) ListKeys(ctx context.Context) ([]string, error) {
	res, err := s.Fetch(ctx, false)
	if err != nil {
		return nil, err
	}
	return res.Document.Keys(), nil
}

// ListVariables returns every variable in document order.
func (s *Service) ListVariables(ctx context.Context, decrypt bool) ([]envtext.Variable, error) {
	res, err := s.Fetch(ctx, decrypt)
	if err != nil {
		return nil, err
	}
	return res.Document.Variables, nil
}

func describeDiagnostic(d envtext.Diagnostic) string {
	switch d.Kind {
	case envtext.DecryptFailed:
		return fmt.Sprintf("line %d: could not decrypt %s: %v", d.Line, d.Key, d.Err)
	default:
		return fmt.Sprintf("line %d: %s", d.Line, d.Kind)
	}
}
