package workflows

import (
	"github.com/PolarWolf314/gistenv/internal/audit"
	"github.com/PolarWolf314/gistenv/internal/configs"
	"github.com/PolarWolf314/gistenv/internal/envfile"
	"github.com/PolarWolf314/gistenv/internal/gist"
	logger "github.com/PolarWolf314/gistenv/internal/logging"
	"github.com/PolarWolf314/gistenv/internal/secrets"
)

// Service runs gistenv operations against one gist.
type Service struct {
	Store gist.Store
	Files *envfile.Merger
	Codec secrets.Codec
	Log   logger.Logger

	// GistID is recorded in audit entries.
	GistID string
	// AuditPath is the audit log file. Empty disables auditing.
	AuditPath string
}

// NewService builds a Service talking to the GitHub API with the settings
// in cfg.
//
// Returns ErrGistIDNotSet if cfg has no gist ID.
func NewService(cfg *configs.Config, log logger.Logger) (*Service, error) {
	client, err := gist.NewClient(gist.Options{
		GistID: cfg.GistID,
		Token:  cfg.GitHubToken,
		APIURL: cfg.APIURL,
	})
	if err != nil {
		return nil, err
	}

	return &Service{
		Store:     client,
		Files:     envfile.NewMerger(),
		Codec:     secrets.NewCodec(cfg.EncryptionKey),
		Log:       log,
		GistID:    cfg.GistID,
		AuditPath: cfg.AuditLogPath,
	}, nil
}

func (s *Service) audit(entry audit.Entry) {
	entry.Gist = s.GistID
	audit.Log(s.AuditPath, entry)
	s.Log.Debugf("Recorded %s in audit log %s", entry.Operation, s.AuditPath)
}
