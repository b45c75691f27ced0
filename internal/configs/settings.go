package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds the per-user locations gistenv reads and writes.
type Paths struct {
	ConfigDir string
	DataDir   string
}

// DefaultPaths resolves the user config directory and the XDG data directory,
// falling back to ~/.local/share when XDG_DATA_HOME is unset.
func DefaultPaths() (*Paths, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("error getting config directory: %w", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("error getting home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return &Paths{
		ConfigDir: filepath.Join(configDir, "gistenv"),
		DataDir:   filepath.Join(dataDir, "gistenv"),
	}, nil
}

// UserConfigFile is the TOML config written by `gistenv config init`.
func (p *Paths) UserConfigFile() string {
	return filepath.Join(p.ConfigDir, "config.toml")
}

// AuditLogFile is the JSON Lines history of gistenv operations.
func (p *Paths) AuditLogFile() string {
	return filepath.Join(p.DataDir, "audit.jsonl")
}
