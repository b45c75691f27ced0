package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// DotenvName is the per-project or per-user dotenv file holding gistenv
// settings.
const DotenvName = ".gistenv"

// Source names where a configuration value came from.
type Source string

const (
	SourceUnset      Source = "unset"
	SourceEnv        Source = "environment"
	SourceDotenv     Source = "dotenv"
	SourceUserConfig Source = "user config"
)

// Config is the resolved configuration for one gistenv invocation.
type Config struct {
	GistID        string
	GitHubToken   string
	EncryptionKey string
	APIURL        string
	AuditLogPath  string

	Sources Sources
	// DotenvPath is the .gistenv file that was read, if any.
	DotenvPath string
	// UserConfigPath is where the TOML config lives, whether or not it exists.
	UserConfigPath string
}

// Sources records which source supplied each Config field.
type Sources struct {
	GistID        Source
	GitHubToken   Source
	EncryptionKey Source
	APIURL        Source
}

// UserConfig is the on-disk TOML layout.
type UserConfig struct {
	Gist       GistSettings       `toml:"gist"`
	Encryption EncryptionSettings `toml:"encryption"`
	API        APISettings        `toml:"api"`
}

type GistSettings struct {
	ID    string `toml:"id,omitempty"`
	Token string `toml:"token,omitempty"`
}

type EncryptionSettings struct {
	Key string `toml:"key,omitempty"`
}

type APISettings struct {
	URL string `toml:"url,omitempty"`
}

// Environment variable names, most specific first.
var (
	GistIDVars        = []string{"GISTENV_GIST_ID", "GIST_ID"}
	GitHubTokenVars   = []string{"GISTENV_GITHUB_TOKEN", "GITHUB_TOKEN"}
	EncryptionKeyVars = []string{"GISTENV_ENCRYPTION_KEY", "ENCRYPTION_KEY"}
	APIURLVars        = []string{"GISTENV_API_URL"}
	AuditLogVar       = "GISTENV_AUDIT_LOG"
)

// LoadOptions controls where Load looks. Zero values use the real process
// environment, working directory, and home directory.
type LoadOptions struct {
	Getenv  func(string) string
	WorkDir string
	HomeDir string
	Paths   *Paths
}

// Load resolves the configuration. Environment variables win over the
// .gistenv file, which wins over the user TOML config.
func Load(opts LoadOptions) (*Config, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	paths := opts.Paths
	if paths == nil {
		var err error
		if paths, err = DefaultPaths(); err != nil {
			return nil, err
		}
	}

	workDir := opts.WorkDir
	if workDir == "" {
		if wd, err := os.Getwd(); err == nil {
			workDir = wd
		}
	}
	homeDir := opts.HomeDir
	if homeDir == "" {
		if hd, err := os.UserHomeDir(); err == nil {
			homeDir = hd
		}
	}

	cfg := &Config{UserConfigPath: paths.UserConfigFile()}

	user, err := LoadUserConfig(cfg.UserConfigPath)
	if err != nil {
		return nil, err
	}

	dotenv := map[string]string{}
	if path := FindDotenv(workDir, homeDir); path != "" {
		if dotenv, err = godotenv.Read(path); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		cfg.DotenvPath = path
	}

	resolve := func(names []string, fromUser string) (string, Source) {
		if v := firstSet(getenv, names); v != "" {
			return v, SourceEnv
		}
		if v := firstSet(mapLookup(dotenv), names); v != "" {
			return v, SourceDotenv
		}
		if strings.TrimSpace(fromUser) != "" {
			return strings.TrimSpace(fromUser), SourceUserConfig
		}
		return "", SourceUnset
	}

	cfg.GistID, cfg.Sources.GistID = resolve(GistIDVars, user.Gist.ID)
	cfg.GitHubToken, cfg.Sources.GitHubToken = resolve(GitHubTokenVars, user.Gist.Token)
	cfg.EncryptionKey, cfg.Sources.EncryptionKey = resolve(EncryptionKeyVars, user.Encryption.Key)
	cfg.APIURL, cfg.Sources.APIURL = resolve(APIURLVars, user.API.URL)

	cfg.AuditLogPath = strings.TrimSpace(getenv(AuditLogVar))
	if cfg.AuditLogPath == "" {
		cfg.AuditLogPath = paths.AuditLogFile()
	}

	return cfg, nil
}

// FindDotenv returns the .gistenv in workDir, else the one in homeDir, else "".
func FindDotenv(workDir, homeDir string) string {
	for _, dir := range []string{workDir, homeDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, DotenvName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadUserConfig reads the TOML config at path. A missing file yields an empty
// config.
func LoadUserConfig(path string) (*UserConfig, error) {
	config := &UserConfig{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig writes config to path.
func SaveUserConfig(path string, config *UserConfig) error {
	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}
	return nil
}

func firstSet(lookup func(string) string, names []string) string {
	for _, name := range names {
		if v := strings.TrimSpace(lookup(name)); v != "" {
			return v
		}
	}
	return ""
}

func mapLookup(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}
