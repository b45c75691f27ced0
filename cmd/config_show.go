package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/gistenv/internal/configs"
	"github.com/PolarWolf314/gistenv/internal/gist"
	"github.com/PolarWolf314/gistenv/internal/secrets"
	"github.com/PolarWolf314/gistenv/internal/ui"
	"github.com/PolarWolf314/gistenv/internal/utils"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

// configView is the displayed form of the configuration. Secrets are masked.
type configView struct {
	GistID         string `json:"gist_id"`
	GistIDSource   string `json:"gist_id_source"`
	GitHubToken    string `json:"github_token"`
	TokenSource    string `json:"github_token_source"`
	EncryptionKey  string `json:"encryption_key"`
	KeySource      string `json:"encryption_key_source"`
	KeyUsable      bool   `json:"encryption_key_usable"`
	APIURL         string `json:"api_url"`
	APIURLSource   string `json:"api_url_source"`
	AuditLogPath   string `json:"audit_log"`
	DotenvPath     string `json:"dotenv_file,omitempty"`
	UserConfigPath string `json:"user_config"`
}

func newConfigView(cfg *configs.Config) configView {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = gist.DefaultAPIURL
	}
	return configView{
		GistID:         cfg.GistID,
		GistIDSource:   string(cfg.Sources.GistID),
		GitHubToken:    utils.MaskSecret(cfg.GitHubToken),
		TokenSource:    string(cfg.Sources.GitHubToken),
		EncryptionKey:  utils.MaskSecret(cfg.EncryptionKey),
		KeySource:      string(cfg.Sources.EncryptionKey),
		KeyUsable:      secrets.IsKeyUsable(cfg.EncryptionKey),
		APIURL:         apiURL,
		APIURLSource:   string(cfg.Sources.APIURL),
		AuditLogPath:   cfg.AuditLogPath,
		DotenvPath:     cfg.DotenvPath,
		UserConfigPath: cfg.UserConfigPath,
	}
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the resolved configuration",
	Long: `Displays each setting, where it came from, and the files gistenv reads.
Tokens and keys are masked.

Examples:
  gistenv config show
  gistenv config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		cfg, err := loadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load configuration: %v", err)
		}
		view := newConfigView(cfg)

		if configShowJSON {
			output, err := json.MarshalIndent(view, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal config to JSON: %v", err)
			}
			fmt.Println(string(output))
			return nil
		}

		fmt.Println(ui.Info.Sprint("Configuration"))
		fmt.Println()
		printSetting("Gist ID:", view.GistID, view.GistIDSource)
		printSetting("Token:", view.GitHubToken, view.TokenSource)
		printSetting("Key:", view.EncryptionKey, view.KeySource)
		if view.EncryptionKey != "" && !view.KeyUsable {
			fmt.Printf("  %-14s %s\n", "", ui.Warning.Sprint("shorter than 16 characters, encryption is disabled"))
		}
		printSetting("API URL:", view.APIURL, view.APIURLSource)
		fmt.Println()
		fmt.Printf("  %-14s %s\n", "Audit log:", ui.Path.Sprint(view.AuditLogPath))
		if view.DotenvPath != "" {
			fmt.Printf("  %-14s %s\n", ".gistenv:", ui.Path.Sprint(view.DotenvPath))
		}
		fmt.Printf("  %-14s %s\n", "User config:", ui.Path.Sprint(view.UserConfigPath))
		return nil
	},
}

func printSetting(label, value, source string) {
	if value == "" {
		fmt.Printf("  %-14s %s\n", label, ui.Muted.Sprint("not set"))
		return
	}
	fmt.Printf("  %-14s %s %s\n", label, ui.Value.Sprint(value), ui.Muted.Sprint(source))
}
