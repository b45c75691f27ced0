package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/gistenv/internal/configs"
	"github.com/PolarWolf314/gistenv/internal/secrets"
	"github.com/PolarWolf314/gistenv/internal/ui"
	"github.com/PolarWolf314/gistenv/internal/utils"
	"github.com/spf13/cobra"
)

var (
	configInitGistID        string
	configInitToken         string
	configInitEncryptionKey string
	configInitAPIURL        string
)

func init() {
	configInitCmd.Flags().StringVar(&configInitGistID, "gist-id", "", "ID of the gist holding your .env file")
	configInitCmd.Flags().StringVar(&configInitToken, "token", "", "GitHub token with the gist scope")
	configInitCmd.Flags().StringVar(&configInitEncryptionKey, "encryption-key", "", "shared key for encrypted values (at least 16 characters)")
	configInitCmd.Flags().StringVar(&configInitAPIURL, "api-url", "", "GitHub API URL, for GitHub Enterprise")
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitGistID = ""
	configInitToken = ""
	configInitEncryptionKey = ""
	configInitAPIURL = ""
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the user config file",
	Long: `Writes the gist ID, GitHub token and encryption key to the user config
file, readable only by you. Existing values are kept unless replaced.

Values not given as flags are prompted for when running in a terminal;
press Enter to keep the current value.

Examples:
  gistenv config init
  gistenv config init --gist-id abc123 --token ghp_xxx`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		paths, err := configs.DefaultPaths()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to resolve config directory: %v", err)
		}
		path := paths.UserConfigFile()

		userConfig, err := configs.LoadUserConfig(path)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load user config: %v", err)
		}

		flagsGiven := cmd.Flags().Changed("gist-id") || cmd.Flags().Changed("token") ||
			cmd.Flags().Changed("encryption-key") || cmd.Flags().Changed("api-url")

		if !flagsGiven && utils.IsTerminal() {
			Logger.Debugf("Prompting for configuration values")
			if err := promptUserConfig(userConfig); err != nil {
				return err
			}
		}

		if cmd.Flags().Changed("gist-id") {
			userConfig.Gist.ID = configInitGistID
		}
		if cmd.Flags().Changed("token") {
			userConfig.Gist.Token = configInitToken
		}
		if cmd.Flags().Changed("encryption-key") {
			userConfig.Encryption.Key = configInitEncryptionKey
		}
		if cmd.Flags().Changed("api-url") {
			userConfig.API.URL = configInitAPIURL
		}

		if key := userConfig.Encryption.Key; key != "" && !secrets.IsKeyUsable(key) {
			fmt.Println(ui.Error.Sprint("✗") + " Encryption key must be at least " +
				fmt.Sprint(secrets.MinKeyLength) + " characters")
			return &reportedError{err: fmt.Errorf("encryption key too short")}
		}

		if err := configs.SaveUserConfig(path, userConfig); err != nil {
			return Logger.ErrorfAndReturn("Failed to save user config: %v", err)
		}
		Logger.Infof("Saved user config to %s", path)

		fmt.Println(ui.Success.Sprint("✓") + " Configuration saved to " + ui.Path.Sprint(path))
		if userConfig.Gist.ID == "" {
			fmt.Println(ui.Info.Sprint("→") + " Set a gist ID with " + ui.Code.Sprint("gistenv config init --gist-id <id>"))
		}
		return nil
	},
}

// promptUserConfig asks for each value, keeping the current one on empty input.
func promptUserConfig(cfg *configs.UserConfig) error {
	fmt.Println(ui.Info.Sprint("Welcome to gistenv!") + " Press Enter to keep a value.")
	fmt.Println()

	id, err := utils.ReadLine(os.Stdout, os.Stdin, promptLabel("Gist ID", cfg.Gist.ID))
	if err != nil {
		return err
	}
	if id != "" {
		cfg.Gist.ID = id
	}

	token, err := utils.ReadSecret(promptLabel("GitHub token", utils.MaskSecret(cfg.Gist.Token)))
	if err != nil {
		return err
	}
	if token != "" {
		cfg.Gist.Token = token
	}

	key, err := utils.ReadSecret(promptLabel("Encryption key (optional)", utils.MaskSecret(cfg.Encryption.Key)))
	if err != nil {
		return err
	}
	if key != "" {
		cfg.Encryption.Key = key
	}
	return nil
}

func promptLabel(label, current string) string {
	if current != "" {
		return fmt.Sprintf("%s [%s]: ", label, current)
	}
	return label + ": "
}
