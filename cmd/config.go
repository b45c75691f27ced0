package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the parent of the configuration commands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gistenv configuration",
	Long: `Shows where each setting comes from and writes the user config file.

Settings are resolved in this order, first match wins:
  1. Environment variables (GISTENV_GIST_ID, GISTENV_GITHUB_TOKEN,
     GISTENV_ENCRYPTION_KEY, GISTENV_API_URL; the unprefixed
     GIST_ID, GITHUB_TOKEN and ENCRYPTION_KEY also work)
  2. A .gistenv file in the current directory, or else in your home directory
  3. The user config file written by 'gistenv config init'

Examples:
  gistenv config show
  gistenv config init --gist-id abc123 --token ghp_xxx`,
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

// resetConfigCommandState resets the config commands' global state for testing.
func resetConfigCommandState() {
	resetConfigShowState()
	resetConfigInitState()
}
