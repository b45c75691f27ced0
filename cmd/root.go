package cmd

import (
	logger "github.com/PolarWolf314/gistenv/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// GistenvCmd is the root command.
	GistenvCmd = &cobra.Command{
		Use:   "gistenv",
		Short: "Sync .env sections with a GitHub Gist",
		Long: `gistenv keeps named sections of environment variables in a GitHub Gist
and copies them into local .env files.

The gist holds one .env file split into sections:

  # [Production]
  API_URL=https://api.example.com

  # [Development]
  API_URL=http://localhost:3000

Values can be encrypted individually with a shared key (ENCRYPTION_KEY).

Configuration is read from environment variables, a .gistenv file, or
the user config written by 'gistenv config init'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
	}
)

func init() {
	GistenvCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	GistenvCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	GistenvCmd.AddCommand(sectionsCmd)
	GistenvCmd.AddCommand(keysCmd)
	GistenvCmd.AddCommand(listCmd)
	GistenvCmd.AddCommand(copySectionCmd)
	GistenvCmd.AddCommand(copyKeysCmd)
	GistenvCmd.AddCommand(pushCmd)
	GistenvCmd.AddCommand(deleteSectionCmd)
	GistenvCmd.AddCommand(encryptCmd)
	GistenvCmd.AddCommand(logCmd)
	GistenvCmd.AddCommand(ConfigCmd)
}

// Helper functions for testing

// GetGistenvCmd returns the root command for testing.
func GetGistenvCmd() *cobra.Command {
	return GistenvCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	resetListCommandState()
	resetCopyCommandState()
	resetPushCommandState()
	resetEncryptCommandState()
	resetLogCommandState()
	resetConfigCommandState()
	resetCobraFlagState(GistenvCmd)
}

// resetCobraFlagState clears the Changed mark on every flag so a command
// tree can be executed more than once in a test binary.
func resetCobraFlagState(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, child := range cmd.Commands() {
		resetCobraFlagState(child)
	}
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
