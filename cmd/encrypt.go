package cmd

import (
	"github.com/PolarWolf314/gistenv/internal/ui"
	"github.com/PolarWolf314/gistenv/internal/utils"
	"github.com/PolarWolf314/gistenv/internal/workflows"
	"github.com/spf13/cobra"
)

var encryptDryRun bool

func init() {
	encryptCmd.Flags().BoolVar(&encryptDryRun, "dry-run", false, "count plaintext values without changing the gist")
}

// resetEncryptCommandState resets the encrypt command's global state for testing.
func resetEncryptCommandState() {
	encryptDryRun = false
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt every plaintext value in the gist",
	Long: `Encrypts every plaintext value in the gist's env file with the configured
encryption key. Values that are already encrypted are left as they are,
so running it again is safe.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		spinner, cleanup := startSpinner("Encrypting gist values...", verbose)
		defer cleanup()

		svc, err := newService()
		if err != nil {
			return fail(spinner, err)
		}

		result, err := svc.EncryptGist(cmd.Context(), workflows.EncryptOptions{DryRun: encryptDryRun})
		if err != nil {
			return fail(spinner, err)
		}

		noun := utils.Plural(result.Encrypted, "value")
		switch {
		case result.Encrypted == 0:
			spinner.FinalMSG = ui.Success.Sprint("✓") + " All values in " + ui.Path.Sprint(result.Filename) + " are already encrypted"
		case result.DryRun:
			spinner.FinalMSG = ui.Info.Sprint("ℹ") + " Dry run: " + ui.Muted.Sprintf("%d %s", result.Encrypted, noun) +
				" in " + ui.Path.Sprint(result.Filename) + " would be encrypted"
		default:
			spinner.FinalMSG = ui.Success.Sprint("✓") + " Encrypted " + ui.Muted.Sprintf("%d %s", result.Encrypted, noun) +
				" in " + ui.Path.Sprint(result.Filename)
		}
		return nil
	},
}
