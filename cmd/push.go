package cmd

import (
	"github.com/PolarWolf314/gistenv/internal/envfile"
	"github.com/PolarWolf314/gistenv/internal/ui"
	"github.com/PolarWolf314/gistenv/internal/utils"
	"github.com/PolarWolf314/gistenv/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	pushFile    string
	pushEncrypt bool
	pushDryRun  bool
)

func init() {
	pushCmd.Flags().StringVarP(&pushFile, "file", "f", envfile.DefaultPath, "local env file to upload, or - for stdin")
	pushCmd.Flags().BoolVarP(&pushEncrypt, "encrypt", "e", false, "encrypt values before uploading")
	pushCmd.Flags().BoolVar(&pushDryRun, "dry-run", false, "print the new gist content without uploading it")
}

// resetPushCommandState resets the push command's global state for testing.
func resetPushCommandState() {
	pushFile = envfile.DefaultPath
	pushEncrypt = false
	pushDryRun = false
}

var pushCmd = &cobra.Command{
	Use:   "push <section>",
	Short: "Upload a local env file as a gist section",
	Long: `Replaces one section of the gist with the variables from a local env
file. The section is created if it does not exist; either way it ends up at
the end of the gist file. Section headers inside the local file are ignored.

Examples:
  gistenv push Development
  gistenv push Production --file .env.production --encrypt
  cat .env | gistenv push Staging --file -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting push command")
		Logger.Debugf("Flags: file=%s, encrypt=%t, dry-run=%t", pushFile, pushEncrypt, pushDryRun)
		spinner, cleanup := startSpinner("Pushing section...", verbose)
		defer cleanup()

		content, err := utils.ReadInputFile(pushFile)
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Debugf("Read %d bytes from %s", len(content), pushFile)

		svc, err := newService()
		if err != nil {
			return fail(spinner, err)
		}

		result, err := svc.Push(cmd.Context(), workflows.PushOptions{
			Section: args[0],
			Content: string(content),
			Encrypt: pushEncrypt,
			DryRun:  pushDryRun,
		})
		if err != nil {
			return fail(spinner, err)
		}

		if result.DryRun {
			spinner.FinalMSG = ui.Info.Sprint("ℹ") + " Dry run: " + ui.Path.Sprint(result.Filename) + " would contain:\n\n" + result.Content
			return nil
		}

		verb := "created"
		if result.Replaced {
			verb = "replaced"
		}
		msg := ui.Success.Sprint("✓") + " Section " + ui.Section.Sprint(result.Section) + " " + verb + " " +
			ui.Muted.Sprintf("%d %s", result.KeysCount, utils.Plural(result.KeysCount, "variable"))
		if result.Encrypted > 0 {
			msg += "\n" + ui.Info.Sprint("→") + " " + ui.Muted.Sprintf("%d %s encrypted", result.Encrypted, utils.Plural(result.Encrypted, "value"))
		}
		spinner.FinalMSG = msg
		return nil
	},
}
