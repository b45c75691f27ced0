package cmd

import (
	"github.com/PolarWolf314/gistenv/internal/ui"
	"github.com/spf13/cobra"
)

var deleteSectionCmd = &cobra.Command{
	Use:   "delete-section <section>",
	Short: "Remove a section from the gist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting delete-section command")
		spinner, cleanup := startSpinner("Deleting section...", verbose)
		defer cleanup()

		svc, err := newService()
		if err != nil {
			return fail(spinner, err)
		}

		result, err := svc.DeleteSection(cmd.Context(), args[0])
		if err != nil {
			return fail(spinner, err)
		}

		if !result.Removed {
			spinner.FinalMSG = ui.Warning.Sprint("⚠") + " Section " + ui.Section.Sprint(result.Section) +
				" not found in " + ui.Path.Sprint(result.Filename) + ", nothing changed"
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Section " + ui.Section.Sprint(result.Section) + " deleted"
		return nil
	},
}
