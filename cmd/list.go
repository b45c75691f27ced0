package cmd

import (
	"strings"

	"github.com/PolarWolf314/gistenv/internal/envtext"
	"github.com/PolarWolf314/gistenv/internal/ui"
	"github.com/spf13/cobra"
)

var listRaw bool

func init() {
	listCmd.Flags().BoolVar(&listRaw, "raw", false, "show encrypted values as stored instead of decrypting them")
}

// resetListCommandState resets the list command's global state for testing.
func resetListCommandState() {
	listRaw = false
}

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List all sections in the gist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting sections command")
		spinner, cleanup := startSpinner("Fetching sections...", verbose)
		defer cleanup()

		svc, err := newService()
		if err != nil {
			return fail(spinner, err)
		}

		sections, err := svc.ListSections(cmd.Context())
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Found %d sections", len(sections))

		if len(sections) == 0 {
			spinner.FinalMSG = ui.Warning.Sprint("⚠") + " No sections found in your gist."
			return nil
		}

		lines := []string{"Available sections:"}
		for _, s := range sections {
			lines = append(lines, ui.Bullet(ui.Section, s))
		}
		spinner.FinalMSG = strings.Join(lines, "\n")
		return nil
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List all variable names in the gist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys command")
		spinner, cleanup := startSpinner("Fetching keys...", verbose)
		defer cleanup()

		svc, err := newService()
		if err != nil {
			return fail(spinner, err)
		}

		keys, err := svc.ListKeys(cmd.Context())
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Found %d keys", len(keys))

		if len(keys) == 0 {
			spinner.FinalMSG = ui.Warning.Sprint("⚠") + " No variables found in your gist."
			return nil
		}

		lines := []string{"Available keys:"}
		for _, k := range keys {
			lines = append(lines, ui.Bullet(ui.Key, k))
		}
		spinner.FinalMSG = strings.Join(lines, "\n")
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variables in the gist, grouped by section",
	Long: `Lists every variable in the gist under its section header.

Encrypted values are decrypted when an encryption key is configured.
Use --raw to show them exactly as stored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")
		Logger.Debugf("Flags: raw=%t", listRaw)
		spinner, cleanup := startSpinner("Fetching variables...", verbose)
		defer cleanup()

		svc, err := newService()
		if err != nil {
			return fail(spinner, err)
		}

		vars, err := svc.ListVariables(cmd.Context(), !listRaw)
		if err != nil {
			return fail(spinner, err)
		}

		if len(vars) == 0 {
			spinner.FinalMSG = ui.Warning.Sprint("⚠") + " No variables found in your gist."
			return nil
		}

		spinner.FinalMSG = formatVariables(vars)
		return nil
	},
}

// formatVariables renders vars grouped under a line per section change.
func formatVariables(vars []envtext.Variable) string {
	var b strings.Builder
	for i, v := range vars {
		if i == 0 || v.Section != vars[i-1].Section {
			if i > 0 {
				b.WriteString("\n")
			}
			if v.HasSection() {
				b.WriteString(ui.Section.Sprint(v.Section))
			} else {
				b.WriteString(ui.Muted.Sprint("no section"))
			}
			b.WriteString("\n")
		}
		b.WriteString("  " + ui.Key.Sprint(v.Key) + "=" + ui.Value.Sprint(v.Value) + "\n")
	}
	return b.String()
}
