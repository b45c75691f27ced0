package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/gistenv/internal/envfile"
	kerrors "github.com/PolarWolf314/gistenv/internal/errors"
	"github.com/PolarWolf314/gistenv/internal/ui"
	"github.com/PolarWolf314/gistenv/internal/utils"
	"github.com/PolarWolf314/gistenv/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	copyMode   string
	copyOutput string
	copyRaw    bool
	copyDryRun bool
)

func init() {
	for _, c := range []*cobra.Command{copySectionCmd, copyKeysCmd} {
		c.Flags().StringVarP(&copyMode, "mode", "m", string(envfile.ModeAppend), "how to treat an existing file: append or replace")
		c.Flags().StringVarP(&copyOutput, "output", "o", envfile.DefaultPath, "file to write")
		c.Flags().BoolVar(&copyRaw, "raw", false, "copy encrypted values as stored instead of decrypting them")
		c.Flags().BoolVar(&copyDryRun, "dry-run", false, "print the resulting file without writing it")
	}
}

// resetCopyCommandState resets the copy commands' global state for testing.
func resetCopyCommandState() {
	copyMode = string(envfile.ModeAppend)
	copyOutput = envfile.DefaultPath
	copyRaw = false
	copyDryRun = false
}

var copySectionCmd = &cobra.Command{
	Use:   "copy-section [section]",
	Short: "Copy all variables from a section into a local .env file",
	Long: `Copies every variable of one gist section into a local env file.

In append mode (the default) the variables are added below a marker
comment; variables outside any section are skipped when the file already
defines them. Replace mode overwrites the file.

Without a section name, gistenv lists the sections to pick from and asks
for the mode and output file not given as flags. This needs a terminal.

Examples:
  gistenv copy-section
  gistenv copy-section Production
  gistenv copy-section Development --mode replace --output .env.local
  gistenv copy-section Production --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting copy-section command")

		if len(args) == 0 {
			section, err := pickSection(cmd)
			if err != nil {
				fmt.Println(formatError(err))
				return &reportedError{err: err}
			}
			args = []string{section}
		}
		Logger.Debugf("Flags: mode=%s, output=%s, raw=%t, dry-run=%t", copyMode, copyOutput, copyRaw, copyDryRun)
		spinner, cleanup := startSpinner("Copying section...", verbose)
		defer cleanup()

		mode, err := envfile.ParseMode(copyMode)
		if err != nil {
			return fail(spinner, err)
		}

		svc, err := newService()
		if err != nil {
			return fail(spinner, err)
		}

		result, err := svc.CopySection(cmd.Context(), workflows.CopySectionOptions{
			Section:    args[0],
			Mode:       mode,
			OutputPath: copyOutput,
			Decrypt:    !copyRaw,
			DryRun:     copyDryRun,
		})
		if err != nil {
			return fail(spinner, err)
		}

		spinner.FinalMSG = formatCopyResult(result, "Variables from section "+ui.Section.Sprint(strings.TrimSpace(args[0])))
		return nil
	},
}

var copyKeysCmd = &cobra.Command{
	Use:   "copy-keys [key]...",
	Short: "Copy specific variables into a local .env file",
	Long: `Copies the named variables into a local env file. A key that appears in
several sections is copied once per section, under its section header.

Without keys, gistenv lists the keys to pick from and asks for the mode
and output file not given as flags. This needs a terminal.

Examples:
  gistenv copy-keys
  gistenv copy-keys API_URL DATABASE_URL
  gistenv copy-keys API_KEY --output .env.test --mode replace`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting copy-keys command")

		if len(args) == 0 {
			keys, err := pickKeys(cmd)
			if err != nil {
				fmt.Println(formatError(err))
				return &reportedError{err: err}
			}
			args = keys
		}
		Logger.Debugf("Keys: %v, mode=%s, output=%s", args, copyMode, copyOutput)
		spinner, cleanup := startSpinner("Copying variables...", verbose)
		defer cleanup()

		mode, err := envfile.ParseMode(copyMode)
		if err != nil {
			return fail(spinner, err)
		}

		svc, err := newService()
		if err != nil {
			return fail(spinner, err)
		}

		result, err := svc.CopyKeys(cmd.Context(), workflows.CopyKeysOptions{
			Keys:       args,
			Mode:       mode,
			OutputPath: copyOutput,
			Decrypt:    !copyRaw,
			DryRun:     copyDryRun,
		})
		if err != nil {
			return fail(spinner, err)
		}

		msg := formatCopyResult(result, "Variables")
		if len(result.Missing) > 0 {
			msg = ui.EnsureNewline(msg) + ui.Warning.Sprint("⚠") + " Not found in the gist: " + strings.Join(result.Missing, ", ")
		}
		spinner.FinalMSG = msg
		return nil
	},
}

// pickSection asks which section to copy, then for the options left unset.
func pickSection(cmd *cobra.Command) (string, error) {
	if !utils.IsTerminal() {
		return "", fmt.Errorf("no section given: %w", kerrors.ErrNotInteractive)
	}

	sections, err := listForPicker(cmd.Context(), func(ctx context.Context, svc *workflows.Service) ([]string, error) {
		return svc.ListSections(ctx)
	})
	if err != nil {
		return "", err
	}
	if len(sections) == 0 {
		return "", fmt.Errorf("%w: the gist has no sections", kerrors.ErrSectionNotFound)
	}

	p := utils.NewPrompter(os.Stdout, os.Stdin)
	section, err := p.Choose(ui.Info.Sprint("Select section to copy:"), sections, "")
	if err != nil {
		return "", err
	}
	return section, promptCopyOptions(cmd, p)
}

// pickKeys asks which keys to copy, then for the options left unset.
func pickKeys(cmd *cobra.Command) ([]string, error) {
	if !utils.IsTerminal() {
		return nil, fmt.Errorf("no keys given: %w", kerrors.ErrNotInteractive)
	}

	keys, err := listForPicker(cmd.Context(), func(ctx context.Context, svc *workflows.Service) ([]string, error) {
		return svc.ListKeys(ctx)
	})
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: the gist has no variables", kerrors.ErrKeyNotFound)
	}

	p := utils.NewPrompter(os.Stdout, os.Stdin)
	picked, err := p.ChooseMany(ui.Info.Sprint("Select keys to copy:"), keys)
	if err != nil {
		return nil, err
	}
	return picked, promptCopyOptions(cmd, p)
}

func listForPicker(ctx context.Context, list func(context.Context, *workflows.Service) ([]string, error)) ([]string, error) {
	_, cleanup := startSpinner("Fetching gist...", verbose)
	defer cleanup()

	svc, err := newService()
	if err != nil {
		return nil, err
	}
	return list(ctx, svc)
}

// promptCopyOptions asks for mode and output path unless set by flags. The
// flag values are offered as defaults.
func promptCopyOptions(cmd *cobra.Command, p *utils.Prompter) error {
	if !cmd.Flags().Changed("mode") {
		modes := []string{string(envfile.ModeAppend), string(envfile.ModeReplace)}
		mode, err := p.Choose(ui.Info.Sprint("How to add variables:"), modes, strings.ToLower(copyMode))
		if err != nil {
			return err
		}
		copyMode = mode
	}
	if !cmd.Flags().Changed("output") {
		output, err := p.Line(ui.Info.Sprint("Output file"), copyOutput)
		if err != nil {
			return err
		}
		copyOutput = output
	}
	return nil
}

func formatCopyResult(result *workflows.CopyResult, subject string) string {
	w := result.Write
	if result.DryRun {
		return ui.Info.Sprint("ℹ") + " Dry run: " + ui.Path.Sprint(w.Path) + " would contain:\n\n" + result.Preview
	}

	msg := ui.Success.Sprint("✓") + " " + subject + " copied to " + ui.Path.Sprint(w.Path) +
		" " + ui.Muted.Sprintf("%d %s, %s", w.Written, utils.Plural(w.Written, "variable"), w.Mode)
	if len(w.Skipped) > 0 {
		msg += "\n" + ui.Warning.Sprint("⚠") + " Already defined, skipped: " + strings.Join(w.Skipped, ", ")
	}
	return msg
}
