package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PolarWolf314/gistenv/internal/audit"
	"github.com/PolarWolf314/gistenv/internal/ui"
	"github.com/PolarWolf314/gistenv/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logOperation string
	logSection   string
	logSince     string
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation type (comma-separated)")
	logCmd.Flags().StringVar(&logSection, "section", "", "filter by section name")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries after date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logOperation = ""
	logSection = ""
	logSince = ""
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the local history of gistenv operations",
	Long: `Displays the audit log of operations run from this machine.

Examples:
  gistenv log                          # View full log
  gistenv log -n 10                    # Last 10 entries
  gistenv log --reverse                # Most recent first
  gistenv log --operation push,encrypt # Filter by operation
  gistenv log --section Production     # Filter by section
  gistenv log --since 2024-01-01       # Filter by date
  gistenv log --json                   # JSON output`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		Logger.Debugf("Reading audit log %s", cfg.AuditLogPath)

		result, err := workflows.ReadLog(cmd.Context(), workflows.LogOptions{
			Path:       cfg.AuditLogPath,
			Limit:      logLimit,
			Reverse:    logReverse,
			Operations: logOperation,
			Section:    logSection,
			Since:      logSince,
		})
		if err != nil {
			fmt.Println(formatError(err))
			return &reportedError{err: err}
		}
		Logger.Debugf("After filtering: %d of %d entries", len(result.Entries), result.TotalEntriesBeforeFilter)

		if logJSON {
			return outputLogJSON(result.Entries)
		}

		if len(result.Entries) == 0 {
			if result.TotalEntriesBeforeFilter == 0 {
				fmt.Println("No audit log entries found.")
			} else {
				fmt.Println("No audit log entries found matching the filters.")
			}
			return nil
		}

		for _, e := range result.Entries {
			fmt.Println(formatLogEntry(e))
		}
		return nil
	},
}

func outputLogJSON(entries []audit.Entry) error {
	if entries == nil {
		entries = []audit.Entry{}
	}
	output, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to marshal entries to JSON: %v", err)
	}
	fmt.Println(string(output))
	return nil
}

func formatLogEntry(e audit.Entry) string {
	parts := []string{ui.Muted.Sprint(e.Timestamp), ui.Info.Sprintf("%-14s", e.Operation), e.Gist}
	if e.Section != "" {
		parts = append(parts, ui.Section.Sprint(e.Section))
	}
	if e.KeysCount > 0 {
		parts = append(parts, fmt.Sprintf("keys=%d", e.KeysCount))
	}
	if e.Mode != "" {
		parts = append(parts, "mode="+e.Mode)
	}
	if e.OutputPath != "" {
		parts = append(parts, "-> "+ui.Path.Sprint(e.OutputPath))
	}
	return strings.Join(parts, "  ")
}
