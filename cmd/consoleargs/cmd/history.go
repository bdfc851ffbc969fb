package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/consoleargs/foundation/core/error"
	"github.com/msto63/consoleargs/foundation/utils/stringx"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear recorded invocations",
	Long: `Lists recorded invocations, newest first. Recording is enabled by the
history setting of the definition file.

Examples:
  consoleargs history
  consoleargs history --limit 5
  consoleargs history --clear`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all entries")
}

func runHistory(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, true)
	if err != nil {
		return err
	}
	defer a.close()

	if a.history == nil {
		return mdwerror.New("history is not configured").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("cmd.history")
	}

	out := cmd.OutOrStdout()

	if historyClear {
		n, err := a.history.Clear(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d entries removed\n", n)
		return nil
	}

	entries, err := a.history.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No invocations recorded.")
		return nil
	}

	r := lipgloss.NewRenderer(out)
	okStyle := r.NewStyle().Foreground(lipgloss.Color("#10B981"))
	failStyle := r.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	dimStyle := r.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	for _, e := range entries {
		status := okStyle.Render("ok")
		if !e.Success {
			status = failStyle.Render(e.ErrorCode)
		}
		fmt.Fprintf(out, "%s  %-12s %s\n  %s\n",
			dimStyle.Render(e.CreatedAt.Format("2006-01-02 15:04:05")),
			e.Command,
			status,
			stringx.Truncate(e.Input, 72, "…"),
		)
	}
	return nil
}
