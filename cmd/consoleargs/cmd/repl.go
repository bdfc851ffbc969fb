package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/consoleargs/internal/repl"
)

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"shell"},
	Short:   "Start the interactive prompt",
	Long: `Starts an interactive prompt that routes every entered line.

Keys:
  Enter       run the line
  ↑/↓         recall earlier lines
  Ctrl+L      clear the output
  PgUp/PgDn   scroll
  Esc/Ctrl+C  quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.close()

		var recall []string
		if a.history != nil {
			if recall, err = a.history.Inputs(cmd.Context(), repl.MaxRecall); err != nil {
				a.logger.WarnWithErr("recall not loaded", err)
			}
		}

		return repl.Run(repl.Config{
			Manager:   a.manager,
			Recall:    recall,
			OnExecute: a.recordLine(cmd.Context()),
			Logger:    a.logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
