package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run -- <tokens...>",
	Short: "Route already split tokens",
	Long: `Routes the tokens after -- exactly as given, without further splitting.

Examples:
  consoleargs run -- build --target web
  consoleargs run -- deploy -e prod --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		defer a.close()

		return a.invoke(cmd.Context(), strings.Join(args, " "), args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
