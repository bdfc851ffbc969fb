package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/consoleargs/foundation/args/help"
)

var commandsCmd = &cobra.Command{
	Use:   "commands [name...]",
	Short: "List the declared commands and their parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, true)
		if err != nil {
			return err
		}
		defer a.close()

		return help.Render(cmd.OutOrStdout(), a.manager, help.Options{Only: args})
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
