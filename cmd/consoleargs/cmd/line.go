package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/consoleargs/foundation/args/tokenizer"
)

var lineCmd = &cobra.Command{
	Use:   "line <raw>",
	Short: "Split a raw command line and route it",
	Long: `Splits a raw line on spaces, honouring quotes and backslash escapes,
and routes the resulting tokens. Several arguments are joined with a space.

Examples:
  consoleargs line 'build --target "my app"'
  consoleargs line 'greet --name Ada\ Lovelace'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := strings.Join(args, " ")

		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		defer a.close()

		return a.invoke(cmd.Context(), raw, tokenizer.Tokenize(raw))
	},
}

func init() {
	rootCmd.AddCommand(lineCmd)
}
