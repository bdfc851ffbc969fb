package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/consoleargs/foundation/args/tokenizer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <raw>",
	Short: "Show how a raw line is split",
	Long: `Prints the tokens of a raw line, one per line and quoted. No definition
file is needed.

Example:
  consoleargs tokenize 'a "b c" d\ e'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, token := range tokenizer.Tokenize(strings.Join(args, " ")) {
			fmt.Fprintf(cmd.OutOrStdout(), "%q\n", token)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}
