package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/consoleargs/foundation/core/log"
)

var (
	cfgFile    string
	verbose    bool
	localeFlag string
)

var rootCmd = &cobra.Command{
	Use:   "consoleargs",
	Short: "Route console arguments to declared commands",
	Long: `consoleargs routes a command line to one of the commands declared in a
definition file and parses its parameters.

Commands are declared in TOML or YAML. Each command names an action:
  echo    - print what was parsed
  script  - run a shell snippet with the parameters as PARAM_* variables
  help    - list the declared commands

The definition file is taken from --config, $CONSOLEARGS_CONFIG or the
first of ./consoleargs.toml, ./consoleargs.yaml and the user config dir.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "definition file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "message locale, overrides the definition file")
}

func printError(err error) {
	fmt.Fprintln(rootCmd.ErrOrStderr(), err.Error())
	if verbose {
		log.GetDefault().LogError(err)
	}
}
