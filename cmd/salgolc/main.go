/*
salgolc is a console utility checking S-algol programs and dumping their syntax trees and grammars.
Usage is

	salgolc [--config <file>] [--grammar <file>] [-v...] <command>

Commands are

	check [<file>]    parse program and report the first syntax error;
	parse [<file>]    dump syntax tree as JSON or YAML, or list nodes with --find;
	grammar           dump compiled grammar, its Go EBNF rendering, or verify it.

Programs are read from stdin if file name is omitted.

--config <file> defines TOML configuration file, default is taken from SALGOL_CONFIG environment variable;

--grammar <file> defines grammar description used instead of embedded S-algol grammar;

-v increases log verbosity, may be repeated.
*/
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errReported is returned by commands that have already printed failure details.
var errReported = errors.New("failed")

func main() {
	if e := newRootCmd().Execute(); e != nil {
		if !errors.Is(e, errReported) {
			fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), e)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "salgolc",
		Short:         "S-algol front end: syntax checks and syntax tree dumps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file (default $"+configEnvVar+")")
	flags.StringVar(&a.grammarPath, "grammar", "", "grammar description file (default is embedded S-algol grammar)")
	flags.CountVarP(&a.verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newGrammarCmd(a))

	return rootCmd
}
