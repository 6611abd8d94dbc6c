package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava12/salgol/lang"
)

func newCheckCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check program syntax and report the first error",
		Long: `Check parses S-algol program with prelude prepended and reports the first syntax error
as "Error on line N: message" followed by source excerpt.
Program is read from stdin if file is not given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, text, e := readInput(cmd.InOrStdin(), args)
			if e != nil {
				return e
			}

			prelude, e := a.prelude()
			if e != nil {
				return e
			}

			c := &lang.Compiler{Prelude: prelude, Parser: a.parser}
			if _, e = c.Compile(name, text); e != nil {
				logger().Debugf("%s: %s", name, e)
				fmt.Fprintln(cmd.ErrOrStderr(), diagnostic(text, e))
				return errReported
			}

			if !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("ok"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing on success")

	return cmd
}
