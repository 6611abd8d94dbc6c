package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava12/salgol/internal/dump"
	"github.com/ava12/salgol/langdef"
)

func newGrammarCmd(a *app) *cobra.Command {
	var outputFormat string
	var ebnf bool
	var verify bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Dump compiled grammar",
		Long: `Grammar dumps productions, branches, and lookahead sets of compiled grammar.
With --ebnf grammar is rendered in golang.org/x/exp/ebnf notation,
with --verify the rendering is checked by ebnf.Verify.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if verify {
				if e := langdef.Verify(a.grammar); e != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("Error:"), e)
					return errReported
				}
				fmt.Fprintln(out, okStyle.Render("ok"))
				return nil
			}

			if ebnf {
				_, e := fmt.Fprint(out, langdef.FormatGoEBNF(a.grammar))
				return e
			}

			format, e := a.format(outputFormat)
			if e != nil {
				return e
			}
			return dump.Write(out, format, dump.GrammarView(a.grammar))
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: json or yaml (default from config)")
	cmd.Flags().BoolVar(&ebnf, "ebnf", false, "render grammar in Go EBNF notation")
	cmd.Flags().BoolVar(&verify, "verify", false, "verify Go EBNF rendering of grammar")
	cmd.MarkFlagsMutuallyExclusive("ebnf", "verify")

	return cmd
}
