package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava12/salgol/internal/dump"
	"github.com/ava12/salgol/source"
)

func newParseCmd(a *app) *cobra.Command {
	var outputFormat string
	var find []string
	var withPrelude bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse program and dump its syntax tree",
		Long: `Parse dumps syntax tree of S-algol program as JSON or YAML document.
With --find only nodes of given kinds (production or token class names) are listed,
one "line:col kind text" line per node unless --format is given explicitly.
Program is read from stdin if file is not given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, e := a.format(outputFormat)
			if e != nil {
				return e
			}

			name, text, e := readInput(cmd.InOrStdin(), args)
			if e != nil {
				return e
			}

			if withPrelude {
				prelude, e := a.prelude()
				if e != nil {
					return e
				}
				text = prelude + text
			}

			src := source.NewString(name, text)
			root, e := a.parser.Parse(src)
			if e != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), diagnostic(text, e))
				return errReported
			}

			out := cmd.OutOrStdout()
			if len(find) == 0 {
				return dump.Write(out, format, dump.Tree(root, src))
			}

			matches := dump.Find(root, src, find...)
			if cmd.Flags().Changed("format") {
				return dump.Write(out, format, matches)
			}
			for _, m := range matches {
				fmt.Fprintf(out, "%d:%d %s %s\n", m.Line, m.Col, m.Kind, m.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: json or yaml (default from config)")
	cmd.Flags().StringSliceVar(&find, "find", nil, "list nodes of given kinds instead of dumping the tree")
	cmd.Flags().BoolVar(&withPrelude, "prelude", false, "prepend prelude to program")

	return cmd
}
