package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zhamlin/pathroute/pattern"
)

func tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <pattern>",
		Short: "Print the tokens of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tTEXT\tNAME\tTYPE\tOFFSET")

			src := args[0]
			for _, tok := range pattern.Prepare(src) {
				text := src[tok.Start:tok.End]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d-%d\n", tok.Kind, text, tok.Name, tok.Type, tok.Start, tok.End)
			}
			return w.Flush()
		},
	}
}
