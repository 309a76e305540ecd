package main

import (
	"fmt"

	"github.com/katalvlaran/colloc/bvp"
	"github.com/spf13/cobra"
)

func newProblemsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "List the built-in boundary-value problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range bvp.Catalog() {
				fmt.Fprintf(out, "%s\t%s\t%s on [%g, %g], y(%g) = %g, y(%g) = %g\n",
					p.Name, p.Title, p.Equation, p.A, p.B, p.A, p.Ya, p.B, p.Yb)
			}
			return nil
		},
	}
}
