package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sghaida/beaninit/bean"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Build the graph and validate it without initializing anything",
		Long: `check resolves every kind and reference, then discovers the graph the way a
pass would, reporting field access errors and non-pointer beans. Beans that a
pass could never reach are listed as warnings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load()
			if err != nil {
				return err
			}

			reachable := 0
			if err := bean.Visit(g.Root, func(*bean.Node) error {
				reachable++
				return nil
			}); err != nil {
				return err
			}

			unreachable, err := g.Unreachable()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, id := range unreachable {
				fmt.Fprintf(out, "warning: %q is never reached from %q\n", id, g.RootID())
			}
			fmt.Fprintf(out, "ok: %d of %d beans reachable from %q\n", reachable, len(g.IDs()), g.RootID())
			return nil
		},
	}
}
