package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	strtime "github.com/ngrash/go-strtime"
)

func newFormatCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "format FORMAT [TIME]",
		Short: "Format a time (RFC 3339 or epoch milliseconds, default now)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := g.options(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			t, err := timeArg(args, 1)
			if err != nil {
				return err
			}
			s, err := strtime.Format(t, args[0], o)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
