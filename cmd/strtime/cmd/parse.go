package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	strtime "github.com/ngrash/go-strtime"
)

func newParseCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "parse FORMAT INPUT",
		Short: "Parse a timestamp and print it as RFC 3339 in UTC",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := g.options(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			t, err := strtime.Parse(args[1], args[0], o)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.UTC().Format(time.RFC3339Nano))
			return nil
		},
	}
}
