package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	strtime "github.com/ngrash/go-strtime"
)

func newZoneCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "zone NAME [TIME]",
		Short: "Show the local time type of a zone at a time (default now)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := timeArg(args, 1)
			if err != nil {
				return err
			}
			z, err := g.database().Load(args[0])
			if err != nil {
				return err
			}
			lt := z.Lookup(t.Unix())
			d := z.Data()
			w := cmd.OutOrStdout()
			field := func(name string, v any) { fmt.Fprintf(w, "%-7s = %v\n", name, v) }
			field("zone", args[0])
			field("time", t.UTC().Format(time.RFC3339))
			field("offset", strtime.FixedZone(lt.Offset/60))
			field("abbrev", lt.Abbrev)
			field("dst", lt.DST)
			field("version", d.Version)
			if d.Footer != "" {
				field("footer", d.Footer)
			}
			return nil
		},
	}
}
