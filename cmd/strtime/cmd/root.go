// Package cmd implements the strtime command line tool.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	strtime "github.com/ngrash/go-strtime"
	"github.com/ngrash/go-strtime/locale"
	"github.com/ngrash/go-strtime/zoneinfo"
)

// globalFlags holds the persistent flags shared by all commands.
type globalFlags struct {
	tz       string
	locale   string
	zoneinfo string
	maxForks int
	verbose  bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "strtime",
		Short: "Format and parse timestamps with strftime-style formats",
		Long: `strtime formats and parses timestamps with strftime-style format strings.

Commands:
  format   - render a time with a format string
  parse    - read a timestamp and print it as RFC 3339
  zone     - show the local time type of a zoneinfo zone`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.tz, "tz", "", "timezone: hours, minutes, an abbreviation, an IANA name or \"local\" (default UTC)")
	root.PersistentFlags().StringVar(&g.locale, "locale", "", "locale file (.toml, .yaml or .yml)")
	root.PersistentFlags().StringVar(&g.zoneinfo, "zoneinfo", "", "zoneinfo directory (default $ZONEINFO or "+zoneinfo.DefaultDir+")")
	root.PersistentFlags().IntVar(&g.maxForks, "max-forks", 0, fmt.Sprintf("limit for ambiguous number attempts (default %d)", strtime.DefaultMaxForks))
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log the ambiguous number search to stderr")

	root.AddCommand(
		newFormatCmd(g),
		newParseCmd(g),
		newZoneCmd(g),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command named by os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func (g *globalFlags) database() *zoneinfo.Database {
	if g.zoneinfo == "" {
		return zoneinfo.Default
	}
	return zoneinfo.New(g.zoneinfo)
}

// options builds the library options from the flags. Debug records are
// written to stderr.
func (g *globalFlags) options(stderr io.Writer) (*strtime.Options, error) {
	o := &strtime.Options{
		Zones:    g.database(),
		MaxForks: g.maxForks,
	}
	if g.tz != "" {
		z, err := parseZone(g.tz)
		if err != nil {
			return nil, err
		}
		o.TZ = z
	}
	if g.locale != "" {
		l, err := locale.Load(g.locale)
		if err != nil {
			return nil, err
		}
		o = l.Options(o)
	}
	if g.verbose {
		o.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// parseZone reads numbers the way ZoneOf treats them and names the way
// NamedZone does.
func parseZone(s string) (strtime.Zone, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strtime.ZoneOf(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return strtime.ZoneOf(f)
	}
	return strtime.NamedZone(s)
}

// parseTime reads RFC 3339 or milliseconds since the Unix epoch.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: want RFC 3339 or epoch milliseconds", s)
	}
	return time.UnixMilli(ms).UTC(), nil
}

// timeArg returns args[i] as a time, or now if it is absent.
func timeArg(args []string, i int) (time.Time, error) {
	if len(args) <= i {
		return time.Now(), nil
	}
	return parseTime(args[i])
}
