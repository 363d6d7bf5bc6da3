// Package locale loads name tables and ordinal rules for strtime from TOML
// or YAML files.
package locale

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	strtime "github.com/ngrash/go-strtime"
)

// Format is the encoding of a locale file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Locale holds the tables a locale file may set. Unset tables keep the
// values of the options the locale is applied to.
type Locale struct {
	ShortWeekdayNames []string `toml:"short_weekday_names" yaml:"short_weekday_names"`
	LongWeekdayNames  []string `toml:"long_weekday_names" yaml:"long_weekday_names"`
	ShortMonthNames   []string `toml:"short_month_names" yaml:"short_month_names"`
	LongMonthNames    []string `toml:"long_month_names" yaml:"long_month_names"`
	EraNames          []string `toml:"era_names" yaml:"era_names"`
	MeridiemNames     []string `toml:"meridiem_names" yaml:"meridiem_names"`

	// OrdinalSuffix is appended to every ordinal number.
	OrdinalSuffix string `toml:"ordinal_suffix" yaml:"ordinal_suffix"`
	// OrdinalSuffixes selects a suffix the way English does.
	OrdinalSuffixes *OrdinalSuffixes `toml:"ordinal_suffixes" yaml:"ordinal_suffixes"`

	// ZoneNames adds or overrides timezone abbreviations, in hours east of
	// UTC.
	ZoneNames map[string]float64 `toml:"zone_names" yaml:"zone_names"`
}

// OrdinalSuffixes picks One for numbers ending in 1, Two for 2 and Few for
// 3, except for 11 to 13 which, like every other number, take Other.
type OrdinalSuffixes struct {
	One   string `toml:"one" yaml:"one"`
	Two   string `toml:"two" yaml:"two"`
	Few   string `toml:"few" yaml:"few"`
	Other string `toml:"other" yaml:"other"`
}

func (s *OrdinalSuffixes) suffix(n int) string {
	if n < 0 {
		n = -n
	}
	if r := n % 100; r >= 11 && r <= 13 {
		return s.Other
	}
	switch n % 10 {
	case 1:
		return s.One
	case 2:
		return s.Two
	case 3:
		return s.Few
	}
	return s.Other
}

// Load reads a locale file. The format follows from the extension: .toml,
// .yaml or .yml.
func Load(path string) (*Locale, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("unsupported format for file %s", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", path, err)
	}
	l, err := Parse(content, format)
	if err != nil {
		return nil, fmt.Errorf("locale file %s: %w", path, err)
	}
	return l, nil
}

// Parse decodes and validates a locale.
func Parse(data []byte, format Format) (*Locale, error) {
	var l Locale
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &l); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate reports every malformed table.
func (l *Locale) Validate() error {
	var errs []error
	check := func(name string, names []string, want int) {
		if names != nil && len(names) != want {
			errs = append(errs, fmt.Errorf("%s: want %d entries, got %d", name, want, len(names)))
		}
	}
	check("short_weekday_names", l.ShortWeekdayNames, 7)
	check("long_weekday_names", l.LongWeekdayNames, 7)
	check("short_month_names", l.ShortMonthNames, 12)
	check("long_month_names", l.LongMonthNames, 12)
	check("era_names", l.EraNames, 2)
	check("meridiem_names", l.MeridiemNames, 2)
	if l.OrdinalSuffix != "" && l.OrdinalSuffixes != nil {
		errs = append(errs, errors.New("ordinal_suffix and ordinal_suffixes are mutually exclusive"))
	}
	for name := range l.ZoneNames {
		if name == "" {
			errs = append(errs, errors.New("zone_names: empty abbreviation"))
		}
	}
	return errors.Join(errs...)
}

// Options returns a copy of base with the locale applied. base may be nil.
func (l *Locale) Options(base *strtime.Options) *strtime.Options {
	o := base.Clone()
	set := func(dst *[]string, src []string) {
		if src != nil {
			*dst = append([]string(nil), src...)
		}
	}
	set(&o.ShortWeekdayNames, l.ShortWeekdayNames)
	set(&o.LongWeekdayNames, l.LongWeekdayNames)
	set(&o.ShortMonthNames, l.ShortMonthNames)
	set(&o.LongMonthNames, l.LongMonthNames)
	set(&o.EraNames, l.EraNames)
	set(&o.MeridiemNames, l.MeridiemNames)

	switch {
	case l.OrdinalSuffix != "":
		suffix := l.OrdinalSuffix
		o.OrdinalTransform = func(n int) string { return strconv.Itoa(n) + suffix }
	case l.OrdinalSuffixes != nil:
		s := *l.OrdinalSuffixes
		o.OrdinalTransform = func(n int) string { return strconv.Itoa(n) + s.suffix(n) }
	}

	if len(l.ZoneNames) > 0 {
		if o.ZoneNames == nil {
			o.ZoneNames = strtime.DefaultZoneNames()
		}
		for name, hours := range l.ZoneNames {
			o.ZoneNames[name] = hours
		}
	}
	return o
}
