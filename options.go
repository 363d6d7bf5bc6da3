package strtime

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/ngrash/go-strtime/zoneinfo"
)

// DefaultMaxForks bounds the number of alternatives tried while resolving
// ambiguous adjacent numbers in a single Parse call.
const DefaultMaxForks = 10000

// Options configures formatting and parsing. The zero value and a nil
// *Options both select UTC and the English name tables.
type Options struct {
	// TZ is the offset to format with, and the offset assumed when a parsed
	// timestamp carries none.
	TZ Zone

	// Name tables. A nil table selects the English default; a non-nil table
	// must have exactly 7, 7, 12, 12, 2 and 2 entries respectively.
	ShortWeekdayNames []string
	LongWeekdayNames  []string
	ShortMonthNames   []string
	LongMonthNames    []string
	EraNames          []string
	MeridiemNames     []string

	// OrdinalTransform renders numbers written with the ":" modifier.
	// Parsing expects the number followed by whatever suffix it appends.
	// Defaults to EnglishOrdinal.
	OrdinalTransform func(int) string

	// ZoneNames replaces the table of timezone abbreviations, in hours east
	// of UTC, used by %Z and by abbreviation zones.
	ZoneNames map[string]float64

	// Zones resolves IANA zone names. Defaults to zoneinfo.Default.
	Zones ZoneDatabase

	// Now supplies the year of timestamps that do not contain one.
	Now func() time.Time

	// MaxForks overrides DefaultMaxForks when positive.
	MaxForks int

	// Logger receives debug records from the ambiguous number search.
	Logger *slog.Logger
}

// Validate reports malformed name tables.
func (o *Options) Validate() error {
	_, err := o.settings()
	return err
}

// Clone returns a copy of o that shares no tables with it.
func (o *Options) Clone() *Options {
	if o == nil {
		return &Options{}
	}
	c := *o
	c.ShortWeekdayNames = slices.Clone(o.ShortWeekdayNames)
	c.LongWeekdayNames = slices.Clone(o.LongWeekdayNames)
	c.ShortMonthNames = slices.Clone(o.ShortMonthNames)
	c.LongMonthNames = slices.Clone(o.LongMonthNames)
	c.EraNames = slices.Clone(o.EraNames)
	c.MeridiemNames = slices.Clone(o.MeridiemNames)
	if o.ZoneNames != nil {
		c.ZoneNames = make(map[string]float64, len(o.ZoneNames))
		for k, v := range o.ZoneNames {
			c.ZoneNames[k] = v
		}
	}
	return &c
}

// settings is Options with every default applied.
type settings struct {
	zone Zone

	shortWeekdays, longWeekdays []string
	shortMonths, longMonths     []string
	eras, meridiems             []string

	// Candidates for name matching: short names followed by long names.
	weekdayNames, monthNames []string

	ordinal      func(int) string
	zoneNames    map[string]float64
	zoneNameList []string
	zones        ZoneDatabase
	now          func() time.Time
	maxForks     int
	logger       *slog.Logger
}

var defaultSettings = settings{
	shortWeekdays: englishShortWeekdayNames,
	longWeekdays:  englishLongWeekdayNames,
	shortMonths:   englishShortMonthNames,
	longMonths:    englishLongMonthNames,
	eras:          englishEraNames,
	meridiems:     englishMeridiemNames,
	weekdayNames:  append(slices.Clone(englishShortWeekdayNames), englishLongWeekdayNames...),
	monthNames:    append(slices.Clone(englishShortMonthNames), englishLongMonthNames...),
	ordinal:       EnglishOrdinal,
	zoneNames:     defaultZoneNames,
	zoneNameList:  defaultZoneNameList,
	now:           time.Now,
	maxForks:      DefaultMaxForks,
}

func (o *Options) settings() (*settings, error) {
	s := defaultSettings
	s.zones = zoneinfo.Default
	if o == nil {
		return &s, nil
	}

	var errs []error
	table := func(name string, names []string, want int, dst *[]string) {
		if names == nil {
			return
		}
		if len(names) != want {
			errs = append(errs, fmt.Errorf("%s: want %d entries, got %d", name, want, len(names)))
			return
		}
		*dst = names
	}
	table("short weekday names", o.ShortWeekdayNames, 7, &s.shortWeekdays)
	table("long weekday names", o.LongWeekdayNames, 7, &s.longWeekdays)
	table("short month names", o.ShortMonthNames, 12, &s.shortMonths)
	table("long month names", o.LongMonthNames, 12, &s.longMonths)
	table("era names", o.EraNames, 2, &s.eras)
	table("meridiem names", o.MeridiemNames, 2, &s.meridiems)
	if err := errors.Join(errs...); err != nil {
		return nil, &InputError{Err: err}
	}
	s.weekdayNames = append(slices.Clone(s.shortWeekdays), s.longWeekdays...)
	s.monthNames = append(slices.Clone(s.shortMonths), s.longMonths...)

	s.zone = o.TZ
	if o.OrdinalTransform != nil {
		s.ordinal = o.OrdinalTransform
	}
	if o.ZoneNames != nil {
		s.zoneNames = make(map[string]float64, len(o.ZoneNames))
		for k, v := range o.ZoneNames {
			s.zoneNames[upper(k)] = v
		}
		s.zoneNameList = sortedKeys(s.zoneNames)
	}
	if o.Zones != nil {
		s.zones = o.Zones
	}
	if o.Now != nil {
		s.now = o.Now
	}
	if o.MaxForks > 0 {
		s.maxForks = o.MaxForks
	}
	s.logger = o.Logger
	return &s, nil
}
