package strtime

import (
	"fmt"
	"sync"

	"github.com/ngrash/go-strtime/internal/calendar"
)

// DirectiveKind describes how a directive is written and read.
type DirectiveKind int

const (
	// NumericDirective renders and parses a bounded integer.
	NumericDirective DirectiveKind = iota
	// TextDirective renders and parses names, signs or offsets.
	TextDirective
	// CompositeDirective stands for a sequence of other directives.
	CompositeDirective
)

func (k DirectiveKind) String() string {
	switch k {
	case NumericDirective:
		return "numeric"
	case TextDirective:
		return "text"
	case CompositeDirective:
		return "composite"
	default:
		return "unknown"
	}
}

// field names the calendar component a directive reads when formatting and
// stores when parsing.
type field int

const (
	fieldNone field = iota
	fieldShortWeekday
	fieldLongWeekday
	fieldShortMonth
	fieldLongMonth
	fieldCentury
	fieldDay
	fieldMicrosecond
	fieldISOYearTwoDigit
	fieldISOYear
	fieldHour
	fieldHour12
	fieldDayOfYear
	fieldMillisecond
	fieldMonth
	fieldMinute
	fieldMeridiem
	fieldMeridiemLower
	fieldEpochMicrosecond
	fieldEpochSecond
	fieldSecond
	fieldISOWeekday
	fieldSundayWeek
	fieldISOWeek
	fieldWeekday
	fieldMondayWeek
	fieldYearTwoDigit
	fieldYear
	fieldOffset
	fieldZone
	fieldEra
)

// Directive is an immutable entry of the directive table.
type Directive struct {
	names    string // one alias per byte, canonical first
	kind     DirectiveKind
	field    field
	min, max int64
	bounded  bool
	pad      int
	padChar  byte
	likely   int
	negative bool
	rewrite  string

	once     sync.Once
	expanded []Token
	err      error
}

// Name returns the canonical spelling, e.g. "%d".
func (d *Directive) Name() string { return "%" + d.names[:1] }

func (d *Directive) String() string { return d.Name() }

// Kind reports whether d is numeric, text or composite.
func (d *Directive) Kind() DirectiveKind { return d.kind }

// Rewrite returns the format a composite directive stands for.
func (d *Directive) Rewrite() string { return d.rewrite }

func (d *Directive) inBounds(v int64) bool {
	return !d.bounded || (v >= d.min && v <= d.max)
}

func (d *Directive) boundsString() string {
	return fmt.Sprintf("[%d, %d]", d.min, d.max)
}

// expand compiles the rewrite target once and tags every token with d.
func (d *Directive) expand() ([]Token, error) {
	d.once.Do(func() {
		d.expanded, d.err = compile(d.rewrite)
		for i := range d.expanded {
			d.expanded[i].ExpandedFrom = d
		}
	})
	return d.expanded, d.err
}

func text(names string, f field) *Directive {
	return &Directive{names: names, kind: TextDirective, field: f}
}

func composite(names, rewrite string) *Directive {
	return &Directive{names: names, kind: CompositeDirective, rewrite: rewrite}
}

func numeric(names string, f field, pad, likely int) *Directive {
	return &Directive{names: names, kind: NumericDirective, field: f, pad: pad, padChar: '0', likely: likely}
}

func (d *Directive) bounds(min, max int64) *Directive {
	d.min, d.max, d.bounded = min, max, true
	return d
}

func (d *Directive) signed() *Directive {
	d.negative = true
	return d
}

func (d *Directive) spacePadded() *Directive {
	d.padChar = ' '
	return d
}

var directiveTable = []*Directive{
	text("a", fieldShortWeekday),
	text("A", fieldLongWeekday),
	text("bh", fieldShortMonth),
	text("B", fieldLongMonth),
	composite("c", "%a %b %e %H:%M:%S %Y"),
	numeric("C", fieldCentury, 0, 2).signed(),
	numeric("d", fieldDay, 2, 2).bounds(1, 31),
	composite("Dx", "%m/%d/%y"),
	numeric("e", fieldDay, 2, 2).bounds(1, 31).spacePadded(),
	numeric("f", fieldMicrosecond, 6, 6).bounds(0, 999999),
	composite("F", "%Y-%m-%d"),
	numeric("g", fieldISOYearTwoDigit, 0, 2),
	numeric("G", fieldISOYear, 4, 4).signed(),
	numeric("Hk", fieldHour, 2, 2).bounds(0, 23),
	numeric("Il", fieldHour12, 2, 2).bounds(1, 12),
	numeric("j", fieldDayOfYear, 3, 3).bounds(1, 366),
	numeric("L", fieldMillisecond, 3, 3).bounds(0, 999),
	numeric("m", fieldMonth, 2, 2).bounds(1, 12),
	numeric("M", fieldMinute, 2, 2).bounds(0, 59),
	text("p", fieldMeridiem),
	text("P", fieldMeridiemLower),
	numeric("Q", fieldEpochMicrosecond, 0, 0).signed(),
	composite("r", "%I:%M:%S %p"),
	composite("R", "%H:%M"),
	numeric("s", fieldEpochSecond, 0, 0).signed(),
	numeric("S", fieldSecond, 2, 2).bounds(0, 61),
	composite("TX", "%H:%M:%S"),
	numeric("u", fieldISOWeekday, 0, 1).bounds(1, 7),
	numeric("U", fieldSundayWeek, 2, 2).bounds(0, 53),
	composite("v", "%e-%b-%Y"),
	numeric("V", fieldISOWeek, 2, 2).bounds(1, 53),
	numeric("w", fieldWeekday, 0, 1).bounds(0, 6),
	numeric("W", fieldMondayWeek, 2, 2).bounds(0, 53),
	numeric("y", fieldYearTwoDigit, 2, 2),
	numeric("Y", fieldYear, 4, 4).signed(),
	text("z", fieldOffset),
	text("Z", fieldZone),
	composite("+", "%a %b %e %H:%M:%S %Z %Y"),
	text("#", fieldEra),
}

var directives = func() map[rune]*Directive {
	m := make(map[rune]*Directive)
	for _, d := range directiveTable {
		for _, r := range d.names {
			m[r] = d
		}
	}
	return m
}()

// Lookup returns the directive registered for the letter or symbol r.
func Lookup(r rune) (*Directive, bool) {
	d, ok := directives[r]
	return d, ok
}

// writeNumber returns the raw value of a numeric directive for m.
func (d *Directive) writeNumber(m *moment, modifier byte) int64 {
	switch d.field {
	case fieldCentury:
		return floorDiv(int64(m.year), 100)
	case fieldDay:
		return int64(m.day)
	case fieldMicrosecond:
		return int64(m.nanosecond / 1000)
	case fieldISOYearTwoDigit:
		return int64(m.isoYear % 100)
	case fieldISOYear:
		return int64(m.isoYear)
	case fieldHour:
		return int64(m.hour)
	case fieldHour12:
		if h := m.hour % 12; h != 0 {
			return int64(h)
		}
		return 12
	case fieldDayOfYear:
		return int64(m.yday)
	case fieldMillisecond:
		return int64(m.nanosecond / 1000000)
	case fieldMonth:
		return int64(m.month)
	case fieldMinute:
		return int64(m.minute)
	case fieldEpochMicrosecond:
		return m.unixMicro
	case fieldEpochSecond:
		return m.unix
	case fieldSecond:
		return int64(min(59, m.second))
	case fieldISOWeekday:
		return int64(calendar.ISOWeekday(m.weekday))
	case fieldSundayWeek:
		return int64(calendar.SundayWeek(m.year, m.month, m.day))
	case fieldISOWeek:
		return int64(m.isoWeek)
	case fieldWeekday:
		return int64(m.weekday)
	case fieldMondayWeek:
		return int64(calendar.MondayWeek(m.year, m.month, m.day))
	case fieldYearTwoDigit:
		return int64(m.year % 100)
	case fieldYear:
		// "^" yields the unsigned era year, to be paired with %#.
		if modifier == '^' && m.year <= 0 {
			return int64(1 - m.year)
		}
		return int64(m.year)
	}
	panic(fmt.Sprintf("strtime: %s has no numeric value", d))
}

// writeText returns the raw text of a text directive for m.
func (d *Directive) writeText(m *moment, modifier byte, s *settings) string {
	switch d.field {
	case fieldShortWeekday:
		return s.shortWeekdays[m.weekday%7]
	case fieldLongWeekday:
		return s.longWeekdays[m.weekday%7]
	case fieldShortMonth:
		return s.shortMonths[(m.month-1)%12]
	case fieldLongMonth:
		return s.longMonths[(m.month-1)%12]
	case fieldMeridiem:
		return s.meridiems[meridiemIndex(m.hour)]
	case fieldMeridiemLower:
		return lower(s.meridiems[meridiemIndex(m.hour)])
	case fieldOffset:
		return writeOffset(m.offset, modifier == ':')
	case fieldZone:
		if m.offset == 0 {
			return "UTC"
		}
		return writeOffset(m.offset, modifier == ':')
	case fieldEra:
		if m.year <= 0 {
			return s.eras[1]
		}
		return s.eras[0]
	}
	panic(fmt.Sprintf("strtime: %s has no text value", d))
}

func meridiemIndex(hour int) int {
	if hour < 12 {
		return 0
	}
	return 1
}

// writeOffset renders minutes east of UTC as ±HHMM or ±HH:MM.
func writeOffset(minutes int, colon bool) string {
	sign := '+'
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	if colon {
		return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
	}
	return fmt.Sprintf("%c%02d%02d", sign, minutes/60, minutes%60)
}

// store records a parsed number in the fields it belongs to.
func (d *Directive) store(f *fields, v int64) {
	switch d.field {
	case fieldCentury:
		f.century.set(v)
	case fieldDay:
		f.day.set(v)
	case fieldMicrosecond:
		f.microsecond.set(v)
	case fieldISOYearTwoDigit:
		f.isoYearTwoDigit.set(v)
	case fieldISOYear:
		f.isoYear.set(v)
	case fieldHour, fieldHour12:
		f.hour.set(v)
	case fieldDayOfYear:
		f.dayOfYear.set(v)
	case fieldMillisecond:
		f.millisecond.set(v)
	case fieldMonth:
		f.month.set(v)
	case fieldMinute:
		f.minute.set(v)
	case fieldEpochMicrosecond:
		f.epochMicrosecond.set(v)
	case fieldEpochSecond:
		f.epochSecond.set(v)
	case fieldSecond:
		f.second.set(v)
	case fieldISOWeekday, fieldWeekday:
		f.weekday.set(v % 7)
	case fieldSundayWeek:
		f.sundayWeek.set(v)
	case fieldISOWeek:
		f.isoWeek.set(v)
	case fieldMondayWeek:
		f.mondayWeek.set(v)
	case fieldYearTwoDigit:
		f.yearTwoDigit.set(v)
	case fieldYear:
		f.year.set(v)
	default:
		panic(fmt.Sprintf("strtime: %s does not store a number", d))
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
