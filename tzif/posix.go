package tzif

import (
	"fmt"
	"strings"

	"github.com/ngrash/go-strtime/internal/calendar"
	"github.com/ngrash/go-strtime/internal/unixtime"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// DateKind selects how a RuleDate names its day.
type DateKind int

const (
	// JulianDay is "Jn": day 1 to 365, February 29 is never counted.
	JulianDay DateKind = iota
	// ZeroBasedDay is "n": day 0 to 365, February 29 counts in leap years.
	ZeroBasedDay
	// MonthWeekDay is "Mm.w.d": weekday d of week w in month m, week 5
	// meaning the last one.
	MonthWeekDay
)

// RuleDate is the start or end of daylight saving time within a year.
type RuleDate struct {
	Kind  DateKind
	Day   int
	Week  int
	Month int
	// Time is seconds after local midnight, in the local time in effect
	// before the change. It may be negative or exceed 24 hours.
	Time int
}

// Rule is a parsed POSIX TZ string as found in TZif footers, for example
// "EST5EDT,M3.2.0,M11.1.0". Offsets are seconds east of UTC, the inverse
// of the POSIX notation.
type Rule struct {
	StdName   string
	StdOffset int
	DstName   string
	DstOffset int
	Start     RuleDate
	End       RuleDate
}

// HasDST reports whether the rule has a daylight saving time part.
func (r Rule) HasDST() bool {
	return r.DstName != ""
}

// LocalTime is the local time type in effect at some instant.
type LocalTime struct {
	// Offset is seconds east of UTC.
	Offset int
	Abbrev string
	DST    bool
}

// ParseRule parses a POSIX TZ string.
func ParseRule(s string) (Rule, error) {
	var r Rule
	var err error
	orig := s

	if r.StdName, s, err = ruleName(s); err != nil {
		return r, fmt.Errorf("parse TZ string %q: std name: %w", orig, err)
	}
	if r.StdOffset, s, err = ruleOffset(s, 24); err != nil {
		return r, fmt.Errorf("parse TZ string %q: std offset: %w", orig, err)
	}
	r.StdOffset = -r.StdOffset
	if s == "" {
		return r, nil
	}

	if r.DstName, s, err = ruleName(s); err != nil {
		return r, fmt.Errorf("parse TZ string %q: dst name: %w", orig, err)
	}
	if s == "" || s[0] == ',' {
		r.DstOffset = r.StdOffset + secondsPerHour
	} else {
		if r.DstOffset, s, err = ruleOffset(s, 24); err != nil {
			return r, fmt.Errorf("parse TZ string %q: dst offset: %w", orig, err)
		}
		r.DstOffset = -r.DstOffset
	}

	if s == "" {
		s = ",M3.2.0,M11.1.0"
	}
	if s[0] != ',' {
		return r, fmt.Errorf("parse TZ string %q: expected ',' before start rule", orig)
	}
	if r.Start, s, err = ruleDate(s[1:]); err != nil {
		return r, fmt.Errorf("parse TZ string %q: start rule: %w", orig, err)
	}
	if s == "" || s[0] != ',' {
		return r, fmt.Errorf("parse TZ string %q: expected ',' before end rule", orig)
	}
	if r.End, s, err = ruleDate(s[1:]); err != nil {
		return r, fmt.Errorf("parse TZ string %q: end rule: %w", orig, err)
	}
	if s != "" {
		return r, fmt.Errorf("parse TZ string %q: trailing characters %q", orig, s)
	}
	return r, nil
}

// ruleName reads an alphabetic name of at least three characters or a
// quoted <...> name, which may also hold digits and signs.
func ruleName(s string) (string, string, error) {
	if strings.HasPrefix(s, "<") {
		end := strings.IndexByte(s, '>')
		if end < 0 {
			return "", s, fmt.Errorf("unterminated quoted name")
		}
		name := s[1:end]
		if len(name) < 3 {
			return "", s, fmt.Errorf("name %q is shorter than 3 characters", name)
		}
		return name, s[end+1:], nil
	}
	i := 0
	for i < len(s) && (s[i] >= 'A' && s[i] <= 'Z' || s[i] >= 'a' && s[i] <= 'z') {
		i++
	}
	if i < 3 {
		return "", s, fmt.Errorf("name %q is shorter than 3 characters", s[:i])
	}
	return s[:i], s[i:], nil
}

// ruleOffset reads [+|-]hh[:mm[:ss]] as seconds.
func ruleOffset(s string, maxHours int) (int, string, error) {
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	hours, s, err := ruleNum(s, 0, maxHours)
	if err != nil {
		return 0, s, fmt.Errorf("hours: %w", err)
	}
	off := hours * secondsPerHour
	for _, unit := range []int{secondsPerMinute, 1} {
		if s == "" || s[0] != ':' {
			break
		}
		var n int
		if n, s, err = ruleNum(s[1:], 0, 59); err != nil {
			return 0, s, err
		}
		off += n * unit
	}
	if neg {
		off = -off
	}
	return off, s, nil
}

func ruleNum(s string, lo, hi int) (int, string, error) {
	i, n := 0, 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		if n > hi {
			return 0, s, fmt.Errorf("number exceeds %d", hi)
		}
		i++
	}
	if i == 0 {
		return 0, s, fmt.Errorf("expected number at %q", s)
	}
	if n < lo {
		return 0, s, fmt.Errorf("number %d is below %d", n, lo)
	}
	return n, s[i:], nil
}

func ruleDate(s string) (RuleDate, string, error) {
	var d RuleDate
	var err error
	switch {
	case strings.HasPrefix(s, "J"):
		d.Kind = JulianDay
		if d.Day, s, err = ruleNum(s[1:], 1, 365); err != nil {
			return d, s, err
		}
	case strings.HasPrefix(s, "M"):
		d.Kind = MonthWeekDay
		if d.Month, s, err = ruleNum(s[1:], 1, 12); err != nil {
			return d, s, fmt.Errorf("month: %w", err)
		}
		if s == "" || s[0] != '.' {
			return d, s, fmt.Errorf("expected '.' after month")
		}
		if d.Week, s, err = ruleNum(s[1:], 1, 5); err != nil {
			return d, s, fmt.Errorf("week: %w", err)
		}
		if s == "" || s[0] != '.' {
			return d, s, fmt.Errorf("expected '.' after week")
		}
		if d.Day, s, err = ruleNum(s[1:], 0, 6); err != nil {
			return d, s, fmt.Errorf("weekday: %w", err)
		}
	default:
		d.Kind = ZeroBasedDay
		if d.Day, s, err = ruleNum(s, 0, 365); err != nil {
			return d, s, err
		}
	}

	d.Time = 2 * secondsPerHour
	if s != "" && s[0] == '/' {
		if d.Time, s, err = ruleOffset(s[1:], 167); err != nil {
			return d, s, fmt.Errorf("time: %w", err)
		}
	}
	return d, s, nil
}

// yearDay returns the zero-based day of the year d falls on.
func (d RuleDate) yearDay(year int) int {
	switch d.Kind {
	case JulianDay:
		if calendar.IsLeapYear(year) && d.Day >= 60 {
			return d.Day
		}
		return d.Day - 1
	case ZeroBasedDay:
		return d.Day
	default:
		var day int
		if d.Week == 5 {
			day = calendar.LastWeekdayOfMonth(year, d.Month, d.Day)
		} else {
			day = calendar.NthWeekdayOfMonth(year, d.Month, d.Week, d.Day)
		}
		return calendar.DayOfYear(year, d.Month, day) - 1
	}
}

// instant returns the Unix time of d in year, given the offset in effect
// before the change.
func (d RuleDate) instant(year, offset int) int64 {
	return unixtime.FromDateTime(year, 1, 1+d.yearDay(year), 0, 0, d.Time-offset)
}

// Lookup returns the local time type the rule selects at unix.
func (r Rule) Lookup(unix int64) LocalTime {
	std := LocalTime{Offset: r.StdOffset, Abbrev: r.StdName}
	if !r.HasDST() {
		return std
	}
	dst := LocalTime{Offset: r.DstOffset, Abbrev: r.DstName, DST: true}

	year, _, _, _, _, _ := unixtime.ToDateTime(unix + int64(r.StdOffset))
	start := r.Start.instant(year, r.StdOffset)
	end := r.End.instant(year, r.DstOffset)
	if start < end {
		if unix >= start && unix < end {
			return dst
		}
		return std
	}
	// Southern hemisphere: DST spans the turn of the year.
	if unix >= end && unix < start {
		return std
	}
	return dst
}
