package strtime

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ngrash/go-strtime/internal/calendar"
)

// moment is an instant broken down into the values directives render.
// All fields describe wall-clock time at offset.
type moment struct {
	year, month, day     int
	hour, minute, second int
	nanosecond           int
	weekday, yday        int
	isoYear, isoWeek     int
	offset               int // minutes east of UTC
	unix, unixMicro      int64
}

func newMoment(t time.Time, offset int) *moment {
	s := t.UTC().Add(time.Duration(offset) * time.Minute)
	m := &moment{offset: offset, nanosecond: s.Nanosecond(), unix: s.Unix(), unixMicro: s.UnixMicro()}
	var month time.Month
	m.year, month, m.day = s.Date()
	m.month = int(month)
	m.hour, m.minute, m.second = s.Clock()
	m.weekday = calendar.DayOfWeek(m.year, m.month, m.day)
	m.yday = calendar.DayOfYear(m.year, m.month, m.day)
	m.isoYear, m.isoWeek = calendar.ISOWeek(m.year, m.month, m.day)
	return m
}

// Format renders t using the layout. A nil o selects the defaults: UTC and
// English names.
func (l *Layout) Format(t time.Time, o *Options) (string, error) {
	s, err := o.settings()
	if err != nil {
		return "", err
	}
	offset, err := s.offsetForInstant(t)
	if err != nil {
		return "", err
	}
	m := newMoment(t, offset)
	var b strings.Builder
	for i := range l.tokens {
		tok := &l.tokens[i]
		if tok.Kind == TokenLiteral {
			b.WriteString(tok.Literal)
			continue
		}
		b.WriteString(render(tok, m, s))
	}
	return b.String(), nil
}

// render writes one directive token and applies its modifier.
func render(tok *Token, m *moment, s *settings) string {
	d := tok.Directive
	if d.kind == TextDirective {
		v := d.writeText(m, tok.Modifier, s)
		switch tok.Modifier {
		case '^':
			if up := upper(v); up != v {
				return up
			}
			return lower(v)
		case '_':
			return lower(v)
		}
		return v
	}

	n := d.writeNumber(m, tok.Modifier)
	digits := strconv.FormatInt(n, 10)
	switch {
	case tok.Modifier == '^':
		return digits
	case tok.Modifier == '_' && d.pad > 0:
		return leftPad(digits, ' ', d.pad)
	case tok.Modifier == '-' && d.pad > 0:
		return digits
	case tok.Modifier == ':':
		return s.ordinal(int(n))
	case d.pad > 0:
		if n < 0 {
			return "-" + leftPad(strconv.FormatInt(-n, 10), d.padChar, d.pad)
		}
		return leftPad(digits, d.padChar, d.pad)
	}
	return digits
}

func leftPad(s string, c byte, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(string(c), width-len(s)) + s
}

func upper(s string) string { return cases.Upper(language.Und).String(s) }
func lower(s string) string { return cases.Lower(language.Und).String(s) }

// Format renders t with a one-off format string.
func Format(t time.Time, format string, o *Options) (string, error) {
	l, err := Compile(format)
	if err != nil {
		return "", err
	}
	return l.Format(t, o)
}

// FormatValue is like Format but accepts anything that denotes an instant:
// a time.Time or *time.Time, a value with a Time() or ToTime() method, or a
// number of milliseconds since the Unix epoch.
func FormatValue(v any, format string, o *Options) (string, error) {
	l, err := Compile(format)
	if err != nil {
		return "", err
	}
	t, err := timeOf(v)
	if err != nil {
		return "", err
	}
	return l.Format(t, o)
}

func timeOf(v any) (time.Time, error) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, inputErrorf("no date input was provided")
	case time.Time:
		return x, nil
	case *time.Time:
		if x == nil {
			return time.Time{}, inputErrorf("no date input was provided")
		}
		return *x, nil
	case interface{ Time() time.Time }:
		return x.Time(), nil
	case interface{ ToTime() time.Time }:
		return x.ToTime(), nil
	case int:
		return time.UnixMilli(int64(x)), nil
	case int8:
		return time.UnixMilli(int64(x)), nil
	case int16:
		return time.UnixMilli(int64(x)), nil
	case int32:
		return time.UnixMilli(int64(x)), nil
	case int64:
		return time.UnixMilli(x), nil
	case uint:
		return time.UnixMilli(int64(x)), nil
	case uint8:
		return time.UnixMilli(int64(x)), nil
	case uint16:
		return time.UnixMilli(int64(x)), nil
	case uint32:
		return time.UnixMilli(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return time.Time{}, inputErrorf("can't format an invalid date")
		}
		return time.UnixMilli(int64(x)), nil
	case float32:
		return millisFloat(float64(x))
	case float64:
		return millisFloat(x)
	}
	return time.Time{}, inputErrorf("failed to get time from date input of type %T", v)
}

func millisFloat(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > math.MaxInt64/1000 {
		return time.Time{}, inputErrorf("can't format an invalid date")
	}
	return time.UnixMilli(int64(ms)), nil
}
