package strtime

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// fixedNow pins the year assumed for timestamps that carry none.
func fixedNow() time.Time { return date(2021, 6, 1) }

func TestParse(t *testing.T) {
	tests := []struct {
		in, format string
		o          *Options
		want       time.Time
	}{
		{"2018-W20-Fri", "%G-W%V-%a", nil, date(2018, 5, 18)},
		{"2018-W20-FRI", "%G-W%V-%a", nil, date(2018, 5, 18)},
		{"2018-W20-friday", "%G-W%V-%A", nil, date(2018, 5, 18)},
		{"2018-W20-FRIDAY", "%G-W%V-%a", nil, date(2018, 5, 18)},
		{"1 Jan 2018", "%-d %b %Y", nil, date(2018, 1, 1)},
		{"1 December 2018", "%-d %b %Y", nil, date(2018, 12, 1)},
		{"1 APRIL 2018", "%-d %B %Y", nil, date(2018, 4, 1)},
		{"Fri May 18 10:00:00 2018", "%c", nil, instant("2018-05-18T10:00:00Z")},
		{"20", "%C", nil, date(2000, 1, 1)},
		{"-20", "%C", nil, date(-2000, 1, 1)},
		{"01 Jan 2000", "%d %b %Y", nil, date(2000, 1, 1)},
		{" 1 Jan 2000", "%d %b %Y", nil, date(2000, 1, 1)},
		{"1st Jan 2000", "%:d %b %Y", nil, date(2000, 1, 1)},
		{"22nd Jan 2000", "%:e %b %Y", nil, date(2000, 1, 22)},
		{"05/18/18 10:00:00", "%D %T", nil, instant("2018-05-18T10:00:00Z")},
		{"2018-05-18 10:00:30.123000 +0000", "%F %T.%f %z", nil, instant("2018-05-18T10:00:30.123Z")},
		{"2018-01-02T12:30:15Z", "%FT%TZ", nil, instant("2018-01-02T12:30:15Z")},
		{"01/01/99  4:00", "%d/%m/%y %H:%M", nil, instant("1999-01-01T04:00:00Z")},
		{"01/01/99 4th hr 0 mins", "%d/%m/%y %:H hr %M mins", nil, instant("1999-01-01T04:00:00Z")},
		{"12 AM", "%I %p", &Options{Now: fixedNow}, instant("2021-01-01T00:00:00Z")},
		{"12 PM", "%I %p", &Options{Now: fixedNow}, instant("2021-01-01T12:00:00Z")},
		{"4 pm", "%I %P", &Options{Now: fixedNow}, instant("2021-01-01T16:00:00Z")},
		{"2012-001", "%Y-%j", nil, date(2012, 1, 1)},
		{"2012-366", "%Y-%j", nil, date(2012, 12, 31)},
		{"2018-05-18 10:00:30.123 +0000", "%F %T.%L %z", nil, instant("2018-05-18T10:00:30.123Z")},
		{"946684800000000", "%Q", nil, date(2000, 1, 1)},
		{"946684800", "%s", nil, date(2000, 1, 1)},
		{"-86400", "%s", nil, date(1969, 12, 31)},
		{"2018-01-02 01:30:15 PM UTC", "%F %r %Z", nil, instant("2018-01-02T13:30:15Z")},
		{"2018-01-02 13:30:15 UTC", "%F %R:%S %Z", nil, instant("2018-01-02T13:30:15Z")},
		{"2018-W18-5 00:00:00 UTC", "%G-W%V-%u %T %Z", nil, date(2018, 5, 4)},
		{"2018-W18-5 00:00:00 UTC", "%G-W%V-%w %T %Z", nil, date(2018, 5, 4)},
		{" 8-Apr-1995 00:00:00 UTC", "%v %T %Z", nil, date(1995, 4, 8)},
		{"2121", "%C%y", nil, date(2121, 1, 1)},
		{"80", "%y", nil, date(1980, 1, 1)},
		{"68", "%y", nil, date(2068, 1, 1)},
		{"-2000", "%Y", nil, date(-2000, 1, 1)},
		{"12 June 1900 CE", "%-d %B %Y %#", nil, date(1900, 6, 12)},
		{"12 June 300 BCE", "%-d %B %Y %#", nil, date(-299, 6, 12)},
		{"1 Jan 1 BCE", "%-d %b %^Y %#", nil, date(0, 1, 1)},
		{"1 Jan 100 BCE", "%-d %b %^Y %#", nil, date(-99, 1, 1)},
		{"1 Jan -0001", "%-d %b %Y", nil, date(-1, 1, 1)},
		{"2001-01-01%", "%F%%", nil, date(2001, 1, 1)},
		{"2001-01-01\t", "%F%t", nil, date(2001, 1, 1)},
		{"2001-01-01\n", "%F%n", nil, date(2001, 1, 1)},
		{"Sun Jan  2 10:11:12 UTC 2000", "%+", nil, instant("2000-01-02T10:11:12Z")},
		{"Friday 4 May 2018 10:15:30 PM", "%A %-d %B %Y %I:%M:%S %p", nil, instant("2018-05-04T22:15:30Z")},
		{"5/4/18 22:15:30", "%-m/%-d/%y %H:%M:%S", nil, instant("2018-05-04T22:15:30Z")},
		{"20180504", "%Y%m%d", nil, date(2018, 5, 4)},
		{"201854", "%Y%-m%-d", nil, date(2018, 5, 4)},
		{"2018005004", "%Y0%m0%d", nil, date(2018, 5, 4)},
		{"2018124", "%Y%m%d", nil, date(2018, 12, 4)},
		// Day 366 of a common year rolls over.
		{"2019-366", "%Y-%j", nil, date(2020, 1, 1)},
		// A month fixes the date before the day of year does.
		{"2019-366 03-04", "%Y-%j %m-%d", nil, date(2019, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in, tt.format, tt.o)
			if err != nil {
				t.Fatalf("Parse(%q, %q) failed: %v", tt.in, tt.format, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q, %q) = %v, want %v", tt.in, tt.format, got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("Parse(%q, %q) location = %v, want UTC", tt.in, tt.format, got.Location())
			}
		})
	}
}

func TestParseYearOnlyFields(t *testing.T) {
	for _, tt := range []struct {
		in, format string
		want       int
	}{
		{"80-W10", "%g-W%V", 1980},
		{"21-W10", "%g-W%V", 2021},
		{"2000-W10", "%G-W%V", 2000},
		{"-2000-W10", "%G-W%V", -2000},
	} {
		got, err := Parse(tt.in, tt.format, nil)
		if err != nil {
			t.Errorf("Parse(%q, %q) failed: %v", tt.in, tt.format, err)
			continue
		}
		if got.Year() != tt.want {
			t.Errorf("Parse(%q, %q) year = %d, want %d", tt.in, tt.format, got.Year(), tt.want)
		}
	}
}

func TestParseOffsets(t *testing.T) {
	o := &Options{Now: fixedNow}
	tests := []struct {
		in   string
		want string
	}{
		{"12:00 +0000", "2021-01-01T12:00:00Z"},
		{"12:00 ±0000", "2021-01-01T12:00:00Z"},
		{"12:00 -0400", "2021-01-01T16:00:00Z"},
		{"12:00 +0400", "2021-01-01T08:00:00Z"},
		{"12:00 +0230", "2021-01-01T09:30:00Z"},
		{"12:00 +01:00", "2021-01-01T11:00:00Z"},
	}
	for _, format := range []string{"%H:%M %z", "%H:%M %Z"} {
		for _, tt := range tests {
			got, err := Parse(tt.in, format, o)
			if err != nil {
				t.Errorf("Parse(%q, %q) failed: %v", tt.in, format, err)
				continue
			}
			if want := instant(tt.want); !got.Equal(want) {
				t.Errorf("Parse(%q, %q) = %v, want %v", tt.in, format, got, want)
			}
		}
	}
}

func TestParseZoneNames(t *testing.T) {
	o := &Options{Now: fixedNow}
	tests := []struct {
		in   string
		want string
	}{
		{"12:00 Z", "2021-01-01T12:00:00Z"},
		{"12:00 UTC", "2021-01-01T12:00:00Z"},
		{"12:00 utc", "2021-01-01T12:00:00Z"},
		{"12:00 EDT", "2021-01-01T16:00:00Z"},
		{"12:00 EEST", "2021-01-01T09:00:00Z"},
		{"12:00 ACDT", "2021-01-01T01:30:00Z"},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in, "%H:%M %Z", o)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.in, err)
			continue
		}
		if want := instant(tt.want); !got.Equal(want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, want)
		}
	}

	custom := &Options{Now: fixedNow, ZoneNames: map[string]float64{"marst": -9.5}}
	got, err := Parse("12:00 MARST", "%H:%M %Z", custom)
	if err != nil {
		t.Fatalf("Parse() with custom zone names failed: %v", err)
	}
	if want := instant("2021-01-01T21:30:00Z"); !got.Equal(want) {
		t.Errorf("Parse() with custom zone names = %v, want %v", got, want)
	}
	if _, err := Parse("12:00 EDT", "%H:%M %Z", custom); err == nil {
		t.Error("Parse() with custom zone names accepted EDT")
	}
}

func TestParseAssumedZone(t *testing.T) {
	const ts = "2018-08-15 12:30:00"
	tests := []struct {
		name string
		tz   Zone
		want string
	}{
		{"UTC", UTC, "2018-08-15T12:30:00Z"},
		{"utc", mustNamedZone("utc"), "2018-08-15T12:30:00Z"},
		{"+60", FixedZone(60), "2018-08-15T11:30:00Z"},
		{"-60", FixedZone(-60), "2018-08-15T13:30:00Z"},
		{"+2.5", HoursZone(2.5), "2018-08-15T10:00:00Z"},
		{"-2.5", HoursZone(-2.5), "2018-08-15T15:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(ts, "%F %T", &Options{TZ: tt.tz})
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			if want := instant(tt.want); !got.Equal(want) {
				t.Errorf("Parse() = %v, want %v", got, want)
			}
		})
	}

	// A literal Z is text, not an offset.
	got, err := Parse("2018-01-01T04:00:00Z", "%FT%TZ", &Options{TZ: FixedZone(120)})
	if err != nil {
		t.Fatal(err)
	}
	if got.Hour() != 2 {
		t.Errorf("Parse() hour = %d, want 2", got.Hour())
	}
	// An offset in the timestamp beats the option.
	got, err = Parse("2018-01-01 04:00:00 UTC", "%F %T %Z", &Options{TZ: FixedZone(120)})
	if err != nil {
		t.Fatal(err)
	}
	if got.Hour() != 4 {
		t.Errorf("Parse() hour = %d, want 4", got.Hour())
	}
}

func TestParseWeekTables(t *testing.T) {
	sunday := []struct {
		t  time.Time
		ts string
	}{
		{date(1990, 1, 4), "1990-00-4"},
		{date(2000, 1, 1), "2000-00-6"},
		{date(2001, 3, 3), "2001-08-6"},
		{date(2005, 4, 1), "2005-13-5"},
		{date(2011, 7, 3), "2011-27-0"},
		{date(2016, 2, 29), "2016-09-1"},
		{date(2018, 5, 19), "2018-19-6"},
		{date(2021, 10, 10), "2021-41-0"},
		{date(2030, 9, 18), "2030-37-3"},
		{date(2038, 9, 21), "2038-38-2"},
		{date(2040, 12, 30), "2040-53-0"},
		{date(2040, 12, 31), "2040-53-1"},
	}
	monday := []struct {
		t  time.Time
		ts string
	}{
		{date(1990, 1, 4), "1990-01-4"},
		{date(2000, 1, 1), "2000-00-6"},
		{date(2001, 3, 3), "2001-09-6"},
		{date(2005, 4, 1), "2005-13-5"},
		{date(2011, 7, 3), "2011-26-7"},
		{date(2016, 2, 29), "2016-09-1"},
		{date(2018, 5, 19), "2018-20-6"},
		{date(2021, 10, 10), "2021-40-7"},
		{date(2030, 9, 18), "2030-37-3"},
		{date(2038, 9, 21), "2038-38-2"},
		{date(2040, 12, 30), "2040-52-7"},
		{date(2040, 12, 31), "2040-53-1"},
	}
	check := func(format string, tm time.Time, ts string) {
		t.Helper()
		if got, err := Format(tm, format, nil); err != nil || got != ts {
			t.Errorf("Format(%v, %q) = %q, %v, want %q", tm, format, got, err, ts)
		}
		if got, err := Parse(ts, format, nil); err != nil || !got.Equal(tm) {
			t.Errorf("Parse(%q, %q) = %v, %v, want %v", ts, format, got, err, tm)
		}
	}
	for _, tt := range sunday {
		check("%Y-%U-%w", tt.t, tt.ts)
	}
	for _, tt := range monday {
		check("%Y-%W-%u", tt.t, tt.ts)
	}
}

func TestParseISOWeekDates(t *testing.T) {
	tests := []struct {
		t  time.Time
		ts string
	}{
		{date(1906, 12, 9), "1906-W49-7"},
		{date(1948, 3, 4), "1948-W10-4"},
		{date(1991, 6, 23), "1991-W25-7"},
		{date(2000, 1, 1), "1999-W52-6"},
		{date(2008, 2, 25), "2008-W09-1"},
		{date(2018, 5, 4), "2018-W18-5"},
		{date(2100, 12, 31), "2100-W52-5"},
	}
	for _, tt := range tests {
		if got, err := Format(tt.t, "%G-W%V-%u", nil); err != nil || got != tt.ts {
			t.Errorf("Format(%v) = %q, %v, want %q", tt.t, got, err, tt.ts)
		}
		if got, err := Parse(tt.ts, "%G-W%V-%u", nil); err != nil || !got.Equal(tt.t) {
			t.Errorf("Parse(%q) = %v, %v, want %v", tt.ts, got, err, tt.t)
		}
	}
}

func TestParseSpanish(t *testing.T) {
	o := spanish()
	tests := []struct {
		in, format string
		want       time.Time
	}{
		{"2008-W09-L", "%G-W%V-%A", date(2008, 2, 25)},
		{"2008-W09-l", "%G-W%V-%A", date(2008, 2, 25)},
		{"2008-W09-lunes", "%G-W%V-%A", date(2008, 2, 25)},
		{"2008-W09-LUNES", "%G-W%V-%A", date(2008, 2, 25)},
		{"2008-W09-Miércoles", "%G-W%V-%A", date(2008, 2, 27)},
		{"10 mar 2018", "%d %b %Y", date(2018, 3, 10)},
		{"10 MARZO 2018", "%d %b %Y", date(2018, 3, 10)},
		{"10ª día de julio de 2018", "%:d día de %B de %Y", date(2018, 7, 10)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in, tt.format, o)
		if err != nil {
			t.Errorf("Parse(%q, %q) failed: %v", tt.in, tt.format, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q, %q) = %v, want %v", tt.in, tt.format, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in, format string
		wantErr    error
		wantMsg    string
	}{
		{
			"2000-01-01", "%Y-%m-%?", ErrUnknownDirective,
			`failed with format "%Y-%m-%?": unknown directive "%?"`,
		},
		{
			"2000-01-01", "%", ErrUnterminatedDirective,
			`failed with format "%": found unterminated directive at the end of the format string`,
		},
		{
			"2000-01-01", "", ErrEmptyFormat,
			`failed with format "": empty format string`,
		},
		{
			"2000-01-01", "%F %T", ErrTooShort,
			`failed to parse token " " at position [10] in timestamp "2000-01-01" with format "%F %T": timestamp is too short to match the whole format`,
		},
		{
			"2000-01-01 00:00:00", "%F", ErrTooLong,
			`failed with format "%F": timestamp is too long for the given format, text remaining " 00:00:00"`,
		},
		{
			"2000-01-01", "%Y.%m.%d", ErrLiteralMismatch,
			`failed to parse token "." at position [4] in timestamp "2000-01-01" with format "%Y.%m.%d": string literal "." not matched`,
		},
		{
			"-2000 Jan -20", "%Y %b %d", ErrNegative,
			`failed to parse token "%d" at position [10] in timestamp "-2000 Jan -20" with format "%Y %b %d": number cannot be negative`,
		},
		{
			"2000-50-50", "%Y-%m-%d", ErrOutOfBounds,
			`failed to parse token "%m" at position [7] in timestamp "2000-50-50" with format "%Y-%m-%d": number [50] is out of bounds [1, 12]`,
		},
		{
			"2000-01-0x", "%F", ErrOutOfBounds,
			`failed to parse token "%d" (expanded from "%F") at position [9] in timestamp "2000-01-0x" with format "%F": number [0] is out of bounds [1, 31]`,
		},
		{
			"2000-01-xx", "%F", ErrNumber,
			`failed to parse token "%d" (expanded from "%F") at position [8] in timestamp "2000-01-xx" with format "%F": failed to parse number`,
		},
		{
			"2000-01-01 ?0000", "%F %z", ErrZoneOffset,
			`failed to parse token "%z" at position [16] in timestamp "2000-01-01 ?0000" with format "%F %z": unknown timezone offset sign "?"`,
		},
		{
			"2000-01-01 +??:??", "%F %z", ErrZoneOffset,
			`failed to parse token "%z" at position [17] in timestamp "2000-01-01 +??:??" with format "%F %z": failed to parse timezone offset from string "+??:??"`,
		},
		{
			"Someday 2018-01-01", "%A %F", ErrName,
			`failed to parse token "%A" at position [0] in timestamp "Someday 2018-01-01" with format "%A %F": failed to parse weekday name`,
		},
		{
			"1 NotAMonth 2018", "%-d %B %Y", ErrName,
			`failed to parse token "%B" at position [2] in timestamp "1 NotAMonth 2018" with format "%-d %B %Y": failed to parse month name`,
		},
		{
			"2018-01-01 10:00 ??", "%F %I:%M %p", ErrName,
			`failed to parse token "%p" at position [17] in timestamp "2018-01-01 10:00 ??" with format "%F %I:%M %p": failed to parse AM/PM`,
		},
		{
			"1 Jan 2018 ??", "%-d %b %^Y %#", ErrName,
			`failed to parse token "%#" at position [11] in timestamp "1 Jan 2018 ??" with format "%-d %b %^Y %#": failed to parse era name`,
		},
		{
			"1nd Jan 2000", "%:d %b %Y", ErrName,
			`failed to parse token "%:d" at position [1] in timestamp "1nd Jan 2000" with format "%:d %b %Y": ordinal suffix "st" not matched`,
		},
		{
			"2018ab", "%Y%m", ErrAmbiguousNumber,
			`failed to parse token "%Y" at position [0] in timestamp "2018ab" with format "%Y%m": failed to parse ambiguous number`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			_, err := Parse(tt.in, tt.format, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse(%q, %q) error = %v, want %v", tt.in, tt.format, err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.wantMsg, err.Error()); diff != "" {
				t.Errorf("Parse(%q, %q) error mismatch (-want +got):\n%s", tt.in, tt.format, diff)
			}
		})
	}
}

func TestParseErrorFields(t *testing.T) {
	_, err := Parse("2000-50-50", "%Y-%m-%d", nil)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Parse() error = %v, want *ParseError", err)
	}
	if !perr.HasInput || perr.Input != "2000-50-50" || perr.Format != "%Y-%m-%d" || perr.Pos != 7 {
		t.Errorf("ParseError = %+v", perr)
	}
	if perr.Token == nil || perr.Token.String() != "%m" {
		t.Errorf("ParseError.Token = %v, want %%m", perr.Token)
	}
}

func TestParseErrorKinds(t *testing.T) {
	tests := []struct {
		in, format string
		want       error
	}{
		{"2018", "", ErrEmptyFormat},
		{"2018", "%Y%", ErrUnterminatedDirective},
		{"2018", "%?", ErrUnknownDirective},
		{"", "%Y", ErrTooShort},
		{"2018-01-01x", "%F", ErrTooLong},
		{"2018/01", "%Y-%m", ErrLiteralMismatch},
		{"2018-13", "%Y-%m", ErrOutOfBounds},
		{"-5", "%m", ErrNegative},
		{"xx", "%m", ErrNumber},
		{"Foo", "%a", ErrName},
		{"+0x00", "%z", ErrZoneOffset},
	}
	for _, tt := range tests {
		_, err := Parse(tt.in, tt.format, nil)
		if diff := cmp.Diff(tt.want, err, cmpopts.EquateErrors()); diff != "" {
			t.Errorf("Parse(%q, %q) error mismatch (-want +got):\n%s", tt.in, tt.format, diff)
		}
	}
}

func TestParseForkLimit(t *testing.T) {
	_, err := Parse("20180504", "%Y%m%d", &Options{MaxForks: 1})
	if !errors.Is(err, ErrForkLimit) {
		t.Fatalf("Parse() error = %v, want ErrForkLimit", err)
	}
	if !strings.Contains(err.Error(), "gave up after 1 attempts") {
		t.Errorf("Parse() error = %q", err)
	}

	got, err := Parse("20181231235959", "%Y%m%d%H%M%S", nil)
	if err != nil {
		t.Fatalf("Parse() within the default budget failed: %v", err)
	}
	if want := instant("2018-12-31T23:59:59Z"); !got.Equal(want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParseDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if _, err := Parse("201854", "%Y%-m%-d", &Options{Logger: logger}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"msg=fork", "token=%Y", "width=4", "ok=true", "ok=false"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug log missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	quiet := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if _, err := Parse("201854", "%Y%-m%-d", &Options{Logger: quiet}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("info logger received debug records:\n%s", buf.String())
	}
}

func TestParseRoundTrip(t *testing.T) {
	dates := []time.Time{
		instant("0004-02-29T10:01:05.800Z"),
		instant("1204-02-29T10:08:55.060Z"),
		instant("1889-04-26T05:00:00.000Z"),
		instant("1900-01-01T00:00:00.000Z"),
		instant("1906-12-09T12:00:00.000Z"),
		instant("1912-06-23T09:00:00.000Z"),
		instant("1948-03-04T22:00:00.000Z"),
		instant("1970-01-01T00:00:00.000Z"),
		instant("1991-06-23T23:59:59.999Z"),
		instant("1994-01-07T04:00:00.000Z"),
		instant("2000-01-01T00:00:00.000Z"),
		instant("2002-07-10T20:01:50.100Z"),
		instant("2012-12-21T23:59:59.999Z"),
		instant("2016-12-31T23:59:59.000Z"),
		instant("2018-05-18T18:59:30.121Z"),
		instant("2038-01-01T00:00:00.000Z"),
		instant("2038-01-19T03:15:00.000Z"),
		instant("4000-11-11T05:06:07.089Z"),
		instant("4100-01-01T12:00:00.000Z"),
		instant("9001-08-04T02:01:00.555Z"),
	}
	formats := []struct {
		format   string
		truncate time.Duration
	}{
		{"%-m/%-d/%Y", 24 * time.Hour},
		{"%G-W%V-%u", 24 * time.Hour},
		{"%-d %B %C %y", 24 * time.Hour},
		{"%Y%j", 24 * time.Hour},
		{"%Y-%j", 24 * time.Hour},
		{"%Y %U %u", 24 * time.Hour},
		{"%Y %W %u", 24 * time.Hour},
		{"%C %y %U %a", 24 * time.Hour},
		{"%F %T", time.Second},
		{"%Y-%m-%d %H:%M:%S", time.Second},
		{"%FT%T", time.Second},
		{"%A %-d %B %Y %I:%M:%S %p", time.Second},
		{"%m/%d/%Y %H:%M:%S", time.Second},
		{"%GW%V%uT%H%M%S%z", time.Second},
		{"%Y%m%dT%H%M%S%z", time.Second},
		{"%Y-%m-%d %H:%M:%S.%L", time.Millisecond},
		{"%C %y %U %a %H %M %S %L", time.Millisecond},
		{"%s", time.Second},
		{"%Q", time.Microsecond},
	}
	for _, f := range formats {
		t.Run(f.format, func(t *testing.T) {
			l := MustCompile(f.format)
			for _, d := range dates {
				want := d.Truncate(f.truncate)
				ts, err := l.Format(d, nil)
				if err != nil {
					t.Fatalf("Format(%v) failed: %v", d, err)
				}
				got, err := l.Parse(ts, nil)
				if err != nil {
					t.Errorf("Parse(%q) failed: %v", ts, err)
					continue
				}
				if !got.Equal(want) {
					t.Errorf("Parse(Format(%v)) = %v via %q, want %v", d, got, ts, want)
				}
			}
		})
	}
}

func TestParseRoundTripInZone(t *testing.T) {
	o := &Options{TZ: HoursZone(-3.5)}
	d := instant("2018-06-15T01:30:00Z")
	for _, format := range []string{"%F %T", "%F %T %z", "%s", "%c"} {
		ts, err := Format(d, format, o)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Parse(ts, format, o)
		if err != nil {
			t.Errorf("Parse(%q, %q) failed: %v", ts, format, err)
			continue
		}
		if !got.Equal(d) {
			t.Errorf("Parse(%q, %q) = %v, want %v", ts, format, got, d)
		}
	}
}
