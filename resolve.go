package strtime

import (
	"time"

	"github.com/ngrash/go-strtime/internal/calendar"
	"github.com/ngrash/go-strtime/internal/unixtime"
)

// pivotYear expands a two-digit year: 00-68 are 2000-2068, 69-99 are
// 1969-1999.
func pivotYear(y int64) int64 {
	if y <= 68 {
		return 2000 + y
	}
	return 1900 + y
}

// resolve turns parsed fields into an instant.
func (s *settings) resolve(f *fields) (time.Time, error) {
	if f.epochMicrosecond.ok || f.epochSecond.ok {
		micro := f.epochMicrosecond.v
		if !f.epochMicrosecond.ok {
			micro = 1000000 * f.epochSecond.v
		}
		t := time.UnixMicro(micro).UTC()
		offset, err := s.wallOffset(f, t)
		if err != nil {
			return time.Time{}, err
		}
		return t.Add(-time.Duration(offset) * time.Minute), nil
	}

	year := f.year
	switch {
	case !year.ok && f.yearTwoDigit.ok && f.century.ok:
		year.set(100*f.century.v + f.yearTwoDigit.v)
	case !year.ok && f.yearTwoDigit.ok:
		year.set(pivotYear(f.yearTwoDigit.v))
	case !year.ok && f.century.ok:
		year.set(100 * f.century.v)
	}
	isoYear := f.isoYear
	if !isoYear.ok && f.isoYearTwoDigit.ok {
		isoYear.set(pivotYear(f.isoYearTwoDigit.v))
	}
	if year.ok && f.era.ok && f.era.v == 1 {
		year.v = 1 - year.v
	}

	hour := f.hour.v
	if f.hour.ok && f.meridiem.ok {
		hour = hour%12 + 12*f.meridiem.v
	}
	micro := f.microsecond.v
	if !f.microsecond.ok && f.millisecond.ok {
		micro = 1000 * f.millisecond.v
	}

	y := year.v
	if !year.ok {
		y = int64(s.now().UTC().Year())
	}
	month, day := f.month, f.day
	date := func(yy, mm, dd int) {
		y = int64(yy)
		month.set(int64(mm))
		day.set(int64(dd))
	}
	weekday := int(f.weekday.v)
	switch {
	case isoYear.ok && f.isoWeek.ok && (!month.ok || !day.ok):
		date(calendar.FromISOWeekDate(int(isoYear.v), int(f.isoWeek.v), weekday))
	case f.dayOfYear.ok:
		yy, mm, dd := calendar.FromDayOfYear(int(y), int(f.dayOfYear.v))
		if !month.ok && !day.ok {
			// Day 366 of a common year rolls into the next year.
			y = int64(yy)
		}
		if !month.ok {
			month.set(int64(mm))
		}
		if !day.ok {
			day.set(int64(dd))
		}
	case f.sundayWeek.ok && (!month.ok || !day.ok):
		date(calendar.FromSundayWeek(int(y), int(f.sundayWeek.v), weekday))
	case f.mondayWeek.ok && (!month.ok || !day.ok):
		date(calendar.FromMondayWeek(int(y), int(f.mondayWeek.v), weekday))
	}
	if !month.ok {
		month.set(1)
	}
	if !day.ok {
		day.set(1)
	}

	sec := unixtime.FromDateTime(int(y), int(month.v), int(day.v), int(hour), int(f.minute.v), int(f.second.v))
	wall := time.Unix(sec, 1000*micro).UTC()
	offset, err := s.wallOffset(f, wall)
	if err != nil {
		return time.Time{}, err
	}
	return wall.Add(-time.Duration(offset) * time.Minute), nil
}

// wallOffset is the parsed offset, or else the configured zone's offset at
// the wall-clock time.
func (s *settings) wallOffset(f *fields, wall time.Time) (int, error) {
	if f.offset.ok {
		return int(f.offset.v), nil
	}
	return s.offsetForLocal(wall)
}
