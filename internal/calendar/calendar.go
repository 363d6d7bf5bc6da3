// Package calendar implements proleptic Gregorian date arithmetic.
//
// Months are numbered 1 to 12, days of the month start at 1 and weekdays
// follow the Sunday=0 convention unless noted otherwise. All functions accept
// negative (astronomical) years.
package calendar

// IsLeapYear reports whether year has 366 days.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year, month int) int {
	if month == 2 {
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}

var sakamoto = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// DayOfWeek returns the weekday of the given date, 0=Sunday ... 6=Saturday.
func DayOfWeek(year, month, day int) int {
	// January and February count as months of the previous year.
	if month < 3 {
		year--
	}
	n := year + floorDiv(year, 4) - floorDiv(year, 100) + floorDiv(year, 400) + sakamoto[month-1] + day
	return floorMod(n, 7)
}

var daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// DayOfYear returns the 1-based ordinal day of the date within its year.
func DayOfYear(year, month, day int) int {
	d := daysBeforeMonth[month-1] + day
	if month > 2 && IsLeapYear(year) {
		d++
	}
	return d
}

// FirstWeekdayOfYear returns the weekday of January 1st of year.
func FirstWeekdayOfYear(year int) int {
	return DayOfWeek(year, 1, 1)
}

// SundayWeek returns the week number of the date where weeks start on
// Sunday and days before the first Sunday fall into week 0.
func SundayWeek(year, month, day int) int {
	first := sundayAsSeven(FirstWeekdayOfYear(year))
	return (DayOfYear(year, month, day) + first - 1) / 7
}

// MondayWeek returns the week number of the date where weeks start on
// Monday and days before the first Monday fall into week 0.
func MondayWeek(year, month, day int) int {
	w := SundayWeek(year, month, day)
	if DayOfWeek(year, month, day) == 0 {
		w--
	}
	if FirstWeekdayOfYear(year) == 1 {
		w++
	}
	return w
}

// ISOWeeksInYear returns 52 or 53, the number of ISO 8601 weeks in year.
func ISOWeeksInYear(year int) int {
	p := func(y int) int {
		return floorMod(y+floorDiv(y, 4)-floorDiv(y, 100)+floorDiv(y, 400), 7)
	}
	if p(year) == 4 || p(year-1) == 3 {
		return 53
	}
	return 52
}

// ISOWeek returns the ISO 8601 week-numbering year and week of the date.
func ISOWeek(year, month, day int) (isoYear, week int) {
	dow := sundayAsSeven(DayOfWeek(year, month, day))
	week = (10 + DayOfYear(year, month, day) - dow) / 7
	switch {
	case week < 1:
		return year - 1, ISOWeeksInYear(year - 1)
	case week > ISOWeeksInYear(year):
		return year + 1, 1
	}
	return year, week
}

// ISOWeekday maps a Sunday=0 weekday to ISO numbering, Monday=1 ... Sunday=7.
func ISOWeekday(weekday int) int {
	return sundayAsSeven(floorMod(weekday, 7))
}

// FromISOWeekDate converts an ISO week date into a calendar date. weekday
// uses the Sunday=0 convention; 7 is accepted as Sunday too.
func FromISOWeekDate(isoYear, week, weekday int) (year, month, day int) {
	jan4 := sundayAsSeven(DayOfWeek(isoYear, 1, 4))
	ordinal := 7*week + ISOWeekday(weekday) - (jan4 + 3)
	return FromDayOfYear(isoYear, ordinal)
}

// FromSundayWeek is the inverse of SundayWeek combined with a weekday.
func FromSundayWeek(year, week, weekday int) (y, month, day int) {
	first := sundayAsSeven(FirstWeekdayOfYear(year))
	return FromDayOfYear(year, 1+7*week-first+floorMod(weekday, 7))
}

// FromMondayWeek is the inverse of MondayWeek combined with a weekday.
func FromMondayWeek(year, week, weekday int) (y, month, day int) {
	weekday = floorMod(weekday, 7)
	first := FirstWeekdayOfYear(year)
	doy := 1 + 7*week - sundayAsSeven(first) + weekday
	if weekday == 0 {
		doy += 7
	}
	if first == 1 {
		doy -= 7
	}
	return FromDayOfYear(year, doy)
}

// FromDayOfYear converts a 1-based ordinal day into a calendar date.
// Ordinals outside the year roll into the neighboring years.
func FromDayOfYear(year, doy int) (y, month, day int) {
	for doy < 1 {
		year--
		doy += DaysInYear(year)
	}
	for doy > DaysInYear(year) {
		doy -= DaysInYear(year)
		year++
	}
	month = 1
	for doy > DaysInMonth(year, month) {
		doy -= DaysInMonth(year, month)
		month++
	}
	return year, month, doy
}

// LastWeekdayOfMonth returns the day of the last given weekday in month.
func LastWeekdayOfMonth(year, month, weekday int) int {
	last := DaysInMonth(year, month)
	offset := floorMod(DayOfWeek(year, month, last)-weekday, 7)
	return last - offset
}

// NthWeekdayOfMonth returns the day of the n-th (1-based) given weekday in
// month. Values of n that overshoot the month yield the last such weekday.
func NthWeekdayOfMonth(year, month, n, weekday int) int {
	first := 1 + floorMod(weekday-DayOfWeek(year, month, 1), 7)
	day := first + 7*(n-1)
	for day > DaysInMonth(year, month) {
		day -= 7
	}
	return day
}

func sundayAsSeven(weekday int) int {
	if weekday == 0 {
		return 7
	}
	return weekday
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - b*floorDiv(a, b)
}
