// Package unixtime converts between civil date-time components and seconds
// since 1970-01-01 00:00:00 UTC without going through time.Location.
package unixtime

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	daysPer400Years = 365*400 + 97

	// Days from 0000-03-01 to 1970-01-01.
	marchZeroToUnix = 719468
)

// FromDateTime returns the Unix timestamp of the given proleptic Gregorian
// date and time, ignoring leap seconds. Components outside their usual range
// carry into the next larger unit, so month 13 is January of the next year
// and hour 24 is midnight of the next day.
func FromDateTime(year, month, day, hour, minute, second int) int64 {
	y := int64(year) + floorDiv(int64(month)-1, 12)
	m := floorMod(int64(month)-1, 12) + 1
	days := daysFromCivil(y, m) + int64(day) - 1
	return days*secondsPerDay + int64(hour)*secondsPerHour + int64(minute)*secondsPerMinute + int64(second)
}

// ToDateTime is the inverse of FromDateTime for normalized components.
func ToDateTime(unix int64) (year, month, day, hour, minute, second int) {
	days := floorDiv(unix, secondsPerDay)
	rem := unix - days*secondsPerDay
	y, m, d := civilFromDays(days)
	return int(y), int(m), int(d), int(rem / secondsPerHour), int(rem % secondsPerHour / secondsPerMinute), int(rem % secondsPerMinute)
}

// daysFromCivil counts days from the epoch to the first of month in year.
// Years are shifted to start in March so the leap day ends the year.
func daysFromCivil(year, month int64) int64 {
	if month <= 2 {
		year--
	}
	era := floorDiv(year, 400)
	yoe := year - era*400
	mp := (month + 9) % 12
	doy := (153*mp + 2) / 5
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPer400Years + doe - marchZeroToUnix
}

func civilFromDays(days int64) (year, month, day int64) {
	days += marchZeroToUnix
	era := floorDiv(days, daysPer400Years)
	doe := days - era*daysPer400Years
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = doy - (153*mp+2)/5 + 1
	month = (mp+2)%12 + 1
	year = yoe + era*400
	if month <= 2 {
		year++
	}
	return year, month, day
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - b*floorDiv(a, b)
}
