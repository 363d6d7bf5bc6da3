package strtime

import "strconv"

var (
	englishEraNames      = []string{"CE", "BCE"}
	englishMeridiemNames = []string{"AM", "PM"}

	englishShortWeekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	englishLongWeekdayNames  = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

	englishShortMonthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	englishLongMonthNames  = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
)

// EnglishOrdinal renders n with its English ordinal suffix: 1st, 2nd, 3rd,
// 4th, 11th, 12th, 13th, 21st and so on.
func EnglishOrdinal(n int) string {
	return strconv.Itoa(n) + EnglishOrdinalSuffix(n)
}

// EnglishOrdinalSuffix returns the suffix EnglishOrdinal appends to n.
func EnglishOrdinalSuffix(n int) string {
	if n < 0 {
		n = -n
	}
	if r := n % 100; r >= 11 && r <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
