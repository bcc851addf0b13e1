package smeartai

import "fmt"

// Month name constants, kept from the teacher package's gregorian.go.
const (
	notAMonth = iota
	January
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var (
	daysPerNonLeapMonth = [...]int{
		0,
		31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
	}
	daysPerLeapMonth = [...]int{
		0,
		31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
	}
	monthNamesAbbrev = [...]string{
		"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	monthNamesFull = [...]string{
		"", "January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	weekdayNamesAbbrev = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	weekdayNames       = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
)

// IsLeapYear returns true if year is a leap year in the proleptic
// Gregorian calendar. Panics for year < 1, matching the teacher
// package's documented behavior.
func IsLeapYear(year int64) bool {
	/* per USNO,
	Every year that is exactly divisible by four is a leap year,
	except for years that are exactly divisible by 100,
	but these centurial years are leap years if they are exactly divisible by 400.
	For example, the years 1700, 1800, and 1900 are not leap years,
	but the years 1600 and 2000 are.
	*/
	if year < 1 {
		panic(fmt.Sprintf("smeartai.IsLeapYear: got year < 1 %d, not part of Gregorian Calendar", year))
	}
	if year%4 == 0 {
		if year%100 == 0 {
			return year%400 == 0
		}
		return true
	}
	return false
}

// daysInMonth returns the number of days in the given month of year.
func daysInMonth(year int64, month int) int {
	if IsLeapYear(year) {
		return daysPerLeapMonth[month]
	}
	return daysPerNonLeapMonth[month]
}

// civilDaysRaw is Howard Hinnant's days_from_civil algorithm (public
// domain), as instantiated in the pack's libdates/civil.go, adapted to
// int64 and left unshifted: its zero point is 0000-03-01, not any
// later epoch, and civilDaysRaw(1970,1,1) == 719468 (Hinnant's
// well-known constant), not 0. The caller applies whatever epoch shift
// it needs.
func civilDaysRaw(y, m, d int64) int64 {
	if m <= 2 {
		y--
		m += 12
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	doy := (153*(m-3)+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe
}

// civilFromDaysRaw is the inverse of civilDaysRaw.
func civilFromDaysRaw(w int64) (y, m, d int64) {
	era := floorDiv(w, 146097)
	doe := w - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

func floorDiv(a, b int64) int64 {
	q := a / b
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}

// jdnEpochShift maps a true JDN (noon UTC 1970-01-01 == 2440588) onto
// days-since-Unix-epoch, for callers (JdnToTime, WeekdayFromDays) that
// already hold a true JDN rather than civilDaysRaw's raw output.
const jdnEpochShift = 2440588

// civilEpochShift maps civilDaysRaw/civilFromDaysRaw's raw zero point
// (0000-03-01) onto the true JDN of 1970-01-01: civilDaysRaw(1970,1,1)
// == 719468, and 719468 + civilEpochShift must equal jdnEpochShift
// (2440588), so civilEpochShift == 2440588 - 719468 == 1721120. This is
// distinct from jdnEpochShift because civilDaysRaw's zero point is not
// the Unix epoch.
const civilEpochShift = jdnEpochShift - 719468

// DaysFromCivil returns the JDN of noon UTC on the given proleptic
// Gregorian civil date.
func DaysFromCivil(y, m, d int64) int64 {
	return civilDaysRaw(y, m, d) + civilEpochShift
}

// CivilFromDays returns the proleptic Gregorian civil date (y, m, d)
// whose noon UTC is the given JDN.
func CivilFromDays(jdn int64) (y, m, d int64) {
	return civilFromDaysRaw(jdn - civilEpochShift)
}

// WeekdayFromDays returns the weekday (0 == Sunday) of the civil date
// at the given JDN. JDN 2440588 (1970-01-01) is a Thursday.
func WeekdayFromDays(jdn int64) int {
	const thursday = 4
	wd := (jdn - jdnEpochShift + thursday) % 7
	if wd < 0 {
		wd += 7
	}
	return int(wd)
}

// isLastDayOfMonth reports whether (y, m, d) is the final calendar day
// of its month.
func isLastDayOfMonth(y, m, d int64) bool {
	return d == int64(daysInMonth(y, int(m)))
}
