package smeartai

import (
	"fmt"
	"strconv"
	"strings"
)

// JdnToTime returns noon UTC of the day labeled by jdn, computed with
// 64-bit arithmetic so the full signed 32-bit JDN range is safe.
func JdnToTime(jdn int64) UTCTime {
	days := jdn - jdnEpochShift
	return UnixEpoch().Add(Hours(12)).Add(Seconds(days * 86400))
}

const (
	taiInfiniteFutureLabel  = "tai-infinite-future"
	taiInfinitePastLabel    = "tai-infinite-past"
	gpstInfiniteFutureLabel = "gpst-infinite-future"
	gpstInfinitePastLabel   = "gpst-infinite-past"
	utcInfiniteFutureLabel  = "utc-infinite-future"
	utcInfinitePastLabel    = "utc-infinite-past"
)

// FormatUTCTime renders u in the same default layout as FormatTaiTime
// and FormatGpsTime, labeled "UTC". Not part of the wall-clock
// formatting spec's public surface of timescale types, but used by
// DebugString and convenient for diagnostics.
func FormatUTCTime(u UTCTime) string {
	if u.IsInfinite() {
		if u.offset.sign() == posInf {
			return utcInfiniteFutureLabel
		}
		return utcInfinitePastLabel
	}
	return formatWallClock(u.offset, unixEpochJDN, "UTC")
}

// FormatTaiTime renders t in the default "YYYY-MM-DD HH:MM:SS[.fff…]
// TAI" layout, or one of the fixed infinite-sentinel strings.
func FormatTaiTime(t TaiTime) string {
	if t.IsInfinite() {
		if t.offset.sign() == posInf {
			return taiInfiniteFutureLabel
		}
		return taiInfinitePastLabel
	}
	return formatWallClock(t.offset, taiEpochJDN, "TAI")
}

// FormatGpsTime renders g in the default layout with the GPST label.
func FormatGpsTime(g GpsTime) string {
	if g.IsInfinite() {
		if g.offset.sign() == posInf {
			return gpstInfiniteFutureLabel
		}
		return gpstInfinitePastLabel
	}
	unixEpochJDNLocal := DaysFromCivil(1980, 1, 6)
	return formatWallClock(g.offset, unixEpochJDNLocal, "GPST")
}

// formatWallClock treats offset as a continuous (non-leap-aware)
// seconds count since the noon of epochNoonJDN's civil day minus 12h
// — i.e. since that civil day's midnight — per spec's "intentional
// abuse": the TAI/GPST offset is formatted as if it were a UTC-like
// calendar seconds count.
func formatWallClock(offset Duration, epochNoonJDN int64, zone string) string {
	y, m, d, h, mn, s, fracAtto := wallClockParts(offset, epochNoonJDN)
	base := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", y, m, d, h, mn, s)
	if fracAtto != 0 {
		fracStr := strings.TrimRight(fmt.Sprintf("%018d", fracAtto), "0")
		base += "." + fracStr
	}
	return base + " " + zone
}

func wallClockParts(offset Duration, epochNoonJDN int64) (y, m, d, h, mn, s, fracAtto int64) {
	sec := offset.sec
	days := floorDiv(sec, 86400)
	rem := sec - days*86400 // in [0, 86400)
	jdn := epochNoonJDN + days
	y, m, d = CivilFromDays(jdn)
	h = rem / 3600
	mn = (rem % 3600) / 60
	s = rem % 60
	fracAtto = offset.atto
	return
}

// FormatTaiTimeWithFormat renders t using a strftime-style format
// string. %Z is replaced with the timescale label ("TAI"); %%Z is
// preserved literally (the leading %% already escapes to a literal
// %, so the following Z is copied through unchanged).
func FormatTaiTimeWithFormat(t TaiTime, format string) string {
	if t.IsInfinite() {
		return FormatTaiTime(t)
	}
	y, m, d, h, mn, s, fracAtto := wallClockParts(t.offset, taiEpochJDN)
	return renderStrftime(format, y, m, d, h, mn, s, fracAtto, "TAI")
}

// FormatGpsTimeWithFormat renders g using a strftime-style format
// string, with %Z replaced by "GPST".
func FormatGpsTimeWithFormat(g GpsTime, format string) string {
	if g.IsInfinite() {
		return FormatGpsTime(g)
	}
	epochNoonJDN := DaysFromCivil(1980, 1, 6)
	y, m, d, h, mn, s, fracAtto := wallClockParts(g.offset, epochNoonJDN)
	return renderStrftime(format, y, m, d, h, mn, s, fracAtto, "GPST")
}

// renderStrftime is the teacher package's TAI.Format specifier loop
// (tai.go), generalized to operate on precomputed date/time parts and
// extended with %Z for the timescale label.
func renderStrftime(format string, y, m, d, h, mn, s, fracAtto int64, zone string) string {
	f := []rune(format)
	jdn := DaysFromCivil(y, m, d)
	wd := WeekdayFromDays(jdn)
	ily := y >= 1 && IsLeapYear(y)
	doy := int64(daysBeforeNonLeapMonth(int(m)))
	if ily && m > 2 {
		doy++
	}
	doy += d
	woy := doy / 7

	var b strings.Builder
	b.Grow(len(f) + 10)
	var last rune
	for i := 0; i < len(f); i++ {
		next := f[i]
		if next == '%' {
			if last == '%' {
				b.WriteRune('%')
				last = 0
				continue
			}
			last = next
			continue
		}
		if last == '%' {
			switch next {
			case 'a':
				b.WriteString(weekdayNamesAbbrev[wd])
			case 'A':
				b.WriteString(weekdayNames[wd])
			case 'w':
				b.WriteString(strconv.Itoa(wd))
			case 'd':
				b.WriteString(fmt.Sprintf("%02d", d))
			case 'b':
				b.WriteString(monthNamesAbbrev[m])
			case 'B':
				b.WriteString(monthNamesFull[m])
			case 'm':
				b.WriteString(fmt.Sprintf("%02d", m))
			case 'y':
				ys := fmt.Sprintf("%04d", y)
				b.WriteString(ys[len(ys)-2:])
			case 'Y':
				b.WriteString(fmt.Sprintf("%d", y))
			case 'H':
				b.WriteString(fmt.Sprintf("%02d", h))
			case 'I':
				hh := h
				if hh > 12 {
					hh -= 12
				}
				if hh == 0 {
					hh = 12
				}
				b.WriteString(fmt.Sprintf("%02d", hh))
			case 'p':
				if h >= 12 {
					b.WriteString("PM")
				} else {
					b.WriteString("AM")
				}
			case 'M':
				b.WriteString(fmt.Sprintf("%02d", mn))
			case 'S':
				b.WriteString(fmt.Sprintf("%02d", s))
			case 'f':
				b.WriteString(fmt.Sprintf("%06d", fracAtto/Microsecond))
			case 'F':
				b.WriteString(fmt.Sprintf("%09d", fracAtto/Nanosecond))
			case 'Z':
				b.WriteString(zone)
			case 'j':
				b.WriteString(fmt.Sprintf("%03d", doy))
			case 'U':
				b.WriteString(fmt.Sprintf("%02d", woy))
			default:
				panic(fmt.Sprintf("smeartai: invalid format specifier %%%c", next))
			}
		} else {
			b.WriteRune(next)
		}
		last = next
	}
	return b.String()
}

func daysBeforeNonLeapMonth(month int) int {
	totals := [...]int{
		0,
		0,
		31,
		31 + 28,
		31 + 28 + 31,
		31 + 28 + 31 + 30,
		31 + 28 + 31 + 30 + 31,
		31 + 28 + 31 + 30 + 31 + 30,
		31 + 28 + 31 + 30 + 31 + 30 + 31,
		31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
		31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
		31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
		31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	}
	return totals[month]
}
