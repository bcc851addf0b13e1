package smeartai

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// FormatDuration renders d the way the teacher package renders a TAI
// offset, generalized to attosecond resolution and the INFINITE
// sentinels: h/m/s components with a trimmed fractional seconds tail
// when the magnitude is at least one second, otherwise the largest
// sub-second unit (ms or us) in which the value is at least 1, with ns
// used for anything below one microsecond.
// The zero duration renders as "0".
func FormatDuration(d Duration) string {
	switch d.inf {
	case posInf:
		return "inf"
	case negInf:
		return "-inf"
	}
	if d.isZero() {
		return "0"
	}

	neg := d.sec < 0
	absSec, absAtto := d.sec, d.atto
	if neg {
		if absAtto == 0 {
			absSec = -absSec
		} else {
			absSec = -absSec - 1
			absAtto = attoPerSec - absAtto
		}
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}

	if absSec == 0 {
		switch {
		case absAtto < Microsecond:
			b.WriteString(formatFracUnit(absAtto/Nanosecond, absAtto%Nanosecond, 9, "ns"))
		case absAtto < Millisecond:
			b.WriteString(formatFracUnit(absAtto/Microsecond, absAtto%Microsecond, 12, "us"))
		default:
			b.WriteString(formatFracUnit(absAtto/Millisecond, absAtto%Millisecond, 15, "ms"))
		}
		return b.String()
	}

	hours := absSec / 3600
	rem := absSec % 3600
	mins := rem / 60
	secs := rem % 60
	if hours > 0 {
		b.WriteString(strconv.FormatInt(hours, 10))
		b.WriteByte('h')
	}
	if hours > 0 || mins > 0 {
		b.WriteString(strconv.FormatInt(mins, 10))
		b.WriteByte('m')
	}
	b.WriteString(formatFracUnit(secs, absAtto, 18, "s"))
	return b.String()
}

func formatFracUnit(whole, frac int64, fracDigits int, unit string) string {
	s := strconv.FormatInt(whole, 10)
	if frac == 0 {
		return s + unit
	}
	fracStr := fmt.Sprintf("%0*d", fracDigits, frac)
	fracStr = strings.TrimRight(fracStr, "0")
	return s + "." + fracStr + unit
}

func unitBaseAtto(unit string) *big.Int {
	switch unit {
	case "ns":
		return big.NewInt(Nanosecond)
	case "us":
		return big.NewInt(Microsecond)
	case "ms":
		return big.NewInt(Millisecond)
	case "s":
		return big.NewInt(attoPerSec)
	case "m":
		return new(big.Int).Mul(big.NewInt(60), big.NewInt(attoPerSec))
	case "h":
		return new(big.Int).Mul(big.NewInt(3600), big.NewInt(attoPerSec))
	default:
		return nil
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// ParseDuration parses the format produced by FormatDuration. It
// accepts an optional leading sign followed by a nonempty sequence of
// <decimal>[.<decimal>]<unit> tokens (units ns, us, ms, s, m, h, any
// order, no whitespace), or one of the special tokens 0, inf, +inf,
// -inf. Any other input fails the parse; ok is false and the returned
// Duration is unspecified.
func ParseDuration(s string) (Duration, bool) {
	switch s {
	case "0":
		return Duration{}, true
	case "inf", "+inf":
		return INFINITE, true
	case "-inf":
		return INFINITE.Neg(), true
	case "":
		return Duration{}, false
	}

	i := 0
	neg := false
	switch s[0] {
	case '+':
		i = 1
	case '-':
		neg = true
		i = 1
	}
	if i >= len(s) {
		return Duration{}, false
	}

	total := Duration{}
	sawToken := false
	for i < len(s) {
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return Duration{}, false
		}
		intPart := s[start:i]

		fracPart := ""
		if i < len(s) && s[i] == '.' {
			i++
			fstart := i
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			if i == fstart {
				return Duration{}, false
			}
			fracPart = s[fstart:i]
		}

		var unit string
		switch {
		case i+2 <= len(s) && (s[i:i+2] == "ns" || s[i:i+2] == "us" || s[i:i+2] == "ms"):
			unit = s[i : i+2]
			i += 2
		case i < len(s) && (s[i] == 's' || s[i] == 'm' || s[i] == 'h'):
			unit = string(s[i])
			i++
		default:
			return Duration{}, false
		}

		tok, ok := parseToken(intPart, fracPart, unit)
		if !ok {
			return Duration{}, false
		}
		total = total.Add(tok)
		sawToken = true
	}
	if !sawToken {
		return Duration{}, false
	}
	if neg {
		total = total.Neg()
	}
	return total, true
}

func parseToken(intPart, fracPart, unit string) (Duration, bool) {
	base := unitBaseAtto(unit)
	if base == nil {
		return Duration{}, false
	}
	ip := new(big.Int)
	if _, ok := ip.SetString(intPart, 10); !ok {
		return Duration{}, false
	}
	total := new(big.Int).Mul(ip, base)

	if fracPart != "" {
		fp := new(big.Int)
		if _, ok := fp.SetString(fracPart, 10); !ok {
			return Duration{}, false
		}
		fp.Mul(fp, base)
		denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(fracPart))), nil)
		fq, fr := new(big.Int), new(big.Int)
		fq.QuoRem(fp, denom, fr)
		if new(big.Int).Mul(fr, big.NewInt(2)).Cmp(denom) >= 0 {
			fq.Add(fq, big.NewInt(1))
		}
		total.Add(total, fq)
	}
	return durationFromTicks(total), true
}
