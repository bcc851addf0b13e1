package smeartai

import "math/big"

// scaleTicks returns round(ticks * mulN / mulD), rounding half away
// from zero the same way DivInt does, so the smear interpolation
// below composes predictably with the rest of the Duration algebra.
func scaleTicks(ticks *big.Int, mulN, mulD int64) *big.Int {
	num := new(big.Int).Mul(ticks, big.NewInt(mulN))
	den := big.NewInt(mulD)
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(num, den, r)
	twiceR := new(big.Int).Abs(new(big.Int).Mul(r, big.NewInt(2)))
	denAbs := new(big.Int).Abs(den)
	if twiceR.Cmp(denAbs) >= 0 {
		if (num.Sign() < 0) != (den.Sign() < 0) {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

// interpolateUtcToTai maps utc to its TAI equivalent within the
// segment governed by e, the newer (upper) boundary entry of the
// pair. For a non-smear segment tai-utc is constant; for a smear
// segment the map is linear across 86,400 UTC seconds and
// 86,400+smear TAI seconds.
func interpolateUtcToTai(e segmentEntry, utc UTCTime) TaiTime {
	if e.smear == 0 {
		offset := e.utc.offset.Sub(e.tai.offset) // Ei.utc - Ei.tai
		return TaiTime{offset: utc.offset.Sub(offset)}
	}
	deltaUtc := bigTicks(e.utc.Sub(utc)) // Ei.utc - utc
	taiLen := int64(86400) + int64(e.smear)
	deltaTai := scaleTicks(deltaUtc, taiLen, 86400)
	return TaiTime{offset: e.tai.offset.Sub(durationFromTicks(deltaTai))}
}

// interpolateTaiToUtc maps tai to its UTC equivalent within the
// segment governed by e, the exact inverse of interpolateUtcToTai.
func interpolateTaiToUtc(e segmentEntry, t TaiTime) UTCTime {
	if e.smear == 0 {
		offset := e.utc.offset.Sub(e.tai.offset)
		return UTCTime{offset: t.offset.Add(offset)}
	}
	deltaTai := bigTicks(e.tai.Sub(t)) // Ei.tai - tai
	taiLen := int64(86400) + int64(e.smear)
	deltaUtc := scaleTicks(deltaTai, 86400, taiLen)
	return UTCTime{offset: e.utc.offset.Sub(durationFromTicks(deltaUtc))}
}

// findUtcSegment returns the index k such that entries[k] is the
// newer boundary of the segment containing utc (entries[k].utc >=
// utc > entries[k+1].utc), per the LeapTable lookup rule: the
// largest index whose utc is still >= utc. ok is false when utc
// lies outside [modernUTCEpoch, expiration].
func findUtcSegment(entries []segmentEntry, utc UTCTime) (int, bool) {
	n := len(entries)
	if utc.After(entries[0].utc) {
		return 0, false
	}
	if utc.Before(entries[n-1].utc) {
		return 0, false
	}
	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if !entries[mid].utc.Before(utc) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == n-1 {
		if n < 2 {
			return 0, false
		}
		return n - 2, true
	}
	return lo, true
}

// findTaiSegment is findUtcSegment's analogue keyed on the tai
// field, used by the Smear direction.
func findTaiSegment(entries []segmentEntry, t TaiTime) (int, bool) {
	n := len(entries)
	if t.After(entries[0].tai) {
		return 0, false
	}
	if t.Before(entries[n-1].tai) {
		return 0, false
	}
	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if !entries[mid].tai.Before(t) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == n-1 {
		if n < 2 {
			return 0, false
		}
		return n - 2, true
	}
	return lo, true
}

// Unsmear converts a smeared UTC instant to the exact TAI instant,
// when utc lies within [ModernUTCEpoch, lt.Expiration()]. Infinities
// pass through unconditionally; other out-of-range inputs report ok
// == false.
func (lt *LeapTable) Unsmear(utc UTCTime) (TaiTime, bool) {
	if utc.IsInfinite() {
		return TaiTime{offset: utc.offset}, true
	}
	k, ok := findUtcSegment(lt.entries, utc)
	if !ok {
		return TaiTime{}, false
	}
	return interpolateUtcToTai(lt.entries[k], utc), true
}

// UnsmearToGps is Unsmear followed by a TAI->GPST conversion, further
// rejecting results earlier than the GPS epoch.
func (lt *LeapTable) UnsmearToGps(utc UTCTime) (GpsTime, bool) {
	tai, ok := lt.Unsmear(utc)
	if !ok {
		return GpsTime{}, false
	}
	gps := ToGpsTime(tai)
	if !tai.IsInfinite() && gps.Before(GpsEpoch()) {
		return GpsTime{}, false
	}
	return gps, true
}

// Smear converts a TAI instant to the equivalent smeared UTC instant,
// when t lies within [modern UTC epoch's TAI value, expiration's TAI
// value]. Infinities pass through unconditionally.
func (lt *LeapTable) Smear(t TaiTime) (UTCTime, bool) {
	if t.IsInfinite() {
		return UTCTime{offset: t.offset}, true
	}
	k, ok := findTaiSegment(lt.entries, t)
	if !ok {
		return UTCTime{}, false
	}
	return interpolateTaiToUtc(lt.entries[k], t), true
}

// SmearGps is Smear for a GPST input, converting to TAI first via the
// constant TAI/GPST offset.
func (lt *LeapTable) SmearGps(g GpsTime) (UTCTime, bool) {
	if g.IsInfinite() {
		return UTCTime{offset: g.offset}, true
	}
	return lt.Smear(ToTaiTime(g))
}

// addMonths returns the (year, month) that is k calendar months after
// (y, m), with k possibly negative.
func addMonths(y, m, k int64) (int64, int64) {
	total := y*12 + (m - 1) + k
	ny := floorDiv(total, 12)
	nm := total - ny*12 + 1
	return ny, nm
}

// widenBoundary locates the next hypothetical month-end boundary past
// expiration relative to queryUtc (an exact UTC instant for the
// Unsmear direction, or a TAI-displacement approximation for the
// Smear direction — see FutureProofSmear), and returns the two
// hypothetical continuation entries: lo assumes every unobserved
// month-end was a negative leap, hi assumes every one was positive.
//
// Per the month-boundary walker design, the boundary choice and the
// elapsed-months count depend only on calendar position, never on
// which hypothesis is in play, so the two entries share a boundary
// utc and differ only in tai and smear sign.
func widenBoundary(exp segmentEntry, queryUtc UTCTime) (lo, hi segmentEntry) {
	expY, expM, _, _, _, _, _ := wallClockParts(exp.utc.offset, unixEpochJDN)
	qY, qM, qD, _, _, _, _ := wallClockParts(queryUtc.offset, unixEpochJDN)

	monthsBetween := (qY-expY)*12 + (qM - expM)
	boundaryAt := func(k int64) UTCTime {
		y, m := addMonths(expY, expM, k)
		return JdnToTime(DaysFromCivil(y, m, 1))
	}

	k := monthsBetween
	bk := boundaryAt(k)
	if !queryUtc.Before(bk) {
		k++
		bk = boundaryAt(k)
	}

	windowLow := bk.SubDuration(Hours(24))

	var boundaryUtc UTCTime
	var deltaMonths int64
	var smearPresent bool
	if !queryUtc.Before(windowLow) {
		boundaryUtc = bk
		deltaMonths = k
		smearPresent = true
	} else {
		jdn := DaysFromCivil(qY, qM, qD)
		boundaryUtc = JdnToTime(jdn + 1)
		deltaMonths = k - 1
		smearPresent = false
	}

	offsetFromExp := boundaryUtc.Sub(exp.utc)
	monthsDur := Seconds(deltaMonths)
	base := exp.tai.Add(offsetFromExp)
	lo = segmentEntry{utc: boundaryUtc, tai: base.SubDuration(monthsDur)}
	hi = segmentEntry{utc: boundaryUtc, tai: base.Add(monthsDur)}
	if smearPresent {
		lo.smear = -1
		hi.smear = 1
	}
	return lo, hi
}

// FutureProofUnsmear returns the exact TAI instant as a degenerate
// (x, x) interval when utc is in range, the universal (-INF, +INF)
// interval when utc precedes ModernUTCEpoch, and otherwise the
// tightest interval consistent with any leap-second history the table
// could not yet have recorded.
func (lt *LeapTable) FutureProofUnsmear(utc UTCTime) (TaiTime, TaiTime) {
	if utc.IsInfinite() {
		t := TaiTime{offset: utc.offset}
		return t, t
	}
	if exact, ok := lt.Unsmear(utc); ok {
		return exact, exact
	}
	exp := lt.entries[0]
	if !utc.After(exp.utc) {
		return TaiInfinitePast(), TaiInfiniteFuture()
	}
	lo, hi := widenBoundary(exp, utc)
	loTai := interpolateUtcToTai(lo, utc)
	hiTai := interpolateUtcToTai(hi, utc)
	if loTai.After(hiTai) {
		loTai, hiTai = hiTai, loTai
	}
	return loTai, hiTai
}

// FutureProofUnsmearToGps is FutureProofUnsmear with its interval
// converted to GPST, collapsing to the universal GPST interval if the
// TAI lower bound precedes the GPS epoch.
func (lt *LeapTable) FutureProofUnsmearToGps(utc UTCTime) (GpsTime, GpsTime) {
	loTai, hiTai := lt.FutureProofUnsmear(utc)
	gpsFloor := ToTaiTime(GpsEpoch())
	if !loTai.IsInfinite() && loTai.Before(gpsFloor) {
		return GpsInfinitePast(), GpsInfiniteFuture()
	}
	return ToGpsTime(loTai), ToGpsTime(hiTai)
}

// FutureProofSmear returns the exact smeared UTC instant as a
// degenerate (x, x) interval when t is in range, the universal
// interval when t precedes the modern UTC epoch's TAI value, and
// otherwise the tightest consistent interval past expiration.
//
// The boundary that bounds t's interval is located using t's
// TAI-relative displacement from expiration as a stand-in for its
// (otherwise ambiguous) UTC position — sufficient because the choice
// of calendar month boundary is insensitive to the few seconds of
// leap-second uncertainty at stake; only the final interpolation uses
// t itself.
func (lt *LeapTable) FutureProofSmear(t TaiTime) (UTCTime, UTCTime) {
	if t.IsInfinite() {
		u := UTCTime{offset: t.offset}
		return u, u
	}
	if exact, ok := lt.Smear(t); ok {
		return exact, exact
	}
	exp := lt.entries[0]
	floor := lt.entries[len(lt.entries)-1].tai
	if t.Before(floor) {
		return UTCInfinitePast(), UTCInfiniteFuture()
	}
	utcApprox := exp.utc.Add(t.Sub(exp.tai))
	lo, hi := widenBoundary(exp, utcApprox)
	loUtc := interpolateTaiToUtc(lo, t)
	hiUtc := interpolateTaiToUtc(hi, t)
	if loUtc.After(hiUtc) {
		loUtc, hiUtc = hiUtc, loUtc
	}
	return loUtc, hiUtc
}

// FutureProofSmearGps is FutureProofSmear for a GPST input.
func (lt *LeapTable) FutureProofSmearGps(g GpsTime) (UTCTime, UTCTime) {
	if g.IsInfinite() {
		u := UTCTime{offset: g.offset}
		return u, u
	}
	return lt.FutureProofSmear(ToTaiTime(g))
}
