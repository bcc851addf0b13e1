package smeartai

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// log is the package's diagnostic logger. Construction failures are
// logged here (spec's "specific cause is logged for diagnostics but
// not part of the return contract") using the teacher package's
// convention of a single package-level facility, initialized once and
// swappable via SetLogger rather than mutated ad hoc — the logging
// analogue of the immutability spec §5 requires of LeapTable itself.
var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger overrides the logger used to report LeapTable construction
// diagnostics.
func SetLogger(l logrus.FieldLogger) { log = l }

var (
	unixEpochJDN   = DaysFromCivil(1970, 1, 1)
	minEndJDN      = DaysFromCivil(1972, 1, 31)
	maxEndJDN      = DaysFromCivil(9999, 12, 31)
	modernEpochJDN = DaysFromCivil(1972, 1, 1)
	taiEpochJDN    = DaysFromCivil(1958, 1, 1)

	// ModernUTCEpoch is 1972-01-01 00:00:00 UTC, the start of
	// leap-second-based UTC. The core never converts times before it.
	ModernUTCEpoch = UnixEpoch().Add(Seconds((modernEpochJDN - unixEpochJDN) * 86400))

	// modernUTCEpochTai is 1972-01-01 00:00:10 TAI, the TAI instant of
	// ModernUTCEpoch.
	modernUTCEpochTai = TaiEpoch().Add(Seconds((modernEpochJDN-taiEpochJDN)*86400 + 10))
)

// segmentEntry is one segment-boundary entry of a LeapTable's internal
// segment list, per spec's data model: utc, the matching tai instant,
// and the smear direction of the interval below this entry.
//
// jdn caches the JDN this entry's utc was built from (noon of that
// day), used only to reconstruct a catalog in ToCatalogData; it plays
// no role in Equal, which spec defines over (utc, tai, smear) alone.
type segmentEntry struct {
	utc   UTCTime
	tai   TaiTime
	smear int8
	jdn   int64
}

// LeapTable is the validated, immutable catalog of leap seconds and
// the smear/unsmear engine's segment list. A LeapTable is safe for
// concurrent read-only use by multiple goroutines once constructed;
// it has no mutation methods.
type LeapTable struct {
	// entries is sorted strictly descending by utc; entries[0] is the
	// expiration boundary, entries[len-1] is ModernUTCEpoch.
	entries []segmentEntry
}

// NewLeapTable validates a leap-second catalog (positive and negative
// leap JDNs, and the end JDN of table coverage) and constructs the
// segment list described in spec's LeapTable data model. Construction
// fails — returning a nil table and a non-nil error — if validation
// fails; the specific cause is both returned and logged.
func NewLeapTable(positiveLeaps, negativeLeaps []int64, endJDN int64) (*LeapTable, error) {
	if err := validateCatalog(positiveLeaps, negativeLeaps, endJDN); err != nil {
		log.WithError(err).WithField("end_jdn", endJDN).Warn("smeartai: invalid leap catalog")
		return nil, err
	}

	entries := make([]segmentEntry, 0, 2+2*(len(positiveLeaps)+len(negativeLeaps)))
	entries = append(entries, segmentEntry{
		utc: JdnToTime(endJDN + 1),
		jdn: endJDN + 1,
	})
	entries = append(entries, segmentEntry{
		utc: ModernUTCEpoch,
		tai: modernUTCEpochTai,
	})
	addLeap := func(jdn int64, sign int8) {
		entries = append(entries, segmentEntry{utc: JdnToTime(jdn), jdn: jdn})
		entries = append(entries, segmentEntry{utc: JdnToTime(jdn + 1), smear: sign, jdn: jdn + 1})
	}
	for _, jdn := range positiveLeaps {
		addLeap(jdn, 1)
	}
	for _, jdn := range negativeLeaps {
		addLeap(jdn, -1)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].utc.After(entries[j].utc) })

	for i := len(entries) - 2; i >= 0; i-- {
		delta := entries[i].utc.Sub(entries[i+1].utc)
		if entries[i].smear != 0 {
			delta = delta.Add(Seconds(int64(entries[i].smear)))
		}
		entries[i].tai = entries[i+1].tai.Add(delta)
	}

	if err := reverifyEntries(entries); err != nil {
		log.WithError(err).Warn("smeartai: constructed leap table failed re-verification")
		return nil, err
	}

	return &LeapTable{entries: entries}, nil
}

func validateCatalog(positiveLeaps, negativeLeaps []int64, endJDN int64) error {
	if endJDN < minEndJDN || endJDN > maxEndJDN {
		return errors.Errorf("end_jdn %d outside plausible range [%d, %d]", endJDN, minEndJDN, maxEndJDN)
	}
	y, _, d := CivilFromDays(endJDN + 1)
	_ = y
	if d != 1 {
		return errors.Errorf("day after end_jdn %d is not the first of a month", endJDN)
	}

	seen := make(map[int64]int8, len(positiveLeaps)+len(negativeLeaps))
	check := func(jdns []int64, sign int8) error {
		for _, jdn := range jdns {
			if jdn < minEndJDN || jdn > maxEndJDN {
				return errors.Errorf("leap jdn %d outside plausible range [%d, %d]", jdn, minEndJDN, maxEndJDN)
			}
			if jdn > endJDN {
				return errors.Errorf("leap jdn %d is later than end_jdn %d", jdn, endJDN)
			}
			if other, ok := seen[jdn]; ok {
				if other == sign {
					return errors.Errorf("leap jdn %d appears more than once", jdn)
				}
				return errors.Errorf("leap jdn %d appears in both positive and negative lists", jdn)
			}
			seen[jdn] = sign
			y, m, d := CivilFromDays(jdn)
			if !isLastDayOfMonth(y, m, d) {
				return errors.Errorf("leap jdn %d is not the last day of its month", jdn)
			}
		}
		return nil
	}
	if err := check(positiveLeaps, 1); err != nil {
		return err
	}
	if err := check(negativeLeaps, -1); err != nil {
		return err
	}
	return nil
}

// reverifyEntries re-checks the invariants of a freshly built segment
// list, catching the one case initial validation cannot: a leap on
// end_jdn itself, whose "day after" boundary coincides with the
// expiration entry.
func reverifyEntries(entries []segmentEntry) error {
	if len(entries) == 0 {
		return errors.New("empty segment list")
	}
	if entries[0].smear != 0 {
		return errors.New("expiration entry has nonzero smear")
	}
	for i := 0; i < len(entries)-1; i++ {
		if !entries[i].utc.After(entries[i+1].utc) {
			return errors.Errorf("segment entries not strictly descending at index %d", i)
		}
	}
	if !entries[len(entries)-1].utc.Eq(ModernUTCEpoch) {
		return errors.New("oldest entry is not the modern UTC epoch")
	}
	return nil
}

// ToCatalogData walks the segment list and reconstructs the catalog
// (positive leap JDNs, negative leap JDNs, end JDN) that, re-validated
// and reconstructed via NewLeapTable, yields an equal table.
func (lt *LeapTable) ToCatalogData() (positiveLeaps, negativeLeaps []int64, endJDN int64) {
	for i := len(lt.entries) - 1; i >= 0; i-- {
		e := lt.entries[i]
		switch e.smear {
		case 1:
			positiveLeaps = append(positiveLeaps, e.jdn-1)
		case -1:
			negativeLeaps = append(negativeLeaps, e.jdn-1)
		}
	}
	endJDN = lt.entries[0].jdn - 1
	return positiveLeaps, negativeLeaps, endJDN
}

// Equal reports whether lt and o have elementwise-equal segment lists
// (utc, tai, smear), per spec.
func (lt *LeapTable) Equal(o *LeapTable) bool {
	if lt == nil || o == nil {
		return lt == o
	}
	if len(lt.entries) != len(o.entries) {
		return false
	}
	for i := range lt.entries {
		a, b := lt.entries[i], o.entries[i]
		if !a.utc.Eq(b.utc) || !a.tai.Eq(b.tai) || a.smear != b.smear {
			return false
		}
	}
	return true
}

// Expiration returns the first UTC instant for which the table no
// longer asserts leap-second content — the last precisely convertible
// instant.
func (lt *LeapTable) Expiration() UTCTime { return lt.entries[0].utc }
