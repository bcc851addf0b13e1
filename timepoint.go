package smeartai

// TaiTime and GpsTime are opaque timepoints, each an offset (a
// Duration) from its own epoch. They are distinct types by design —
// per spec's "Opaque time types" note, conversion between them is
// always explicit (ToTaiTime / ToGpsTime), never by assignment.

// TaiTime is a moment in International Atomic Time, offset from the
// TAI epoch (1958-01-01 00:00:00 TAI).
type TaiTime struct{ offset Duration }

// GpsTime is a moment in GPS Time, offset from the GPS epoch
// (1980-01-06 00:00:00 GPST).
type GpsTime struct{ offset Duration }

// UTCTime is a civil (possibly smeared) UTC instant, offset from the
// Unix epoch (1970-01-01 00:00:00 UTC). It carries no leap-second
// awareness of its own — it is the representation the smear engine
// produces and consumes, not a timescale with its own arithmetic.
type UTCTime struct{ offset Duration }

// TaiEpoch returns the zero moment of TAI, 1958-01-01 00:00:00 TAI.
func TaiEpoch() TaiTime { return TaiTime{} }

// GpsEpoch returns the zero moment of GPST, 1980-01-06 00:00:00 GPST.
func GpsEpoch() GpsTime { return GpsTime{} }

// UnixEpoch returns 1970-01-01 00:00:00 UTC.
func UnixEpoch() UTCTime { return UTCTime{} }

// TaiOffsetOfGpsEpoch is the constant TAI_OFFSET(GPST): the TAI time
// of the GPS epoch, 8040 days and 19 leap seconds after the TAI epoch.
var TaiOffsetOfGpsEpoch = Seconds(8040*86400 + 19)

// TaiInfiniteFuture / TaiInfinitePast / GpsInfiniteFuture /
// GpsInfinitePast are the distinguished ±INFINITE timepoints.
func TaiInfiniteFuture() TaiTime { return TaiTime{offset: INFINITE} }
func TaiInfinitePast() TaiTime   { return TaiTime{offset: INFINITE.Neg()} }
func GpsInfiniteFuture() GpsTime { return GpsTime{offset: INFINITE} }
func GpsInfinitePast() GpsTime   { return GpsTime{offset: INFINITE.Neg()} }
func UTCInfiniteFuture() UTCTime { return UTCTime{offset: INFINITE} }
func UTCInfinitePast() UTCTime   { return UTCTime{offset: INFINITE.Neg()} }

// Offset returns t's offset from TaiEpoch.
func (t TaiTime) Offset() Duration { return t.offset }

// Offset returns g's offset from GpsEpoch.
func (g GpsTime) Offset() Duration { return g.offset }

// Offset returns u's offset from UnixEpoch.
func (u UTCTime) Offset() Duration { return u.offset }

// IsInfinite reports whether t is ±INFINITE.
func (t TaiTime) IsInfinite() bool { return t.offset.IsInfinite() }
func (g GpsTime) IsInfinite() bool { return g.offset.IsInfinite() }
func (u UTCTime) IsInfinite() bool { return u.offset.IsInfinite() }

// Add returns t offset by d.
func (t TaiTime) Add(d Duration) TaiTime { return TaiTime{offset: t.offset.Add(d)} }
func (g GpsTime) Add(d Duration) GpsTime { return GpsTime{offset: g.offset.Add(d)} }
func (u UTCTime) Add(d Duration) UTCTime { return UTCTime{offset: u.offset.Add(d)} }

// SubDuration returns t offset backwards by d.
func (t TaiTime) SubDuration(d Duration) TaiTime { return TaiTime{offset: t.offset.Sub(d)} }
func (g GpsTime) SubDuration(d Duration) GpsTime { return GpsTime{offset: g.offset.Sub(d)} }
func (u UTCTime) SubDuration(d Duration) UTCTime { return UTCTime{offset: u.offset.Sub(d)} }

// Sub returns the Duration between two same-type timepoints.
func (t TaiTime) Sub(o TaiTime) Duration { return t.offset.Sub(o.offset) }
func (g GpsTime) Sub(o GpsTime) Duration { return g.offset.Sub(o.offset) }
func (u UTCTime) Sub(o UTCTime) Duration { return u.offset.Sub(o.offset) }

// Compare orders t relative to o: -1, 0, or +1.
func (t TaiTime) Compare(o TaiTime) int { return t.offset.Compare(o.offset) }
func (g GpsTime) Compare(o GpsTime) int { return g.offset.Compare(o.offset) }
func (u UTCTime) Compare(o UTCTime) int { return u.offset.Compare(o.offset) }

func (t TaiTime) Before(o TaiTime) bool { return t.Compare(o) < 0 }
func (t TaiTime) After(o TaiTime) bool  { return t.Compare(o) > 0 }
func (t TaiTime) Eq(o TaiTime) bool     { return t.Compare(o) == 0 }

func (g GpsTime) Before(o GpsTime) bool { return g.Compare(o) < 0 }
func (g GpsTime) After(o GpsTime) bool  { return g.Compare(o) > 0 }
func (g GpsTime) Eq(o GpsTime) bool     { return g.Compare(o) == 0 }

func (u UTCTime) Before(o UTCTime) bool { return u.Compare(o) < 0 }
func (u UTCTime) After(o UTCTime) bool  { return u.Compare(o) > 0 }
func (u UTCTime) Eq(o UTCTime) bool     { return u.Compare(o) == 0 }

// ToTaiTime converts a GPST moment to the equivalent TAI moment via
// the constant offset TaiOffsetOfGpsEpoch. Infinities map to
// infinities of the same sign; no leap table is required.
func ToTaiTime(g GpsTime) TaiTime {
	if g.IsInfinite() {
		return TaiTime{offset: g.offset}
	}
	return TaiTime{offset: TaiOffsetOfGpsEpoch.Add(g.offset)}
}

// ToGpsTime converts a TAI moment to the equivalent GPST moment, the
// inverse of ToTaiTime.
func ToGpsTime(t TaiTime) GpsTime {
	if t.IsInfinite() {
		return GpsTime{offset: t.offset}
	}
	return GpsTime{offset: t.offset.Sub(TaiOffsetOfGpsEpoch)}
}
