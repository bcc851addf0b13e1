/* Package smeartai converts, with bit-exact reversibility, between
smeared UTC, TAI, and GPS Time.

Smeared UTC is the civil timescale most systems actually run on: each
inserted or removed leap second is spread linearly across the 24 h
window centered on the UTC midnight where the leap would otherwise
land, so civil seconds stay monotonic and clocks never repeat or skip
a value. TAI and GPST are both pure SI-second counts from their own
epochs, related to smeared UTC only through a LeapTable built from a
validated catalog of past and announced leap seconds.

Durations are fixed-point at attosecond resolution and saturate at a
distinguished ±INFINITE rather than overflow. TaiTime and GpsTime are
opaque offsets from their respective epochs; conversion between them
is always explicit, never by assignment.

## FAQ

1) Why would I want to use this?

Anything that timestamps data against a leap-second-aware source (GPS
receivers, PTP grandmasters, scientific instruments) eventually needs
to convert between the smeared civil time a human reads and the
monotonic SI-second count the hardware emits. This package is that
conversion, done once and exactly, rather than re-derived ad hoc at
each call site.

2) Why not stdlib time?

stdlib time has no notion of TAI or GPST, and no notion of leap-second
smearing at all — every computation here is domain-specific enough
that bolting it onto time.Time would mean fighting the zone and
monotonic-reading machinery more than using it. Attosecond resolution
is also well past what time.Duration's nanosecond int64 can represent
without its own overflow story.

3) Is a LeapTable threadsafe?

Yes. A constructed LeapTable is immutable — there is no background
update path, no mutex, and nothing to protect, because there is
nothing left that can change. Building a fresh table from an updated
catalog is the only way to pick up new leap-second announcements.

4) What happens to times past the table's expiration?

The exact Smear/Unsmear family reports that the input is out of range.
The FutureProofSmear/FutureProofUnsmear family instead returns the
tightest [lo, hi] interval consistent with every leap-second history
the table could not yet have recorded — not a guess, a proof.

5) Why attoseconds?

Because picoseconds and femtoseconds are both plausible requirements
for some consumer eventually, and a fixed base-10 resolution costs
nothing extra in a (seconds, sub-second ticks) representation once
you've committed to one beyond nanoseconds.

6) How correct is this package?

The duration algebra, timepoint algebra, and leap table construction
each carry property-style tests for their documented invariants; the
smear engine is tested against the worked examples in the conversion
scenarios it's built from. If you find a counterexample, please open
an issue with it.
*/
package smeartai
