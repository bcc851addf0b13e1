package catalog

import "github.com/skytime/smeartai"

// defaultCatalogEnd is the JDN through which the embedded catalog below
// is known to be complete: noon UTC on the last day of June 2017, six
// months after the most recent leap second in leapBeginDates.
var defaultCatalogEnd = smeartai.DaysFromCivil(2017, 6, 30)

// leapBeginDates are the civil dates (year, month, day) on which each
// historical positive leap second took effect, i.e. the first UTC
// midnight of the offset change. All 27 IERS leap seconds observed
// through 2017 have been positive; none has been negative.
var leapBeginDates = [][3]int64{
	{1972, 7, 1},
	{1973, 1, 1},
	{1974, 1, 1},
	{1975, 1, 1},
	{1976, 1, 1},
	{1977, 1, 1},
	{1978, 1, 1},
	{1979, 1, 1},
	{1980, 1, 1},
	{1981, 7, 1},
	{1982, 7, 1},
	{1983, 7, 1},
	{1985, 7, 1},
	{1988, 1, 1},
	{1990, 1, 1},
	{1991, 1, 1},
	{1992, 7, 1},
	{1993, 7, 1},
	{1994, 7, 1},
	{1996, 1, 1},
	{1997, 7, 1},
	{1999, 1, 1},
	{2006, 1, 1},
	{2009, 1, 1},
	{2012, 7, 1},
	{2015, 7, 1},
	{2017, 1, 1},
}

// defaultPositiveLeapJDNs converts leapBeginDates into the leap-JDN
// convention LeapTable expects: the JDN of the last day of the prior
// month, whose noon begins the 24 h smear window centered on the
// offset's effective midnight.
func defaultPositiveLeapJDNs() []int64 {
	out := make([]int64, len(leapBeginDates))
	for i, d := range leapBeginDates {
		firstOfMonth := smeartai.DaysFromCivil(d[0], d[1], d[2])
		out[i] = firstOfMonth - 1
	}
	return out
}

// DefaultCatalog returns the built-in historical leap-second catalog,
// covering every IERS-announced leap second from 1972 through the
// start of 2017.
func DefaultCatalog() LeapCatalog {
	return LeapCatalog{
		PositiveLeaps: defaultPositiveLeapJDNs(),
		NegativeLeaps: nil,
		EndJDN:        defaultCatalogEnd,
	}
}

// MustDefault builds the LeapTable for DefaultCatalog, panicking if it
// somehow fails construction's validation (it never should: the table
// above is fixed and has been checked against NewLeapTable's rules).
func MustDefault() *smeartai.LeapTable {
	lt, err := DefaultCatalog().ToLeapTable()
	if err != nil {
		panic(err)
	}
	return lt
}
