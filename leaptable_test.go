package smeartai_test

import (
	"testing"

	"github.com/skytime/smeartai"
)

func endOfMonthJDN(y, m int64) int64 {
	for d := int64(31); d >= 28; d-- {
		jdn := smeartai.DaysFromCivil(y, m, d)
		gy, gm, gd := smeartai.CivilFromDays(jdn)
		if gy == y && gm == m && gd == d {
			return jdn
		}
	}
	panic("no last day found")
}

func TestNewLeapTableValidConstruction(t *testing.T) {
	leapJdn := endOfMonthJDN(1972, 6)
	endJdn := endOfMonthJDN(2018, 12)
	lt, err := smeartai.NewLeapTable([]int64{leapJdn}, nil, endJdn)
	if err != nil {
		t.Fatalf("NewLeapTable: %v", err)
	}
	wantExpiration := smeartai.JdnToTime(endJdn + 1)
	if !lt.Expiration().Eq(wantExpiration) {
		t.Fatalf("Expiration() = %v, want %v", lt.Expiration(), wantExpiration)
	}
}

func TestNewLeapTableRejectsDuplicateLeapJDN(t *testing.T) {
	leapJdn := endOfMonthJDN(1972, 6)
	endJdn := endOfMonthJDN(2018, 12)
	if _, err := smeartai.NewLeapTable([]int64{leapJdn, leapJdn}, nil, endJdn); err == nil {
		t.Fatalf("expected error for duplicate leap jdn")
	}
}

func TestNewLeapTableRejectsConflictingSignDuplicate(t *testing.T) {
	leapJdn := endOfMonthJDN(1972, 6)
	endJdn := endOfMonthJDN(2018, 12)
	if _, err := smeartai.NewLeapTable([]int64{leapJdn}, []int64{leapJdn}, endJdn); err == nil {
		t.Fatalf("expected error for jdn in both positive and negative lists")
	}
}

func TestNewLeapTableRejectsLeapNotAtMonthEnd(t *testing.T) {
	notMonthEnd := smeartai.DaysFromCivil(1972, 6, 15)
	endJdn := endOfMonthJDN(2018, 12)
	if _, err := smeartai.NewLeapTable([]int64{notMonthEnd}, nil, endJdn); err == nil {
		t.Fatalf("expected error for leap jdn not at month end")
	}
}

func TestNewLeapTableRejectsEndJDNNotMonthEnd(t *testing.T) {
	notMonthEnd := smeartai.DaysFromCivil(2018, 12, 15)
	if _, err := smeartai.NewLeapTable(nil, nil, notMonthEnd); err == nil {
		t.Fatalf("expected error for end_jdn whose following day is not first of a month")
	}
}

func TestNewLeapTableRejectsLeapAfterEndJDN(t *testing.T) {
	leapJdn := endOfMonthJDN(2019, 6)
	endJdn := endOfMonthJDN(2018, 12)
	if _, err := smeartai.NewLeapTable([]int64{leapJdn}, nil, endJdn); err == nil {
		t.Fatalf("expected error for leap jdn after end_jdn")
	}
}

func TestNewLeapTableRejectsLeapOnEndJDNItself(t *testing.T) {
	endJdn := endOfMonthJDN(2018, 12)
	if _, err := smeartai.NewLeapTable([]int64{endJdn}, nil, endJdn); err == nil {
		t.Fatalf("expected error for leap jdn coinciding with end_jdn")
	}
}

func TestNewLeapTableRejectsEndJDNOutOfRange(t *testing.T) {
	tooEarly := smeartai.DaysFromCivil(1971, 12, 31)
	if _, err := smeartai.NewLeapTable(nil, nil, tooEarly); err == nil {
		t.Fatalf("expected error for end_jdn before the plausible range")
	}
	tooLate := smeartai.DaysFromCivil(10000, 1, 31)
	if _, err := smeartai.NewLeapTable(nil, nil, tooLate); err == nil {
		t.Fatalf("expected error for end_jdn after the plausible range")
	}
}

func TestNewLeapTableRejectsLeapOutOfRange(t *testing.T) {
	endJdn := endOfMonthJDN(2018, 12)
	tooEarly := smeartai.DaysFromCivil(1971, 11, 30)
	if _, err := smeartai.NewLeapTable([]int64{tooEarly}, nil, endJdn); err == nil {
		t.Fatalf("expected error for leap jdn before the plausible range")
	}
}

func TestLeapTableEqual(t *testing.T) {
	leapJdn := endOfMonthJDN(1972, 6)
	endJdn := endOfMonthJDN(2018, 12)
	a, err := smeartai.NewLeapTable([]int64{leapJdn}, nil, endJdn)
	if err != nil {
		t.Fatalf("NewLeapTable: %v", err)
	}
	b, err := smeartai.NewLeapTable([]int64{leapJdn}, nil, endJdn)
	if err != nil {
		t.Fatalf("NewLeapTable: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("two tables built from identical catalogs are not Equal")
	}
	c, err := smeartai.NewLeapTable(nil, nil, endJdn)
	if err != nil {
		t.Fatalf("NewLeapTable: %v", err)
	}
	if a.Equal(c) {
		t.Fatalf("tables with different catalogs should not be Equal")
	}
}

func TestLeapTableToCatalogDataRoundTrip(t *testing.T) {
	posJdn := endOfMonthJDN(1972, 6)
	negJdn := endOfMonthJDN(2015, 12)
	endJdn := endOfMonthJDN(2018, 12)
	original, err := smeartai.NewLeapTable([]int64{posJdn}, []int64{negJdn}, endJdn)
	if err != nil {
		t.Fatalf("NewLeapTable: %v", err)
	}
	pos, neg, gotEnd := original.ToCatalogData()
	if gotEnd != endJdn {
		t.Fatalf("ToCatalogData endJDN = %d, want %d", gotEnd, endJdn)
	}
	if len(pos) != 1 || pos[0] != posJdn {
		t.Fatalf("ToCatalogData positiveLeaps = %v, want [%d]", pos, posJdn)
	}
	if len(neg) != 1 || neg[0] != negJdn {
		t.Fatalf("ToCatalogData negativeLeaps = %v, want [%d]", neg, negJdn)
	}
	rebuilt, err := smeartai.NewLeapTable(pos, neg, gotEnd)
	if err != nil {
		t.Fatalf("NewLeapTable(round-trip): %v", err)
	}
	if !original.Equal(rebuilt) {
		t.Fatalf("round-tripped table is not Equal to the original")
	}
}

func TestLeapTableEmptyCatalogCoversModernEpoch(t *testing.T) {
	endJdn := endOfMonthJDN(2018, 12)
	lt, err := smeartai.NewLeapTable(nil, nil, endJdn)
	if err != nil {
		t.Fatalf("NewLeapTable: %v", err)
	}
	if _, ok := lt.Unsmear(smeartai.ModernUTCEpoch); !ok {
		t.Fatalf("Unsmear(ModernUTCEpoch) should be in range for a leap-free table")
	}
}
