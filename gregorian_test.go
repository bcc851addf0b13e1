package smeartai_test

import (
	"testing"

	"github.com/skytime/smeartai"
)

func TestIsLeapYearValidYears(t *testing.T) {
	cases := []struct {
		descr string
		inp   int64
		exp   bool
	}{
		{"TestY1700", 1700, false},
		{"TestY1800", 1800, false},
		{"TestY1900", 1900, false},
		{"TestY2000", 2000, true},
		{"TestY2004", 2004, true},
		{"TestY0001", 0001, false},
		{"TestY0002", 0002, false},
		{"TestY0003", 0003, false},
		{"TestY0004", 0004, true},
	}
	for _, tc := range cases {
		t.Run(tc.descr, func(t *testing.T) {
			actual := smeartai.IsLeapYear(tc.inp)
			if actual != tc.exp {
				t.Fatalf("for year %d expected to get %v, got %v", tc.inp, tc.exp, actual)
			}
		})
	}
}

func TestIsLeapYearPanicsForInvalidYears(t *testing.T) {
	cases := []struct {
		descr string
		inp   int64
	}{
		{"TestY0", 0},
		{"TestY-1", -1},
	}
	for _, tc := range cases {
		t.Run(tc.descr, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil { // failed to panic
					t.Fatalf("for year %d, expected IsLeapYear to panic", tc.inp)
				}
			}()
			smeartai.IsLeapYear(tc.inp)
		})
	}
}

func TestDaysFromCivilJDNMapping(t *testing.T) {
	cases := []struct {
		descr      string
		y, m, d    int64
		expectJDN  int64
	}{
		{"modern UTC epoch", 1972, 1, 1, 2441318},
		{"Y2K", 2000, 1, 1, 2451545},
		{"unix epoch", 1970, 1, 1, 2440588},
	}
	for _, tc := range cases {
		t.Run(tc.descr, func(t *testing.T) {
			got := smeartai.DaysFromCivil(tc.y, tc.m, tc.d)
			if got != tc.expectJDN {
				t.Fatalf("DaysFromCivil(%d,%d,%d) = %d, want %d", tc.y, tc.m, tc.d, got, tc.expectJDN)
			}
			y, m, d := smeartai.CivilFromDays(got)
			if y != tc.y || m != tc.m || d != tc.d {
				t.Fatalf("CivilFromDays(%d) = (%d,%d,%d), want (%d,%d,%d)", got, y, m, d, tc.y, tc.m, tc.d)
			}
		})
	}
}

func TestWeekdayFromDays(t *testing.T) {
	// 1970-01-01 is a Thursday.
	if got := smeartai.WeekdayFromDays(2440588); got != 4 {
		t.Fatalf("WeekdayFromDays(2440588) = %d, want 4 (Thursday)", got)
	}
	// 1972-06-30 (a positive leap day) is a Friday.
	jdn := smeartai.DaysFromCivil(1972, 6, 30)
	if got := smeartai.WeekdayFromDays(jdn); got != 5 {
		t.Fatalf("WeekdayFromDays(%d) = %d, want 5 (Friday)", jdn, got)
	}
}
