package smeartai_test

import (
	"testing"

	"github.com/skytime/smeartai"
)

func TestTaiGpstConstantOffset(t *testing.T) {
	got := smeartai.ToTaiTime(smeartai.GpsEpoch()).Sub(smeartai.TaiEpoch())
	want := smeartai.Seconds(8040*86400 + 19)
	if !got.Eq(want) {
		t.Fatalf("ToTaiTime(GpsEpoch()) - TaiEpoch() = %v, want %v", got, want)
	}
}

func TestTaiGpstRoundTrip(t *testing.T) {
	g := smeartai.GpsEpoch().Add(smeartai.Hours(100))
	got := smeartai.ToGpsTime(smeartai.ToTaiTime(g))
	if !got.Eq(g) {
		t.Fatalf("ToGpsTime(ToTaiTime(g)) = %v, want %v", got, g)
	}
}

func TestInfinitePropagation(t *testing.T) {
	if !smeartai.ToTaiTime(smeartai.GpsInfiniteFuture()).Eq(smeartai.TaiInfiniteFuture()) {
		t.Fatalf("ToTaiTime(GpsInfiniteFuture()) did not map to TaiInfiniteFuture()")
	}
	if !smeartai.ToGpsTime(smeartai.TaiInfinitePast()).Eq(smeartai.GpsInfinitePast()) {
		t.Fatalf("ToGpsTime(TaiInfinitePast()) did not map to GpsInfinitePast()")
	}
}

func TestTimepointOrdering(t *testing.T) {
	a := smeartai.TaiEpoch().Add(smeartai.Seconds(10))
	b := smeartai.TaiEpoch().Add(smeartai.Seconds(20))
	if !a.Before(b) || b.Before(a) {
		t.Fatalf("ordering broken: a=%v b=%v", a, b)
	}
	if !smeartai.TaiInfinitePast().Before(a) {
		t.Fatalf("TaiInfinitePast() should be before any finite time")
	}
	if !b.Before(smeartai.TaiInfiniteFuture()) {
		t.Fatalf("any finite time should be before TaiInfiniteFuture()")
	}
}
