package rgs

import (
	"errors"
	"math"
	"testing"
)

func TestToWireAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{1.00, 1_000_000},
		{2.5, 2_500_000},
		{0.01, 10_000},
		{0.10, 100_000},
		{10.99, 10_990_000},
		{1234.56, 1_234_560_000},
		{0.29, 290_000}, // 0.29*1e6 is not exactly representable; rounding must absorb it
	}

	for _, tc := range cases {
		got, err := ToWireAmount(tc.in)
		if err != nil {
			t.Fatalf("ToWireAmount(%v): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ToWireAmount(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestToWireAmount_RoundsTiesAwayFromZero(t *testing.T) {
	got, err := ToWireAmount(0.0000005) // exactly half a wire unit
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("Expected tie to round away from zero to 1, got %d", got)
	}
}

func TestToWireAmount_Invalid(t *testing.T) {
	for _, in := range []float64{-1, -0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ToWireAmount(in)
		if err == nil {
			t.Errorf("ToWireAmount(%v): expected error, got nil", in)
			continue
		}
		var invalidErr *InvalidAmountError
		if !errors.As(err, &invalidErr) {
			t.Errorf("ToWireAmount(%v): expected InvalidAmountError, got %T", in, err)
		}
	}
}

func TestFromWireAmount(t *testing.T) {
	if got := FromWireAmount(2_500_000); got != 2.5 {
		t.Errorf("FromWireAmount(2500000) = %v, want 2.5", got)
	}
	if got := FromWireAmount(0); got != 0 {
		t.Errorf("FromWireAmount(0) = %v, want 0", got)
	}
}

func TestAmountRoundTrip(t *testing.T) {
	// Every value with at most two fractional digits must survive the trip.
	for cents := int64(0); cents <= 100_000; cents += 7 {
		decimal := float64(cents) / 100
		wire, err := ToWireAmount(decimal)
		if err != nil {
			t.Fatalf("ToWireAmount(%v): unexpected error: %v", decimal, err)
		}
		back := FromWireAmount(wire)
		if math.Abs(back-decimal) > 1e-9 {
			t.Fatalf("Round trip of %v: got %v (wire %d)", decimal, back, wire)
		}
	}
}

func TestScaleConstants(t *testing.T) {
	// Both scales are part of the public contract; their literal values must
	// not drift.
	if WireScale != 1_000_000 {
		t.Errorf("WireScale = %d, want 1000000", WireScale)
	}
	if BookScale != 100 {
		t.Errorf("BookScale = %d, want 100", BookScale)
	}
}
