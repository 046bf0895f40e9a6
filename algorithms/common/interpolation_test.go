package common

import (
	"math"
	"testing"
)

func TestLinearInterpolatorAt(t *testing.T) {
	li, err := NewLinearInterpolator([]float64{0, 0.03, 0.08}, []float64{0.030, 0.032, 0.035})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		x, want float64
	}{
		{-1, 0.030},
		{0, 0.030},
		{0.015, 0.031},
		{0.03, 0.032},
		{0.055, 0.0335},
		{1, 0.035},
	}
	for _, tc := range cases {
		if got := li.At(tc.x); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("At(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestLinearInterpolatorRejectsBadInput(t *testing.T) {
	if _, err := NewLinearInterpolator([]float64{0}, []float64{1}); err == nil {
		t.Error("expected error for single sample")
	}
	if _, err := NewLinearInterpolator([]float64{0, 0}, []float64{1, 2}); err == nil {
		t.Error("expected error for repeated x")
	}
	if _, err := NewLinearInterpolator([]float64{0, 1}, []float64{1}); err == nil {
		t.Error("expected error for length mismatch")
	}
}

func TestResample(t *testing.T) {
	li, err := NewLinearInterpolator([]float64{0, 2}, []float64{1, 3})
	if err != nil {
		t.Fatal(err)
	}

	xs, ys := li.Resample(5)
	if len(xs) != 5 || len(ys) != 5 {
		t.Fatalf("got %d/%d samples", len(xs), len(ys))
	}
	for i := range xs {
		if math.Abs(ys[i]-(1+xs[i])) > 1e-12 {
			t.Errorf("sample %d: (%v, %v) off the line", i, xs[i], ys[i])
		}
	}
	if xs[0] != 0 || xs[4] != 2 {
		t.Fatalf("range not covered: %v", xs)
	}
}
