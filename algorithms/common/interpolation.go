package common

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// LinearInterpolator evaluates a piecewise-linear curve through sample points.
// Queries outside the sampled range are clamped to the nearest end value.
type LinearInterpolator struct {
	xs    []float64
	ys    []float64
	curve interp.PiecewiseLinear
}

// NewLinearInterpolator fits a piecewise-linear curve. xs must be strictly
// increasing and at least two samples long.
func NewLinearInterpolator(xs, ys []float64) (*LinearInterpolator, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("interpolation needs equal-length samples, got %d xs and %d ys", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("interpolation needs at least 2 samples, got %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("interpolation samples not strictly increasing at index %d", i)
		}
	}

	li := &LinearInterpolator{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}
	if err := li.curve.Fit(li.xs, li.ys); err != nil {
		return nil, fmt.Errorf("fit piecewise linear curve: %w", err)
	}

	return li, nil
}

// At returns the interpolated value at x
func (li *LinearInterpolator) At(x float64) float64 {
	if x <= li.xs[0] {
		return li.ys[0]
	}
	if x >= li.xs[len(li.xs)-1] {
		return li.ys[len(li.ys)-1]
	}
	return li.curve.Predict(x)
}

// Resample evaluates the curve at n evenly spaced positions across its range
func (li *LinearInterpolator) Resample(n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}

	xs = floats.Span(make([]float64, n), li.xs[0], li.xs[len(li.xs)-1])
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = li.At(x)
	}

	return xs, ys
}
