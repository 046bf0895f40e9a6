package common

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Basic numeric helpers shared by the bore and acoustic packages, backed by gonum.

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// WeightedMean calculates the weighted mean of data. It returns 0 when the
// slices are empty, differ in length, or the weights sum to zero.
func WeightedMean(data, weights []float64) float64 {
	if len(data) == 0 || len(data) != len(weights) {
		return 0.0
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0.0
	}

	return stat.Mean(data, weights)
}

// Median returns the empirical median of data without modifying it
func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// LinearFit fits y = intercept + slope*x by least squares.
// Fewer than two points yield a flat line through the only value (or zero).
func LinearFit(xs, ys []float64) (intercept, slope float64) {
	if len(xs) != len(ys) || len(xs) == 0 {
		return 0.0, 0.0
	}
	if len(xs) == 1 {
		return ys[0], 0.0
	}

	return stat.LinearRegression(xs, ys, nil, false)
}

// Clamp limits value to [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}

// RoundTo rounds value to the given number of decimal places
func RoundTo(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(value*scale) / scale
}

// IsFinite reports whether value is neither NaN nor infinite
func IsFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// AllFinite reports whether every value in data is finite
func AllFinite(data ...float64) bool {
	for _, v := range data {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}
