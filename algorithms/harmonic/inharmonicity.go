package harmonic

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Inharmonicity describes how far a set of partials strays from an ideal
// series f0·order.
type Inharmonicity struct {
	Fundamental float64   `json:"fundamental"` // f0 implied by the first partial
	Orders      []int     `json:"orders"`
	Deviations  []float64 `json:"deviations"` // (f - f0·order) / (f0·order)
	// Coefficient is B in the least-squares fit deviation ≈ B·order²
	Coefficient float64 `json:"coefficient"`
	StdDev      float64 `json:"std_dev"`
}

// MeasureInharmonicity compares partials[i] with the ideal multiple
// orders[i] of the fundamental implied by the first partial.
func MeasureInharmonicity(partials []float64, orders []int) (Inharmonicity, error) {
	if len(partials) == 0 || len(partials) != len(orders) {
		return Inharmonicity{}, fmt.Errorf("need matching partials and orders, got %d and %d", len(partials), len(orders))
	}
	if orders[0] <= 0 || partials[0] <= 0 {
		return Inharmonicity{}, fmt.Errorf("first partial must be positive with a positive order")
	}

	f0 := partials[0] / float64(orders[0])
	deviations := make([]float64, len(partials))

	var numerator, denominator float64
	for i, f := range partials {
		n := float64(orders[i])
		ideal := f0 * n
		deviations[i] = (f - ideal) / ideal

		numerator += deviations[i] * n * n
		denominator += n * n * n * n
	}

	result := Inharmonicity{
		Fundamental: f0,
		Orders:      append([]int(nil), orders...),
		Deviations:  deviations,
	}
	if denominator > 0 {
		result.Coefficient = numerator / denominator
	}
	if len(deviations) > 1 {
		result.StdDev = stat.StdDev(deviations, nil)
	}
	return result, nil
}
