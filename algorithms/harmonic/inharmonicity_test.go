package harmonic

import (
	"math"
	"testing"
)

func TestMeasureInharmonicityIdealSeries(t *testing.T) {
	inh, err := MeasureInharmonicity([]float64{70, 210, 350, 490}, []int{1, 3, 5, 7})
	if err != nil {
		t.Fatal(err)
	}
	if inh.Fundamental != 70 {
		t.Fatalf("fundamental %v", inh.Fundamental)
	}
	for i, d := range inh.Deviations {
		if math.Abs(d) > 1e-12 {
			t.Errorf("partial %d deviation %v", i, d)
		}
	}
	if math.Abs(inh.Coefficient) > 1e-12 || math.Abs(inh.StdDev) > 1e-12 {
		t.Fatalf("coefficient %v stddev %v", inh.Coefficient, inh.StdDev)
	}
}

func TestMeasureInharmonicityCompressedSeries(t *testing.T) {
	// a flaring bore pulls its upper resonances below the odd multiples
	partials := []float64{86, 185.9, 292.9}
	orders := []int{1, 3, 5}
	inh, err := MeasureInharmonicity(partials, orders)
	if err != nil {
		t.Fatal(err)
	}

	wantDev := []float64{0, 185.9/258 - 1, 292.9/430 - 1}
	var num, den float64
	for i, w := range wantDev {
		if math.Abs(inh.Deviations[i]-w) > 1e-12 {
			t.Errorf("deviation %d = %v, want %v", i, inh.Deviations[i], w)
		}
		n := float64(orders[i])
		num += w * n * n
		den += n * n * n * n
	}
	if math.Abs(inh.Coefficient-num/den) > 1e-12 || inh.Coefficient >= 0 {
		t.Fatalf("coefficient %v, want %v", inh.Coefficient, num/den)
	}
}

func TestMeasureInharmonicityRejects(t *testing.T) {
	if _, err := MeasureInharmonicity(nil, nil); err == nil {
		t.Error("empty input accepted")
	}
	if _, err := MeasureInharmonicity([]float64{1, 2}, []int{1}); err == nil {
		t.Error("length mismatch accepted")
	}
	if _, err := MeasureInharmonicity([]float64{0}, []int{1}); err == nil {
		t.Error("zero partial accepted")
	}
}
