package bore

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-didge/algorithms/common"
)

// Reference magnitudes the scale heuristic aims for. A didgeridoo bore is
// typically around 50 mm wide and 1.5 m long.
const (
	typicalDiameter = 0.050
	typicalLength   = 1.5
)

var (
	diameterFactors = []float64{1e-3, 1e-2, 1e-1, 1, 10, 100, 1000}
	positionFactors = []float64{1e-1, 1e-2, 1e-3}
)

// Adjustment records a heuristic rescale applied to one field of the input.
type Adjustment struct {
	Field  Field   `json:"field"`
	Factor float64 `json:"factor"`
	Reason string  `json:"reason"`
}

// NormalizeScale is the forgiving step that runs before strict validation:
// it guesses when values were typed in a different unit than declared and
// rescales them by a power of ten. It only acts when the values are out of
// range as given, and reports every change it makes. Input in meters.
//
//   - Diameters: when any diameter is outside [MinDiameter, MaxDiameter], the
//     factor that brings the median diameter closest to 50 mm is applied,
//     provided it puts more diameters in range than before.
//   - Positions: when the last position exceeds MaxPosition, the factor in
//     {1/10, 1/100, 1/1000} that brings it closest to 1.5 m is applied,
//     provided the result fits.
//
// Positions that are too small cannot be told apart from a short bore and
// are left alone.
func NormalizeScale(points []Point) ([]Point, []Adjustment) {
	out := append([]Point(nil), points...)
	if len(out) == 0 {
		return out, nil
	}

	var adjustments []Adjustment

	if f, ok := diameterRescale(out); ok {
		for i := range out {
			out[i].Diameter *= f
		}
		adjustments = append(adjustments, Adjustment{
			Field:  FieldDiameter,
			Factor: f,
			Reason: fmt.Sprintf("diameters look like they were entered in a unit %s than declared", magnitudeWord(f)),
		})
	}

	if f, ok := positionRescale(out); ok {
		for i := range out {
			out[i].Position *= f
		}
		adjustments = append(adjustments, Adjustment{
			Field:  FieldPosition,
			Factor: f,
			Reason: fmt.Sprintf("positions look like they were entered in a unit %s than declared", magnitudeWord(f)),
		})
	}

	return out, adjustments
}

func diameterRescale(points []Point) (float64, bool) {
	diameters := make([]float64, len(points))
	for i, pt := range points {
		diameters[i] = pt.Diameter
	}

	before := countInRange(diameters, 1)
	if before == len(diameters) {
		return 1, false
	}

	median := common.Median(diameters)
	if median <= 0 {
		return 1, false
	}

	best := nearestFactor(median, typicalDiameter, diameterFactors)
	if best == 1 || countInRange(diameters, best) <= before {
		return 1, false
	}
	return best, true
}

func positionRescale(points []Point) (float64, bool) {
	last := 0.0
	for _, pt := range points {
		last = math.Max(last, pt.Position)
	}
	if last <= MaxPosition {
		return 1, false
	}

	best := nearestFactor(last, typicalLength, positionFactors)
	if last*best > MaxPosition {
		return 1, false
	}
	return best, true
}

// nearestFactor picks the factor that puts value closest to target on a log scale.
func nearestFactor(value, target float64, factors []float64) float64 {
	best, bestDist := 1.0, math.Inf(1)
	for _, f := range factors {
		dist := math.Abs(math.Log10(value*f) - math.Log10(target))
		if dist < bestDist {
			best, bestDist = f, dist
		}
	}
	return best
}

func countInRange(diameters []float64, factor float64) int {
	n := 0
	for _, d := range diameters {
		if v := d * factor; v >= MinDiameter && v <= MaxDiameter {
			n++
		}
	}
	return n
}

func magnitudeWord(factor float64) string {
	if factor < 1 {
		return "smaller"
	}
	return "larger"
}
