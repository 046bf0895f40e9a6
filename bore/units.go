package bore

import (
	"fmt"
	"strings"
)

// UnitSystem selects how raw positions and diameters are expressed.
type UnitSystem string

const (
	// Metric input gives positions in centimeters and diameters in millimeters.
	Metric UnitSystem = "metric"
	// Imperial input gives both positions and diameters in inches.
	Imperial UnitSystem = "imperial"
)

// MetersPerInch is the exact international inch.
const MetersPerInch = 0.0254

// ParseUnitSystem accepts "metric" or "imperial" in any case.
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch UnitSystem(strings.ToLower(strings.TrimSpace(s))) {
	case Metric:
		return Metric, nil
	case Imperial:
		return Imperial, nil
	default:
		return "", fmt.Errorf("unknown unit system %q (want %q or %q)", s, Metric, Imperial)
	}
}

// Valid reports whether u is a known unit system.
func (u UnitSystem) Valid() bool {
	return u == Metric || u == Imperial
}

// PositionScale converts a raw position into meters.
func (u UnitSystem) PositionScale() float64 {
	if u == Imperial {
		return MetersPerInch
	}
	return 0.01
}

// DiameterScale converts a raw diameter into meters.
func (u UnitSystem) DiameterScale() float64 {
	if u == Imperial {
		return MetersPerInch
	}
	return 0.001
}

// FromUnits converts raw points expressed in u into meters.
func FromUnits(points []Point, u UnitSystem) []Point {
	ps, ds := u.PositionScale(), u.DiameterScale()
	out := make([]Point, len(points))
	for i, pt := range points {
		out[i] = Point{Position: pt.Position * ps, Diameter: pt.Diameter * ds}
	}
	return out
}

// ToUnits converts canonical points (meters) into u for display.
func ToUnits(points []Point, u UnitSystem) []Point {
	ps, ds := u.PositionScale(), u.DiameterScale()
	out := make([]Point, len(points))
	for i, pt := range points {
		out[i] = Point{Position: pt.Position / ps, Diameter: pt.Diameter / ds}
	}
	return out
}
