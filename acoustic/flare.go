package acoustic

import (
	"math"

	"github.com/RyanBlaney/sonido-didge/algorithms/common"
	"github.com/RyanBlaney/sonido-didge/bore"
)

// Cone is the truncated cone that best matches a bore. ApexDistance is the
// distance from the mouthpiece back to the virtual apex: +Inf for a
// cylinder or a contracting bore, 0 for a cone that starts at a point.
type Cone struct {
	MouthDiameter float64 `json:"mouth_diameter"` // fitted diameter at position 0 (m)
	Slope         float64 `json:"slope"`          // diameter growth per meter
	ApexDistance  float64 `json:"apex_distance"`
}

// Flared reports whether the cone widens toward the bell.
func (c Cone) Flared() bool {
	return !math.IsInf(c.ApexDistance, 1)
}

// FitCone fits a straight taper to the whole bore by least squares over
// evenly spaced samples, so dense measurements near the mouthpiece do not
// dominate the fit.
func FitCone(p *bore.Profile) Cone {
	xs, ds := p.Resample(coneSamples)
	intercept, slope := common.LinearFit(xs, ds)
	return newCone(intercept, slope)
}

// flatSlope is the diameter growth per meter below which a fitted bore
// counts as cylindrical; it absorbs rounding noise from the regression.
const flatSlope = 1e-9

func newCone(intercept, slope float64) Cone {
	c := Cone{MouthDiameter: intercept, Slope: slope, ApexDistance: math.Inf(1)}
	if slope <= flatSlope {
		return c
	}
	c.ApexDistance = math.Max(0, intercept/slope)
	return c
}

// ModeWavenumber returns the wavenumber of the n-th resonance (n >= 1) of a
// cone of the given acoustic length closed at its narrow end:
//
//	k·L + atan(k·x0) = n·π
//
// A cylinder (x0 = +Inf) reduces to the quarter-wave series (2n-1)·π/(2L).
func (c Cone) ModeWavenumber(length float64, n int) float64 {
	lo := (float64(n) - 0.5) * math.Pi / length
	hi := float64(n) * math.Pi / length
	if !c.Flared() {
		return lo
	}

	target := float64(n) * math.Pi
	x0 := c.ApexDistance
	for iter := 0; iter < 64; iter++ {
		mid := (lo + hi) / 2
		if mid*length+math.Atan(mid*x0) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// FlareCorrection is the ratio of the cone's lowest resonance to the
// quarter-wave resonance of a cylinder of the same acoustic length.
func (c Cone) FlareCorrection(length float64) float64 {
	quarterWave := math.Pi / (2 * length)
	return common.Clamp(c.ModeWavenumber(length, 1)/quarterWave, MinFlareCorrection, MaxFlareCorrection)
}
