package acoustic

import (
	"testing"

	"github.com/RyanBlaney/sonido-didge/bore"
)

// defaultPoints is the app's traditional default geometry in meters.
var defaultPoints = []bore.Point{
	{Position: 0, Diameter: 0.030},
	{Position: 0.03, Diameter: 0.032},
	{Position: 0.08, Diameter: 0.035},
	{Position: 0.12, Diameter: 0.040},
	{Position: 1.5, Diameter: 0.120},
}

func profileOf(t *testing.T, pts []bore.Point) *bore.Profile {
	t.Helper()
	p, err := bore.NewProfile(pts)
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}
	return p
}

func cylinder(t *testing.T, length, diameter float64) *bore.Profile {
	t.Helper()
	return profileOf(t, []bore.Point{{Position: 0, Diameter: diameter}, {Position: length, Diameter: diameter}})
}

func withinRel(got, want, tol float64) bool {
	if want == 0 {
		return got == 0
	}
	d := (got - want) / want
	return d >= -tol && d <= tol
}
