package bore

import (
	"errors"
	"math"
	"testing"
)

func mustProfile(t *testing.T, pts []Point) *Profile {
	t.Helper()
	p, err := NewProfile(pts)
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}
	return p
}

func TestProfileSegments(t *testing.T) {
	p := mustProfile(t, []Point{{0, 0.030}, {0.03, 0.032}, {0.08, 0.035}})

	segs := p.Segments()
	if len(segs) != 2 {
		t.Fatalf("got %d segments", len(segs))
	}
	if math.Abs(segs[1].Start-0.03) > 1e-12 || math.Abs(segs[1].Length-0.05) > 1e-12 ||
		math.Abs(segs[1].AvgDiameter-0.0335) > 1e-12 || math.Abs(segs[1].End()-0.08) > 1e-12 {
		t.Fatalf("segment 1 = %+v", segs[1])
	}
	if got := segs[0].DiameterAt(0.015); math.Abs(got-0.031) > 1e-12 {
		t.Fatalf("segment DiameterAt = %v", got)
	}
}

func TestProfileDiameterAt(t *testing.T) {
	p := mustProfile(t, []Point{{0, 0.030}, {1.0, 0.130}})

	cases := []struct{ x, want float64 }{
		{-0.1, 0.030}, {0, 0.030}, {0.5, 0.080}, {1.0, 0.130}, {2.0, 0.130},
	}
	for _, tc := range cases {
		if got := p.DiameterAt(tc.x); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("DiameterAt(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
	if p.MouthDiameter() != 0.030 || p.BellDiameter() != 0.130 {
		t.Fatal("end diameters wrong")
	}
	if math.Abs(p.AverageDiameter()-0.080) > 1e-12 {
		t.Fatalf("average diameter %v", p.AverageDiameter())
	}
}

func TestProfileIsImmutable(t *testing.T) {
	src := []Point{{0, 0.030}, {1.0, 0.130}}
	p := mustProfile(t, src)

	src[1].Diameter = 0.5
	pts := p.Points()
	pts[0].Diameter = 0.9

	if p.BellDiameter() != 0.130 || p.MouthDiameter() != 0.030 {
		t.Fatal("profile changed through caller-held slices")
	}
}

func TestNewProfileShiftsOrigin(t *testing.T) {
	p, err := NewProfile([]Point{{0.05, 0.03}, {0.8, 0.05}, {1.55, 0.12}})
	if err != nil {
		t.Fatal(err)
	}
	pts := p.Points()
	if pts[0].Position != 0 || math.Abs(pts[2].Position-1.5) > 1e-12 {
		t.Fatalf("points %+v not moved to the mouthpiece", pts)
	}
	if math.Abs(p.Length()-1.5) > 1e-12 || p.MouthDiameter() != 0.03 {
		t.Fatalf("length %v, mouth %v", p.Length(), p.MouthDiameter())
	}
}

func TestNewProfileRejects(t *testing.T) {
	cases := map[string][]Point{
		"empty":     nil,
		"single":    {{0, 0.03}},
		"zero diam": {{0, 0}, {1, 0.05}},
		"backwards": {{0, 0.03}, {1, 0.05}, {0.5, 0.06}},
		"nan":       {{0, 0.03}, {math.NaN(), 0.05}},
	}
	for name, pts := range cases {
		_, err := NewProfile(pts)
		var verrs *ValidationErrors
		if !errors.As(err, &verrs) || len(verrs.Errors) == 0 {
			t.Errorf("%s: got %v", name, err)
		}
	}
}
