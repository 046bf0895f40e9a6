// Package bore models the internal geometry of a didgeridoo: measured
// (position, diameter) samples, the segments between them, and the builder
// that turns raw user input into a validated profile in meters.
package bore

import (
	"fmt"

	"github.com/RyanBlaney/sonido-didge/algorithms/common"
)

// Physical limits for a canonical profile, in meters.
const (
	MinPosition = 0.0
	MaxPosition = 10.0
	MinDiameter = 0.010
	MaxDiameter = 1.000

	// MinPoints is the smallest number of samples that describes a bore.
	MinPoints = 2
)

// Point is one bore measurement in meters.
type Point struct {
	Position float64 `json:"position"` // distance from the mouthpiece
	Diameter float64 `json:"diameter"` // internal diameter at Position
}

// Segment is the linear taper between two adjacent points.
type Segment struct {
	Start         float64 `json:"start"`
	Length        float64 `json:"length"`
	StartDiameter float64 `json:"start_diameter"`
	EndDiameter   float64 `json:"end_diameter"`
	AvgDiameter   float64 `json:"avg_diameter"`
}

// End returns the position where the segment stops.
func (s Segment) End() float64 {
	return s.Start + s.Length
}

// DiameterAt interpolates the diameter at x, clamped to the segment span.
func (s Segment) DiameterAt(x float64) float64 {
	if s.Length <= 0 || x <= s.Start {
		return s.StartDiameter
	}
	if x >= s.End() {
		return s.EndDiameter
	}
	frac := (x - s.Start) / s.Length
	return s.StartDiameter + frac*(s.EndDiameter-s.StartDiameter)
}

// Profile is an immutable, validated bore: at least two points, strictly
// increasing positions starting at 0, diameters within physical limits.
type Profile struct {
	points   []Point
	segments []Segment
	shape    *common.LinearInterpolator
}

// NewProfile validates points (meters, already ordered) and builds a
// Profile. The first point is the mouthpiece: positions are shifted so it
// sits at 0. It does not rescale or reorder; use the builder for raw input.
// On failure it returns every violation found.
func NewProfile(points []Point) (*Profile, error) {
	errs := checkPoints(points, nil)
	if len(errs) > 0 {
		return nil, &ValidationErrors{Errors: errs}
	}

	return newProfile(canonical(points))
}

func newProfile(points []Point) (*Profile, error) {
	p := &Profile{points: append([]Point(nil), points...)}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, pt := range points {
		xs[i] = pt.Position
		ys[i] = pt.Diameter
	}

	shape, err := common.NewLinearInterpolator(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("build bore shape: %w", err)
	}
	p.shape = shape

	p.segments = make([]Segment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		p.segments = append(p.segments, Segment{
			Start:         a.Position,
			Length:        b.Position - a.Position,
			StartDiameter: a.Diameter,
			EndDiameter:   b.Diameter,
			AvgDiameter:   (a.Diameter + b.Diameter) / 2,
		})
	}

	return p, nil
}

// Points returns a copy of the profile samples.
func (p *Profile) Points() []Point {
	return append([]Point(nil), p.points...)
}

// Len returns the number of samples.
func (p *Profile) Len() int {
	return len(p.points)
}

// Length is the total bore length, i.e. the last sample's position.
func (p *Profile) Length() float64 {
	return p.points[len(p.points)-1].Position
}

// Segments returns a copy of the consecutive point pairs.
func (p *Profile) Segments() []Segment {
	return append([]Segment(nil), p.segments...)
}

// DiameterAt returns the linearly interpolated diameter at position x.
// Positions beyond either end take the end diameter.
func (p *Profile) DiameterAt(x float64) float64 {
	return p.shape.At(x)
}

// Resample returns n evenly spaced samples along the bore.
func (p *Profile) Resample(n int) (positions, diameters []float64) {
	return p.shape.Resample(n)
}

// Diameters returns the sample diameters in order.
func (p *Profile) Diameters() []float64 {
	ds := make([]float64, len(p.points))
	for i, pt := range p.points {
		ds[i] = pt.Diameter
	}
	return ds
}

// AverageDiameter is the plain mean of the sample diameters.
func (p *Profile) AverageDiameter() float64 {
	return common.Mean(p.Diameters())
}

// MouthDiameter is the diameter at the mouthpiece end.
func (p *Profile) MouthDiameter() float64 {
	return p.points[0].Diameter
}

// BellDiameter is the diameter at the open end.
func (p *Profile) BellDiameter() float64 {
	return p.points[len(p.points)-1].Diameter
}

// canonical returns a copy of points moved so the first one is at 0.
func canonical(points []Point) []Point {
	out := append([]Point(nil), points...)
	origin := out[0].Position
	for i := range out {
		out[i].Position -= origin
	}
	return out
}

// checkPoints validates ranges and ordering of points already in meters and
// in their final order. lines maps each point back to its input line; nil
// means 1-based indices.
func checkPoints(points []Point, lines []int) []ValidationError {
	var errs []ValidationError

	for i, pt := range points {
		line := i + 1
		if lines != nil {
			line = lines[i]
		}
		if !common.AllFinite(pt.Position, pt.Diameter) {
			errs = append(errs, newError(line, FieldPoint, CodeParse, "position and diameter must be finite numbers"))
			continue
		}
		if pt.Position < MinPosition || pt.Position > MaxPosition {
			errs = append(errs, newError(line, FieldPosition, CodeOutOfRange,
				fmt.Sprintf("position %.4g m is outside [%g, %g] m", pt.Position, MinPosition, MaxPosition)))
		}
		if pt.Diameter <= 0 {
			errs = append(errs, newError(line, FieldDiameter, CodeNonPositive,
				fmt.Sprintf("diameter %.4g m must be positive", pt.Diameter)))
		} else if pt.Diameter < MinDiameter || pt.Diameter > MaxDiameter {
			errs = append(errs, newError(line, FieldDiameter, CodeOutOfRange,
				fmt.Sprintf("diameter %.4g m is outside [%g, %g] m", pt.Diameter, MinDiameter, MaxDiameter)))
		}
		if i > 0 {
			prev := points[i-1].Position
			switch {
			case pt.Position == prev:
				errs = append(errs, newError(line, FieldPosition, CodeDuplicate,
					fmt.Sprintf("position %.4g m repeats the previous point", pt.Position)))
			case pt.Position < prev:
				errs = append(errs, newError(line, FieldPosition, CodeNonMonotonic,
					fmt.Sprintf("position %.4g m is before the previous point at %.4g m", pt.Position, prev)))
			}
		}
	}

	if len(points) < MinPoints {
		errs = append(errs, newError(0, FieldProfile, CodeTooFewPoints,
			fmt.Sprintf("a bore needs at least %d points, got %d", MinPoints, len(points))))
	}

	return errs
}
