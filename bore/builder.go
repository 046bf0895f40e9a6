package bore

import (
	"fmt"
	"sort"
)

// ValidationResult is what the builder hands back: either a usable profile
// (Valid, two or more canonical points, no errors) or the complete list of
// problems with no points at all.
type ValidationResult struct {
	Valid       bool              `json:"valid"`
	Points      []Point           `json:"points"`
	Errors      []ValidationError `json:"errors,omitempty"`
	Adjustments []Adjustment      `json:"adjustments,omitempty"`
}

// Profile builds the immutable profile for a valid result.
func (r ValidationResult) Profile() (*Profile, error) {
	if !r.Valid {
		return nil, &ValidationErrors{Errors: r.Errors}
	}
	return newProfile(r.Points)
}

// Err returns the collected problems as one error, or nil when valid.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationErrors{Errors: r.Errors}
}

type buildOptions struct {
	sort    bool
	rescale bool
}

// BuildOption tunes the builder.
type BuildOption func(*buildOptions)

// WithSorting orders points by position before validation instead of
// rejecting out-of-order input. Repeated positions are still rejected.
func WithSorting() BuildOption {
	return func(o *buildOptions) { o.sort = true }
}

// WithoutRescale disables the unit-scale heuristic so only strict
// validation runs.
func WithoutRescale() BuildOption {
	return func(o *buildOptions) { o.rescale = false }
}

// ValidateAndBuildProfile parses a text block of "position diameter" lines
// expressed in units and returns a validation result in meters. It never
// panics and never returns partially valid data.
func ValidateAndBuildProfile(raw string, units UnitSystem, opts ...BuildOption) ValidationResult {
	if !units.Valid() {
		return invalid(nil, newError(0, FieldUnits, CodeUnitSystem, fmt.Sprintf("unknown unit system %q", units)))
	}
	points, errs := parseText(raw)
	return build(points, errs, units, opts)
}

// ValidateAndBuildPoints is ValidateAndBuildProfile for pre-parsed points
// expressed in units. Error line numbers are 1-based point indices.
func ValidateAndBuildPoints(raw []Point, units UnitSystem, opts ...BuildOption) ValidationResult {
	if !units.Valid() {
		return invalid(nil, newError(0, FieldUnits, CodeUnitSystem, fmt.Sprintf("unknown unit system %q", units)))
	}
	points, errs := fromPoints(raw)
	return build(points, errs, units, opts)
}

func build(raw []rawPoint, errs []ValidationError, units UnitSystem, opts []BuildOption) ValidationResult {
	o := buildOptions{rescale: true}
	for _, opt := range opts {
		opt(&o)
	}

	if o.sort {
		sort.SliceStable(raw, func(i, j int) bool {
			return raw[i].Position < raw[j].Position
		})
	}

	points := make([]Point, len(raw))
	lines := make([]int, len(raw))
	for i, rp := range raw {
		points[i] = rp.Point
		lines[i] = rp.Line
	}
	points = FromUnits(points, units)

	var adjustments []Adjustment
	if o.rescale {
		points, adjustments = NormalizeScale(points)
	}

	errs = append(errs, checkPoints(points, lines)...)
	if len(errs) > 0 {
		return invalid(adjustments, errs...)
	}

	return ValidationResult{
		Valid:       true,
		Points:      canonical(points),
		Adjustments: adjustments,
	}
}

func invalid(adjustments []Adjustment, errs ...ValidationError) ValidationResult {
	return ValidationResult{
		Valid:       false,
		Points:      []Point{},
		Errors:      errs,
		Adjustments: adjustments,
	}
}
