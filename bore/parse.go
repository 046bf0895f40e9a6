package bore

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-didge/algorithms/common"
)

// rawPoint is a parsed sample still in the caller's units, tagged with the
// input line it came from.
type rawPoint struct {
	Point
	Line int
}

// parseText reads one "position diameter" pair per line. Values may be
// separated by whitespace, commas or semicolons. Blank lines and lines
// starting with '#' are skipped.
func parseText(raw string) ([]rawPoint, []ValidationError) {
	var (
		points []rawPoint
		errs   []ValidationError
	)

	scanner := bufio.NewScanner(strings.NewReader(raw))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			errs = append(errs, newError(line, FieldPoint, CodeParse,
				fmt.Sprintf("expected \"position diameter\", got %q", text)))
			continue
		}

		pos, perr := strconv.ParseFloat(fields[0], 64)
		dia, derr := strconv.ParseFloat(fields[1], 64)
		if perr != nil || derr != nil || !common.AllFinite(pos, dia) {
			errs = append(errs, newError(line, FieldPoint, CodeParse,
				fmt.Sprintf("%q is not a pair of numbers", text)))
			continue
		}

		pt := rawPoint{Point: Point{Position: pos, Diameter: dia}, Line: line}
		if ve, ok := checkPositive(pt); !ok {
			errs = append(errs, ve...)
			continue
		}
		points = append(points, pt)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, newError(line, FieldPoint, CodeParse, fmt.Sprintf("read input: %v", err)))
	}

	return points, errs
}

// fromPoints tags pre-parsed points with their 1-based index and applies
// the same positivity rule as text input.
func fromPoints(in []Point) ([]rawPoint, []ValidationError) {
	var (
		points []rawPoint
		errs   []ValidationError
	)
	for i, pt := range in {
		rp := rawPoint{Point: pt, Line: i + 1}
		if !common.AllFinite(pt.Position, pt.Diameter) {
			errs = append(errs, newError(rp.Line, FieldPoint, CodeParse, "position and diameter must be finite numbers"))
			continue
		}
		if ve, ok := checkPositive(rp); !ok {
			errs = append(errs, ve...)
			continue
		}
		points = append(points, rp)
	}
	return points, errs
}

// checkPositive rejects negative positions and non-positive diameters. The
// mouthpiece sample may sit at position 0.
func checkPositive(pt rawPoint) ([]ValidationError, bool) {
	var errs []ValidationError
	if pt.Position < 0 {
		errs = append(errs, newError(pt.Line, FieldPosition, CodeNonPositive,
			fmt.Sprintf("position %g must not be negative", pt.Position)))
	}
	if pt.Diameter <= 0 {
		errs = append(errs, newError(pt.Line, FieldDiameter, CodeNonPositive,
			fmt.Sprintf("diameter %g must be positive", pt.Diameter)))
	}
	return errs, len(errs) == 0
}
