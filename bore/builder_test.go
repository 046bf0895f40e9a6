package bore

import (
	"errors"
	"math"
	"testing"
)

const defaultGeometry = `# traditional default geometry (cm, mm)
0 30
3 32
8 35
12 40
150 120
`

func TestValidateAndBuildProfileDefaultGeometry(t *testing.T) {
	res := ValidateAndBuildProfile(defaultGeometry, Metric)
	if !res.Valid {
		t.Fatalf("expected valid profile, got errors %v", res.Errors)
	}
	if len(res.Adjustments) != 0 {
		t.Fatalf("unexpected adjustments %v", res.Adjustments)
	}

	want := []Point{
		{0, 0.030}, {0.03, 0.032}, {0.08, 0.035}, {0.12, 0.040}, {1.5, 0.120},
	}
	if len(res.Points) != len(want) {
		t.Fatalf("got %d points, want %d", len(res.Points), len(want))
	}
	for i, w := range want {
		got := res.Points[i]
		if math.Abs(got.Position-w.Position) > 1e-12 || math.Abs(got.Diameter-w.Diameter) > 1e-12 {
			t.Errorf("point %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestBuilderOutputStrictlyIncreasing(t *testing.T) {
	inputs := []string{
		defaultGeometry,
		"0,25\n50,30\n100,45\n160,90",
		"10 40; \n20 42\n30 44\n",
	}
	for _, in := range inputs {
		res := ValidateAndBuildProfile(in, Metric)
		if !res.Valid {
			t.Fatalf("input %q invalid: %v", in, res.Errors)
		}
		if res.Points[0].Position != 0 {
			t.Errorf("input %q: first position %v, want 0", in, res.Points[0].Position)
		}
		for i := 1; i < len(res.Points); i++ {
			if res.Points[i].Position <= res.Points[i-1].Position {
				t.Errorf("input %q: positions not increasing at %d: %v", in, i, res.Points)
			}
		}
	}
}

func TestValidationRejectsDegenerateInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		code Code
	}{
		{"single point", "0 30", CodeTooFewPoints},
		{"decreasing positions", "0 30\n100 40\n50 50", CodeNonMonotonic},
		{"zero diameter", "0 30\n50 0\n100 40", CodeNonPositive},
		{"duplicate position", "0 30\n50 35\n50 40", CodeDuplicate},
		{"garbage line", "0 30\nabc def\n100 40", CodeParse},
		{"three columns", "0 30 1\n100 40", CodeParse},
		{"diameter out of range", "0 30\n100 1500", CodeOutOfRange},
		{"empty", "", CodeTooFewPoints},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateAndBuildProfile(tc.raw, Metric, WithoutRescale())
			if res.Valid {
				t.Fatalf("expected invalid result, got %+v", res)
			}
			if len(res.Points) != 0 {
				t.Fatalf("invalid result carries %d points", len(res.Points))
			}
			if len(res.Errors) == 0 {
				t.Fatal("invalid result without errors")
			}
			found := false
			for _, e := range res.Errors {
				if e.Code == tc.code {
					found = true
				}
			}
			if !found {
				t.Fatalf("no %s error in %v", tc.code, res.Errors)
			}
		})
	}
}

func TestValidationCollectsAllErrors(t *testing.T) {
	raw := "0 30\nfoo\n20 -4\n10 35\n"
	res := ValidateAndBuildProfile(raw, Metric)
	if res.Valid {
		t.Fatal("expected invalid")
	}

	lines := map[int]bool{}
	for _, e := range res.Errors {
		lines[e.Line] = true
	}
	for _, l := range []int{2, 3} {
		if !lines[l] {
			t.Errorf("missing error for line %d in %v", l, res.Errors)
		}
	}

	var verrs *ValidationErrors
	if err := res.Err(); !errors.As(err, &verrs) || len(verrs.Errors) != len(res.Errors) {
		t.Fatalf("Err() = %v", err)
	}
}

func TestWithSortingOrdersInput(t *testing.T) {
	res := ValidateAndBuildProfile("150 120\n0 30\n80 60", Metric, WithSorting())
	if !res.Valid {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
	if res.Points[0].Position != 0 || math.Abs(res.Points[2].Position-1.5) > 1e-12 {
		t.Fatalf("points not sorted: %v", res.Points)
	}

	res = ValidateAndBuildProfile("150 120\n0 30\n150 60", Metric, WithSorting())
	if res.Valid {
		t.Fatal("duplicate positions accepted after sorting")
	}
}

func TestValidateAndBuildPoints(t *testing.T) {
	res := ValidateAndBuildPoints([]Point{{0, 1.25}, {59, 4.5}}, Imperial)
	if !res.Valid {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
	if math.Abs(res.Points[1].Position-59*MetersPerInch) > 1e-12 {
		t.Fatalf("position not converted: %v", res.Points[1])
	}

	res = ValidateAndBuildPoints([]Point{{0, 30}, {math.NaN(), 40}}, Metric)
	if res.Valid || res.Errors[0].Line != 2 {
		t.Fatalf("NaN point not rejected with its index: %+v", res)
	}
}

func TestUnknownUnitSystem(t *testing.T) {
	res := ValidateAndBuildProfile(defaultGeometry, UnitSystem("furlongs"))
	if res.Valid || res.Errors[0].Code != CodeUnitSystem {
		t.Fatalf("got %+v", res)
	}
}

func TestResultProfile(t *testing.T) {
	res := ValidateAndBuildProfile(defaultGeometry, Metric)
	p, err := res.Profile()
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 5 || math.Abs(p.Length()-1.5) > 1e-12 {
		t.Fatalf("profile len %d length %v", p.Len(), p.Length())
	}

	bad := ValidateAndBuildProfile("0 30", Metric)
	if _, err := bad.Profile(); err == nil {
		t.Fatal("invalid result produced a profile")
	}
}
