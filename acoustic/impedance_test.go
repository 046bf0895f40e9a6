package acoustic

import (
	"errors"
	"testing"

	"github.com/RyanBlaney/sonido-didge/algorithms/windowing"
)

func TestCylinderImpedanceResonances(t *testing.T) {
	curve, err := InputImpedance(cylinder(t, 1.5, 0.03), DefaultImpedanceParams())
	if err != nil {
		t.Fatal(err)
	}

	res := curve.Resonances()
	if len(res) < 5 {
		t.Fatalf("found %d resonances", len(res))
	}

	first := DefaultSoundSpeed / (4 * (1.5 + EndCorrectionFactor*0.015))
	for i, r := range res[:5] {
		want := first * float64(2*i+1)
		if !withinRel(r.Frequency, want, 0.01) {
			t.Errorf("resonance %d at %.2f Hz, want about %.2f Hz", i+1, r.Frequency, want)
		}
		if r.Magnitude < curve.CharacteristicImpedance {
			t.Errorf("resonance %d magnitude %v below characteristic impedance", i+1, r.Magnitude)
		}
	}
}

func TestCylinderIsNearlyHarmonic(t *testing.T) {
	curve, err := InputImpedance(cylinder(t, 1.5, 0.03), DefaultImpedanceParams())
	if err != nil {
		t.Fatal(err)
	}
	inh, err := OddSeriesInharmonicity(curve.Resonances())
	if err != nil {
		t.Fatal(err)
	}
	for i, d := range inh.Deviations {
		if d < -0.01 || d > 0.01 {
			t.Errorf("resonance %d deviates %.4f from the odd series", i+1, d)
		}
	}

	flared, err := InputImpedance(profileOf(t, defaultPoints), DefaultImpedanceParams())
	if err != nil {
		t.Fatal(err)
	}
	finh, err := OddSeriesInharmonicity(flared.Resonances())
	if err != nil {
		t.Fatal(err)
	}
	if finh.Coefficient >= inh.Coefficient {
		t.Errorf("flared coefficient %v not below cylinder %v", finh.Coefficient, inh.Coefficient)
	}
}

func TestFlaredImpedanceStretchesSeries(t *testing.T) {
	curve, err := InputImpedance(profileOf(t, defaultPoints), DefaultImpedanceParams())
	if err != nil {
		t.Fatal(err)
	}
	res := curve.Resonances()
	if len(res) < 2 {
		t.Fatalf("found %d resonances", len(res))
	}

	// a flaring bore raises the drone and compresses the overtone ratios
	cyl := DefaultSoundSpeed / (4 * 1.536)
	if res[0].Frequency <= cyl {
		t.Errorf("first resonance %.2f Hz not above quarter-wave %.2f Hz", res[0].Frequency, cyl)
	}
	if ratio := res[1].Frequency / res[0].Frequency; ratio >= 3 {
		t.Errorf("second/first ratio %.2f not below 3", ratio)
	}
}

func TestEchoLengthOfCylinder(t *testing.T) {
	got, err := EchoLength(cylinder(t, 1.5, 0.03), DefaultImpedanceParams())
	if err != nil {
		t.Fatal(err)
	}
	if !withinRel(got, 1.5, 0.03) {
		t.Fatalf("echo length %.3f m, want about 1.5 m", got)
	}
}

func TestEchoLengthWindowChoice(t *testing.T) {
	params := DefaultImpedanceParams()
	params.EchoWindow = windowing.Blackman
	got, err := EchoLength(cylinder(t, 1.5, 0.03), params)
	if err != nil {
		t.Fatal(err)
	}
	if !withinRel(got, 1.5, 0.05) {
		t.Fatalf("echo length with blackman taper %.3f m", got)
	}
}

func TestImpedanceParamsValidate(t *testing.T) {
	bad := DefaultImpedanceParams()
	bad.MaxFrequency = bad.MinFrequency
	if _, err := InputImpedance(cylinder(t, 1, 0.03), bad); err == nil {
		t.Error("empty frequency range accepted")
	}

	bad = DefaultImpedanceParams()
	bad.AirDensity = 0
	if _, err := EchoLength(cylinder(t, 1, 0.03), bad); err == nil {
		t.Error("zero air density accepted")
	}

	bad = DefaultImpedanceParams()
	bad.EchoWindow = "kaiser"
	if err := bad.Validate(); err == nil {
		t.Error("unknown echo window accepted")
	}

	_, err := InputImpedance(nil, DefaultImpedanceParams())
	var gerr *GeometryError
	if !errors.As(err, &gerr) {
		t.Errorf("nil profile: got %v", err)
	}
}
