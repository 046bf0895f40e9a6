package notes

import (
	"errors"
	"math"
	"testing"
)

func TestFrequencyToNote(t *testing.T) {
	tests := []struct {
		freq   float64
		name   string
		octave int
		cents  float64
		tol    float64
	}{
		{440, "A", 4, 0, 0},
		{880, "A", 5, 0, 0},
		{220, "A", 3, 0, 0},
		{466.16, "A#", 4, 0, 0.1},
		{261.63, "C", 3, 0, 0.1},
		{65.41, "C", 1, 0, 0.1},
		{73.42, "D", 1, 0, 0.1},
		{82.41, "E", 1, 0, 0.1},
		{415.3, "G#", 3, 0, 0.1},
		{493.88, "B", 4, 0, 0.1},
		{27.5, "A", 0, 0, 0},
		{445, "A", 4, 19.6, 0},
		{435, "A", 4, -19.8, 0},
	}

	for _, tt := range tests {
		n, err := FrequencyToNote(tt.freq)
		if err != nil {
			t.Fatalf("%v Hz: %v", tt.freq, err)
		}
		if n.Name != tt.name || n.Octave != tt.octave {
			t.Errorf("%v Hz: got %s, want %s%d", tt.freq, n, tt.name, tt.octave)
		}
		if math.Abs(n.CentDiff-tt.cents) > tt.tol+1e-9 {
			t.Errorf("%v Hz: cents %v, want %v", tt.freq, n.CentDiff, tt.cents)
		}
	}
}

func TestCentsWithinHalfSemitone(t *testing.T) {
	for f := 20.0; f < 5000; f *= 1.0137 {
		n, err := FrequencyToNote(f)
		if err != nil {
			t.Fatal(err)
		}
		if n.CentDiff < -50 || n.CentDiff > 50 {
			t.Fatalf("%v Hz: cents %v", f, n.CentDiff)
		}
		if n.CentDiff != math.Round(n.CentDiff*10)/10 {
			t.Fatalf("%v Hz: cents %v not rounded to 0.1", f, n.CentDiff)
		}
	}
}

func TestFrequencyToNoteRejectsInvalid(t *testing.T) {
	for _, f := range []float64{0, -440, math.NaN(), math.Inf(1)} {
		if _, err := FrequencyToNote(f); !errors.Is(err, ErrInvalidFrequency) {
			t.Errorf("%v: got %v", f, err)
		}
	}
}

func TestMapperReference(t *testing.T) {
	m, err := NewMapper(432)
	if err != nil {
		t.Fatal(err)
	}
	n, err := m.Note(432)
	if err != nil {
		t.Fatal(err)
	}
	if n.String() != "A4" || n.CentDiff != 0 {
		t.Fatalf("432 Hz at A=432: %s %+v cents", n, n.CentDiff)
	}

	if n, _ := DefaultMapper().Note(432); n.CentDiff >= 0 {
		t.Fatalf("432 Hz at A=440 should be flat, got %v cents", n.CentDiff)
	}

	if _, err := NewMapper(0); err == nil {
		t.Fatal("zero reference accepted")
	}
}
