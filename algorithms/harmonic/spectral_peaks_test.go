package harmonic

import (
	"math"
	"testing"
)

func TestDetectPeaksRefinesVertex(t *testing.T) {
	// parabolas peaking between grid points at 10.3 Hz and 20.6 Hz
	mags := make([]float64, 60)
	for i := range mags {
		f := float64(i) * 0.5
		mags[i] = math.Max(0, 10-4*(f-10.3)*(f-10.3)) + math.Max(0, 5-4*(f-20.6)*(f-20.6))
	}

	peaks := NewSpectralPeaks(1, 1, 0).DetectPeaks(mags, 0, 0.5)
	if len(peaks) != 2 {
		t.Fatalf("got %d peaks: %+v", len(peaks), peaks)
	}
	want := []float64{10.3, 20.6}
	for i, p := range peaks {
		if math.Abs(p.Frequency-want[i]) > 1e-9 {
			t.Errorf("peak %d at %v, want %v", i, p.Frequency, want[i])
		}
	}
}

func TestDetectPeaksLimitsAndThreshold(t *testing.T) {
	mags := []float64{0, 3, 0, 1, 0, 4, 0, 5, 0}
	peaks := NewSpectralPeaks(2, 0.5, 2).DetectPeaks(mags, 100, 1)
	if len(peaks) != 2 || peaks[0].BinIndex != 1 || peaks[1].BinIndex != 5 {
		t.Fatalf("peaks %+v", peaks)
	}
	if got := NewSpectralPeaks(0, 1, 0).DetectPeaks([]float64{1, 2}, 0, 1); len(got) != 0 {
		t.Fatalf("short input gave %v", got)
	}
}
