package spectral

import (
	"math"
	"testing"

	"github.com/mjibson/go-dsp/fft"
)

func TestImpulseResponseRecoversSignal(t *testing.T) {
	signal := []float64{0.5, 1, -0.25, 0, 0.75, -1, 0.1, 0.2}
	f := NewFFT()

	spectrum := fft.FFTReal(signal)
	got := f.ImpulseResponse(spectrum[:len(signal)/2+1])
	if len(got) != len(signal) {
		t.Fatalf("got %d samples, want %d", len(got), len(signal))
	}
	for i := range signal {
		if math.Abs(got[i]-signal[i]) > 1e-12 {
			t.Errorf("sample %d = %v, want %v", i, got[i], signal[i])
		}
	}
}

func TestImpulseResponseOfDelayedEcho(t *testing.T) {
	// a pure delay of 3 samples in a 16-point transform
	const n, delay = 16, 3
	half := make([]complex128, n/2+1)
	for k := range half {
		phase := -2 * math.Pi * float64(k*delay) / n
		half[k] = complex(math.Cos(phase), math.Sin(phase))
	}

	got := NewFFT().ImpulseResponse(half)
	for i, v := range got {
		want := 0.0
		if i == delay {
			want = 1
		}
		if math.Abs(v-want) > 1e-12 {
			t.Errorf("sample %d = %v, want %v", i, v, want)
		}
	}
}

func TestEmptyInputs(t *testing.T) {
	f := NewFFT()
	if len(f.ComputeInverseReal(nil)) != 0 || len(f.ImpulseResponse([]complex128{1})) != 0 {
		t.Fatal("empty input should give empty output")
	}
}
