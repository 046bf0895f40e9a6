package spectral

import (
	"github.com/mjibson/go-dsp/fft"
)

// FFT provides Fast Fourier Transform functionality backed by mjibson/go-dsp
type FFT struct{}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// ComputeInverseReal computes inverse FFT and returns real part only
func (f *FFT) ComputeInverseReal(x []complex128) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	result := fft.IFFT(x)
	realResult := make([]float64, len(result))

	for i, val := range result {
		realResult[i] = real(val)
	}

	return realResult
}

// ImpulseResponse turns a one-sided spectrum (bins 0..N/2 of an N-point
// transform of a real signal) into its N-sample real impulse response by
// filling in the conjugate-symmetric half.
func (f *FFT) ImpulseResponse(half []complex128) []float64 {
	if len(half) < 2 {
		return []float64{}
	}

	n := 2 * (len(half) - 1)
	full := make([]complex128, n)
	copy(full, half)
	for k := 1; k < len(half)-1; k++ {
		re, im := real(half[k]), imag(half[k])
		full[n-k] = complex(re, -im)
	}

	// DC and Nyquist bins of a real signal carry no imaginary part
	full[0] = complex(real(half[0]), 0)
	full[n/2] = complex(real(half[len(half)-1]), 0)

	return f.ComputeInverseReal(full)
}
