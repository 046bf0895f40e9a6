package windowing

import (
	"fmt"

	"github.com/mjibson/go-dsp/window"
)

// Type names a window shape.
type Type string

const (
	Hann        Type = "hann"
	Hamming     Type = "hamming"
	Blackman    Type = "blackman"
	Bartlett    Type = "bartlett"
	Rectangular Type = "rectangular"
)

var generators = map[Type]func(int) []float64{
	Hann:        window.Hann,
	Hamming:     window.Hamming,
	Blackman:    window.Blackman,
	Bartlett:    window.Bartlett,
	Rectangular: window.Rectangular,
}

// Valid reports whether t is a known window shape.
func (t Type) Valid() bool {
	_, ok := generators[t]
	return ok
}

// Window holds precomputed window coefficients
type Window struct {
	kind         Type
	coefficients []float64
}

// New creates a symmetric window of the given shape and size
func New(kind Type, size int) (*Window, error) {
	gen, ok := generators[kind]
	if !ok {
		return nil, fmt.Errorf("unknown window type %q", kind)
	}
	if size <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", size)
	}
	return &Window{kind: kind, coefficients: gen(size)}, nil
}

// NewFalling creates the decreasing half of a window: its peak at index 0
// tapering toward 0 at the last index. It rolls off one-sided spectra
// before an inverse transform.
func NewFalling(kind Type, size int) (*Window, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %d", size)
	}
	full, err := New(kind, 2*size-1)
	if err != nil {
		return nil, err
	}

	w := &Window{kind: kind, coefficients: make([]float64, size)}
	copy(w.coefficients, full.coefficients[size-1:])
	return w, nil
}

// ApplyComplex windows a complex spectrum in place
func (w *Window) ApplyComplex(spectrum []complex128) error {
	if len(spectrum) != len(w.coefficients) {
		return fmt.Errorf("spectrum length (%d) doesn't match window size (%d)", len(spectrum), len(w.coefficients))
	}

	for i, c := range w.coefficients {
		spectrum[i] *= complex(c, 0)
	}

	return nil
}
