package acoustic

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/sonido-didge/algorithms/common"
	"github.com/RyanBlaney/sonido-didge/algorithms/harmonic"
	"github.com/RyanBlaney/sonido-didge/algorithms/spectral"
	"github.com/RyanBlaney/sonido-didge/algorithms/windowing"
	"github.com/RyanBlaney/sonido-didge/bore"
)

// Visco-thermal wall loss, alpha = lossCoefficient * sqrt(f) / radius (1/m).
const lossCoefficient = 3e-5

// Echo analysis grid: an 8192 Hz rate with 4096-point transforms gives 2 Hz
// bins and about 2 cm of length resolution.
const (
	echoSampleRate = 8192.0
	echoFFTSize    = 4096
	echoMinLength  = 0.1
)

// ImpedanceParams controls the input impedance computation.
type ImpedanceParams struct {
	MinFrequency float64 `json:"min_frequency"` // Hz
	MaxFrequency float64 `json:"max_frequency"` // Hz
	Step         float64 `json:"step"`          // Hz
	SliceLength  float64 `json:"slice_length"`  // m, longest cylindrical slice
	SoundSpeed   float64 `json:"sound_speed"`   // m/s
	AirDensity   float64 `json:"air_density"`   // kg/m³
	MaxPeaks     int     `json:"max_peaks"`

	// EchoWindow tapers the reflectance spectrum before the inverse transform.
	EchoWindow windowing.Type `json:"echo_window"`
}

// DefaultImpedanceParams scans 30-1000 Hz in 0.5 Hz steps with 1 cm slices
// in standard air.
func DefaultImpedanceParams() ImpedanceParams {
	env := StandardEnvironment()
	return ImpedanceParams{
		MinFrequency: 30,
		MaxFrequency: 1000,
		Step:         0.5,
		SliceLength:  0.01,
		SoundSpeed:   DefaultSoundSpeed,
		AirDensity:   env.AirDensity(),
		MaxPeaks:     8,
		EchoWindow:   windowing.Hann,
	}
}

// Validate checks the parameters.
func (p ImpedanceParams) Validate() error {
	switch {
	case !common.AllFinite(p.MinFrequency, p.MaxFrequency, p.Step, p.SliceLength, p.SoundSpeed, p.AirDensity):
		return fmt.Errorf("impedance params must be finite")
	case p.MinFrequency <= 0 || p.MaxFrequency <= p.MinFrequency:
		return fmt.Errorf("impedance frequency range [%v, %v] is invalid", p.MinFrequency, p.MaxFrequency)
	case p.Step <= 0 || p.SliceLength <= 0:
		return fmt.Errorf("impedance step and slice length must be positive")
	case p.SoundSpeed <= 0 || p.AirDensity <= 0:
		return fmt.Errorf("sound speed and air density must be positive")
	case !p.EchoWindow.Valid():
		return fmt.Errorf("unknown echo window %q", p.EchoWindow)
	}
	return nil
}

// ImpedanceSpectrum is the input impedance seen from the mouthpiece.
type ImpedanceSpectrum struct {
	Frequencies []float64 `json:"frequencies"` // Hz
	Magnitudes  []float64 `json:"magnitudes"`  // Pa·s/m³
	// CharacteristicImpedance of the first slice, rho*c/S (Pa·s/m³).
	CharacteristicImpedance float64 `json:"characteristic_impedance"`

	step     float64
	maxPeaks int
}

// Resonance is one impedance maximum: a note the bore supports.
type Resonance struct {
	Frequency float64 `json:"frequency"`
	Magnitude float64 `json:"magnitude"`
}

// slice is a short cylinder used by the transfer-matrix walk.
type slice struct {
	length float64
	radius float64
}

func slices(p *bore.Profile, maxLength float64) []slice {
	var out []slice
	for _, seg := range p.Segments() {
		n := int(math.Ceil(seg.Length / maxLength))
		n = max(n, 1)
		l := seg.Length / float64(n)
		for i := 0; i < n; i++ {
			mid := seg.Start + (float64(i)+0.5)*l
			out = append(out, slice{length: l, radius: seg.DiameterAt(mid) / 2})
		}
	}
	return out
}

// inputImpedance walks from the bell (unflanged radiation load) back to the
// mouthpiece, one cylindrical slice at a time.
func inputImpedance(cyls []slice, bellRadius, freq, c, rho float64) complex128 {
	omega := 2 * math.Pi * freq
	k0 := omega / c

	bellArea := math.Pi * bellRadius * bellRadius
	ka := k0 * bellRadius
	z := complex(rho*c/bellArea, 0) * complex(0.25*ka*ka, EndCorrectionFactor*ka)

	for i := len(cyls) - 1; i >= 0; i-- {
		s := cyls[i]
		zc := complex(rho*c/(math.Pi*s.radius*s.radius), 0)
		alpha := lossCoefficient * math.Sqrt(freq) / s.radius
		kl := complex(k0, -alpha) * complex(s.length, 0)

		cos, sin := cmplx.Cos(kl), cmplx.Sin(kl)
		z = zc * (z*cos + 1i*zc*sin) / (1i*z*sin + zc*cos)
	}

	return z
}

// InputImpedance computes |Z_in| at the mouthpiece across the params'
// frequency grid using a lossy transfer-matrix model.
func InputImpedance(p *bore.Profile, params ImpedanceParams) (*ImpedanceSpectrum, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := checkGeometry(p); err != nil {
		return nil, err
	}

	n := int(math.Floor((params.MaxFrequency-params.MinFrequency)/params.Step)) + 1
	freqs := floats.Span(make([]float64, n), params.MinFrequency, params.MinFrequency+float64(n-1)*params.Step)

	cyls := slices(p, params.SliceLength)
	bellRadius := p.BellDiameter() / 2

	mags := make([]float64, n)
	for i, f := range freqs {
		mags[i] = cmplx.Abs(inputImpedance(cyls, bellRadius, f, params.SoundSpeed, params.AirDensity))
	}

	mouthRadius := cyls[0].radius
	return &ImpedanceSpectrum{
		Frequencies:             freqs,
		Magnitudes:              mags,
		CharacteristicImpedance: params.AirDensity * params.SoundSpeed / (math.Pi * mouthRadius * mouthRadius),
		step:                    params.Step,
		maxPeaks:                params.MaxPeaks,
	}, nil
}

// Resonances returns the impedance maxima in ascending frequency. Peaks
// below the characteristic impedance are ignored.
func (s *ImpedanceSpectrum) Resonances() []Resonance {
	if len(s.Frequencies) == 0 {
		return nil
	}

	picker := harmonic.NewSpectralPeaks(s.CharacteristicImpedance, 2*s.step, s.maxPeaks)
	peaks := picker.DetectPeaks(s.Magnitudes, s.Frequencies[0], s.step)

	out := make([]Resonance, len(peaks))
	for i, pk := range peaks {
		out[i] = Resonance{Frequency: pk.Frequency, Magnitude: pk.Magnitude}
	}
	return out
}

// OddSeriesInharmonicity measures how far resonances stray from the odd
// series a closed-open tube would give: resonance i is compared with order
// 2i+1 of the lowest one.
func OddSeriesInharmonicity(res []Resonance) (harmonic.Inharmonicity, error) {
	partials := make([]float64, len(res))
	orders := make([]int, len(res))
	for i, r := range res {
		partials[i] = r.Frequency
		orders[i] = 2*i + 1
	}
	return harmonic.MeasureInharmonicity(partials, orders)
}

// EchoLength estimates the acoustic length of the bore from the delay of
// its strongest internal reflection, as an acoustic pulse reflectometer
// would: the mouthpiece reflectance spectrum is tapered, inverse
// transformed, and the largest excursion past echoMinLength is read as a
// round trip.
func EchoLength(p *bore.Profile, params ImpedanceParams) (float64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	if err := checkGeometry(p); err != nil {
		return 0, err
	}

	cyls := slices(p, params.SliceLength)
	bellRadius := p.BellDiameter() / 2
	mouthArea := math.Pi * cyls[0].radius * cyls[0].radius
	zc := complex(params.AirDensity*params.SoundSpeed/mouthArea, 0)

	half := make([]complex128, echoFFTSize/2+1)
	df := echoSampleRate / echoFFTSize
	for k := 1; k < len(half); k++ {
		z := inputImpedance(cyls, bellRadius, float64(k)*df, params.SoundSpeed, params.AirDensity)
		half[k] = (z - zc) / (z + zc)
	}

	taper, err := windowing.NewFalling(params.EchoWindow, len(half))
	if err != nil {
		return 0, fmt.Errorf("echo window: %w", err)
	}
	if err := taper.ApplyComplex(half); err != nil {
		return 0, fmt.Errorf("taper reflectance: %w", err)
	}

	response := spectral.NewFFT().ImpulseResponse(half)
	envelope := make([]float64, len(response)/2)
	for i := range envelope {
		envelope[i] = math.Abs(response[i])
	}

	start := int(math.Ceil(2 * echoMinLength / params.SoundSpeed * echoSampleRate))
	if start >= len(envelope)-1 {
		return 0, geometryErrorf("echo search window is empty")
	}

	idx := start + floats.MaxIdx(envelope[start:])
	delay := float64(idx)
	if idx > 0 && idx < len(envelope)-1 {
		y1, y2, y3 := envelope[idx-1], envelope[idx], envelope[idx+1]
		if denom := y1 - 2*y2 + y3; math.Abs(denom) > 1e-15 {
			delay += 0.5 * (y1 - y3) / denom
		}
	}

	return delay / echoSampleRate * params.SoundSpeed / 2, nil
}
