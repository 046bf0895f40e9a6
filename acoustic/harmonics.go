package acoustic

import (
	"math"

	"github.com/RyanBlaney/sonido-didge/algorithms/common"
)

// Harmonic is one entry of the odd-harmonic series.
type Harmonic struct {
	Index     int     `json:"index"`     // 1 = fundamental
	Order     int     `json:"order"`     // multiple of the fundamental, 2*Index-1
	Frequency float64 `json:"frequency"` // Hz
	Amplitude float64 `json:"amplitude"` // relative, 0-1
	Deviation float64 `json:"deviation"` // relative departure of the bore's mode ratio from Order
}

// harmonicSeries generates odd harmonics of f0 up to maxHarmonics. The
// fundamental is always kept; overtones outside the audible band are
// dropped. Amplitudes fall off as 1/sqrt(order) and lose more the further
// the bore's own mode ratio strays from the ideal odd ratio.
func harmonicSeries(f0 float64, maxHarmonics int, cone Cone, length float64) []Harmonic {
	k1 := cone.ModeWavenumber(length, 1)

	series := make([]Harmonic, 0, maxHarmonics)
	for n := 1; n <= maxHarmonics; n++ {
		order := 2*n - 1
		freq := f0 * float64(order)
		if n > 1 && (freq < MinAudibleFrequency || freq > MaxAudibleFrequency) {
			continue
		}

		ratio := cone.ModeWavenumber(length, n) / k1
		deviation := math.Abs(ratio-float64(order)) / float64(order)
		penalty := common.Clamp(1-InharmonicityPenalty*deviation, MinInharmonicityFactor, 1)

		series = append(series, Harmonic{
			Index:     n,
			Order:     order,
			Frequency: freq,
			Amplitude: penalty / math.Sqrt(float64(order)),
			Deviation: deviation,
		})
	}

	return series
}
