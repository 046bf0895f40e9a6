package harmonic

import (
	"math"
	"sort"
)

// SpectralPeak represents a detected peak on a uniform frequency grid
type SpectralPeak struct {
	Frequency float64 // Peak frequency in Hz, refined between grid points
	Magnitude float64 // Peak magnitude
	BinIndex  int     // Grid index of the local maximum
}

// SpectralPeaks finds local maxima in a magnitude curve sampled at
// startFreq + i*step
type SpectralPeaks struct {
	minPeakHeight   float64
	minPeakDistance float64 // Minimum distance between peaks in Hz
	maxPeaks        int
}

// NewSpectralPeaks creates a new spectral peaks analyzer. maxPeaks <= 0
// means no limit.
func NewSpectralPeaks(minPeakHeight, minPeakDistance float64, maxPeaks int) *SpectralPeaks {
	return &SpectralPeaks{
		minPeakHeight:   minPeakHeight,
		minPeakDistance: minPeakDistance,
		maxPeaks:        maxPeaks,
	}
}

// DetectPeaks returns the peaks in ascending frequency order. When more
// than maxPeaks qualify, the lowest-frequency ones are kept.
func (sp *SpectralPeaks) DetectPeaks(magnitudes []float64, startFreq, step float64) []SpectralPeak {
	if len(magnitudes) < 3 || step <= 0 {
		return []SpectralPeak{}
	}

	minDistanceBins := max(int(sp.minPeakDistance/step), 1)

	var peaks []SpectralPeak
	for i := 1; i < len(magnitudes)-1; i++ {
		if magnitudes[i] <= magnitudes[i-1] || magnitudes[i] < magnitudes[i+1] ||
			magnitudes[i] < sp.minPeakHeight {
			continue
		}

		// the previous peak is the only one that can be too close
		if n := len(peaks); n > 0 && i-peaks[n-1].BinIndex < minDistanceBins {
			if magnitudes[i] > peaks[n-1].Magnitude {
				peaks[n-1] = sp.refine(magnitudes, i, startFreq, step)
			}
			continue
		}

		peaks = append(peaks, sp.refine(magnitudes, i, startFreq, step))
	}

	sort.Slice(peaks, func(i, j int) bool {
		return peaks[i].Frequency < peaks[j].Frequency
	})

	if sp.maxPeaks > 0 && len(peaks) > sp.maxPeaks {
		peaks = peaks[:sp.maxPeaks]
	}

	return peaks
}

// refine locates the vertex of the parabola through the maximum and its
// neighbours for sub-bin accuracy
func (sp *SpectralPeaks) refine(magnitudes []float64, i int, startFreq, step float64) SpectralPeak {
	peak := SpectralPeak{
		Frequency: startFreq + float64(i)*step,
		Magnitude: magnitudes[i],
		BinIndex:  i,
	}

	y1, y2, y3 := magnitudes[i-1], magnitudes[i], magnitudes[i+1]
	denom := y1 - 2*y2 + y3
	if math.Abs(denom) < 1e-12 {
		return peak
	}

	offset := 0.5 * (y1 - y3) / denom
	if math.Abs(offset) > 0.5 {
		return peak
	}

	peak.Frequency = startFreq + (float64(i)+offset)*step
	peak.Magnitude = y2 - 0.25*(y1-y3)*offset
	return peak
}
