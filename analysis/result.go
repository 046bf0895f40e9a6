// Package analysis turns bore measurements into playable notes: it
// validates the geometry, runs the acoustic solver and annotates every
// harmonic with its nearest equal-tempered pitch.
package analysis

import (
	"time"

	"github.com/RyanBlaney/sonido-didge/acoustic"
	"github.com/RyanBlaney/sonido-didge/algorithms/harmonic"
)

// HarmonicResult is one playable resonance with its note annotation.
type HarmonicResult struct {
	HarmonicIndex int     `json:"harmonic_index"` // 1 = fundamental
	Frequency     float64 `json:"frequency"`      // Hz
	Note          string  `json:"note"`
	Octave        int     `json:"octave"`
	CentDiff      float64 `json:"cent_diff"`
	Amplitude     float64 `json:"amplitude"` // relative, 0-1
}

// Metadata describes how a result was computed. Lengths are in
// centimeters for display; everything else is SI.
type Metadata struct {
	ID                   string          `json:"id"`
	EffectiveLength      float64         `json:"effective_length"` // cm
	AverageRadius        float64         `json:"average_radius"`   // m
	Volume               float64         `json:"volume"`           // m³
	CalculationMethod    acoustic.Method `json:"calculation_method"`
	SoundSpeed           float64         `json:"sound_speed"` // m/s
	Timestamp            time.Time       `json:"timestamp"`
	Fundamental          float64         `json:"fundamental"` // Hz
	MouthpieceCorrection float64         `json:"mouthpiece_correction"`
	FlareCorrection      float64         `json:"flare_correction"`
	// Set only when impedance analysis ran (Pa·s/m³).
	CharacteristicImpedance float64 `json:"characteristic_impedance,omitempty"`
}

// ImpedancePeak is an input impedance maximum with its note annotation.
type ImpedancePeak struct {
	Frequency float64 `json:"frequency"` // Hz
	Magnitude float64 `json:"magnitude"` // Pa·s/m³
	Note      string  `json:"note"`
	Octave    int     `json:"octave"`
	CentDiff  float64 `json:"cent_diff"`
}

// ImpedanceSummary is the optional transfer-matrix view of the bore.
type ImpedanceSummary struct {
	Peaks      []ImpedancePeak `json:"peaks"`
	EchoLength float64         `json:"echo_length"` // m
	// Departure of the peaks from the odd series; nil with no peaks.
	Inharmonicity *harmonic.Inharmonicity `json:"inharmonicity,omitempty"`
}

// AnalysisResult is the complete output of one analysis. It is built fresh
// for every call and never modified afterwards.
type AnalysisResult struct {
	Results   []HarmonicResult  `json:"results"`
	Metadata  Metadata          `json:"metadata"`
	Impedance *ImpedanceSummary `json:"impedance,omitempty"`
}

// Fundamental returns the drone, results[0].
func (r *AnalysisResult) Fundamental() HarmonicResult {
	if len(r.Results) == 0 {
		return HarmonicResult{}
	}
	return r.Results[0]
}
