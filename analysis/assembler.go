package analysis

import (
	"fmt"
	"time"

	"github.com/RyanBlaney/sonido-didge/acoustic"
	"github.com/RyanBlaney/sonido-didge/notes"
)

// Assemble combines a solution with note annotations. It does no acoustic
// computation of its own. A nil mapper uses A4 = 440 Hz.
func Assemble(sol *acoustic.Solution, mapper *notes.Mapper, now time.Time) (*AnalysisResult, error) {
	if sol == nil {
		return nil, fmt.Errorf("solution cannot be nil")
	}
	if len(sol.Harmonics) == 0 || sol.Harmonics[0].Index != 1 {
		return nil, fmt.Errorf("solution has no fundamental")
	}
	if mapper == nil {
		mapper = notes.DefaultMapper()
	}

	results := make([]HarmonicResult, len(sol.Harmonics))
	for i, h := range sol.Harmonics {
		note, err := mapper.Note(h.Frequency)
		if err != nil {
			return nil, fmt.Errorf("harmonic %d: %w", h.Index, err)
		}
		results[i] = HarmonicResult{
			HarmonicIndex: h.Index,
			Frequency:     h.Frequency,
			Note:          note.Name,
			Octave:        note.Octave,
			CentDiff:      note.CentDiff,
			Amplitude:     h.Amplitude,
		}
	}

	return &AnalysisResult{
		Results: results,
		Metadata: Metadata{
			EffectiveLength:      sol.EffectiveLength * 100,
			AverageRadius:        sol.AverageRadius,
			Volume:               sol.Volume,
			CalculationMethod:    sol.Method,
			SoundSpeed:           sol.SoundSpeed,
			Timestamp:            now,
			Fundamental:          sol.Fundamental,
			MouthpieceCorrection: sol.MouthpieceCorrection,
			FlareCorrection:      sol.FlareCorrection,
		},
	}, nil
}

func impedancePeaks(resonances []acoustic.Resonance, mapper *notes.Mapper) []ImpedancePeak {
	peaks := make([]ImpedancePeak, 0, len(resonances))
	for _, r := range resonances {
		note, err := mapper.Note(r.Frequency)
		if err != nil {
			continue
		}
		peaks = append(peaks, ImpedancePeak{
			Frequency: r.Frequency,
			Magnitude: r.Magnitude,
			Note:      note.Name,
			Octave:    note.Octave,
			CentDiff:  note.CentDiff,
		})
	}
	return peaks
}
