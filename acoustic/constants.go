// Package acoustic estimates the playing frequencies of a didgeridoo bore.
//
// The model is a closed-open tube (the player's lips close the mouthpiece
// end) with empirical corrections for radiation at the bell, bore width,
// mouthpiece coupling and flare. The correction constants below are
// empirical calibration parameters, not physically exact values. Tune them
// against measured instruments before relying on absolute pitch.
package acoustic

const (
	// DefaultSoundSpeed is the speed of sound in dry air at about 20 °C (m/s).
	DefaultSoundSpeed = 343.0

	// DefaultMaxHarmonics is the number of odd harmonics generated when the
	// caller does not ask for a specific count.
	DefaultMaxHarmonics = 12

	// MaxHarmonicsLimit caps the series length.
	MaxHarmonicsLimit = 64

	// EndCorrectionFactor times the bell radius is added to the physical
	// length to account for radiation at the open end.
	EndCorrectionFactor = 0.6

	// RadiusDampingFactor scales the linear lowering of pitch with the
	// average bore radius (radius in meters).
	RadiusDampingFactor = 0.1

	// MouthpieceRegion is the length of bore (m) that dominates lip coupling.
	MouthpieceRegion = 0.030

	// ReferenceMouthRadius is the mouthpiece radius (m) at which the size
	// correction is neutral before clamping.
	ReferenceMouthRadius = 0.015

	// MouthSizeSlope scales the size correction per meter of radius
	// difference from ReferenceMouthRadius.
	MouthSizeSlope = 2.0

	// Size correction bounds.
	MinSizeCorrection = 0.75
	MaxSizeCorrection = 0.95

	// OptimalTaperRate is the preferred diameter growth across the
	// mouthpiece region, in millimeters of diameter per millimeter of length.
	OptimalTaperRate = 0.3

	// TaperPenaltyFactor scales the penalty for deviating from OptimalTaperRate.
	TaperPenaltyFactor = 0.1

	// Taper correction bounds.
	MinTaperCorrection = 0.9
	MaxTaperCorrection = 1.1

	// MouthImpedanceFactor replaces the full mouthpiece analysis on the
	// offline path. It matches the combined correction of a typical 30 mm
	// mouthpiece with a gentle taper.
	MouthImpedanceFactor = 0.93

	// InharmonicityPenalty scales the amplitude loss per unit of relative
	// deviation from the ideal odd-harmonic ratio.
	InharmonicityPenalty = 0.5

	// Amplitude penalty floor.
	MinInharmonicityFactor = 0.5

	// Flare correction bounds: a cylinder gives 1, a full cone 2.
	MinFlareCorrection = 1.0
	MaxFlareCorrection = 2.0

	// Audible band. Overtones outside it are dropped from the series.
	MinAudibleFrequency = 20.0
	MaxAudibleFrequency = 20000.0

	// coneSamples is how many evenly spaced samples feed the equivalent-cone fit.
	coneSamples = 256
)
