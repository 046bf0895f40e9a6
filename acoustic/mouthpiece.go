package acoustic

import (
	"math"

	"github.com/RyanBlaney/sonido-didge/algorithms/common"
	"github.com/RyanBlaney/sonido-didge/bore"
)

// Mouthpiece summarizes the first MouthpieceRegion of the bore, which sets
// how well the instrument couples to the player's lips.
type Mouthpiece struct {
	Diameter        float64 `json:"diameter"`   // length-weighted mean diameter (m)
	Radius          float64 `json:"radius"`     // Diameter / 2
	TaperRate       float64 `json:"taper_rate"` // mm of diameter per mm of length
	SizeCorrection  float64 `json:"size_correction"`
	TaperCorrection float64 `json:"taper_correction"`
	Correction      float64 `json:"correction"` // SizeCorrection * TaperCorrection
}

// AnalyzeMouthpiece computes the mouthpiece correction for a profile.
//
// Segments starting inside the region contribute their average diameter
// weighted by length. The taper rate compares the diameter at the region's
// end with the mouth diameter; a bore shorter than the region uses its bell
// diameter there.
func AnalyzeMouthpiece(p *bore.Profile) Mouthpiece {
	var diameters, lengths []float64
	for _, seg := range p.Segments() {
		if seg.Start > MouthpieceRegion {
			break
		}
		diameters = append(diameters, seg.AvgDiameter)
		lengths = append(lengths, seg.Length)
	}

	diameter := common.WeightedMean(diameters, lengths)
	if diameter <= 0 {
		diameter = p.MouthDiameter()
	}

	radius := diameter / 2
	size := common.Clamp(1.0-(radius-ReferenceMouthRadius)*MouthSizeSlope, MinSizeCorrection, MaxSizeCorrection)

	// both diameters in mm over a 30 mm run
	growth := (p.DiameterAt(MouthpieceRegion) - p.DiameterAt(0)) * 1000
	rate := growth / (MouthpieceRegion * 1000)
	taper := common.Clamp(1.0-math.Abs(rate-OptimalTaperRate)*TaperPenaltyFactor, MinTaperCorrection, MaxTaperCorrection)

	return Mouthpiece{
		Diameter:        diameter,
		Radius:          radius,
		TaperRate:       rate,
		SizeCorrection:  size,
		TaperCorrection: taper,
		Correction:      size * taper,
	}
}
