package acoustic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/sonido-didge/algorithms/common"
	"github.com/RyanBlaney/sonido-didge/bore"
	"github.com/RyanBlaney/sonido-didge/logging"
)

// Method selects how the solver derives the fundamental.
type Method string

const (
	// MethodOnline runs the full analysis including the mouthpiece model.
	MethodOnline Method = "online_advanced"
	// MethodOffline uses the precomputed frequency table and a generic
	// mouthpiece factor in place of the mouthpiece model.
	MethodOffline Method = "offline_simplified"
)

// Valid reports whether m is a known method.
func (m Method) Valid() bool {
	return m == MethodOnline || m == MethodOffline
}

// Params are the per-call solver inputs.
type Params struct {
	SoundSpeed   float64 `json:"sound_speed"`
	MaxHarmonics int     `json:"max_harmonics"`
	Method       Method  `json:"method"`
}

// DefaultParams returns 343 m/s, 12 harmonics, online method.
func DefaultParams() Params {
	return Params{
		SoundSpeed:   DefaultSoundSpeed,
		MaxHarmonics: DefaultMaxHarmonics,
		Method:       MethodOnline,
	}
}

// Validate checks the parameters.
func (p Params) Validate() error {
	if !common.IsFinite(p.SoundSpeed) || p.SoundSpeed <= 0 {
		return fmt.Errorf("sound speed must be positive, got %v", p.SoundSpeed)
	}
	if p.MaxHarmonics < 1 || p.MaxHarmonics > MaxHarmonicsLimit {
		return fmt.Errorf("max harmonics must be in [1, %d], got %d", MaxHarmonicsLimit, p.MaxHarmonics)
	}
	if !p.Method.Valid() {
		return fmt.Errorf("unknown calculation method %q", p.Method)
	}
	return nil
}

// Solution is everything the solver derives from one profile, in SI units.
type Solution struct {
	Method     Method  `json:"method"`
	SoundSpeed float64 `json:"sound_speed"`

	TotalLength     float64 `json:"total_length"`
	EndCorrection   float64 `json:"end_correction"`
	EffectiveLength float64 `json:"effective_length"`

	BaseFrequency    float64 `json:"base_frequency"`
	AverageRadius    float64 `json:"average_radius"`
	RadiusCorrection float64 `json:"radius_correction"`

	Mouthpiece           *Mouthpiece `json:"mouthpiece,omitempty"` // nil on the offline path
	MouthpieceCorrection float64     `json:"mouthpiece_correction"`

	Cone            Cone    `json:"cone"`
	FlareCorrection float64 `json:"flare_correction"`

	Fundamental float64    `json:"fundamental"`
	Harmonics   []Harmonic `json:"harmonics"`

	Volume float64 `json:"volume"` // m³
}

// Solver turns validated profiles into solutions. It holds no per-call
// state and is safe for concurrent use.
type Solver struct {
	table  *FrequencyTable
	logger logging.Logger
}

// NewSolver creates a solver. A nil table selects StandardFrequencyTable.
func NewSolver(table *FrequencyTable) *Solver {
	if table == nil {
		table = StandardFrequencyTable()
	}
	return &Solver{
		table: table,
		logger: logging.WithFields(logging.Fields{
			"component": "acoustic_solver",
		}),
	}
}

// WithLogger returns a copy of the solver that logs to logger.
func (s *Solver) WithLogger(logger logging.Logger) *Solver {
	cp := *s
	cp.logger = logger.WithFields(logging.Fields{"component": "acoustic_solver"})
	return &cp
}

// Solve computes the fundamental and odd-harmonic series for profile. It
// only fails for invalid params or a degenerate profile (*GeometryError).
func (s *Solver) Solve(profile *bore.Profile, params Params) (*Solution, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid solver params: %w", err)
	}
	if err := checkGeometry(profile); err != nil {
		return nil, err
	}

	logger := s.logger.WithFields(logging.Fields{
		"function": "Solve",
		"method":   string(params.Method),
		"points":   profile.Len(),
	})

	sol := &Solution{
		Method:      params.Method,
		SoundSpeed:  params.SoundSpeed,
		TotalLength: profile.Length(),
	}

	sol.EndCorrection = EndCorrectionFactor * profile.BellDiameter() / 2
	sol.EffectiveLength = sol.TotalLength + sol.EndCorrection

	sol.AverageRadius = profile.AverageDiameter() / 2
	sol.RadiusCorrection = 1 - sol.AverageRadius*RadiusDampingFactor

	switch params.Method {
	case MethodOffline:
		if f, ok := s.table.Lookup(sol.EffectiveLength, params.SoundSpeed); ok {
			sol.BaseFrequency = f
		} else {
			logger.Debug("Length not in frequency table, computing directly", logging.Fields{
				"effective_length": sol.EffectiveLength,
			})
			sol.BaseFrequency = params.SoundSpeed / (4 * sol.EffectiveLength)
		}
		sol.MouthpieceCorrection = MouthImpedanceFactor

	default:
		sol.BaseFrequency = params.SoundSpeed / (4 * sol.EffectiveLength)
		mp := AnalyzeMouthpiece(profile)
		sol.Mouthpiece = &mp
		sol.MouthpieceCorrection = mp.Correction
	}

	sol.Cone = FitCone(profile)
	sol.FlareCorrection = sol.Cone.FlareCorrection(sol.EffectiveLength)
	sol.Fundamental = sol.BaseFrequency * sol.RadiusCorrection * sol.MouthpieceCorrection * sol.FlareCorrection
	if !common.IsFinite(sol.Fundamental) || sol.Fundamental <= 0 {
		return nil, geometryErrorf("fundamental frequency evaluated to %v", sol.Fundamental)
	}

	sol.Harmonics = harmonicSeries(sol.Fundamental, params.MaxHarmonics, sol.Cone, sol.EffectiveLength)
	sol.Volume = boreVolume(profile)

	logger.Debug("Bore solved", logging.Fields{
		"effective_length":      sol.EffectiveLength,
		"base_frequency":        sol.BaseFrequency,
		"radius_correction":     sol.RadiusCorrection,
		"mouthpiece_correction": sol.MouthpieceCorrection,
		"flare_correction":      sol.FlareCorrection,
		"fundamental":           sol.Fundamental,
		"harmonics":             len(sol.Harmonics),
	})

	return sol, nil
}

// boreVolume sums cylinders of each segment's average diameter.
func boreVolume(p *bore.Profile) float64 {
	segs := p.Segments()
	areas := make([]float64, len(segs))
	lengths := make([]float64, len(segs))
	for i, seg := range segs {
		r := seg.AvgDiameter / 2
		areas[i] = math.Pi * r * r
		lengths[i] = seg.Length
	}
	return floats.Dot(areas, lengths)
}

func checkGeometry(p *bore.Profile) error {
	if p == nil || p.Len() < bore.MinPoints {
		return geometryErrorf("profile needs at least %d points", bore.MinPoints)
	}
	if l := p.Length(); !common.IsFinite(l) || l <= 0 {
		return geometryErrorf("bore length %v is not positive", l)
	}
	for i, seg := range p.Segments() {
		if seg.Length <= 0 {
			return geometryErrorf("segment %d has zero length", i+1)
		}
	}
	for i, d := range p.Diameters() {
		if !common.IsFinite(d) || d <= 0 {
			return geometryErrorf("diameter %v at point %d is not positive", d, i+1)
		}
	}
	return nil
}
