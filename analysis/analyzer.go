package analysis

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RyanBlaney/sonido-didge/acoustic"
	"github.com/RyanBlaney/sonido-didge/analysis/config"
	"github.com/RyanBlaney/sonido-didge/bore"
	"github.com/RyanBlaney/sonido-didge/logging"
	"github.com/RyanBlaney/sonido-didge/notes"
)

// Analyzer runs bore analyses. It holds only immutable settings and shared
// read-only tables, so one Analyzer may serve concurrent calls.
type Analyzer struct {
	config *config.AnalysisConfig
	solver *acoustic.Solver
	mapper *notes.Mapper
	clock  func() time.Time
	newID  func() string
	logger logging.Logger
}

// NewAnalyzer creates an analyzer. A nil config uses DefaultAnalysisConfig.
// A non-empty LogLevel gives the analyzer its own logger at that level;
// otherwise it logs through the global logger.
func NewAnalyzer(cfg *config.AnalysisConfig) (*Analyzer, error) {
	if cfg == nil {
		cfg = config.DefaultAnalysisConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	cp := *cfg

	mapper, err := notes.NewMapper(cp.ReferencePitch)
	if err != nil {
		return nil, err
	}

	var base logging.Logger = logging.GetGlobalLogger()
	if cp.LogLevel != "" {
		l := logging.NewDefaultLogger()
		l.SetLevel(logging.ParseLevel(cp.LogLevel))
		base = l
	}

	a := &Analyzer{
		config: &cp,
		mapper: mapper,
		clock:  time.Now,
		newID:  uuid.NewString,
	}
	a.setLogger(base)
	return a, nil
}

func (a *Analyzer) setLogger(l logging.Logger) {
	a.logger = l.WithFields(logging.Fields{"component": "bore_analyzer"})
	a.solver = acoustic.NewSolver(acoustic.StandardFrequencyTable()).WithLogger(l)
}

// WithLogger returns a copy of the analyzer that logs to l.
func (a *Analyzer) WithLogger(l logging.Logger) *Analyzer {
	cp := *a
	cp.setLogger(l)
	return &cp
}

// WithClock returns a copy of the analyzer that stamps results with now().
func (a *Analyzer) WithClock(now func() time.Time) *Analyzer {
	cp := *a
	cp.clock = now
	return &cp
}

// Config returns a copy of the analyzer's settings.
func (a *Analyzer) Config() config.AnalysisConfig {
	return *a.config
}

func (a *Analyzer) resolve(opts []Option) (*config.AnalysisConfig, error) {
	cfg := *a.config
	if cfg.Environment != nil {
		env := *cfg.Environment
		cfg.Environment = &env
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return &cfg, nil
}

func (a *Analyzer) mapperFor(cfg *config.AnalysisConfig) *notes.Mapper {
	if cfg.ReferencePitch == a.mapper.Reference() {
		return a.mapper
	}
	// Validate already bounded the pitch
	m, _ := notes.NewMapper(cfg.ReferencePitch)
	return m
}

// Analyze solves a bore given in meters. Positions must strictly increase;
// the first point is the mouthpiece and is moved to position 0. Invalid points give a
// *ValidationFailedError, a degenerate profile an *acoustic.GeometryError,
// and bad options an error wrapping ErrInvalidOptions.
func (a *Analyzer) Analyze(points []bore.Point, opts ...Option) (*AnalysisResult, error) {
	cfg, err := a.resolve(opts)
	if err != nil {
		return nil, err
	}

	profile, err := bore.NewProfile(points)
	if err != nil {
		var verrs *bore.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, &ValidationFailedError{Errors: verrs.Errors}
		}
		return nil, err
	}

	return a.analyzeProfile(profile, cfg)
}

// AnalyzeRaw validates a text block of "position diameter" lines in units
// and analyzes it. It never returns an error: every failure is reported as
// an Outcome kind.
func (a *Analyzer) AnalyzeRaw(raw string, units bore.UnitSystem, opts ...Option) Outcome {
	cfg, err := a.resolve(opts)
	if err != nil {
		return Outcome{
			Kind: OutcomeValidationFailed,
			Errors: []bore.ValidationError{{
				Field:   FieldOptions,
				Code:    CodeInvalidOption,
				Message: err.Error(),
			}},
		}
	}

	var buildOpts []bore.BuildOption
	if cfg.SortPoints {
		buildOpts = append(buildOpts, bore.WithSorting())
	}
	if !cfg.Rescale {
		buildOpts = append(buildOpts, bore.WithoutRescale())
	}

	vr := bore.ValidateAndBuildProfile(raw, units, buildOpts...)
	for _, adj := range vr.Adjustments {
		a.logger.Warn("Rescaled bore input", logging.Fields{
			"field":  string(adj.Field),
			"factor": adj.Factor,
			"reason": adj.Reason,
		})
	}
	if !vr.Valid {
		a.logger.Debug("Bore input rejected", logging.Fields{"errors": len(vr.Errors)})
		return Outcome{Kind: OutcomeValidationFailed, Errors: vr.Errors, Adjustments: vr.Adjustments}
	}

	profile, err := vr.Profile()
	if err == nil {
		var result *AnalysisResult
		result, err = a.analyzeProfile(profile, cfg)
		if err == nil {
			return Outcome{Kind: OutcomeOK, Result: result, Adjustments: vr.Adjustments}
		}
	}

	reason := err.Error()
	var gerr *acoustic.GeometryError
	if errors.As(err, &gerr) {
		reason = gerr.Reason
	}
	return Outcome{Kind: OutcomeGeometryError, Reason: reason, Adjustments: vr.Adjustments}
}

func (a *Analyzer) analyzeProfile(profile *bore.Profile, cfg *config.AnalysisConfig) (*AnalysisResult, error) {
	logger := a.logger.WithFields(logging.Fields{
		"function": "analyzeProfile",
		"method":   string(cfg.Method),
	})

	sol, err := a.solver.Solve(profile, cfg.SolverParams())
	if err != nil {
		logger.Error(err, "Acoustic solver failed")
		return nil, err
	}

	mapper := a.mapperFor(cfg)
	result, err := Assemble(sol, mapper, a.clock())
	if err != nil {
		return nil, fmt.Errorf("assemble result: %w", err)
	}
	result.Metadata.ID = a.newID()

	if cfg.EnableImpedance {
		params := cfg.ImpedanceParams()
		spectrum, err := acoustic.InputImpedance(profile, params)
		if err != nil {
			return nil, fmt.Errorf("input impedance: %w", err)
		}
		echo, err := acoustic.EchoLength(profile, params)
		if err != nil {
			return nil, fmt.Errorf("echo length: %w", err)
		}
		resonances := spectrum.Resonances()
		result.Impedance = &ImpedanceSummary{
			Peaks:      impedancePeaks(resonances, mapper),
			EchoLength: echo,
		}
		if inh, err := acoustic.OddSeriesInharmonicity(resonances); err == nil {
			result.Impedance.Inharmonicity = &inh
		} else {
			logger.Warn("No impedance peaks to compare with the odd series", logging.Fields{"error": err.Error()})
		}
		result.Metadata.CharacteristicImpedance = spectrum.CharacteristicImpedance
	}

	fundamental := result.Fundamental()
	logger.Info("Bore analysis completed", logging.Fields{
		"id":          result.Metadata.ID,
		"fundamental": fundamental.Frequency,
		"note":        fmt.Sprintf("%s%d", fundamental.Note, fundamental.Octave),
		"harmonics":   len(result.Results),
	})

	return result, nil
}

var defaultAnalyzer = sync.OnceValue(func() *Analyzer {
	a, err := NewAnalyzer(nil)
	if err != nil {
		panic(fmt.Sprintf("default analysis config is invalid: %v", err))
	}
	return a
})

// Analyze runs Analyzer.Analyze with the default configuration.
func Analyze(points []bore.Point, opts ...Option) (*AnalysisResult, error) {
	return defaultAnalyzer().Analyze(points, opts...)
}

// AnalyzeRaw runs Analyzer.AnalyzeRaw with the default configuration.
func AnalyzeRaw(raw string, units bore.UnitSystem, opts ...Option) Outcome {
	return defaultAnalyzer().AnalyzeRaw(raw, units, opts...)
}
