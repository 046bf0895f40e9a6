package analysis

import (
	"github.com/RyanBlaney/sonido-didge/acoustic"
	"github.com/RyanBlaney/sonido-didge/analysis/config"
)

// Option overrides one setting for a single call.
type Option func(*config.AnalysisConfig)

// WithSoundSpeed fixes the speed of sound (m/s), overriding any environment.
func WithSoundSpeed(c float64) Option {
	return func(cfg *config.AnalysisConfig) { cfg.SoundSpeed = c }
}

// WithMaxHarmonics sets how many odd harmonics to generate.
func WithMaxHarmonics(n int) Option {
	return func(cfg *config.AnalysisConfig) { cfg.MaxHarmonics = n }
}

// WithMethod selects the online or offline solver path.
func WithMethod(m acoustic.Method) Option {
	return func(cfg *config.AnalysisConfig) { cfg.Method = m }
}

// WithEnvironment derives sound speed and air density from air conditions.
// An explicit WithSoundSpeed still wins.
func WithEnvironment(env acoustic.Environment) Option {
	return func(cfg *config.AnalysisConfig) { cfg.Environment = &env }
}

// WithImpedance adds the input impedance summary to the result.
func WithImpedance(params acoustic.ImpedanceParams) Option {
	return func(cfg *config.AnalysisConfig) {
		cfg.EnableImpedance = true
		cfg.Impedance = params
	}
}

// WithReferencePitch tunes the note annotations to A4 = hz.
func WithReferencePitch(hz float64) Option {
	return func(cfg *config.AnalysisConfig) { cfg.ReferencePitch = hz }
}
