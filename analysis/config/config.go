// Package config holds the tunable settings of a bore analysis.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/RyanBlaney/sonido-didge/acoustic"
	"github.com/RyanBlaney/sonido-didge/notes"
)

// AnalysisConfig configures an analyzer. The zero SoundSpeed means "derive
// it": from Environment when set, otherwise acoustic.DefaultSoundSpeed.
type AnalysisConfig struct {
	SoundSpeed     float64         `json:"sound_speed,omitempty"` // m/s
	MaxHarmonics   int             `json:"max_harmonics"`
	Method         acoustic.Method `json:"method"`          // "online_advanced", "offline_simplified"
	ReferencePitch float64         `json:"reference_pitch"` // A4 in Hz

	Environment *acoustic.Environment `json:"environment,omitempty"`

	// Input impedance is slower than the closed-form solver, so it is opt-in.
	// Its sound speed and air density are filled in from the settings above.
	EnableImpedance bool                     `json:"enable_impedance"`
	Impedance       acoustic.ImpedanceParams `json:"impedance"`

	// Builder behaviour for raw text input
	SortPoints bool `json:"sort_points"`
	Rescale    bool `json:"rescale"`

	// Empty logs through the global logger.
	LogLevel string `json:"log_level,omitempty"` // "debug", "info", "warn", "error"
}

// DefaultAnalysisConfig returns the settings used when none are given.
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		MaxHarmonics:   acoustic.DefaultMaxHarmonics,
		Method:         acoustic.MethodOnline,
		ReferencePitch: notes.ReferencePitch,
		Impedance:      acoustic.DefaultImpedanceParams(),
		Rescale:        true,
	}
}

// ResolvedSoundSpeed applies the precedence explicit > environment > default.
func (c *AnalysisConfig) ResolvedSoundSpeed() float64 {
	switch {
	case c.SoundSpeed > 0:
		return c.SoundSpeed
	case c.Environment != nil:
		return c.Environment.SoundSpeed()
	default:
		return acoustic.DefaultSoundSpeed
	}
}

// ImpedanceParams returns the impedance settings with the resolved sound
// speed and, when an environment is set, its air density.
func (c *AnalysisConfig) ImpedanceParams() acoustic.ImpedanceParams {
	p := c.Impedance
	p.SoundSpeed = c.ResolvedSoundSpeed()
	if c.Environment != nil {
		p.AirDensity = c.Environment.AirDensity()
	}
	return p
}

// SolverParams returns the per-call solver parameters.
func (c *AnalysisConfig) SolverParams() acoustic.Params {
	return acoustic.Params{
		SoundSpeed:   c.ResolvedSoundSpeed(),
		MaxHarmonics: c.MaxHarmonics,
		Method:       c.Method,
	}
}

// Validate reports the first invalid setting.
func (c *AnalysisConfig) Validate() error {
	if math.IsNaN(c.SoundSpeed) || math.IsInf(c.SoundSpeed, 0) || c.SoundSpeed < 0 {
		return fmt.Errorf("sound_speed must be zero or positive, got %v", c.SoundSpeed)
	}
	if c.Environment != nil {
		env := c.Environment
		if env.TemperatureC < -50 || env.TemperatureC > 60 {
			return fmt.Errorf("environment temperature %v °C out of range [-50, 60]", env.TemperatureC)
		}
		if env.RelativeHumidity < 0 || env.RelativeHumidity > 100 {
			return fmt.Errorf("environment humidity %v %% out of range [0, 100]", env.RelativeHumidity)
		}
	}
	if err := c.SolverParams().Validate(); err != nil {
		return err
	}
	if math.IsNaN(c.ReferencePitch) || c.ReferencePitch < 400 || c.ReferencePitch > 480 {
		return fmt.Errorf("reference_pitch must be in [400, 480] Hz, got %v", c.ReferencePitch)
	}
	if c.EnableImpedance {
		if err := c.ImpedanceParams().Validate(); err != nil {
			return fmt.Errorf("impedance: %w", err)
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// LoadJSON reads a config, starting from the defaults so omitted fields
// keep their default values. Unknown fields are rejected.
func LoadJSON(r io.Reader) (*AnalysisConfig, error) {
	cfg := DefaultAnalysisConfig()

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode analysis config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis config: %w", err)
	}
	return cfg, nil
}
