// Package config loads the parameters of the echo and evaporation data
// products from YAML, starting from the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/algo-echo/echo/train"
	"github.com/cwbudde/algo-echo/internal/logging"
	"github.com/cwbudde/algo-echo/physics/evap"
	"gopkg.in/yaml.v3"
)

// Config contains every tunable of the echoes command.
type Config struct {
	// Echo describes the synthesised ringdown and echo train.
	Echo EchoConfig `yaml:"echo"`

	// Evap describes the evaporation model and its mass grid.
	Evap EvapConfig `yaml:"evap"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `yaml:"logging"`
}

// EchoConfig mirrors train.Params with YAML names. Times are in seconds.
type EchoConfig struct {
	RingdownPeak      float64 `yaml:"ringdown_peak"`
	RingdownSigma     float64 `yaml:"ringdown_sigma"`
	RingdownAmplitude float64 `yaml:"ringdown_amplitude"`
	EchoDelay         float64 `yaml:"echo_delay"`
	EchoCount         int     `yaml:"echo_count"`
	EchoAmplitude     float64 `yaml:"echo_amplitude"`
	Reflection        float64 `yaml:"reflection"`
	EchoSigma         float64 `yaml:"echo_sigma"`
	CarrierHz         float64 `yaml:"carrier_hz"`
	SampleRate        float64 `yaml:"sample_rate"`
	WindowDivisor     float64 `yaml:"window_divisor"`

	// ReflectionMass, when positive, replaces Reflection with the WKB
	// reflection coefficient of the carrier for a body of this many solar
	// masses and multipole ReflectionL.
	ReflectionMass float64 `yaml:"reflection_mass,omitempty"`
	ReflectionL    int     `yaml:"reflection_l,omitempty"`

	// CombSpan is the number of comb lines reported either side of the
	// carrier.
	CombSpan int `yaml:"comb_span"`
}

// EvapConfig holds the evaporation model and a log-spaced mass grid from
// 10^MinExp to 10^MaxExp Planck masses.
type EvapConfig struct {
	AlphaH     float64 `yaml:"alpha_h"`
	PlanckMass float64 `yaml:"planck_mass"`
	K          float64 `yaml:"k"`
	MinExp     float64 `yaml:"min_exp"`
	MaxExp     float64 `yaml:"max_exp"`
	Points     int     `yaml:"points"`
}

// LoggingConfig configures the command logger.
type LoggingConfig struct {
	// Level sets the log verbosity: info (default), warn, debug or trace.
	Level string `yaml:"level"`
}

// Default returns a Config populated with the figure defaults.
func Default() *Config {
	p := train.DefaultParams()
	m := evap.DefaultModel()
	return &Config{
		Echo: EchoConfig{
			RingdownPeak:      p.RingdownPeak,
			RingdownSigma:     p.RingdownSigma,
			RingdownAmplitude: p.RingdownAmplitude,
			EchoDelay:         p.EchoDelay,
			EchoCount:         p.EchoCount,
			EchoAmplitude:     p.EchoAmplitude,
			Reflection:        p.Reflection,
			EchoSigma:         p.EchoSigma,
			CarrierHz:         p.CarrierHz,
			SampleRate:        p.SampleRate,
			WindowDivisor:     p.WindowDivisor,
			ReflectionL:       2,
			CombSpan:          3,
		},
		Evap: EvapConfig{
			AlphaH:     m.AlphaH,
			PlanckMass: m.PlanckMass,
			K:          m.K,
			MinExp:     -1,
			MaxExp:     15,
			Points:     400,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	p := c.Echo.Params()
	if err := p.Validate(); err != nil {
		return err
	}
	if c.Echo.ReflectionMass < 0 {
		return errors.New("echo.reflection_mass must be >= 0")
	}
	if c.Echo.CombSpan < 0 {
		return errors.New("echo.comb_span must be >= 0")
	}

	if err := c.Evap.Model().Validate(); err != nil {
		return err
	}
	if c.Evap.Points < 2 {
		return fmt.Errorf("evap.points must be >= 2: %d", c.Evap.Points)
	}
	if !(c.Evap.MaxExp > c.Evap.MinExp) {
		return fmt.Errorf("evap.max_exp (%g) must exceed evap.min_exp (%g)", c.Evap.MaxExp, c.Evap.MinExp)
	}

	if err := logging.ValidateLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	return nil
}

// Params converts the echo section to train.Params. ReflectionMass is not
// applied here; see [EchoConfig.ResolveParams].
func (e EchoConfig) Params() train.Params {
	return train.Params{
		RingdownPeak:      e.RingdownPeak,
		RingdownSigma:     e.RingdownSigma,
		RingdownAmplitude: e.RingdownAmplitude,
		EchoDelay:         e.EchoDelay,
		EchoCount:         e.EchoCount,
		EchoAmplitude:     e.EchoAmplitude,
		Reflection:        e.Reflection,
		EchoSigma:         e.EchoSigma,
		CarrierHz:         e.CarrierHz,
		SampleRate:        e.SampleRate,
		WindowDivisor:     e.WindowDivisor,
	}
}

// ResolveParams returns Params with the WKB reflection applied when
// ReflectionMass is set.
func (e EchoConfig) ResolveParams() (train.Params, error) {
	p := e.Params()
	if e.ReflectionMass > 0 {
		if err := p.ReflectionFromWKB(e.ReflectionL, e.ReflectionMass); err != nil {
			return train.Params{}, err
		}
	}
	return p, nil
}

// Model converts the evap section to evap.Model.
func (e EvapConfig) Model() evap.Model {
	return evap.Model{AlphaH: e.AlphaH, PlanckMass: e.PlanckMass, K: e.K}
}
