// Package evap compares black-hole evaporation lifetimes under standard
// Hawking radiation with evaporation that halts at a Planck-mass remnant.
//
// Masses are in units of the Planck mass and times in units of the Planck
// evaporation time, so the Hawking lifetime is simply K·M³. A fraction α_H
// of the horizon degrees of freedom is frozen into the remnant, which slows
// the final stage by 1/(1-α_H):
//
//	t_remnant(M) = K/(1-α_H) · (M³ - M_P³)    for M >= M_P
package evap

import (
	"errors"
	"math"
)

// Errors returned by the evaporation model.
var (
	ErrInvalidAlpha      = errors.New("evap: alpha must be within [0, 1)")
	ErrInvalidPlanckMass = errors.New("evap: Planck mass must be positive")
	ErrInvalidScale      = errors.New("evap: lifetime scale K must be positive")
	ErrInvalidMass       = errors.New("evap: mass must be finite and non-negative")
	ErrBelowRemnant      = errors.New("evap: mass is below the remnant mass")
)

// Model holds the parameters of the two lifetime curves.
type Model struct {
	AlphaH     float64 // frozen fraction α_H
	PlanckMass float64 // remnant mass M_P
	K          float64 // Hawking lifetime scale
}

// DefaultModel returns α_H = 0.3607 with unit Planck mass and scale.
func DefaultModel() Model {
	return Model{AlphaH: 0.3607, PlanckMass: 1, K: 1}
}

// Validate checks the model parameters.
func (m Model) Validate() error {
	if !(m.AlphaH >= 0 && m.AlphaH < 1) {
		return ErrInvalidAlpha
	}
	if !(m.PlanckMass > 0) || math.IsInf(m.PlanckMass, 0) {
		return ErrInvalidPlanckMass
	}
	if !(m.K > 0) || math.IsInf(m.K, 0) {
		return ErrInvalidScale
	}
	return nil
}

// HawkingLifetime returns K·M³, the time to evaporate completely.
func (m Model) HawkingLifetime(mass float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if err := validateMass(mass); err != nil {
		return 0, err
	}
	return m.K * mass * mass * mass, nil
}

// RemnantLifetime returns the time to evaporate from mass down to the
// remnant. It is zero at the Planck mass and ErrBelowRemnant below it.
func (m Model) RemnantLifetime(mass float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if err := validateMass(mass); err != nil {
		return 0, err
	}

	switch {
	case mass < m.PlanckMass:
		return 0, ErrBelowRemnant
	case mass == m.PlanckMass:
		return 0, nil
	}

	mp3 := m.PlanckMass * m.PlanckMass * m.PlanckMass
	return m.K / (1 - m.AlphaH) * (mass*mass*mass - mp3), nil
}

// Point is one sample of both lifetime curves. Remnant is meaningful only
// when HasRemnant is set.
type Point struct {
	Mass       float64
	Hawking    float64
	Remnant    float64
	HasRemnant bool
}

// Curve evaluates both lifetimes at each mass, in order.
func (m Model) Curve(masses []float64) ([]Point, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	out := make([]Point, len(masses))
	for i, mass := range masses {
		h, err := m.HawkingLifetime(mass)
		if err != nil {
			return nil, err
		}
		out[i] = Point{Mass: mass, Hawking: h}

		r, err := m.RemnantLifetime(mass)
		switch {
		case errors.Is(err, ErrBelowRemnant):
		case err != nil:
			return nil, err
		default:
			out[i].Remnant = r
			out[i].HasRemnant = true
		}
	}
	return out, nil
}

// CoreRadius returns the radius of the frozen core, sqrt(α_H)·R_s, which
// bounds the echo cavity R_core < r < R_s from inside.
func (m Model) CoreRadius(schwarzschildRadius float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if !(schwarzschildRadius > 0) {
		return 0, ErrInvalidMass
	}
	return math.Sqrt(m.AlphaH) * schwarzschildRadius, nil
}

func validateMass(mass float64) error {
	if !(mass >= 0) || math.IsInf(mass, 0) {
		return ErrInvalidMass
	}
	return nil
}
