package wkb

import (
	"errors"
	"math"
)

// Errors returned by the potential, peak and reflection functions.
var (
	ErrInvalidMultipole   = errors.New("wkb: multipole l must be >= 2")
	ErrInvalidMass        = errors.New("wkb: mass must be finite and positive")
	ErrInvalidRadius      = errors.New("wkb: radius must be finite and positive")
	ErrNonFiniteFrequency = errors.New("wkb: frequency must be finite")
	ErrNoConvergence      = errors.New("wkb: peak search did not converge")
)

func validateMultipole(l int) error {
	if l < 2 {
		return ErrInvalidMultipole
	}
	return nil
}

func validateMass(m float64) error {
	if !(m > 0) || math.IsInf(m, 0) {
		return ErrInvalidMass
	}
	return nil
}

func validateRadius(r float64) error {
	if !(r > 0) || math.IsInf(r, 0) {
		return ErrInvalidRadius
	}
	return nil
}

func validateBarrier(l int, m float64) error {
	if err := validateMultipole(l); err != nil {
		return err
	}
	return validateMass(m)
}
