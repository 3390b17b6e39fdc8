package wkb

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-echo/internal/numeric"
	"github.com/cwbudde/algo-echo/physics/units"
	"github.com/cwbudde/algo-vecmath"
)

// Query describes a reflection-coefficient evaluation in physical units.
type Query struct {
	Frequencies []float64 // Hz
	L           int       // multipole, >= 2
	Mass        float64   // solar masses, > 0
}

// Result pairs each queried frequency with its reflection coefficient.
// Both slices have the same length and order as the query.
type Result struct {
	Frequencies []float64
	R           []float64
}

// Reflection returns the WKB reflection coefficient for a single frequency
// in Hz, multipole l and a mass in solar masses.
func Reflection(freqHz float64, l int, solarMasses float64) (float64, error) {
	peak, err := peakForSolarMass(l, solarMasses)
	if err != nil {
		return 0, err
	}
	if !numeric.IsFinite(freqHz) {
		return 0, ErrNonFiniteFrequency
	}
	return logistic(units.HzToGeometrized(freqHz), peak), nil
}

// ReflectionCurve evaluates [Reflection] for every frequency in freqsHz and
// returns a new slice in the same order.
func ReflectionCurve(freqsHz []float64, l int, solarMasses float64) ([]float64, error) {
	peak, err := peakForSolarMass(l, solarMasses)
	if err != nil {
		return nil, err
	}
	for i, f := range freqsHz {
		if !numeric.IsFinite(f) {
			return nil, fmt.Errorf("index %d: %w", i, ErrNonFiniteFrequency)
		}
	}

	out := make([]float64, len(freqsHz))
	if len(out) == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, freqsHz, units.AngularScale)
	for i, omega := range out {
		out[i] = logistic(omega, peak)
	}
	return out, nil
}

// Evaluate runs q and returns the frequencies alongside their coefficients.
func Evaluate(q Query) (Result, error) {
	r, err := ReflectionCurve(q.Frequencies, q.L, q.Mass)
	if err != nil {
		return Result{}, err
	}

	freqs := make([]float64, len(q.Frequencies))
	copy(freqs, q.Frequencies)

	return Result{Frequencies: freqs, R: r}, nil
}

// PeakForSolarMass returns the closed-form barrier peak for a body of the
// given mass in solar masses. Radius, Omega and Kappa are geometrized with
// the mass expressed in seconds.
func PeakForSolarMass(l int, solarMasses float64) (BarrierPeak, error) {
	return peakForSolarMass(l, solarMasses)
}

func peakForSolarMass(l int, solarMasses float64) (BarrierPeak, error) {
	if err := validateBarrier(l, solarMasses); err != nil {
		return BarrierPeak{}, err
	}
	return LocatePeak(l, units.SolarMassesToSeconds(solarMasses))
}

// logistic maps a geometrized angular frequency to 1/(1+exp(-2π(ω-ω_p)/κ)).
// Overflow of the exponential saturates the result to 0 or 1.
func logistic(omega float64, peak BarrierPeak) float64 {
	exponent := -2 * math.Pi * (omega - peak.Omega) / peak.Kappa
	return 1 / (1 + math.Exp(exponent))
}
