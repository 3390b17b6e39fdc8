package wkb

import (
	"math"

	"github.com/cwbudde/algo-echo/internal/numeric"
)

// BarrierPeak characterises the maximum of the axial potential.
type BarrierPeak struct {
	Radius float64 // r_peak, geometrized length
	Omega  float64 // ω_peak, geometrized angular frequency
	Kappa  float64 // curvature coefficient sqrt(|V''|/2), >= 0
}

// LocatePeak returns the barrier peak for multipole l and geometrized mass m
// using the closed-form result for this potential family:
//
//	r_peak = 3M
//	ω_peak = sqrt(l(l+1) / 27M²)
//	V''    = (l(l+1) - 2) / 81M⁴
//	κ      = sqrt(|V''| / 2)
//
// The mass factors are divided out last so that M⁴ never forms. A mass so
// small that ω or κ still overflows is reported as [ErrInvalidMass].
func LocatePeak(l int, m float64) (BarrierPeak, error) {
	if err := validateBarrier(l, m); err != nil {
		return BarrierPeak{}, err
	}

	ll := angular(l)
	p := BarrierPeak{
		Radius: 3 * m,
		Omega:  math.Sqrt(ll/27) / m,
		Kappa:  math.Sqrt(0.5*math.Abs(ll-2)/81) / m / m,
	}
	if !numeric.IsFinite(p.Omega) || !numeric.IsFinite(p.Kappa) || p.Kappa == 0 {
		return BarrierPeak{}, ErrInvalidMass
	}
	return p, nil
}

const (
	newtonMaxIter = 64
	newtonRelTol  = 1e-13
)

// LocatePeakNewton finds the maximum of the full potential numerically by
// Newton iteration on dV/dr = 0, seeded at 3M. Height and curvature are
// evaluated on the potential at the converged radius.
//
// This is a cross-check for [LocatePeak], not a replacement: the numeric
// maximum lies slightly outside 3M for small l and approaches it as l grows.
func LocatePeakNewton(l int, m float64) (BarrierPeak, error) {
	if err := validateBarrier(l, m); err != nil {
		return BarrierPeak{}, err
	}

	return newtonPeak(angular(l), m, 3*m, newtonMaxIter)
}

// newtonPeak iterates from r0 for at most maxIter steps.
func newtonPeak(ll, m, r0 float64, maxIter int) (BarrierPeak, error) {
	r := r0
	for range maxIter {
		d1 := potentialDerivative(r, ll, m)
		d2 := potentialSecondDerivative(r, ll, m)
		if d2 == 0 || math.IsNaN(d2) {
			return BarrierPeak{}, ErrNoConvergence
		}

		step := d1 / d2
		r -= step
		if !(r > 2*m) {
			return BarrierPeak{}, ErrNoConvergence
		}

		if math.Abs(step) <= newtonRelTol*r {
			return BarrierPeak{
				Radius: r,
				Omega:  math.Sqrt(potential(r, ll, m)),
				Kappa:  math.Sqrt(0.5 * math.Abs(potentialSecondDerivative(r, ll, m))),
			}, nil
		}
	}

	return BarrierPeak{}, ErrNoConvergence
}
