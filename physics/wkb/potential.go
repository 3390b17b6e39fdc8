package wkb

// angular returns l(l+1), computed in floating point so large l cannot
// wrap around int.
func angular(l int) float64 {
	lf := float64(l)
	return lf * (lf + 1)
}

// Potential evaluates the axial Regge–Wheeler potential
//
//	V(r) = (1 - 2M/r) (l(l+1)/r² - 6M/r³)
//
// at radius r for multipole l and mass m, both in geometrized units.
func Potential(r float64, l int, m float64) (float64, error) {
	if err := validatePoint(r, l, m); err != nil {
		return 0, err
	}
	return potential(r, angular(l), m), nil
}

// PotentialDerivative returns dV/dr at radius r.
func PotentialDerivative(r float64, l int, m float64) (float64, error) {
	if err := validatePoint(r, l, m); err != nil {
		return 0, err
	}
	return potentialDerivative(r, angular(l), m), nil
}

// PotentialSecondDerivative returns d²V/dr² at radius r.
func PotentialSecondDerivative(r float64, l int, m float64) (float64, error) {
	if err := validatePoint(r, l, m); err != nil {
		return 0, err
	}
	return potentialSecondDerivative(r, angular(l), m), nil
}

func validatePoint(r float64, l int, m float64) error {
	if err := validateBarrier(l, m); err != nil {
		return err
	}
	return validateRadius(r)
}

func potential(r, ll, m float64) float64 {
	f := 1 - 2*m/r
	return f * (ll/(r*r) - 6*m/(r*r*r))
}

// Expanded in powers of 1/r the potential is
//
//	V = L r⁻² - (6M + 2ML) r⁻³ + 12M² r⁻⁴
//
// which the derivatives below differentiate term by term.

func potentialDerivative(r, ll, m float64) float64 {
	inv := 1 / r
	inv2 := inv * inv
	inv3 := inv2 * inv
	return -2*ll*inv3 + 3*(6*m+2*m*ll)*inv3*inv - 48*m*m*inv3*inv2
}

func potentialSecondDerivative(r, ll, m float64) float64 {
	inv := 1 / r
	inv2 := inv * inv
	inv4 := inv2 * inv2
	return 6*ll*inv4 - 12*(6*m+2*m*ll)*inv4*inv + 240*m*m*inv4*inv2
}
