// Package units holds the SI constants and the conversions between physical
// and geometrized (G = c = 1) units used by the barrier and reflection code.
//
// Geometrized masses are expressed in seconds: a mass m in kilograms becomes
// G·m/c³. One solar mass is roughly 4.93 µs.
package units

import "math"

// Physical constants in SI units.
const (
	G         = 6.67430e-11  // gravitational constant, m³ kg⁻¹ s⁻²
	C         = 2.99792458e8 // speed of light, m/s
	SolarMass = 1.98847e30   // kg
)

// SolarMassSeconds is one solar mass in geometrized time units (G·M☉/c³).
const SolarMassSeconds = G * SolarMass / (C * C * C)

// AngularScale converts Hz to the geometrized angular frequency used by the
// reflection formula: ω = AngularScale·f = 2π·f·G·M☉/c³.
//
// The scale is one solar mass regardless of the body's mass.
const AngularScale = 2 * math.Pi * SolarMassSeconds

// SolarMassesToSeconds converts a mass in solar masses to geometrized seconds.
func SolarMassesToSeconds(solarMasses float64) float64 {
	return SolarMassSeconds * solarMasses
}

// HzToGeometrized maps a frequency in Hz to its geometrized angular
// frequency (see [AngularScale]).
func HzToGeometrized(freqHz float64) float64 {
	return freqHz * AngularScale
}

// GeometrizedToHz is the inverse of [HzToGeometrized].
func GeometrizedToHz(omega float64) float64 {
	return omega / AngularScale
}

// SchwarzschildRadius returns 2GM/c² in metres for a mass in solar masses.
func SchwarzschildRadius(solarMasses float64) float64 {
	return 2 * G * SolarMass * solarMasses / (C * C)
}
