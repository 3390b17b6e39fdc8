// Package wkb estimates how strongly a compact object's axial potential
// barrier reflects gravitational waves of a given frequency.
//
// The estimate is semiclassical: the Regge–Wheeler barrier
//
//	V(r) = (1 - 2M/r) (l(l+1)/r² - 6M/r³)
//
// is characterised by its peak (radius, height expressed as an angular
// frequency) and its curvature there, and the reflection coefficient is the
// logistic function
//
//	R(ω) = 1 / (1 + exp(-2π (ω - ω_peak) / κ))
//
// All potential and peak routines work in geometrized units (G = c = 1, mass
// in seconds). [Reflection] and [Evaluate] accept physical inputs: frequencies
// in Hz and masses in solar masses.
//
// # Sign convention
//
// R rises with frequency: R → 1 well above ω_peak and R → 0 well below it.
// This follows the source formula and is kept as is.
//
// # Usage
//
//	r, err := wkb.Reflection(150, 2, 30)
//
//	res, err := wkb.Evaluate(wkb.Query{
//	    Frequencies: freqs, L: 2, Mass: 30,
//	})
package wkb
