// Package train synthesises a gravitational-wave ringdown followed by a train
// of echoes, as produced by a reflecting cavity between a compact core and
// the potential barrier.
//
// Every pulse is a Gaussian-windowed sinusoid
//
//	h(t) = A · exp(-(t-tₚ)²/(2σ²)) · sin(2πf(t-tₚ)) · exp(-(t-tₚ)²/(kσ²))
//
// where the second Gaussian (divisor k) tightens the pulse in time. Echo n
// (0-based) arrives at tₚ + (n+1)·Δt with amplitude A₀·Rⁿ.
//
// # Usage
//
//	p := train.DefaultParams()
//	p.Reflection, _ = wkb.Reflection(p.CarrierHz, 2, 30)
//	w, err := p.Synthesize()
package train
