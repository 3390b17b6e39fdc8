// Package spectrum computes the amplitude spectrum of an echo train and the
// comb of peaks its periodic echoes imprint on it.
//
// A train of pulses repeating every Δt produces spectral lines spaced by
// 1/Δt under the envelope of a single pulse's spectrum. [Analyze] returns the
// one-sided amplitude spectrum; [CombLines] predicts where the comb peaks
// fall around the carrier.
package spectrum
