// Package testutil holds assertions and deterministic signals shared by the
// package tests.
package testutil

import "math"

// DeterministicSine generates a sine wave sampled at sampleRate.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}
