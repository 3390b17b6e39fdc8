// Package numeric provides the sampling grids and float helpers shared by the
// physics and echo packages.
package numeric

import "math"

// Linspace returns n evenly spaced samples over the closed interval
// [start, stop]. The last sample is exactly stop. n <= 0 yields an empty
// slice and n == 1 yields [start].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop

	return out
}

// Logspace returns n samples spaced evenly on a log10 scale from 10^startExp
// to 10^stopExp inclusive.
func Logspace(startExp, stopExp float64, n int) []float64 {
	exps := Linspace(startExp, stopExp, n)
	for i, e := range exps {
		exps[i] = math.Pow(10, e)
	}
	return exps
}

// Arange returns start, start+step, ... for values strictly below stop.
// A non-positive step or stop <= start yields an empty slice.
func Arange(start, stop, step float64) []float64 {
	if !(step > 0) || !(stop > start) {
		return []float64{}
	}

	n := int(math.Ceil((stop - start) / step))
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// NextPowerOf2 returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
