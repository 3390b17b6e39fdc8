package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-echo/internal/numeric"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by spectrum functions.
var (
	ErrEmptySignal       = errors.New("spectrum: signal is empty")
	ErrInvalidSampleRate = errors.New("spectrum: sample rate must be positive")
	ErrInvalidSpacing    = errors.New("spectrum: echo delay must be positive")
	ErrInvalidBand       = errors.New("spectrum: band must satisfy 0 <= fmin <= fmax")
)

// partsPool recycles the split real/imaginary buffers fed to vecmath.
var partsPool = sync.Pool{
	New: func() any { return new([]float64) },
}

// Spectrum is a one-sided amplitude spectrum from DC to Nyquist.
type Spectrum struct {
	Freqs     []float64 // Hz, ascending
	Magnitude []float64 // |X[k]| / N
	FFTSize   int
}

// Analyze computes the one-sided amplitude spectrum of a real signal.
//
// The signal is zero-padded to the next power of two; magnitudes are
// normalised by the unpadded length so a longer pad only refines the
// frequency grid.
func Analyze(signal []float64, sampleRate float64) (Spectrum, error) {
	if len(signal) == 0 {
		return Spectrum{}, ErrEmptySignal
	}
	if !(sampleRate > 0) {
		return Spectrum{}, ErrInvalidSampleRate
	}

	fftSize := max(numeric.NextPowerOf2(len(signal)), 2)

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	bins := fftSize/2 + 1
	parts := partsPool.Get().(*[]float64)
	if cap(*parts) < 2*bins {
		*parts = make([]float64, 2*bins)
	}
	re, im := (*parts)[:bins], (*parts)[bins:2*bins]
	for i, c := range out[:bins] {
		re[i], im[i] = real(c), imag(c)
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	partsPool.Put(parts)
	vecmath.ScaleBlockInPlace(mag, 1/float64(len(signal)))

	binHz := sampleRate / float64(fftSize)
	freqs := make([]float64, bins)
	for i := range freqs {
		freqs[i] = float64(i) * binHz
	}

	return Spectrum{Freqs: freqs, Magnitude: mag, FFTSize: fftSize}, nil
}

// Band returns the bins whose frequency lies in [fmin, fmax]. The returned
// slices share memory with s.
func (s Spectrum) Band(fmin, fmax float64) (Spectrum, error) {
	if !(fmin >= 0) || !(fmax >= fmin) {
		return Spectrum{}, ErrInvalidBand
	}

	lo := sort.SearchFloat64s(s.Freqs, fmin)
	hi := sort.Search(len(s.Freqs), func(k int) bool { return s.Freqs[k] > fmax })

	return Spectrum{
		Freqs:     s.Freqs[lo:hi],
		Magnitude: s.Magnitude[lo:hi],
		FFTSize:   s.FFTSize,
	}, nil
}

// PeakFrequency returns the frequency of the largest bin, or NaN when empty.
func (s Spectrum) PeakFrequency() float64 {
	if len(s.Magnitude) == 0 {
		return math.NaN()
	}
	best := 0
	for i, v := range s.Magnitude {
		if v > s.Magnitude[best] {
			best = i
		}
	}
	return s.Freqs[best]
}

// NearestBin returns the index of the bin closest to freqHz.
func (s Spectrum) NearestBin(freqHz float64) int {
	if len(s.Freqs) == 0 {
		return -1
	}
	i := sort.SearchFloat64s(s.Freqs, freqHz)
	switch {
	case i == 0:
		return 0
	case i == len(s.Freqs):
		return i - 1
	case freqHz-s.Freqs[i-1] <= s.Freqs[i]-freqHz:
		return i - 1
	default:
		return i
	}
}

// CombSpacing returns the line spacing 1/Δt of an echo train.
func CombSpacing(echoDelay float64) (float64, error) {
	if !(echoDelay > 0) {
		return 0, ErrInvalidSpacing
	}
	return 1 / echoDelay, nil
}

// CombLines predicts the comb peaks around carrierHz for echoes spaced by
// echoDelay: the line nearest the carrier plus span lines on either side,
// keeping only those within [fmin, fmax].
func CombLines(carrierHz, echoDelay, fmin, fmax float64, span int) ([]float64, error) {
	spacing, err := CombSpacing(echoDelay)
	if err != nil {
		return nil, err
	}
	if !(fmax >= fmin) {
		return nil, ErrInvalidBand
	}

	central := math.Round(carrierHz/spacing) * spacing

	lines := make([]float64, 0, 2*span+1)
	for k := -span; k <= span; k++ {
		f := central + float64(k)*spacing
		if f >= fmin && f <= fmax {
			lines = append(lines, f)
		}
	}
	return lines, nil
}

// CarrierCombLines is [CombLines] anchored on the bin of s nearest the
// carrier rather than on the carrier itself.
func (s Spectrum) CarrierCombLines(carrierHz, echoDelay, fmin, fmax float64, span int) ([]float64, error) {
	if k := s.NearestBin(carrierHz); k >= 0 {
		carrierHz = s.Freqs[k]
	}
	return CombLines(carrierHz, echoDelay, fmin, fmax, span)
}

// DisplayBand returns the band the echo-spectrum figure shows: two comb
// spacings either side of the carrier, clipped at DC.
func DisplayBand(carrierHz, echoDelay float64) (fmin, fmax float64, err error) {
	spacing, err := CombSpacing(echoDelay)
	if err != nil {
		return 0, 0, err
	}
	return math.Max(0, carrierHz-2*spacing), carrierHz + 2*spacing, nil
}
