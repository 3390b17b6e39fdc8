package train

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-echo/internal/numeric"
	"github.com/cwbudde/algo-echo/physics/wkb"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by Params validation and synthesis.
var (
	ErrInvalidSampleRate = errors.New("train: sample rate must be positive")
	ErrInvalidWidth      = errors.New("train: pulse width must be positive")
	ErrInvalidDelay      = errors.New("train: echo delay must be positive")
	ErrInvalidEchoCount  = errors.New("train: echo count must be >= 0")
	ErrInvalidReflection = errors.New("train: reflection must be within [0, 1]")
	ErrInvalidDivisor    = errors.New("train: window divisor must be positive")
	ErrInvalidSpan       = errors.New("train: time span must be increasing")
)

// Params describes a ringdown pulse and its echo train. Times are in
// seconds and frequencies in Hz.
type Params struct {
	RingdownPeak      float64 // time of the main ringdown peak
	RingdownSigma     float64 // ringdown envelope width
	RingdownAmplitude float64
	EchoDelay         float64 // Δt between successive echoes
	EchoCount         int
	EchoAmplitude     float64 // amplitude of the first echo
	Reflection        float64 // amplitude ratio between successive echoes
	EchoSigma         float64 // echo envelope width
	CarrierHz         float64
	SampleRate        float64
	WindowDivisor     float64 // k in the tightening window exp(-(t-tₚ)²/(kσ²))
}

// DefaultParams returns the echo-train parameters used for the echo figures:
// a 200 Hz carrier, 1.809 ms echo delay and four echoes decaying by 0.7.
func DefaultParams() Params {
	return Params{
		RingdownPeak:      0.001,
		RingdownSigma:     0.0003,
		RingdownAmplitude: 1.0,
		EchoDelay:         0.001809,
		EchoCount:         4,
		EchoAmplitude:     0.4,
		Reflection:        0.7,
		EchoSigma:         0.0002,
		CarrierHz:         200,
		SampleRate:        20000,
		WindowDivisor:     8,
	}
}

// Validate checks that the parameters describe a synthesisable train.
func (p *Params) Validate() error {
	if !(p.SampleRate > 0) {
		return ErrInvalidSampleRate
	}

	if !(p.RingdownSigma > 0) || !(p.EchoSigma > 0) {
		return ErrInvalidWidth
	}

	if !(p.EchoDelay > 0) {
		return ErrInvalidDelay
	}

	if p.EchoCount < 0 {
		return ErrInvalidEchoCount
	}

	if !(p.Reflection >= 0 && p.Reflection <= 1) {
		return ErrInvalidReflection
	}

	if !(p.WindowDivisor > 0) {
		return ErrInvalidDivisor
	}

	return nil
}

// ReflectionFromWKB sets Reflection to the WKB reflection coefficient of the
// carrier frequency for multipole l and a mass in solar masses.
func (p *Params) ReflectionFromWKB(l int, solarMasses float64) error {
	r, err := wkb.Reflection(p.CarrierHz, l, solarMasses)
	if err != nil {
		return fmt.Errorf("train: echo reflection: %w", err)
	}
	p.Reflection = r
	return nil
}

// EchoTimes returns the arrival time of each echo.
func (p *Params) EchoTimes() []float64 {
	out := make([]float64, max(p.EchoCount, 0))
	for n := range out {
		out[n] = p.RingdownPeak + float64(n+1)*p.EchoDelay
	}
	return out
}

// EchoAmplitudes returns the peak envelope amplitude of each echo.
func (p *Params) EchoAmplitudes() []float64 {
	out := make([]float64, max(p.EchoCount, 0))
	for n := range out {
		out[n] = p.EchoAmplitude * math.Pow(p.Reflection, float64(n))
	}
	return out
}

// Duration returns the default synthesis span: two echo delays past the
// last echo.
func (p *Params) Duration() float64 {
	return p.RingdownPeak + float64(p.EchoCount+2)*p.EchoDelay
}

// Waveform is a sampled strain time series.
type Waveform struct {
	Time       []float64 // seconds
	Strain     []float64 // arbitrary units
	SampleRate float64
}

// Synthesize samples the train on [0, Duration()) at SampleRate.
func (p *Params) Synthesize() (Waveform, error) {
	if err := p.Validate(); err != nil {
		return Waveform{}, err
	}
	return p.synthesize(numeric.Arange(0, p.Duration(), 1/p.SampleRate))
}

// SynthesizeSpan samples the train at n evenly spaced times over
// [start, stop], both inclusive.
func (p *Params) SynthesizeSpan(start, stop float64, n int) (Waveform, error) {
	if err := p.Validate(); err != nil {
		return Waveform{}, err
	}
	if !(stop > start) || n < 2 {
		return Waveform{}, ErrInvalidSpan
	}

	w, err := p.synthesize(numeric.Linspace(start, stop, n))
	if err != nil {
		return Waveform{}, err
	}
	w.SampleRate = float64(n-1) / (stop - start)
	return w, nil
}

// Time-domain figure layout: FigureSamples points starting FigureLead seconds
// before t = 0.
const (
	FigureLead    = 0.001
	FigureSamples = 2000
)

// FigureParams returns a copy of p shaped for the time-domain figure: a
// wider window (divisor 6) and a first echo at a quarter of the ringdown
// amplitude.
func (p *Params) FigureParams() Params {
	q := *p
	q.WindowDivisor = 6
	q.EchoAmplitude = 0.25 * p.RingdownAmplitude
	return q
}

// SynthesizeFigure samples [FigureParams] on FigureSamples points from
// -FigureLead to half an echo delay past the last echo.
func (p *Params) SynthesizeFigure() (Waveform, error) {
	q := p.FigureParams()
	stop := q.RingdownPeak + (float64(q.EchoCount)+0.5)*q.EchoDelay
	return q.SynthesizeSpan(-FigureLead, stop, FigureSamples)
}

func (p *Params) synthesize(times []float64) (Waveform, error) {
	strain := Wavelet(times, p.RingdownPeak, p.RingdownAmplitude, p.RingdownSigma, p.CarrierHz, p.WindowDivisor)

	pulse := make([]float64, len(times))
	echoTimes := p.EchoTimes()
	amps := p.EchoAmplitudes()
	for i, tp := range echoTimes {
		WaveletInto(pulse, times, tp, amps[i], p.EchoSigma, p.CarrierHz, p.WindowDivisor)
		vecmath.AddBlockInPlace(strain, pulse)
	}

	return Waveform{Time: times, Strain: strain, SampleRate: p.SampleRate}, nil
}

// Wavelet samples a single Gaussian-windowed sinusoid at times.
func Wavelet(times []float64, tPeak, amp, sigma, freqHz, windowDivisor float64) []float64 {
	out := make([]float64, len(times))
	WaveletInto(out, times, tPeak, amp, sigma, freqHz, windowDivisor)
	return out
}

// WaveletInto is the allocation-free form of [Wavelet]. dst and times must
// have the same length.
func WaveletInto(dst, times []float64, tPeak, amp, sigma, freqHz, windowDivisor float64) {
	envDen := 2 * sigma * sigma
	winDen := windowDivisor * sigma * sigma
	w := 2 * math.Pi * freqHz
	for i, t := range times {
		d := t - tPeak
		d2 := d * d
		dst[i] = amp * math.Exp(-d2/envDen) * math.Sin(w*d) * math.Exp(-d2/winDen)
	}
}

// PeakAbs returns the largest |strain| and its index, or (0, -1) when empty.
func (w Waveform) PeakAbs() (float64, int) {
	best, idx := 0.0, -1
	for i, v := range w.Strain {
		if a := math.Abs(v); idx < 0 || a > best {
			best, idx = a, i
		}
	}
	return best, idx
}
