// Package verify provides the validation collaborators for generated
// filter banks: test-signal synthesis, a reference table consumer, and
// spectral metrics that confirm anti-aliasing behavior empirically.
//
// Nothing in this package participates in table generation; it exists so
// a generation run can be checked end to end through the same access
// pattern the runtime consumer uses.
package verify

import (
	"math"
)

const (
	// DefaultSampleRate is the nominal rate of the runtime consumer.
	DefaultSampleRate = 48000

	twoPi = 2.0 * math.Pi
)

// Sine synthesizes a sine wave at the given frequency and amplitude.
func Sine(numSamples int, freq, amp, sampleRate float64) []float64 {
	out := make([]float64, numSamples)
	omega := twoPi * freq / sampleRate
	for i := range out {
		out[i] = amp * math.Sin(omega*float64(i))
	}
	return out
}

// MultiTone synthesizes a sum of equal-amplitude sines, scaled so the
// total amplitude is amp.
func MultiTone(numSamples int, freqs []float64, amp, sampleRate float64) []float64 {
	out := make([]float64, numSamples)
	if len(freqs) == 0 {
		return out
	}
	scale := amp / float64(len(freqs))
	for _, freq := range freqs {
		omega := twoPi * freq / sampleRate
		for i := range out {
			out[i] += scale * math.Sin(omega*float64(i))
		}
	}
	return out
}

// Sweep synthesizes a linear frequency sweep from startFreq to endFreq.
func Sweep(numSamples int, startFreq, endFreq, amp, sampleRate float64) []float64 {
	out := make([]float64, numSamples)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(numSamples)
		freq := startFreq + t*(endFreq-startFreq)
		phase += twoPi * freq / sampleRate
		out[i] = amp * math.Sin(phase)
	}
	return out
}

// AliasProbe synthesizes the standard aliasing test input: tones in the
// top quarter-octave below Nyquist. Played back at 2x pitch they fold to
// 0.5, 0.3 and 0.1 of the output Nyquist unless the narrower bandwidth
// table suppresses them. The tones sit well past the half-band cutoff so
// none of them hides in the transition band of a short kernel.
func AliasProbe(numSamples int, sampleRate float64) []float64 {
	nyquist := sampleRate / 2.0
	freqs := []float64{
		nyquist * 0.75,
		nyquist * 0.85,
		nyquist * 0.95,
	}
	return MultiTone(numSamples, freqs, 1.0, sampleRate)
}

// RMS returns the root-mean-square level of a signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	var sum float64
	for _, v := range signal {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(signal)))
}
