package verify

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// DefaultSegmentSize is the Welch segment length (power of 2).
	DefaultSegmentSize = 4096

	// Segments overlap by half their length.
	overlapDivisor = 2

	// Floor for log conversion of empty bands.
	energyFloor = 1e-30

	// dB conversion for power ratios.
	dbPerPowerDecade = 10.0
)

// PSD is a one-sided power spectral density estimate.
type PSD struct {
	// Freqs holds the bin center frequencies in Hz.
	Freqs []float64

	// Power holds the mean power per bin across Welch segments.
	Power []float64

	// SampleRate the estimate was computed at.
	SampleRate float64
}

// WelchPSD estimates the power spectral density by averaging windowed,
// half-overlapping FFT segments (Welch's method with a Hann window).
//
// Signals shorter than segmentSize are analyzed as a single zero-padded
// segment. A non-positive segmentSize uses DefaultSegmentSize.
func WelchPSD(signal []float64, sampleRate float64, segmentSize int) PSD {
	if segmentSize <= 0 {
		segmentSize = DefaultSegmentSize
	}
	if len(signal) < segmentSize {
		padded := make([]float64, segmentSize)
		copy(padded, signal)
		signal = padded
	}

	window := hann(segmentSize)
	fft := fourier.NewFFT(segmentSize)
	numBins := segmentSize/2 + 1

	power := make([]float64, numBins)
	segment := make([]float64, segmentSize)
	step := segmentSize / overlapDivisor

	numSegments := 0
	for start := 0; start+segmentSize <= len(signal); start += step {
		for i := range segment {
			segment[i] = signal[start+i] * window[i]
		}
		spectrum := fft.Coefficients(nil, segment)
		for k, c := range spectrum {
			re, im := real(c), imag(c)
			power[k] += re*re + im*im
		}
		numSegments++
	}

	for k := range power {
		power[k] /= float64(numSegments)
	}

	psd := PSD{
		Freqs:      make([]float64, numBins),
		Power:      power,
		SampleRate: sampleRate,
	}
	for k := range psd.Freqs {
		psd.Freqs[k] = float64(k) * sampleRate / float64(segmentSize)
	}
	return psd
}

// BandEnergy sums the PSD power between lowHz and highHz (inclusive).
func (p *PSD) BandEnergy(lowHz, highHz float64) float64 {
	var sum float64
	for k, f := range p.Freqs {
		if f >= lowHz && f <= highHz {
			sum += p.Power[k]
		}
	}
	return sum
}

// TotalEnergy sums the PSD power across all bins.
func (p *PSD) TotalEnergy() float64 {
	var sum float64
	for _, v := range p.Power {
		sum += v
	}
	return sum
}

// BandRatioDB returns the energy of [lowHz, highHz] relative to the total,
// in dB. Clean anti-aliasing shows a strongly negative ratio for the band
// where folded images would land.
func (p *PSD) BandRatioDB(lowHz, highHz float64) float64 {
	band := p.BandEnergy(lowHz, highHz)
	total := p.TotalEnergy()
	if band < energyFloor {
		band = energyFloor
	}
	if total < energyFloor {
		total = energyFloor
	}
	return dbPerPowerDecade * math.Log10(band/total)
}

// PeakFrequency returns the frequency of the strongest bin.
func (p *PSD) PeakFrequency() float64 {
	peak := 0
	for k := range p.Power {
		if p.Power[k] > p.Power[peak] {
			peak = k
		}
	}
	return p.Freqs[peak]
}

// hann computes a periodic Hann window of the given length.
func hann(length int) []float64 {
	window := make([]float64, length)
	for i := range window {
		window[i] = 0.5 * (1.0 - math.Cos(twoPi*float64(i)/float64(length)))
	}
	return window
}
