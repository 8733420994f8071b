package filter

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// Memory accounting
	bytesPerFloat64 = 8 // In-process coefficient storage
	bytesPerFloat32 = 4 // Emitted artifact literals (float)

	// Frequency response estimation
	minResponseFFTSize = 1024 // Zero-padded FFT length lower bound
	responsePadFactor  = 16   // FFT length as a multiple of the tap count

	// Floor to keep log10 defined for an ideal (zero) stopband
	magnitudeFloor = 1e-30

	// dB conversion for magnitude ratios
	dbPerDecade = 20.0
)

// QualityReport summarizes an advisory validation pass over one table.
//
// The report never blocks artifact emission; it exists so the operator can
// eyeball a generation run before committing the artifact.
type QualityReport struct {
	Bandwidth float64
	Beta      float64
	NumPhases int
	NumTaps   int

	// DCGainMin and DCGainMax bound the per-phase coefficient sums.
	// Both should be within 1e-6 of 1.0 for a healthy table.
	DCGainMin float64
	DCGainMax float64

	// SymmetryError is the maximum |c[i] - c[T-1-i]| over phase 0.
	// Phase 0 has zero fractional offset, so its kernel is a centered
	// linear-phase design and should be symmetric to rounding error.
	SymmetryError float64

	// StopbandDB estimates the worst stopband rejection of the phase-0
	// kernel in dB (negative; lower is better rejection).
	StopbandDB float64

	// TableBytes is the in-process footprint (float64 coefficients).
	TableBytes int

	// ArtifactBytes is the consumer-side footprint (float literals).
	ArtifactBytes int

	// MACsPerSample is the per-output-sample multiply-accumulate cost.
	MACsPerSample int

	// DegeneratePhases carries over the builder's zero-sum phase list.
	DegeneratePhases []int
}

// AnalyzeTable computes the advisory quality metrics for a built table.
func AnalyzeTable(bt *BandwidthTable) QualityReport {
	report := QualityReport{
		Bandwidth:        bt.Bandwidth,
		Beta:             bt.Beta,
		NumPhases:        bt.NumPhases(),
		NumTaps:          bt.NumTaps(),
		MACsPerSample:    bt.NumTaps(),
		TableBytes:       bt.NumPhases() * bt.NumTaps() * bytesPerFloat64,
		ArtifactBytes:    bt.NumPhases() * bt.NumTaps() * bytesPerFloat32,
		DegeneratePhases: bt.DegeneratePhases,
	}

	if bt.NumPhases() == 0 || bt.NumTaps() == 0 {
		return report
	}

	// DC gain range across phases
	report.DCGainMin = math.Inf(1)
	report.DCGainMax = math.Inf(-1)
	for _, phase := range bt.Phases {
		var sum float64
		for _, c := range phase {
			sum += c
		}
		report.DCGainMin = math.Min(report.DCGainMin, sum)
		report.DCGainMax = math.Max(report.DCGainMax, sum)
	}

	// Phase-0 symmetry
	phase0 := bt.Phases[0]
	numTaps := len(phase0)
	for i := 0; i < numTaps/2; i++ {
		diff := math.Abs(phase0[i] - phase0[numTaps-1-i])
		report.SymmetryError = math.Max(report.SymmetryError, diff)
	}

	report.StopbandDB = stopbandEstimate(phase0, bt.Bandwidth)

	return report
}

// stopbandEstimate measures the worst sidelobe magnitude of a kernel
// relative to its DC response, in dB.
//
// The kernel is zero-padded and transformed with a real FFT. A short
// kernel has a wide transition band, so instead of assuming a fixed
// stopband edge, the scan starts at the cutoff (bandwidth/2 cycles per
// sample), descends the main-lobe skirt to its first local minimum, and
// reports the largest magnitude beyond it. That is the classic worst-
// sidelobe measure and tracks the Kaiser β attenuation trade-off.
func stopbandEstimate(kernel []float64, bandwidth float64) float64 {
	fftSize := minResponseFFTSize
	for fftSize < responsePadFactor*len(kernel) {
		fftSize *= 2
	}

	padded := make([]float64, fftSize)
	copy(padded, kernel)

	fft := fourier.NewFFT(fftSize)
	spectrum := fft.Coefficients(nil, padded)

	magnitudes := make([]float64, len(spectrum))
	for k, c := range spectrum {
		magnitudes[k] = cmplx.Abs(c)
	}

	dcMagnitude := magnitudes[0]
	if dcMagnitude < magnitudeFloor {
		dcMagnitude = magnitudeFloor
	}

	// Normalized cutoff in cycles/sample; bandwidth is relative to Nyquist (0.5).
	cutoff := bandwidth / 2.0
	start := int(cutoff * float64(fftSize))
	if start >= len(magnitudes) {
		start = len(magnitudes) - 1
	}

	// Descend the main-lobe skirt to its first local minimum.
	for start+1 < len(magnitudes) && magnitudes[start+1] <= magnitudes[start] {
		start++
	}

	worst := magnitudeFloor
	for _, m := range magnitudes[start:] {
		worst = math.Max(worst, m)
	}

	return dbPerDecade * math.Log10(worst/dcMagnitude)
}
