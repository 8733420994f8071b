package verify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testSampleRate = 48000.0
	testNumSamples = 48000

	// RMS of a unit sine is 1/sqrt(2); allow for the partial last cycle.
	rmsTolerance = 0.01
)

// TestSine_RMS verifies amplitude scaling.
func TestSine_RMS(t *testing.T) {
	signal := Sine(testNumSamples, 1000.0, 1.0, testSampleRate)
	assert.Len(t, signal, testNumSamples)
	assert.InDelta(t, 1.0/math.Sqrt2, RMS(signal), rmsTolerance)
}

// TestMultiTone_Amplitude verifies the per-tone scaling bounds the sum.
func TestMultiTone_Amplitude(t *testing.T) {
	signal := MultiTone(testNumSamples, []float64{1000, 2000, 3000}, 1.0, testSampleRate)

	peak := 0.0
	for _, v := range signal {
		peak = math.Max(peak, math.Abs(v))
	}
	assert.LessOrEqual(t, peak, 1.0+1e-9, "summed tones must stay within amp")
	assert.Greater(t, RMS(signal), 0.1, "signal should carry energy")
}

// TestMultiTone_Empty verifies the no-tones case yields silence.
func TestMultiTone_Empty(t *testing.T) {
	signal := MultiTone(100, nil, 1.0, testSampleRate)
	assert.Equal(t, 0.0, RMS(signal))
}

// TestSweep_Bounds verifies amplitude bounds over the full sweep.
func TestSweep_Bounds(t *testing.T) {
	signal := Sweep(testNumSamples, 100.0, 20000.0, 0.5, testSampleRate)
	for i, v := range signal {
		if math.Abs(v) > 0.5+1e-9 {
			t.Fatalf("sweep sample %d = %f exceeds amplitude", i, v)
		}
	}
}

// TestAliasProbe_TonesAboveHalfBand verifies the probe concentrates its
// energy above half the Nyquist frequency, where it can fold at 2x pitch.
func TestAliasProbe_TonesAboveHalfBand(t *testing.T) {
	signal := AliasProbe(testNumSamples, testSampleRate)
	psd := WelchPSD(signal, testSampleRate, DefaultSegmentSize)

	nyquist := testSampleRate / 2.0
	upper := psd.BandEnergy(nyquist*0.5, nyquist)
	lower := psd.BandEnergy(0, nyquist*0.5)
	assert.Greater(t, upper, lower*100,
		"probe energy should sit in the upper half band")
}

// TestRMS_Empty verifies the degenerate case.
func TestRMS_Empty(t *testing.T) {
	assert.Equal(t, 0.0, RMS(nil))
}
