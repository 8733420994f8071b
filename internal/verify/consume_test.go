package verify

import (
	"testing"

	"github.com/scdeck/sinctab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	consumerPhases = 32
	consumerTaps   = 16
	consumerBeta   = 8.0

	// Unity-gain reproduction tolerance for a DC input.
	dcTolerance = 1e-6

	// Passband level tolerance for a low tone at unity pitch.
	passbandRMSTolerance = 0.05

	// Folded-band suppression the half-band table must provide over the
	// full-band table at 2x pitch, as a linear energy factor.
	aliasSuppressionFactor = 1e-3
)

func buildBank(t *testing.T, bandwidths []float64) *sinctab.FilterBank {
	t.Helper()
	bank, err := sinctab.Generate(sinctab.Params{
		NumPhases:  consumerPhases,
		NumTaps:    consumerTaps,
		Bandwidths: bandwidths,
		Beta:       consumerBeta,
	})
	require.NoError(t, err)
	return bank
}

// TestConsumer_DCUnityGain verifies a constant input is reproduced
// exactly at unity pitch: every phase kernel sums to 1.
func TestConsumer_DCUnityGain(t *testing.T) {
	bank := buildBank(t, []float64{1.0})
	consumer := NewConsumer(bank)

	input := make([]float64, 1000)
	for i := range input {
		input[i] = 1.0
	}

	output, err := consumer.Resample(input, 1.0)
	require.NoError(t, err)
	require.Len(t, output, len(input))

	for i, v := range output {
		assert.InDelta(t, 1.0, v, dcTolerance, "output[%d]", i)
	}
}

// TestConsumer_DCUnityGainFractionalPitch exercises the phase lerp path:
// a non-integer pitch ratio walks through every fractional position, and
// DC must still come through at unity.
func TestConsumer_DCUnityGainFractionalPitch(t *testing.T) {
	bank := buildBank(t, []float64{1.0})
	consumer := NewConsumer(bank)

	input := make([]float64, 1000)
	for i := range input {
		input[i] = 1.0
	}

	output, err := consumer.Resample(input, 0.73)
	require.NoError(t, err)

	for i, v := range output {
		assert.InDelta(t, 1.0, v, dcTolerance, "output[%d]", i)
	}
}

// TestConsumer_PassbandTone verifies a low tone survives unity-pitch
// replay at its original level.
func TestConsumer_PassbandTone(t *testing.T) {
	bank := buildBank(t, []float64{1.0})
	consumer := NewConsumer(bank)

	input := Sine(testNumSamples, 1000.0, 1.0, testSampleRate)
	output, err := consumer.Resample(input, 1.0)
	require.NoError(t, err)

	assert.InDelta(t, RMS(input), RMS(output), passbandRMSTolerance)
}

// TestConsumer_OutputLength verifies the length contract.
func TestConsumer_OutputLength(t *testing.T) {
	bank := buildBank(t, []float64{1.0, 0.5})
	consumer := NewConsumer(bank)
	input := Sine(1000, 440.0, 1.0, testSampleRate)

	tests := []struct {
		name    string
		ratio   float64
		wantLen int
	}{
		{"unity", 1.0, 1000},
		{"double_speed", 2.0, 500},
		{"half_speed", 0.5, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := consumer.Resample(input, tt.ratio)
			require.NoError(t, err)
			assert.Len(t, output, tt.wantLen)
		})
	}
}

// TestConsumer_InvalidInput verifies the error paths.
func TestConsumer_InvalidInput(t *testing.T) {
	bank := buildBank(t, []float64{1.0})
	consumer := NewConsumer(bank)

	_, err := consumer.Resample(make([]float64, consumerTaps-1), 1.0)
	assert.Error(t, err, "input shorter than the tap count")

	_, err = consumer.Resample(make([]float64, 100), 0.0)
	assert.Error(t, err, "non-positive pitch ratio")

	_, err = consumer.Resample(make([]float64, 100), -2.0)
	assert.Error(t, err, "negative pitch ratio")
}

// TestConsumer_AntiAliasing verifies the generated half-band table
// suppresses fold-back at 2x pitch where the full-band table cannot.
//
// The probe holds tones in the upper octave below Nyquist; at 2x pitch
// they land above the output Nyquist and fold back down. Replaying
// through a bank whose selection picks the 0.5-bandwidth table must
// leave orders of magnitude less folded energy than a full-band-only
// bank, which passes the tones straight into the fold.
func TestConsumer_AntiAliasing(t *testing.T) {
	input := AliasProbe(testNumSamples, testSampleRate)
	const pitch = 2.0

	fullOnly := NewConsumer(buildBank(t, []float64{1.0}))
	adaptive := NewConsumer(buildBank(t, []float64{1.0, 0.5}))

	aliased, err := fullOnly.Resample(input, pitch)
	require.NoError(t, err)
	filtered, err := adaptive.Resample(input, pitch)
	require.NoError(t, err)

	// Folded images land at 0.1, 0.3 and 0.5 of the output Nyquist.
	nyquist := testSampleRate / 2.0
	aliasedPSD := WelchPSD(aliased, testSampleRate, DefaultSegmentSize)
	filteredPSD := WelchPSD(filtered, testSampleRate, DefaultSegmentSize)

	aliasedEnergy := aliasedPSD.BandEnergy(nyquist*0.05, nyquist*0.6)
	filteredEnergy := filteredPSD.BandEnergy(nyquist*0.05, nyquist*0.6)

	assert.Greater(t, aliasedEnergy, 0.0)
	assert.Less(t, filteredEnergy, aliasedEnergy*aliasSuppressionFactor,
		"half-band table should suppress folded energy by >30 dB")
}
