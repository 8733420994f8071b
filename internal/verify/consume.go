package verify

import (
	"fmt"

	"github.com/scdeck/sinctab"
	"github.com/tphakala/simd/f64"
)

// Consumer replays the runtime contract against a filter bank: for each
// output sample it selects a bandwidth table from the pitch ratio,
// derives the phase from the fractional position, linearly interpolates
// between adjacent phase kernels, and convolves the surrounding input
// samples.
//
// The kernel interpolation (including the upper-edge clamp) mirrors the
// runtime engine exactly, so measurements taken through this consumer
// reflect what the embedded tables will do in production.
type Consumer struct {
	bank *sinctab.FilterBank

	// kernel is the per-sample lerped kernel scratch buffer.
	kernel []float64
}

// NewConsumer wraps a bank in a reference consumer.
func NewConsumer(bank *sinctab.FilterBank) *Consumer {
	return &Consumer{
		bank:   bank,
		kernel: make([]float64, bank.NumTaps),
	}
}

// lerpKernel fills the scratch kernel for a fractional position in [0, 1)
// by linear interpolation between the two surrounding phase kernels.
func (c *Consumer) lerpKernel(tableIdx int, frac float64) {
	numPhases := c.bank.NumPhases
	phases := c.bank.Tables[tableIdx].Phases

	phasePos := frac * float64(numPhases)
	phase0 := int(phasePos)
	w1 := phasePos - float64(phase0)

	// The last phase has no successor within the table; clamp onto the
	// pair (P-2, P-1) with full weight on the upper kernel.
	if phase0 >= numPhases-1 {
		phase0 = numPhases - 2
		w1 = 1.0
	}
	if phase0 < 0 {
		phase0 = 0
		w1 = 0.0
	}
	w0 := 1.0 - w1

	k0 := phases[phase0]
	k1 := phases[phase0+1]
	for i := range c.kernel {
		c.kernel[i] = k0[i]*w0 + k1[i]*w1
	}
}

// Resample replays input at the given pitch ratio and returns the
// interpolated output (len(input)/ratio samples).
//
// Input boundaries are edge-padded by half the tap count on each side so
// every output sample sees a full window; the result carries the
// constant half-sample latency inherent to the even-tap kernel.
func (c *Consumer) Resample(input []float64, pitchRatio float64) ([]float64, error) {
	numTaps := c.bank.NumTaps
	if pitchRatio <= 0 {
		return nil, fmt.Errorf("pitch ratio %g must be positive", pitchRatio)
	}
	if len(input) < numTaps {
		return nil, fmt.Errorf("input of %d samples shorter than %d taps", len(input), numTaps)
	}

	tableIdx := c.bank.SelectBandwidth(pitchRatio)

	// Edge-pad so the first and last output samples have full windows.
	halfTaps := numTaps / 2
	padded := make([]float64, len(input)+numTaps)
	for i := range halfTaps {
		padded[i] = input[0]
		padded[len(input)+halfTaps+i] = input[len(input)-1]
	}
	copy(padded[halfTaps:], input)

	outLen := int(float64(len(input)) / pitchRatio)
	output := make([]float64, outLen)

	for i := range output {
		pos := float64(i) * pitchRatio
		intPos := int(pos)
		frac := pos - float64(intPos)

		windowStart := intPos
		if windowStart+numTaps > len(padded) {
			windowStart = len(padded) - numTaps
		}

		c.lerpKernel(tableIdx, frac)
		output[i] = f64.DotProduct(c.kernel, padded[windowStart:windowStart+numTaps])
	}

	return output, nil
}
