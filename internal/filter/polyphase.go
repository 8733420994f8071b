package filter

import (
	"fmt"
	"math"

	"github.com/scdeck/sinctab/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

const (
	// Table dimension bounds
	MinNumPhases = 2
	MaxNumPhases = 256
	MinNumTaps   = 4
	MaxNumTaps   = 64

	// Kaiser β bounds
	MinBeta = 0.0
	MaxBeta = 20.0

	// Normalization is skipped when a phase's coefficient sum is this
	// close to zero. Unreachable for valid sinc/Kaiser parameter
	// combinations; retained as a defensive fallback.
	normalizationEps = 1e-10

	// Unity DC gain target for each normalized phase
	unityGain = 1.0
)

// BandwidthTable is one bandwidth variant's polyphase coefficient table.
//
// Phases[p][t] holds the coefficient for phase p (fractional offset p/P)
// and tap t. Each phase is normalized to unity DC gain unless its index
// appears in DegeneratePhases.
type BandwidthTable struct {
	// Bandwidth is the cutoff relative to Nyquist, in (0, 1].
	Bandwidth float64

	// Beta is the Kaiser window parameter the table was built with.
	Beta float64

	// Phases holds the [phase][tap] coefficients.
	Phases [][]float64

	// DegeneratePhases lists phase indices whose coefficient sum was too
	// close to zero to normalize. Empty for all realistic parameters; a
	// non-empty list signals a pathological parameter combination
	// upstream and should be surfaced to the operator.
	DegeneratePhases []int
}

// NumPhases returns the number of fractional phase positions.
func (bt *BandwidthTable) NumPhases() int {
	return len(bt.Phases)
}

// NumTaps returns the filter length per phase.
func (bt *BandwidthTable) NumTaps() int {
	if len(bt.Phases) == 0 {
		return 0
	}
	return len(bt.Phases[0])
}

// MaxPitch returns the highest absolute pitch ratio this table supports
// without aliasing: 1/Bandwidth.
func (bt *BandwidthTable) MaxPitch() float64 {
	return 1.0 / bt.Bandwidth
}

// TableParams holds parameters for building one bandwidth table.
type TableParams struct {
	// NumPhases is the number of fractional phase positions (2-256).
	// Phases span [0, 1) in steps of 1/NumPhases; the offset 1.0 is
	// excluded because it equals phase 0 of the next input sample.
	NumPhases int

	// NumTaps is the filter length per phase (4-64).
	NumTaps int

	// Bandwidth is the cutoff relative to Nyquist, in (0, 1].
	// Values below 1.0 narrow the passband to suppress fold-back when
	// the playback pitch ratio exceeds 1.
	Bandwidth float64

	// Beta is the Kaiser window shape parameter (0-20).
	Beta float64
}

// Validate checks if table parameters are valid.
func (tp *TableParams) Validate() error {
	if tp.NumPhases < MinNumPhases || tp.NumPhases > MaxNumPhases {
		return fmt.Errorf("number of phases %d out of range [%d, %d]",
			tp.NumPhases, MinNumPhases, MaxNumPhases)
	}

	if tp.NumTaps < MinNumTaps || tp.NumTaps > MaxNumTaps {
		return fmt.Errorf("number of taps %d out of range [%d, %d]",
			tp.NumTaps, MinNumTaps, MaxNumTaps)
	}

	if tp.Bandwidth <= 0 || tp.Bandwidth > 1.0 {
		return fmt.Errorf("bandwidth %g out of range (0, 1]", tp.Bandwidth)
	}

	if tp.Beta < MinBeta || tp.Beta > MaxBeta {
		return fmt.Errorf("kaiser beta %g out of range [%g, %g]",
			tp.Beta, MinBeta, MaxBeta)
	}

	return nil
}

// BuildBandwidthTable builds a polyphase windowed-sinc table for one
// bandwidth.
//
// For each phase p, the kernel is a sinc lowpass evaluated at the
// fractional offset p/NumPhases:
//
//	x = (t - center) - p/NumPhases,  center = (NumTaps-1)/2
//	coeff = sinc(x·B) · B · kaiser(t)
//
// The bandwidth B scales both the sinc argument (moving the cutoff) and
// the amplitude (keeping the passband at unity before normalization).
// Each phase is then normalized so its coefficients sum to exactly 1.0
// (unity DC gain). A phase whose raw sum is within normalizationEps of
// zero is kept unnormalized and recorded in DegeneratePhases instead of
// failing the build; see TableParams for why that case is pathological.
//
// Building is deterministic: identical parameters always produce
// bit-identical tables.
func BuildBandwidthTable(params TableParams) (*BandwidthTable, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table parameters: %w", err)
	}

	// The window depends only on the tap index, not the phase offset, so
	// compute it once for the whole table.
	window := KaiserWindow(params.NumTaps, params.Beta)

	center := float64(params.NumTaps-1) / windowCenterDivisor

	bt := &BandwidthTable{
		Bandwidth: params.Bandwidth,
		Beta:      params.Beta,
		Phases:    make([][]float64, params.NumPhases),
	}

	for phase := range params.NumPhases {
		phaseOffset := float64(phase) / float64(params.NumPhases)

		coeffs := make([]float64, params.NumTaps)
		for tap := range params.NumTaps {
			x := (float64(tap) - center) - phaseOffset
			coeffs[tap] = mathutil.Sinc(x*params.Bandwidth) * params.Bandwidth * window[tap]
		}

		// Normalize to unity DC gain.
		// Uses SIMD-accelerated sum and scale operations.
		sum := f64.Sum(coeffs)
		if math.Abs(sum) > normalizationEps {
			f64.Scale(coeffs, coeffs, unityGain/sum)
		} else {
			bt.DegeneratePhases = append(bt.DegeneratePhases, phase)
		}

		bt.Phases[phase] = coeffs
	}

	return bt, nil
}
