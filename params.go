package sinctab

import (
	"fmt"
	"math"

	"github.com/scdeck/sinctab/internal/filter"
)

// Parameter bounds, re-exported from the filter package so callers can
// range-check without importing internal packages.
const (
	MinNumPhases = filter.MinNumPhases
	MaxNumPhases = filter.MaxNumPhases
	MinNumTaps   = filter.MinNumTaps
	MaxNumTaps   = filter.MaxNumTaps
	MinBeta      = filter.MinBeta
	MaxBeta      = filter.MaxBeta
)

// Params holds the complete configuration for one generation run.
//
// The struct is treated as immutable: Generate reads it, never writes it,
// and two runs with equal Params produce bit-identical banks.
type Params struct {
	// NumPhases is the number of fractional phase positions per table
	// (2-256). Phases span [0, 1) in steps of 1/NumPhases.
	NumPhases int

	// NumTaps is the filter length per phase (4-64).
	NumTaps int

	// Bandwidths lists the anti-aliasing variants to generate, each a
	// cutoff relative to Nyquist in (0, 1]. Order does not matter;
	// Generate sorts descending. Duplicates are rejected: a repeated
	// bandwidth would produce a table that the selection rule can never
	// reach.
	Bandwidths []float64

	// Beta is the Kaiser window shape parameter (0-20) shared by all
	// tables in the bank.
	Beta float64
}

// Validate checks all generation parameters eagerly, before any table
// construction. Errors identify the offending value and the violated
// bound.
func (p *Params) Validate() error {
	if p.NumPhases < MinNumPhases || p.NumPhases > MaxNumPhases {
		return fmt.Errorf("number of phases %d out of range [%d, %d]",
			p.NumPhases, MinNumPhases, MaxNumPhases)
	}

	if p.NumTaps < MinNumTaps || p.NumTaps > MaxNumTaps {
		return fmt.Errorf("number of taps %d out of range [%d, %d]",
			p.NumTaps, MinNumTaps, MaxNumTaps)
	}

	if p.Beta < MinBeta || p.Beta > MaxBeta {
		return fmt.Errorf("kaiser beta %g out of range [%g, %g]",
			p.Beta, MinBeta, MaxBeta)
	}

	if len(p.Bandwidths) == 0 {
		return fmt.Errorf("no bandwidths specified (need at least one in (0, 1])")
	}

	seen := make(map[float64]bool, len(p.Bandwidths))
	for i, bw := range p.Bandwidths {
		if math.IsNaN(bw) || bw <= 0 || bw > 1.0 {
			return fmt.Errorf("bandwidth[%d] = %g out of range (0, 1]", i, bw)
		}
		if seen[bw] {
			return fmt.Errorf("duplicate bandwidth %g", bw)
		}
		seen[bw] = true
	}

	return nil
}
