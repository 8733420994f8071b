package sinctab

import (
	"math"

	"github.com/scdeck/sinctab/internal/filter"
)

// FilterBank is an immutable, ordered set of bandwidth tables sharing one
// (NumPhases, NumTaps, Beta) configuration.
//
// Tables are ordered by strictly decreasing bandwidth, so index 0 is the
// widest passband (normal playback) and the last index is the narrowest
// (extreme pitch-up fallback).
type FilterBank struct {
	// NumPhases and NumTaps are shared by every table in the bank.
	NumPhases int
	NumTaps   int

	// Beta is the Kaiser window parameter shared by every table.
	Beta float64

	// Tables holds one coefficient table per bandwidth, descending.
	Tables []*filter.BandwidthTable
}

// NumBandwidths returns the number of bandwidth variants in the bank.
func (fb *FilterBank) NumBandwidths() int {
	return len(fb.Tables)
}

// Bandwidths returns the bandwidth of each table, in bank order.
func (fb *FilterBank) Bandwidths() []float64 {
	bws := make([]float64, len(fb.Tables))
	for i, bt := range fb.Tables {
		bws[i] = bt.Bandwidth
	}
	return bws
}

// SelectBandwidth maps an absolute pitch ratio to a table index.
//
// Each bandwidth B supports pitch ratios up to 1/B before fold-back; the
// rule returns the smallest index whose ceiling covers the ratio, keeping
// the passband as wide as the pitch allows. Ratios beyond every ceiling
// fall back to the last (narrowest) table. Negative ratios (reverse
// playback) select on the absolute value.
func (fb *FilterBank) SelectBandwidth(pitchRatio float64) int {
	r := math.Abs(pitchRatio)
	for i, bt := range fb.Tables {
		if r <= bt.MaxPitch() {
			return i
		}
	}
	return len(fb.Tables) - 1
}

// DegeneratePhases reports, per table index, any phase indices the builder
// could not normalize. All slices are empty for realistic parameters.
func (fb *FilterBank) DegeneratePhases() [][]int {
	out := make([][]int, len(fb.Tables))
	for i, bt := range fb.Tables {
		out[i] = bt.DegeneratePhases
	}
	return out
}

// Analyze runs the advisory quality pass over every table in the bank.
func (fb *FilterBank) Analyze() []filter.QualityReport {
	reports := make([]filter.QualityReport, len(fb.Tables))
	for i, bt := range fb.Tables {
		reports[i] = filter.AnalyzeTable(bt)
	}
	return reports
}
