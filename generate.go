package sinctab

import (
	"fmt"
	"slices"

	"github.com/scdeck/sinctab/internal/filter"
)

// Generate builds a complete filter bank from validated parameters.
//
// The run is strictly bottom-up and single-threaded: parameters are
// validated eagerly (nothing is built on failure), bandwidths are sorted
// descending, and one table is built per bandwidth. Total work is bounded
// by len(Bandwidths) × NumPhases × NumTaps coefficient evaluations.
//
// The returned bank is immutable by convention; callers hand it to an
// emitter and discard it.
func Generate(params Params) (*FilterBank, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation parameters: %w", err)
	}

	// Highest bandwidth (lowest pitch ceiling) first. Work on a copy so
	// the caller's Params stays untouched.
	bandwidths := slices.Clone(params.Bandwidths)
	slices.SortFunc(bandwidths, func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})

	bank := &FilterBank{
		NumPhases: params.NumPhases,
		NumTaps:   params.NumTaps,
		Beta:      params.Beta,
		Tables:    make([]*filter.BandwidthTable, 0, len(bandwidths)),
	}

	for _, bw := range bandwidths {
		bt, err := filter.BuildBandwidthTable(filter.TableParams{
			NumPhases: params.NumPhases,
			NumTaps:   params.NumTaps,
			Bandwidth: bw,
			Beta:      params.Beta,
		})
		if err != nil {
			return nil, fmt.Errorf("building bandwidth %g table: %w", bw, err)
		}
		bank.Tables = append(bank.Tables, bt)
	}

	return bank, nil
}
