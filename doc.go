// Package sinctab generates polyphase windowed-sinc interpolation filter
// tables for real-time audio resamplers.
//
// The generator is an offline, one-shot build step: it computes a bank of
// anti-aliasing filter tables — one per bandwidth variant, each subdivided
// into fractional-sample phases — validates it, and renders it as a source
// artifact (a C header or a Go file) for the runtime consumer to embed.
//
// # Design
//
// Each table is a phase × tap matrix of Kaiser-windowed sinc coefficients.
// A phase p holds the fractional-delay kernel for the offset p/NumPhases,
// normalized to unity DC gain, so the consumer interpolates an output
// sample as a single T-tap inner product instead of recomputing a sinc
// filter per sample.
//
// Multiple bandwidth variants realize adaptive anti-aliasing: a bandwidth
// B narrows the passband to B × Nyquist, which keeps fold-back out of the
// output for pitch ratios up to 1/B. FilterBank.SelectBandwidth maps a
// runtime pitch ratio to the right table.
//
// # Quick Start
//
//	bank, err := sinctab.Generate(sinctab.Params{
//	    NumPhases:  32,
//	    NumTaps:    16,
//	    Bandwidths: []float64{1.0, 0.5, 0.25},
//	    Beta:       8.0,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Rendering is handled by the emit package; see cmd/sincgen for the CLI.
//
// Generation is deterministic: identical parameters always reproduce a
// bit-identical bank.
package sinctab
