// Command sincgen generates polyphase windowed-sinc interpolation tables
// and writes them as an embeddable source artifact.
//
// Usage:
//
//	sincgen -output sinc_tables.h
//	sincgen -phases 64 -taps 24 -output sinc_tables.h
//	sincgen -bandwidths 1.0,0.5,0.25,0.125 -beta 9.6 -output sinc_tables.h
//	sincgen -format go -package sinctables -output tables.go
//	sincgen -attenuation 80 -output sinc_tables.h   # derive beta from stopband dB
//
// The artifact is rendered fully in memory and written in a single step,
// so a failed run never leaves a partial file behind.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/scdeck/sinctab"
	"github.com/scdeck/sinctab/internal/emit"
	"github.com/scdeck/sinctab/internal/mathutil"
)

const (
	// CLI defaults: 32 phases x 16 taps with three octave-spaced
	// bandwidths covers pitch ratios up to 4x in 6 KiB of float tables.
	defaultNumPhases  = 32
	defaultNumTaps    = 16
	defaultBandwidths = "1.0,0.5,0.25"
	defaultBeta       = 8.0
	defaultGoPackage  = "sinctables"

	// Output formats
	formatC  = "c"
	formatGo = "go"

	// Artifact file permissions
	outputFileMode = 0o644

	// DC gain drift that merits an operator warning (advisory only)
	dcGainWarnTolerance = 1e-6
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	phases := flag.Int("phases", defaultNumPhases, "Number of fractional phases per table (2-256)")
	taps := flag.Int("taps", defaultNumTaps, "Number of filter taps per phase (4-64)")
	bandwidths := flag.String("bandwidths", defaultBandwidths, "Comma-separated bandwidth fractions in (0, 1]")
	beta := flag.Float64("beta", defaultBeta, "Kaiser window beta (0-20)")
	attenuation := flag.Float64("attenuation", 0, "Derive beta from target stopband attenuation in dB (overrides -beta)")
	format := flag.String("format", formatC, "Output format: c (C++ header) or go (Go source)")
	goPackage := flag.String("package", defaultGoPackage, "Package name for Go output")
	output := flag.String("output", "", "Output file path (required)")
	quiet := flag.Bool("quiet", false, "Suppress the quality report")
	timestamp := flag.Bool("timestamp", false, "Embed a generation timestamp comment (breaks byte-for-byte reproducibility)")
	flag.Parse()

	if *output == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] -output FILE\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -output sinc_tables.h                          # Defaults: 32 phases, 16 taps\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -phases 64 -taps 24 -output sinc_tables.h      # Higher quality\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format go -package tables -output tables.go   # Go source output\n", os.Args[0])
		return fmt.Errorf("missing required -output flag")
	}

	betaSetExplicitly := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "beta" {
			betaSetExplicitly = true
		}
	})
	if *attenuation != 0 {
		if betaSetExplicitly {
			return fmt.Errorf("-beta and -attenuation are mutually exclusive")
		}
		if *attenuation < 0 || math.IsNaN(*attenuation) {
			return fmt.Errorf("attenuation must be a positive dB value, got %g", *attenuation)
		}
		*beta = mathutil.KaiserBeta(*attenuation)
	}

	bandwidthList, err := parseBandwidths(*bandwidths)
	if err != nil {
		return err
	}

	params := sinctab.Params{
		NumPhases:  *phases,
		NumTaps:    *taps,
		Bandwidths: bandwidthList,
		Beta:       *beta,
	}

	bank, err := sinctab.Generate(params)
	if err != nil {
		return err
	}

	warnDegenerate(bank)

	if !*quiet {
		printQualityReport(bank)
	}

	opts := emit.Options{}
	if *timestamp {
		opts.Timestamp = time.Now()
	}

	var emitter emit.Emitter
	switch *format {
	case formatC:
		emitter = emit.NewC(opts)
	case formatGo:
		emitter = emit.NewGo(*goPackage, opts)
	default:
		return fmt.Errorf("unknown format %q (want %q or %q)", *format, formatC, formatGo)
	}

	artifact, err := emit.Render(emitter, bank)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*output, artifact, outputFileMode); err != nil {
		return fmt.Errorf("writing %s: %w", *output, err)
	}

	if !*quiet {
		fmt.Printf("Wrote %s (%d bytes, %d bandwidths, %d phases, %d taps)\n",
			*output, len(artifact), bank.NumBandwidths(), bank.NumPhases, bank.NumTaps)
	}

	return nil
}

// parseBandwidths splits a comma-separated flag value into floats.
// Range and duplicate checks are left to parameter validation.
func parseBandwidths(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bandwidth %q: %w", part, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no bandwidths given")
	}
	return out, nil
}

// warnDegenerate surfaces zero-sum phases on stderr. A degenerate phase
// passes its input through unnormalized, which is audible but not fatal,
// so the run continues.
func warnDegenerate(bank *sinctab.FilterBank) {
	for _, table := range bank.Tables {
		for _, phase := range table.DegeneratePhases {
			fmt.Fprintf(os.Stderr,
				"warning: bandwidth %g phase %d has near-zero DC sum, left unnormalized\n",
				table.Bandwidth, phase)
		}
	}
}

// printQualityReport prints the advisory per-table metrics.
func printQualityReport(bank *sinctab.FilterBank) {
	fmt.Printf("Generated %d table(s): %d phases x %d taps, beta %.4f\n",
		bank.NumBandwidths(), bank.NumPhases, bank.NumTaps, bank.Beta)

	for _, report := range bank.Analyze() {
		fmt.Printf("  Bandwidth %.4f (pitch <= %.4gx)\n",
			report.Bandwidth, 1.0/report.Bandwidth)
		fmt.Printf("    DC gain:    %.9f .. %.9f\n", report.DCGainMin, report.DCGainMax)
		fmt.Printf("    Symmetry:   %.3e\n", report.SymmetryError)
		fmt.Printf("    Stopband:   %.1f dB\n", report.StopbandDB)
		fmt.Printf("    Memory:     %d bytes (table), %d bytes (artifact)\n",
			report.TableBytes, report.ArtifactBytes)
		fmt.Printf("    Cost:       %d MACs/sample\n", report.MACsPerSample)

		drift := math.Max(math.Abs(report.DCGainMin-1.0), math.Abs(report.DCGainMax-1.0))
		if drift > dcGainWarnTolerance && len(report.DegeneratePhases) == 0 {
			fmt.Fprintf(os.Stderr,
				"warning: bandwidth %g DC gain drifts %.3e from unity\n",
				report.Bandwidth, drift)
		}
	}
}
