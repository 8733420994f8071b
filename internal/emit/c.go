package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/scdeck/sinctab"
)

// CEmitter renders a filter bank as a C++ header of constexpr tables, the
// format the runtime convolution engine embeds directly.
//
// Layout: dimension constants, the bandwidth list, an inline
// sinc_select_bandwidth() implementing the pitch → index rule, and the
// full sinc_tables[bandwidth][phase][tap] array with one comment per
// table and per phase.
type CEmitter struct {
	opts Options
}

// NewC creates a C++ header emitter.
func NewC(opts Options) *CEmitter {
	return &CEmitter{opts: opts}
}

// Emit writes the header to w.
func (e *CEmitter) Emit(w io.Writer, bank *sinctab.FilterBank) error {
	var b strings.Builder

	e.writePreamble(&b, bank)
	e.writeConstants(&b, bank)
	e.writeSelection(&b, bank)
	e.writeTables(&b, bank)

	b.WriteString("} // namespace dsp\n")
	b.WriteString("} // namespace sc\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing C header: %w", err)
	}
	return nil
}

func (e *CEmitter) writePreamble(b *strings.Builder, bank *sinctab.FilterBank) {
	b.WriteString("// Polyphase sinc interpolation tables\n")
	if !e.opts.Timestamp.IsZero() {
		fmt.Fprintf(b, "// Generated: %s\n", e.opts.Timestamp.Format(timestampLayout))
	}
	b.WriteString("//\n")
	b.WriteString("// Structure: sinc_tables[bandwidth_idx][phase][tap]\n")
	b.WriteString("//   - bandwidth_idx: Select based on pitch ratio (see SINC_BANDWIDTHS)\n")
	b.WriteString("//   - phase: Fractional sample position (0 to SINC_NUM_PHASES-1)\n")
	b.WriteString("//   - tap: Filter coefficient index (0 to SINC_NUM_TAPS-1)\n")
	b.WriteString("//\n")
	b.WriteString("// Runtime usage:\n")
	b.WriteString("//   1. Select table index: idx = sinc_select_bandwidth(fabsf(pitch))\n")
	b.WriteString("//   2. Compute phase: phase = (int)(frac * SINC_NUM_PHASES)\n")
	b.WriteString("//   3. Convolve: sum(sample[i] * sinc_tables[idx][phase][i])\n")
	b.WriteString("//\n")
	b.WriteString("#pragma once\n")
	b.WriteString("\n")
	b.WriteString("#include <cstddef>\n")
	b.WriteString("\n")
	b.WriteString("namespace sc {\n")
	b.WriteString("namespace dsp {\n")
	b.WriteString("\n")
}

func (e *CEmitter) writeConstants(b *strings.Builder, bank *sinctab.FilterBank) {
	b.WriteString("// Table dimensions\n")
	fmt.Fprintf(b, "constexpr int SINC_NUM_BANDWIDTHS = %d;\n", bank.NumBandwidths())
	fmt.Fprintf(b, "constexpr int SINC_NUM_PHASES = %d;\n", bank.NumPhases)
	fmt.Fprintf(b, "constexpr int SINC_NUM_TAPS = %d;\n", bank.NumTaps)
	b.WriteString("\n")
	b.WriteString("// Kaiser window parameter used for all tables\n")
	fmt.Fprintf(b, "constexpr float SINC_KAISER_BETA = %sf;\n", paramLiteral(bank.Beta))
	b.WriteString("\n")

	bws := make([]string, bank.NumBandwidths())
	for i, bw := range bank.Bandwidths() {
		bws[i] = paramLiteral(bw) + "f"
	}
	b.WriteString("// Available bandwidth values (for anti-aliasing at different pitch ratios)\n")
	fmt.Fprintf(b, "constexpr float SINC_BANDWIDTHS[%d] = { %s };\n",
		bank.NumBandwidths(), strings.Join(bws, ", "))
	b.WriteString("\n")
}

func (e *CEmitter) writeSelection(b *strings.Builder, bank *sinctab.FilterBank) {
	b.WriteString("// Select bandwidth table index based on absolute pitch ratio.\n")
	b.WriteString("// Returns the widest passband whose pitch ceiling covers the ratio;\n")
	b.WriteString("// ratios beyond every ceiling use the narrowest table.\n")
	b.WriteString("inline int sinc_select_bandwidth(float abs_pitch) {\n")
	for i, bt := range bank.Tables {
		if i == len(bank.Tables)-1 {
			fmt.Fprintf(b, "    return %d; // pitch > %sf, use lowest bandwidth\n",
				i, thresholdBefore(bank, i))
			continue
		}
		fmt.Fprintf(b, "    if (abs_pitch <= %sf) return %d;\n",
			exactLiteral(bt.MaxPitch()), i)
	}
	b.WriteString("}\n")
	b.WriteString("\n")
}

// thresholdBefore returns the previous table's pitch ceiling for the
// fallback comment, or "0.0" for a single-table bank.
func thresholdBefore(bank *sinctab.FilterBank, i int) string {
	if i == 0 {
		return exactLiteral(0)
	}
	return exactLiteral(bank.Tables[i-1].MaxPitch())
}

func (e *CEmitter) writeTables(b *strings.Builder, bank *sinctab.FilterBank) {
	b.WriteString("// Sinc interpolation tables\n")
	b.WriteString("// Indexed as: sinc_tables[bandwidth_idx][phase][tap]\n")
	fmt.Fprintf(b, "alignas(64) constexpr float sinc_tables[%d][%d][%d] = {\n",
		bank.NumBandwidths(), bank.NumPhases, bank.NumTaps)

	for ti, bt := range bank.Tables {
		fmt.Fprintf(b, "    { // Bandwidth %s (pitch <= %sx)\n",
			paramLiteral(bt.Bandwidth), exactLiteral(bt.MaxPitch()))

		for pi, phase := range bt.Phases {
			fmt.Fprintf(b, "        { // Phase %d\n", pi)
			writeCoeffLines(b, phase, "            ", "f")
			if pi < len(bt.Phases)-1 {
				b.WriteString("        },\n")
			} else {
				b.WriteString("        }\n")
			}
		}

		if ti < len(bank.Tables)-1 {
			b.WriteString("    },\n")
		} else {
			b.WriteString("    }\n")
		}
	}

	b.WriteString("};\n")
	b.WriteString("\n")
}

// writeCoeffLines renders one phase's coefficients, coeffsPerLine per
// line, with the given indent and literal suffix.
func writeCoeffLines(b *strings.Builder, coeffs []float64, indent, suffix string) {
	for start := 0; start < len(coeffs); start += coeffsPerLine {
		end := min(start+coeffsPerLine, len(coeffs))

		b.WriteString(indent)
		for i := start; i < end; i++ {
			b.WriteString(coeffLiteral(coeffs[i]))
			b.WriteString(suffix)
			if i < len(coeffs)-1 {
				b.WriteString(",")
				if i < end-1 {
					b.WriteString(" ")
				}
			}
		}
		b.WriteString("\n")
	}
}
