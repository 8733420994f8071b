package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/scdeck/sinctab"
)

// defaultGoPackage is used when no package name is configured.
const defaultGoPackage = "sinctables"

// GoEmitter renders a filter bank as a Go source file, for consumers that
// embed the tables in a Go runtime instead of the C engine.
//
// The file declares dimension constants, the bandwidth list, a
// SelectBandwidth function implementing the same pitch → index rule as
// the C artifact, and the full coefficient table.
type GoEmitter struct {
	pkg  string
	opts Options
}

// NewGo creates a Go source emitter targeting the given package name.
// An empty name falls back to defaultGoPackage.
func NewGo(pkg string, opts Options) *GoEmitter {
	if pkg == "" {
		pkg = defaultGoPackage
	}
	return &GoEmitter{pkg: pkg, opts: opts}
}

// Emit writes the Go source file to w.
func (e *GoEmitter) Emit(w io.Writer, bank *sinctab.FilterBank) error {
	var b strings.Builder

	b.WriteString("// Code generated by sincgen. DO NOT EDIT.\n")
	if !e.opts.Timestamp.IsZero() {
		fmt.Fprintf(&b, "// Generated: %s\n", e.opts.Timestamp.Format(timestampLayout))
	}
	b.WriteString("//\n")
	b.WriteString("// Polyphase sinc interpolation tables, indexed as\n")
	b.WriteString("// Tables[bandwidthIdx][phase][tap].\n")
	fmt.Fprintf(&b, "package %s\n", e.pkg)
	b.WriteString("\n")

	b.WriteString("// Table dimensions.\n")
	b.WriteString("const (\n")
	fmt.Fprintf(&b, "\tNumBandwidths = %d\n", bank.NumBandwidths())
	fmt.Fprintf(&b, "\tNumPhases     = %d\n", bank.NumPhases)
	fmt.Fprintf(&b, "\tNumTaps       = %d\n", bank.NumTaps)
	b.WriteString(")\n")
	b.WriteString("\n")

	b.WriteString("// KaiserBeta is the window parameter used for all tables.\n")
	fmt.Fprintf(&b, "const KaiserBeta = %s\n", paramLiteral(bank.Beta))
	b.WriteString("\n")

	bws := make([]string, bank.NumBandwidths())
	for i, bw := range bank.Bandwidths() {
		bws[i] = paramLiteral(bw)
	}
	b.WriteString("// Bandwidths lists the anti-aliasing variants, widest first.\n")
	fmt.Fprintf(&b, "var Bandwidths = [NumBandwidths]float64{%s}\n", strings.Join(bws, ", "))
	b.WriteString("\n")

	e.writeSelection(&b, bank)
	e.writeTables(&b, bank)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing Go source: %w", err)
	}
	return nil
}

func (e *GoEmitter) writeSelection(b *strings.Builder, bank *sinctab.FilterBank) {
	b.WriteString("// SelectBandwidth maps an absolute pitch ratio to a table index:\n")
	b.WriteString("// the widest passband whose pitch ceiling covers the ratio, or the\n")
	b.WriteString("// narrowest table for ratios beyond every ceiling.\n")
	b.WriteString("func SelectBandwidth(absPitch float64) int {\n")
	for i, bt := range bank.Tables {
		if i == len(bank.Tables)-1 {
			fmt.Fprintf(b, "\treturn %d\n", i)
			continue
		}
		fmt.Fprintf(b, "\tif absPitch <= %s {\n\t\treturn %d\n\t}\n",
			exactLiteral(bt.MaxPitch()), i)
	}
	b.WriteString("}\n")
	b.WriteString("\n")
}

func (e *GoEmitter) writeTables(b *strings.Builder, bank *sinctab.FilterBank) {
	b.WriteString("// Tables holds the filter coefficients.\n")
	b.WriteString("var Tables = [NumBandwidths][NumPhases][NumTaps]float64{\n")

	for _, bt := range bank.Tables {
		fmt.Fprintf(b, "\t{ // Bandwidth %s (pitch <= %sx)\n",
			paramLiteral(bt.Bandwidth), exactLiteral(bt.MaxPitch()))

		for pi, phase := range bt.Phases {
			fmt.Fprintf(b, "\t\t{ // Phase %d\n", pi)
			writeGoCoeffLines(b, phase, "\t\t\t")
			b.WriteString("\t\t},\n")
		}

		b.WriteString("\t},\n")
	}

	b.WriteString("}\n")
}

// writeGoCoeffLines renders one phase's coefficients with trailing commas
// throughout, as Go composite literals require.
func writeGoCoeffLines(b *strings.Builder, coeffs []float64, indent string) {
	for start := 0; start < len(coeffs); start += coeffsPerLine {
		end := min(start+coeffsPerLine, len(coeffs))

		b.WriteString(indent)
		for i := start; i < end; i++ {
			b.WriteString(coeffLiteral(coeffs[i]))
			b.WriteString(",")
			if i < end-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
}
