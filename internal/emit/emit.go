// Package emit renders a completed filter bank into a source artifact.
//
// The numeric model (sinctab.FilterBank) is kept separate from the
// formatters so new output formats can be added without touching the
// generation logic. Two emitters are provided: a C++ header matching the
// layout the runtime consumer embeds, and a Go source file.
//
// All emitters are deterministic: identical bank content produces
// byte-identical output. The only exception is the generation timestamp,
// which is isolated to Options and rendered as a single comment line;
// leaving Options.Timestamp zero omits the line, which is what
// reproducible builds and the determinism tests use.
package emit

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/scdeck/sinctab"
)

const (
	// Coefficient literals carry 10 fractional digits. Coefficient
	// magnitudes never exceed ~1.3, so this meets the 10-significant-
	// digit floor that keeps independently compiled consumers
	// bit-compatible.
	coeffPrecision = 10
	coeffWidth     = 13

	// Bandwidth and beta constants are configuration values, not filter
	// output; six digits match the source precision of the parameters.
	paramPrecision = 6

	// Coefficient literals per source line
	coeffsPerLine = 4

	// Timestamp layout for the generated-at comment line
	timestampLayout = "2006-01-02 15:04:05"
)

// Options holds rendering options shared by all emitters.
type Options struct {
	// Timestamp, when non-zero, is rendered as a generated-at comment.
	// It is explicitly excluded from the determinism guarantee and must
	// never participate in artifact comparison.
	Timestamp time.Time
}

// Emitter renders a filter bank to a writer.
type Emitter interface {
	Emit(w io.Writer, bank *sinctab.FilterBank) error
}

// Render runs an emitter into memory and returns the complete artifact.
//
// Rendering to a buffer first is what lets callers guarantee an
// all-or-nothing file write: any failure happens before a single byte
// reaches the output path.
func Render(e Emitter, bank *sinctab.FilterBank) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Emit(&buf, bank); err != nil {
		return nil, fmt.Errorf("rendering filter bank: %w", err)
	}
	return buf.Bytes(), nil
}

// coeffLiteral formats one coefficient with fixed width and precision.
func coeffLiteral(c float64) string {
	return fmt.Sprintf("%*.*f", coeffWidth, coeffPrecision, c)
}

// paramLiteral formats a configuration value (bandwidth, beta).
func paramLiteral(v float64) string {
	return strconv.FormatFloat(v, 'f', paramPrecision, 64)
}

// exactLiteral formats a derived value (selection thresholds) at full
// float64 precision, guaranteeing a decimal point so the text is a valid
// floating literal in both C and Go.
func exactLiteral(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
