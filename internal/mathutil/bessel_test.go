package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	// Relative tolerance for series evaluation against reference values
	besselRelTolerance = 1e-12

	// Tolerances for Kaiser beta formula checks
	betaTolerance = 1e-9
)

// TestBesselI0_Zero verifies the exact value at the origin.
func TestBesselI0_Zero(t *testing.T) {
	assert.Equal(t, 1.0, BesselI0(0.0), "I₀(0) must be exactly 1.0")
}

// TestBesselI0_ReferenceValues compares the series against published values
// (Abramowitz & Stegun / scipy.special.iv reference).
func TestBesselI0_ReferenceValues(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"x_0.5", 0.5, 1.0634833707413236},
		{"x_1", 1.0, 1.2660658777520082},
		{"x_2", 2.0, 2.279585302336067},
		{"x_5", 5.0, 27.23987182360445},
		{"x_8", 8.0, 427.56411572180474},
		{"x_10", 10.0, 2815.716628466255},
		{"x_20", 20.0, 43558282.55955354},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BesselI0(tt.x)
			assert.InEpsilon(t, tt.want, got, besselRelTolerance,
				"I₀(%g) = %g, want %g", tt.x, got, tt.want)
		})
	}
}

// TestBesselI0_Properties verifies basic analytic properties.
func TestBesselI0_Properties(t *testing.T) {
	// I₀ is even
	assert.Equal(t, BesselI0(3.0), BesselI0(-3.0), "I₀ must be even")

	// I₀(x) >= 1 and strictly increasing for x >= 0
	prev := BesselI0(0.0)
	for x := 0.25; x <= 20.0; x += 0.25 {
		v := BesselI0(x)
		assert.GreaterOrEqual(t, v, 1.0, "I₀(%g) must be >= 1", x)
		assert.Greater(t, v, prev, "I₀ must be strictly increasing at x=%g", x)
		prev = v
	}
}

// TestKaiserBeta verifies the Kaiser & Schafer attenuation mapping.
func TestKaiserBeta(t *testing.T) {
	tests := []struct {
		name        string
		attenuation float64
		want        float64
	}{
		{"below_21dB", 15.0, 0.0},
		{"at_21dB", 21.0, 0.0},
		{"at_80dB", 80.0, 0.1102 * (80.0 - 8.7)},
		{"at_100dB", 100.0, 0.1102 * (100.0 - 8.7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, KaiserBeta(tt.attenuation), betaTolerance)
		})
	}

	// Medium range is positive and monotonic
	prev := 0.0
	for att := 22.0; att <= 50.0; att += 2.0 {
		beta := KaiserBeta(att)
		assert.Greater(t, beta, prev, "beta must increase with attenuation at %g dB", att)
		prev = beta
	}
}
