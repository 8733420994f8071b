package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	sincZeroCrossTolerance = 1e-9
	sincValueTolerance     = 1e-12
)

// TestSinc_Center verifies the removable singularity handling.
func TestSinc_Center(t *testing.T) {
	assert.Equal(t, 1.0, Sinc(0.0), "sinc(0) must be exactly 1.0")
	assert.Equal(t, 1.0, Sinc(1e-11), "sinc below the singularity threshold must be 1.0")
	assert.Equal(t, 1.0, Sinc(-1e-11), "guard must apply to negative arguments")
}

// TestSinc_ZeroCrossings verifies zeros at nonzero integers.
func TestSinc_ZeroCrossings(t *testing.T) {
	for _, x := range []float64{1, 2, 3, 5, 10, -1, -4} {
		assert.InDelta(t, 0.0, Sinc(x), sincZeroCrossTolerance,
			"sinc(%g) should be ~0", x)
	}
}

// TestSinc_KnownValues checks a few analytic values.
func TestSinc_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"half", 0.5, 2.0 / math.Pi},
		{"minus_half", -0.5, 2.0 / math.Pi},
		{"three_halves", 1.5, -2.0 / (3.0 * math.Pi)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Sinc(tt.x), sincValueTolerance)
		})
	}
}

// TestSinc_Even verifies symmetry.
func TestSinc_Even(t *testing.T) {
	for x := 0.1; x < 8.0; x += 0.37 {
		assert.Equal(t, Sinc(x), Sinc(-x), "sinc must be even at x=%g", x)
	}
}
