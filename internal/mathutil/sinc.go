package mathutil

import (
	"math"
)

// Sinc computes the normalized sinc function: sin(πx) / (πx).
//
// This is the impulse response of the ideal lowpass filter. The removable
// singularity at x=0 is handled explicitly: for |x| below
// sincSingularityThreshold the limit value 1.0 is returned instead of
// evaluating the 0/0 form.
func Sinc(x float64) float64 {
	if math.Abs(x) < sincSingularityThreshold {
		return 1.0
	}
	px := math.Pi * x
	return math.Sin(px) / px
}
