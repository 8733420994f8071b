// Package filter builds polyphase windowed-sinc interpolation tables.
package filter

import (
	"math"

	"github.com/scdeck/sinctab/internal/mathutil"
)

const (
	// Window normalization
	windowCenterDivisor = 2.0

	// Degenerate window length: a window of one tap (or fewer) is flat
	degenerateWindowLength = 1
)

// KaiserTap evaluates the Kaiser window at a single tap position.
//
// The Kaiser window provides excellent control over the trade-off between
// main lobe width and sidelobe level in frequency domain:
//
//	w[n] = I₀(β · sqrt(1 - ((n - α)/α)²)) / I₀(β)
//
// where α = (N-1)/2 and N is the window length. The window is symmetric
// about the center tap, equals exactly 1.0 at the center, and lies in
// [0, 1] everywhere.
//
// Parameters:
//
//	n: Tap index (0 to length-1)
//	length: Window length in taps
//	beta: Kaiser β parameter (controls sidelobe attenuation)
//	      Typically 0-20, where higher values = more attenuation but wider main lobe
//
// A length of 1 or less returns 1.0 (a single-tap window is flat).
func KaiserTap(n, length int, beta float64) float64 {
	if length <= degenerateWindowLength {
		return 1.0
	}

	alpha := float64(length-1) / windowCenterDivisor
	ratio := (float64(n) - alpha) / alpha

	// Clamp to guard against floating-point excursions slightly past the
	// window edge, which would put a negative value under the sqrt.
	arg := 1.0 - ratio*ratio
	if arg < 0 {
		arg = 0
	}

	return mathutil.BesselI0(beta*math.Sqrt(arg)) / mathutil.BesselI0(beta)
}

// KaiserWindow generates a full Kaiser window of the specified length.
//
// Equivalent to evaluating KaiserTap for every index, but computes the
// I₀(β) denominator once. The builder uses this to window every phase of a
// table with a single window evaluation.
//
// The window is symmetric: w[i] = w[length-1-i].
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)

	if length == degenerateWindowLength {
		window[0] = 1.0
		return window
	}

	alpha := float64(length-1) / windowCenterDivisor
	i0Beta := mathutil.BesselI0(beta)

	for n := range length {
		ratio := (float64(n) - alpha) / alpha
		arg := 1.0 - ratio*ratio
		if arg < 0 {
			arg = 0
		}
		window[n] = mathutil.BesselI0(beta*math.Sqrt(arg)) / i0Beta
	}

	return window
}
