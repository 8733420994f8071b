// Package mathutil provides mathematical functions for filter table generation.
package mathutil

import (
	"math"
)

// BesselI0 computes the modified Bessel function of the first kind, order zero: I₀(x).
// This function is used in Kaiser window calculation for filter design.
//
// The implementation evaluates the truncated power series
//
//	I₀(x) = Σ_{k=0..∞} ((x/2)^k / k!)²
//
// incrementally (term_k = term_{k-1} · (x/(2k))²), terminating once a term
// drops below float64 significance or after besselMaxTerms terms. For the
// bounded arguments this package receives (Kaiser windows with β ≤ 20) the
// series always converges well inside that bound, so there is no error path.
//
// The series form is used instead of a Chebyshev fit because the generated
// tables must be bit-reproducible across runs and match the reference
// coefficient tables exactly.
//
// Reference: Abramowitz & Stegun, "Handbook of Mathematical Functions", 9.6.12.
func BesselI0(x float64) float64 {
	// I₀(x) = I₀(-x)
	xHalf := math.Abs(x) / halfDivisor

	sum := 1.0
	term := 1.0

	for k := 1; k < besselMaxTerms; k++ {
		r := xHalf / float64(k)
		term *= r * r
		sum += term
		if term < besselConvergenceEps {
			break
		}
	}

	return sum
}

// KaiserBeta computes the Kaiser window β parameter from the desired
// stopband attenuation in decibels.
//
// The β parameter controls the trade-off between main lobe width and
// sidelobe level in the Kaiser window.
//
// Formula from Kaiser & Schafer:
//   - For att > 50 dB: β = 0.1102 * (att - 8.7)
//   - For 21 dB < att ≤ 50 dB: β = 0.5842 * (att - 21)^0.4 + 0.07886 * (att - 21)
//   - For att ≤ 21 dB: β = 0
//
// Parameters:
//
//	attenuation: Desired stopband attenuation in dB (typically 40-120 dB)
//
// Returns:
//
//	β parameter for Kaiser window (typically 0-15)
func KaiserBeta(attenuation float64) float64 {
	if attenuation > kaiserAttHigh {
		return kaiserBetaHighCoeff1 * (attenuation - kaiserBetaHighOffset)
	} else if attenuation >= kaiserAttMedium {
		delta := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(delta, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*delta
	}
	return 0.0
}
