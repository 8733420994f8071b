package mathutil

// Bessel series evaluation constants.
const (
	// Maximum number of power series terms. Fifty terms are more than
	// sufficient for the Kaiser-window argument range used here
	// (beta <= 20 gives x <= 20, which converges in ~35 terms).
	besselMaxTerms = 50

	// Terminate the series once a term no longer contributes at
	// float64 precision.
	besselConvergenceEps = 1e-20
)

// Sinc evaluation constants.
const (
	// Threshold below which sinc(x) returns its limit value 1.0
	// instead of evaluating the 0/0 form.
	sincSingularityThreshold = 1e-10
)

// Kaiser window formula constants
// From Kaiser & Schafer's empirical formulas
const (
	// Attenuation thresholds for β calculation
	kaiserAttHigh   = 50.0 // High attenuation threshold (dB)
	kaiserAttMedium = 21.0 // Medium attenuation threshold (dB)

	// Kaiser β formula coefficients
	kaiserBetaHighCoeff1 = 0.1102 // Coefficient for high attenuation
	kaiserBetaHighOffset = 8.7    // Offset for high attenuation

	kaiserBetaMediumCoeff1 = 0.5842  // Primary coefficient for medium attenuation
	kaiserBetaMediumPower  = 0.4     // Power for medium attenuation formula
	kaiserBetaMediumCoeff2 = 0.07886 // Secondary coefficient for medium attenuation
)

// Common division constants
const (
	halfDivisor = 2.0 // Division by 2
)
