// Package mathx implements the special functions behind the distribution
// engine: Lanczos gamma, the A&S error function family, and the regularized
// incomplete gamma/beta integrals. Everything is pure and deterministic;
// every series and continued fraction runs under a fixed iteration cap.
package mathx

import "math"

// Convergence policy shared by every series and continued fraction in this
// package. The negligible-term cutoff is separate: it bounds residual tail
// mass in discrete CDF summations, not iterate convergence.
const (
	maxIterations      = 200
	convergenceEpsilon = 1e-12

	// NegligibleTerm is the early-exit threshold for discrete CDF recurrences.
	NegligibleTerm = 1e-15

	// expClamp bounds SafeExp arguments; beyond it float64 exp overflows
	// or underflows anyway.
	expClamp = 700.0

	// tiny guards Lentz continued-fraction denominators against zero.
	tiny = 1e-30
)

// SafeExp is exp with overflow and underflow protection
func SafeExp(x float64) float64 {
	if x > expClamp {
		return math.Inf(1)
	}
	if x < -expClamp {
		return 0.0
	}
	return math.Exp(x)
}

// SafeLog is log with domain checking: non-positive input yields NaN
// rather than -Inf or a domain crash downstream.
func SafeLog(x float64) float64 {
	if x <= 0.0 {
		return math.NaN()
	}
	return math.Log(x)
}

// IsFinite reports whether x is neither NaN nor infinite
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsProbability reports whether p is a finite value in [0,1]
func IsProbability(p float64) bool {
	return IsFinite(p) && p >= 0.0 && p <= 1.0
}

// IsPositiveInteger reports whether x is a finite positive whole number
func IsPositiveInteger(x float64) bool {
	return IsFinite(x) && x > 0.0 && math.Floor(x) == x
}

// IsNonNegativeInteger reports whether x is a finite whole number >= 0
func IsNonNegativeInteger(x float64) bool {
	return IsFinite(x) && x >= 0.0 && math.Floor(x) == x
}
