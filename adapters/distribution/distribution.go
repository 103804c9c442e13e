// Package distribution implements the sixteen probability distributions
// behind one uniform contract. Each kind is an interface object constructed
// once and bound into the registry; all evaluation is pure and synchronous.
package distribution

import (
	"math"

	"distcalc/domain/dist"
)

// Distribution is the uniform per-kind contract. Invalid parameters yield
// NaN from PDF/CDF and false from Validate; inputs outside the support yield
// a zero density, never NaN.
type Distribution interface {
	Kind() dist.Kind
	PDF(x float64, params dist.ParameterSet) float64
	CDF(x float64, params dist.ParameterSet) float64
	Validate(params dist.ParameterSet) bool
}

// cdfTail resolves a non-finite CDF input: 0 at -Inf, 1 at +Inf, NaN for NaN.
func cdfTail(x float64) float64 {
	if math.IsInf(x, -1) {
		return 0.0
	}
	if math.IsInf(x, 1) {
		return 1.0
	}
	return math.NaN()
}

// pdfTail resolves a non-finite PDF input: densities vanish at both
// infinities, NaN stays NaN.
func pdfTail(x float64) float64 {
	if math.IsInf(x, 0) {
		return 0.0
	}
	return math.NaN()
}
