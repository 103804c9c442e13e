package distribution

import (
	"math"

	"distcalc/domain/dist"
	"distcalc/internal/mathx"
)

// FDist implements the F-distribution with parameters
// [numeratorDF, denominatorDF].
type FDist struct{}

// NewFDistribution creates the F-distribution implementation
func NewFDistribution() *FDist {
	return &FDist{}
}

func (d *FDist) Kind() dist.Kind { return dist.FDistribution }

// PDF computes the F density in log space:
// Γ((ν₁+ν₂)/2)/(Γ(ν₁/2)Γ(ν₂/2)) · (ν₁/ν₂)^(ν₁/2) · x^(ν₁/2-1) · (1+(ν₁/ν₂)x)^(-(ν₁+ν₂)/2)
func (d *FDist) PDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	nu1, nu2 := params[0], params[1]

	if !mathx.IsFinite(x) {
		return pdfTail(x)
	}
	if x <= 0.0 {
		return 0.0
	}

	halfNu1 := nu1 / 2.0
	halfNu2 := nu2 / 2.0
	halfSum := (nu1 + nu2) / 2.0

	logNorm := mathx.LogGamma(halfSum) - mathx.LogGamma(halfNu1) - mathx.LogGamma(halfNu2)
	logRatioPower := halfNu1 * mathx.SafeLog(nu1/nu2)
	logXPower := (halfNu1 - 1.0) * mathx.SafeLog(x)
	logDenominator := -halfSum * mathx.SafeLog(1.0+(nu1/nu2)*x)

	return mathx.SafeExp(logNorm + logRatioPower + logXPower + logDenominator)
}

// CDF computes I_z(ν₁/2, ν₂/2) with z = ν₁x/(ν₁x + ν₂)
func (d *FDist) CDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	nu1, nu2 := params[0], params[1]

	if !mathx.IsFinite(x) {
		return cdfTail(x)
	}
	if x <= 0.0 {
		return 0.0
	}

	z := (nu1 * x) / (nu1*x + nu2)
	return mathx.RegIncompleteBeta(z, nu1/2.0, nu2/2.0)
}

// Validate requires both degrees of freedom positive and finite
func (d *FDist) Validate(params dist.ParameterSet) bool {
	if len(params) != 2 {
		return false
	}
	nu1, nu2 := params[0], params[1]
	return mathx.IsFinite(nu1) && nu1 > 0.0 && mathx.IsFinite(nu2) && nu2 > 0.0
}
