package distribution

import (
	"math"

	"distcalc/domain/dist"
	"distcalc/internal/mathx"
)

// ChiSquareDistribution implements the Chi-Square distribution with
// parameter [degreesOfFreedom].
type ChiSquareDistribution struct{}

// NewChiSquareDistribution creates the Chi-Square distribution implementation
func NewChiSquareDistribution() *ChiSquareDistribution {
	return &ChiSquareDistribution{}
}

func (d *ChiSquareDistribution) Kind() dist.Kind { return dist.ChiSquare }

// PDF computes (1/(2^(k/2)·Γ(k/2))) · x^(k/2-1) · exp(-x/2) in log space.
// At x=0 the density diverges for k<2, equals the limiting value of the
// closed form for k=2, and vanishes for k>2.
func (d *ChiSquareDistribution) PDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	k := params[0]

	if !mathx.IsFinite(x) {
		return pdfTail(x)
	}
	if x < 0.0 {
		return 0.0
	}

	halfK := k / 2.0
	logCoefficient := -halfK*math.Ln2 - mathx.LogGamma(halfK)

	if x == 0.0 {
		switch {
		case k < 2.0:
			return math.Inf(1)
		case k == 2.0:
			// x^(k/2-1) -> 1 as x -> 0, leaving only the coefficient:
			// exp(-ln2 - lnΓ(1)) = 1/2.
			return mathx.SafeExp(logCoefficient)
		default:
			return 0.0
		}
	}

	logPower := (halfK - 1.0) * mathx.SafeLog(x)
	return mathx.SafeExp(logCoefficient + logPower - x/2.0)
}

// CDF computes P(k/2, x/2) via the regularized incomplete gamma function
func (d *ChiSquareDistribution) CDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	k := params[0]

	if !mathx.IsFinite(x) {
		return cdfTail(x)
	}
	if x <= 0.0 {
		return 0.0
	}

	return mathx.RegIncompleteGamma(k/2.0, x/2.0)
}

// Validate requires positive finite degrees of freedom
func (d *ChiSquareDistribution) Validate(params dist.ParameterSet) bool {
	if len(params) != 1 {
		return false
	}
	k := params[0]
	return mathx.IsFinite(k) && k > 0.0
}
