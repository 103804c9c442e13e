package distribution

import (
	"math"

	"distcalc/domain/dist"
	"distcalc/internal/mathx"
)

// BetaDistribution implements the Beta distribution on [0,1] with
// parameters [alpha, beta].
type BetaDistribution struct{}

// NewBetaDistribution creates the Beta distribution implementation
func NewBetaDistribution() *BetaDistribution {
	return &BetaDistribution{}
}

func (d *BetaDistribution) Kind() dist.Kind { return dist.Beta }

// PDF computes x^(α-1)·(1-x)^(β-1) / B(α,β) in log space. The endpoints
// take the limiting values of the closed form: f(0)=β when α=1, f(1)=α
// when β=1, divergent below 1 and zero above.
func (d *BetaDistribution) PDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	alpha, beta := params[0], params[1]

	if !mathx.IsFinite(x) {
		return pdfTail(x)
	}
	if x < 0.0 || x > 1.0 {
		return 0.0
	}

	if x == 0.0 {
		switch {
		case alpha < 1.0:
			return math.Inf(1)
		case alpha == 1.0:
			// f(0) = (1-x)^(β-1) / B(1,β) = β
			return beta
		default:
			return 0.0
		}
	}
	if x == 1.0 {
		switch {
		case beta < 1.0:
			return math.Inf(1)
		case beta == 1.0:
			// f(1) = x^(α-1) / B(α,1) = α
			return alpha
		default:
			return 0.0
		}
	}

	logDensity := (alpha-1.0)*mathx.SafeLog(x) + (beta-1.0)*mathx.SafeLog(1.0-x) -
		mathx.LogBeta(alpha, beta)
	return mathx.SafeExp(logDensity)
}

// CDF computes I_x(α,β) via the regularized incomplete beta function
func (d *BetaDistribution) CDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	alpha, beta := params[0], params[1]

	if !mathx.IsFinite(x) {
		return cdfTail(x)
	}
	if x <= 0.0 {
		return 0.0
	}
	if x >= 1.0 {
		return 1.0
	}

	return mathx.RegIncompleteBeta(x, alpha, beta)
}

// Validate requires positive finite alpha and beta
func (d *BetaDistribution) Validate(params dist.ParameterSet) bool {
	if len(params) != 2 {
		return false
	}
	alpha, beta := params[0], params[1]
	return mathx.IsFinite(alpha) && alpha > 0.0 && mathx.IsFinite(beta) && beta > 0.0
}
