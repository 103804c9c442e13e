package distribution

import (
	"math"

	"distcalc/domain/dist"
	"distcalc/internal/mathx"
)

// ExponentialDistribution implements the Exponential distribution with
// rate parameter [lambda].
type ExponentialDistribution struct{}

// NewExponentialDistribution creates the Exponential distribution implementation
func NewExponentialDistribution() *ExponentialDistribution {
	return &ExponentialDistribution{}
}

func (d *ExponentialDistribution) Kind() dist.Kind { return dist.Exponential }

// PDF computes λ·exp(-λx) for x >= 0, 0 otherwise
func (d *ExponentialDistribution) PDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	lambda := params[0]

	if !mathx.IsFinite(x) {
		return pdfTail(x)
	}
	if x < 0.0 {
		return 0.0
	}

	return lambda * mathx.SafeExp(-lambda*x)
}

// CDF computes 1 - exp(-λx) for x >= 0, 0 otherwise
func (d *ExponentialDistribution) CDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	lambda := params[0]

	if !mathx.IsFinite(x) {
		return cdfTail(x)
	}
	if x < 0.0 {
		return 0.0
	}

	return 1.0 - mathx.SafeExp(-lambda*x)
}

// Validate requires a positive finite rate
func (d *ExponentialDistribution) Validate(params dist.ParameterSet) bool {
	if len(params) != 1 {
		return false
	}
	lambda := params[0]
	return mathx.IsFinite(lambda) && lambda > 0.0
}
