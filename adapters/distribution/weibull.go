package distribution

import (
	"math"

	"distcalc/domain/dist"
	"distcalc/internal/mathx"
)

// WeibullDistribution implements the Weibull distribution with parameters
// [shape, scale].
type WeibullDistribution struct{}

// NewWeibullDistribution creates the Weibull distribution implementation
func NewWeibullDistribution() *WeibullDistribution {
	return &WeibullDistribution{}
}

func (d *WeibullDistribution) Kind() dist.Kind { return dist.Weibull }

// PDF computes (shape/scale)·(x/scale)^(shape-1)·exp(-(x/scale)^shape) in
// log space, with the same x=0 limit structure as the Gamma density.
func (d *WeibullDistribution) PDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	shape, scale := params[0], params[1]

	if !mathx.IsFinite(x) {
		return pdfTail(x)
	}
	if x < 0.0 {
		return 0.0
	}

	if x == 0.0 {
		switch {
		case shape == 1.0:
			return 1.0 / scale
		case shape > 1.0:
			return 0.0
		default:
			return math.Inf(1)
		}
	}

	logDensity := mathx.SafeLog(shape) - mathx.SafeLog(scale) +
		(shape-1.0)*(mathx.SafeLog(x)-mathx.SafeLog(scale)) -
		math.Pow(x/scale, shape)
	return mathx.SafeExp(logDensity)
}

// CDF computes 1 - exp(-(x/scale)^shape)
func (d *WeibullDistribution) CDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	shape, scale := params[0], params[1]

	if !mathx.IsFinite(x) {
		return cdfTail(x)
	}
	if x < 0.0 {
		return 0.0
	}

	return 1.0 - mathx.SafeExp(-math.Pow(x/scale, shape))
}

// Validate requires positive finite shape and scale
func (d *WeibullDistribution) Validate(params dist.ParameterSet) bool {
	if len(params) != 2 {
		return false
	}
	shape, scale := params[0], params[1]
	return mathx.IsFinite(shape) && shape > 0.0 && mathx.IsFinite(scale) && scale > 0.0
}
