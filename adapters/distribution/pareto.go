package distribution

import (
	"math"

	"distcalc/domain/dist"
	"distcalc/internal/mathx"
)

// ParetoDistribution implements the Pareto (Type I) distribution with
// parameters [scale, shape]; the support starts at the scale parameter.
type ParetoDistribution struct{}

// NewParetoDistribution creates the Pareto distribution implementation
func NewParetoDistribution() *ParetoDistribution {
	return &ParetoDistribution{}
}

func (d *ParetoDistribution) Kind() dist.Kind { return dist.Pareto }

// PDF computes shape·scale^shape / x^(shape+1) for x >= scale
func (d *ParetoDistribution) PDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	scale, shape := params[0], params[1]

	if !mathx.IsFinite(x) {
		return pdfTail(x)
	}
	if x < scale {
		return 0.0
	}

	logDensity := mathx.SafeLog(shape) + shape*mathx.SafeLog(scale) -
		(shape+1.0)*mathx.SafeLog(x)
	return mathx.SafeExp(logDensity)
}

// CDF computes 1 - (scale/x)^shape for x >= scale
func (d *ParetoDistribution) CDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	scale, shape := params[0], params[1]

	if !mathx.IsFinite(x) {
		return cdfTail(x)
	}
	if x < scale {
		return 0.0
	}

	return 1.0 - math.Pow(scale/x, shape)
}

// Validate requires positive finite scale and shape
func (d *ParetoDistribution) Validate(params dist.ParameterSet) bool {
	if len(params) != 2 {
		return false
	}
	scale, shape := params[0], params[1]
	return mathx.IsFinite(scale) && scale > 0.0 && mathx.IsFinite(shape) && shape > 0.0
}
