package distribution

import (
	"math"

	"distcalc/domain/dist"
	"distcalc/internal/mathx"
)

// RayleighDistribution implements the Rayleigh distribution with parameter
// [scale].
type RayleighDistribution struct{}

// NewRayleighDistribution creates the Rayleigh distribution implementation
func NewRayleighDistribution() *RayleighDistribution {
	return &RayleighDistribution{}
}

func (d *RayleighDistribution) Kind() dist.Kind { return dist.Rayleigh }

// PDF computes (x/scale²)·exp(-x²/(2·scale²)) for x >= 0
func (d *RayleighDistribution) PDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	scale := params[0]

	if !mathx.IsFinite(x) {
		return pdfTail(x)
	}
	if x <= 0.0 {
		return 0.0
	}

	scaleSq := scale * scale
	logDensity := mathx.SafeLog(x) - 2.0*mathx.SafeLog(scale) - (x*x)/(2.0*scaleSq)
	return mathx.SafeExp(logDensity)
}

// CDF computes 1 - exp(-x²/(2·scale²)) for x >= 0
func (d *RayleighDistribution) CDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	scale := params[0]

	if !mathx.IsFinite(x) {
		return cdfTail(x)
	}
	if x < 0.0 {
		return 0.0
	}

	scaleSq := scale * scale
	return 1.0 - mathx.SafeExp(-(x*x)/(2.0*scaleSq))
}

// Validate requires a positive finite scale
func (d *RayleighDistribution) Validate(params dist.ParameterSet) bool {
	if len(params) != 1 {
		return false
	}
	scale := params[0]
	return mathx.IsFinite(scale) && scale > 0.0
}
