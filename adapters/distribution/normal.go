package distribution

import (
	"math"

	"distcalc/domain/dist"
	"distcalc/internal/mathx"
)

const sqrt2Pi = 2.5066282746310005024

// NormalDistribution implements the Normal (Gaussian) distribution with
// parameters [mean, stdDev].
type NormalDistribution struct{}

// NewNormalDistribution creates the Normal distribution implementation
func NewNormalDistribution() *NormalDistribution {
	return &NormalDistribution{}
}

func (d *NormalDistribution) Kind() dist.Kind { return dist.Normal }

// PDF computes (1/(σ√(2π))) · exp(-0.5·((x-μ)/σ)²)
func (d *NormalDistribution) PDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	mean, stdDev := params[0], params[1]

	if !mathx.IsFinite(x) {
		return pdfTail(x)
	}

	z := (x - mean) / stdDev
	return mathx.SafeExp(-0.5*z*z) / (stdDev * sqrt2Pi)
}

// CDF computes 0.5·(1 + erf((x-μ)/(σ√2)))
func (d *NormalDistribution) CDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	mean, stdDev := params[0], params[1]

	if !mathx.IsFinite(x) {
		return cdfTail(x)
	}

	return mathx.NormalCDF((x - mean) / stdDev)
}

// Validate requires a finite mean and a positive finite standard deviation
func (d *NormalDistribution) Validate(params dist.ParameterSet) bool {
	if len(params) != 2 {
		return false
	}
	mean, stdDev := params[0], params[1]
	return mathx.IsFinite(mean) && mathx.IsFinite(stdDev) && stdDev > 0.0
}
