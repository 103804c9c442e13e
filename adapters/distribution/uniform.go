package distribution

import (
	"math"

	"distcalc/domain/dist"
	"distcalc/internal/mathx"
)

// UniformDistribution implements the continuous Uniform distribution on
// [a, b] with parameters [a, b].
type UniformDistribution struct{}

// NewUniformDistribution creates the Uniform distribution implementation
func NewUniformDistribution() *UniformDistribution {
	return &UniformDistribution{}
}

func (d *UniformDistribution) Kind() dist.Kind { return dist.Uniform }

// PDF is 1/(b-a) on [a,b] and 0 elsewhere
func (d *UniformDistribution) PDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	a, b := params[0], params[1]

	if !mathx.IsFinite(x) {
		return pdfTail(x)
	}

	if x >= a && x <= b {
		return 1.0 / (b - a)
	}
	return 0.0
}

// CDF is piecewise linear: 0 below a, (x-a)/(b-a) on [a,b), 1 from b up
func (d *UniformDistribution) CDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	a, b := params[0], params[1]

	if !mathx.IsFinite(x) {
		return cdfTail(x)
	}

	if x < a {
		return 0.0
	}
	if x >= b {
		return 1.0
	}
	return (x - a) / (b - a)
}

// Validate requires finite bounds with a < b
func (d *UniformDistribution) Validate(params dist.ParameterSet) bool {
	if len(params) != 2 {
		return false
	}
	a, b := params[0], params[1]
	return mathx.IsFinite(a) && mathx.IsFinite(b) && a < b
}
