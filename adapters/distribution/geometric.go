package distribution

import (
	"math"

	"distcalc/domain/dist"
	"distcalc/internal/mathx"
)

// GeometricDistribution implements the Geometric distribution with parameter
// [probability], counting trials until the first success (support k >= 1).
type GeometricDistribution struct{}

// NewGeometricDistribution creates the Geometric distribution implementation
func NewGeometricDistribution() *GeometricDistribution {
	return &GeometricDistribution{}
}

func (d *GeometricDistribution) Kind() dist.Kind { return dist.Geometric }

// PDF computes the PMF (1-p)^(k-1)·p for k = 1, 2, ...
func (d *GeometricDistribution) PDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	p := params[0]

	if !mathx.IsFinite(x) {
		return pdfTail(x)
	}
	if x < 1.0 || math.Floor(x) != x {
		return 0.0
	}

	k := int(x)
	if p == 1.0 {
		if k == 1 {
			return 1.0
		}
		return 0.0
	}

	logProb := float64(k-1)*mathx.SafeLog(1.0-p) + mathx.SafeLog(p)
	return mathx.SafeExp(logProb)
}

// CDF computes the closed form 1 - (1-p)^k
func (d *GeometricDistribution) CDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	p := params[0]

	if !mathx.IsFinite(x) {
		return cdfTail(x)
	}
	if x < 1.0 {
		return 0.0
	}

	k := int(math.Floor(x))
	if p == 1.0 {
		return 1.0
	}

	logComplement := float64(k) * mathx.SafeLog(1.0-p)
	return 1.0 - mathx.SafeExp(logComplement)
}

// Validate requires p in (0, 1]
func (d *GeometricDistribution) Validate(params dist.ParameterSet) bool {
	if len(params) != 1 {
		return false
	}
	p := params[0]
	return mathx.IsFinite(p) && p > 0.0 && p <= 1.0
}
