package distribution

import (
	"math"

	"distcalc/domain/dist"
	"distcalc/internal/mathx"
)

// poissonNormalApprox is the rate above which the CDF uses the continuity-
// corrected normal approximation instead of the recurrence sum.
const poissonNormalApprox = 30.0

// PoissonDistribution implements the Poisson distribution with parameter
// [lambda].
type PoissonDistribution struct{}

// NewPoissonDistribution creates the Poisson distribution implementation
func NewPoissonDistribution() *PoissonDistribution {
	return &PoissonDistribution{}
}

func (d *PoissonDistribution) Kind() dist.Kind { return dist.Poisson }

// PDF computes the PMF λ^k·e^(-λ)/k! in log space
func (d *PoissonDistribution) PDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	lambda := params[0]

	if !mathx.IsFinite(x) {
		return pdfTail(x)
	}
	if x < 0.0 || math.Floor(x) != x {
		return 0.0
	}

	k := int(x)
	if k == 0 {
		return mathx.SafeExp(-lambda)
	}

	logProb := float64(k)*mathx.SafeLog(lambda) - lambda - mathx.LogFactorial(k)
	return mathx.SafeExp(logProb)
}

// CDF sums the PMF through the multiplicative recurrence
// P(i) = P(i-1)·λ/i with early exit on negligible terms; large λ uses the
// continuity-corrected normal approximation.
func (d *PoissonDistribution) CDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	lambda := params[0]

	if !mathx.IsFinite(x) {
		return cdfTail(x)
	}

	k := int(math.Floor(x))
	if k < 0 {
		return 0.0
	}

	if lambda >= poissonNormalApprox {
		stdDev := math.Sqrt(lambda)
		return mathx.NormalCDF((float64(k) + 0.5 - lambda) / stdDev)
	}

	currentPMF := mathx.SafeExp(-lambda) // P(X = 0)
	cdf := currentPMF

	for i := 1; i <= k; i++ {
		currentPMF *= lambda / float64(i)
		cdf += currentPMF
		if currentPMF < mathx.NegligibleTerm {
			break
		}
	}
	return cdf
}

// Validate requires a positive finite rate
func (d *PoissonDistribution) Validate(params dist.ParameterSet) bool {
	if len(params) != 1 {
		return false
	}
	lambda := params[0]
	return mathx.IsFinite(lambda) && lambda > 0.0
}
