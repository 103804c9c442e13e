package distribution

import (
	"math"

	"distcalc/domain/dist"
	"distcalc/internal/mathx"
)

// NegativeBinomialDistribution implements the Negative Binomial distribution
// with parameters [successes, probability], counting failures before the
// r-th success.
type NegativeBinomialDistribution struct{}

// NewNegativeBinomialDistribution creates the Negative Binomial distribution implementation
func NewNegativeBinomialDistribution() *NegativeBinomialDistribution {
	return &NegativeBinomialDistribution{}
}

func (d *NegativeBinomialDistribution) Kind() dist.Kind { return dist.NegativeBinomial }

// PDF computes the PMF C(k+r-1,k)·p^r·(1-p)^k in log space
func (d *NegativeBinomialDistribution) PDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	r := int(params[0])
	p := params[1]

	if !mathx.IsFinite(x) {
		return pdfTail(x)
	}
	if x < 0.0 || math.Floor(x) != x {
		return 0.0
	}

	k := int(x)
	if p == 1.0 {
		// Immediate success: all mass at zero failures.
		if k == 0 {
			return 1.0
		}
		return 0.0
	}

	logProb := mathx.LogCombination(k+r-1, k) +
		float64(r)*mathx.SafeLog(p) +
		float64(k)*mathx.SafeLog(1.0-p)
	return mathx.SafeExp(logProb)
}

// CDF sums the PMF through the recurrence
// P(i) = P(i-1)·(i+r-1)·(1-p)/i with early exit on negligible terms
func (d *NegativeBinomialDistribution) CDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	r := int(params[0])
	p := params[1]

	if !mathx.IsFinite(x) {
		return cdfTail(x)
	}

	k := int(math.Floor(x))
	if k < 0 {
		return 0.0
	}
	if p == 1.0 {
		return 1.0
	}

	currentPMF := d.PDF(0.0, params)
	cdf := currentPMF

	for i := 1; i <= k; i++ {
		currentPMF *= float64(i+r-1) * (1.0 - p) / float64(i)
		cdf += currentPMF
		if currentPMF < mathx.NegligibleTerm {
			break
		}
	}
	return cdf
}

// Validate requires a positive integer success count and p in (0, 1]
func (d *NegativeBinomialDistribution) Validate(params dist.ParameterSet) bool {
	if len(params) != 2 {
		return false
	}
	r, p := params[0], params[1]

	if !mathx.IsPositiveInteger(r) {
		return false
	}
	return mathx.IsFinite(p) && p > 0.0 && p <= 1.0
}
