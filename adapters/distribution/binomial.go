package distribution

import (
	"math"

	"distcalc/domain/dist"
	"distcalc/internal/mathx"
)

// BinomialDistribution implements the Binomial distribution with parameters
// [trials, probability].
type BinomialDistribution struct{}

// NewBinomialDistribution creates the Binomial distribution implementation
func NewBinomialDistribution() *BinomialDistribution {
	return &BinomialDistribution{}
}

func (d *BinomialDistribution) Kind() dist.Kind { return dist.Binomial }

// PDF computes the PMF C(n,k)·p^k·(1-p)^(n-k) in log space
func (d *BinomialDistribution) PDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	n := int(params[0])
	p := params[1]

	if !mathx.IsFinite(x) {
		return pdfTail(x)
	}
	if x < 0.0 || math.Floor(x) != x {
		return 0.0
	}

	k := int(x)
	if k > n {
		return 0.0
	}

	// Degenerate endpoints put all mass at one point.
	if p == 0.0 {
		if k == 0 {
			return 1.0
		}
		return 0.0
	}
	if p == 1.0 {
		if k == n {
			return 1.0
		}
		return 0.0
	}

	logProb := mathx.LogCombination(n, k) +
		float64(k)*mathx.SafeLog(p) +
		float64(n-k)*mathx.SafeLog(1.0-p)
	return mathx.SafeExp(logProb)
}

// CDF sums the PMF directly for small n and switches to the continuity-
// corrected normal approximation once n >= 30 with n·p·(1-p) >= 9 and at
// least 5 expected successes and failures.
func (d *BinomialDistribution) CDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	n := int(params[0])
	p := params[1]

	if !mathx.IsFinite(x) {
		return cdfTail(x)
	}

	k := int(math.Floor(x))
	if k < 0 {
		return 0.0
	}
	if k >= n {
		return 1.0
	}

	if p == 0.0 {
		return 1.0
	}
	if p == 1.0 {
		return 0.0
	}

	nf := float64(n)
	if n >= 30 && nf*p*(1.0-p) >= 9.0 && nf*p >= 5.0 && nf*(1.0-p) >= 5.0 {
		mean := nf * p
		stdDev := math.Sqrt(nf * p * (1.0 - p))
		// Continuity correction: P(X <= k) ~ Phi((k + 0.5 - mean)/sd)
		return mathx.NormalCDF((float64(k) + 0.5 - mean) / stdDev)
	}

	cdf := 0.0
	for i := 0; i <= k; i++ {
		cdf += d.PDF(float64(i), params)
	}
	return cdf
}

// Validate requires a non-negative integer trial count and p in [0,1]
func (d *BinomialDistribution) Validate(params dist.ParameterSet) bool {
	if len(params) != 2 {
		return false
	}
	n, p := params[0], params[1]

	if !mathx.IsNonNegativeInteger(n) {
		return false
	}
	return mathx.IsProbability(p)
}
