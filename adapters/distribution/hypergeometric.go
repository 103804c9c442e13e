package distribution

import (
	"math"

	"distcalc/domain/dist"
	"distcalc/internal/mathx"
)

// HypergeometricDistribution implements the Hypergeometric distribution with
// parameters [populationSize, successStates, sampleSize]. The support is
// k in [max(0, n-(N-K)), min(n, K)].
type HypergeometricDistribution struct{}

// NewHypergeometricDistribution creates the Hypergeometric distribution implementation
func NewHypergeometricDistribution() *HypergeometricDistribution {
	return &HypergeometricDistribution{}
}

func (d *HypergeometricDistribution) Kind() dist.Kind { return dist.Hypergeometric }

func (d *HypergeometricDistribution) support(params dist.ParameterSet) (kMin, kMax int) {
	N, K, n := int(params[0]), int(params[1]), int(params[2])
	kMin = max(0, n-(N-K))
	kMax = min(n, K)
	return kMin, kMax
}

// PDF computes the PMF C(K,k)·C(N-K,n-k)/C(N,n) in log space
func (d *HypergeometricDistribution) PDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}
	N, K, n := int(params[0]), int(params[1]), int(params[2])

	if !mathx.IsFinite(x) {
		return pdfTail(x)
	}
	if x < 0.0 || math.Floor(x) != x {
		return 0.0
	}

	k := int(x)
	kMin, kMax := d.support(params)
	if k < kMin || k > kMax {
		return 0.0
	}

	logProb := mathx.LogCombination(K, k) +
		mathx.LogCombination(N-K, n-k) -
		mathx.LogCombination(N, n)
	return mathx.SafeExp(logProb)
}

// CDF sums the PMF over the support from kMin through floor(x)
func (d *HypergeometricDistribution) CDF(x float64, params dist.ParameterSet) float64 {
	if !d.Validate(params) {
		return math.NaN()
	}

	if !mathx.IsFinite(x) {
		return cdfTail(x)
	}

	k := int(math.Floor(x))
	kMin, kMax := d.support(params)

	if k < kMin {
		return 0.0
	}
	if k >= kMax {
		return 1.0
	}

	cdf := 0.0
	for i := kMin; i <= k; i++ {
		cdf += d.PDF(float64(i), params)
	}
	return cdf
}

// Validate requires non-negative integers with N >= 1, K <= N, n <= N
func (d *HypergeometricDistribution) Validate(params dist.ParameterSet) bool {
	if len(params) != 3 {
		return false
	}
	N, K, n := params[0], params[1], params[2]

	if !mathx.IsNonNegativeInteger(N) || !mathx.IsNonNegativeInteger(K) || !mathx.IsNonNegativeInteger(n) {
		return false
	}
	if N < 1.0 {
		return false
	}
	return K <= N && n <= N
}
