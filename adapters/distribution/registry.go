package distribution

import (
	"distcalc/domain/dist"
)

// Entry binds one kind's metadata to its implementation
type Entry struct {
	Kind     dist.Kind
	Metadata dist.Metadata
	Impl     Distribution
}

// registry is the build-once lookup table, indexed by kind. Read-only after
// package initialization; safe to share across concurrent callers.
var registry = buildRegistry()

func buildRegistry() [dist.KindCount]Entry {
	var table [dist.KindCount]Entry

	add := func(impl Distribution, description string, category dist.Category, names []string, ranges []dist.Range) {
		k := impl.Kind()
		table[k] = Entry{
			Kind: k,
			Metadata: dist.Metadata{
				Name:        k.String(),
				Description: description,
				Category:    category,
				ParamNames:  names,
				ParamRanges: ranges,
			},
			Impl: impl,
		}
	}

	add(NewNormalDistribution(), "Normal (Gaussian) distribution", dist.Continuous,
		[]string{"mean", "std_dev"},
		[]dist.Range{{Min: -1000.0, Max: 1000.0}, {Min: 0.001, Max: 1000.0}})
	add(NewExponentialDistribution(), "Exponential distribution", dist.Continuous,
		[]string{"lambda"},
		[]dist.Range{{Min: 0.001, Max: 1000.0}})
	add(NewChiSquareDistribution(), "Chi-square distribution", dist.Continuous,
		[]string{"degrees_of_freedom"},
		[]dist.Range{{Min: 1.0, Max: 1000.0}})
	add(NewStudentTDistribution(), "Student's t-distribution", dist.Continuous,
		[]string{"degrees_of_freedom"},
		[]dist.Range{{Min: 1.0, Max: 1000.0}})
	add(NewFDistribution(), "F-distribution", dist.Continuous,
		[]string{"df_numerator", "df_denominator"},
		[]dist.Range{{Min: 1.0, Max: 1000.0}, {Min: 1.0, Max: 1000.0}})
	add(NewGeometricDistribution(), "Geometric distribution", dist.Discrete,
		[]string{"probability"},
		[]dist.Range{{Min: 0.001, Max: 1.0}})
	add(NewHypergeometricDistribution(), "Hypergeometric distribution", dist.Discrete,
		[]string{"population_size", "success_states", "sample_size"},
		[]dist.Range{{Min: 1.0, Max: 10000.0}, {Min: 0.0, Max: 10000.0}, {Min: 1.0, Max: 10000.0}})
	add(NewBinomialDistribution(), "Binomial distribution", dist.Discrete,
		[]string{"trials", "probability"},
		[]dist.Range{{Min: 1.0, Max: 10000.0}, {Min: 0.0, Max: 1.0}})
	add(NewNegativeBinomialDistribution(), "Negative binomial distribution", dist.Discrete,
		[]string{"successes", "probability"},
		[]dist.Range{{Min: 1.0, Max: 10000.0}, {Min: 0.001, Max: 1.0}})
	add(NewPoissonDistribution(), "Poisson distribution", dist.Discrete,
		[]string{"lambda"},
		[]dist.Range{{Min: 0.001, Max: 1000.0}})
	add(NewUniformDistribution(), "Continuous uniform distribution", dist.Continuous,
		[]string{"a", "b"},
		[]dist.Range{{Min: -1000.0, Max: 1000.0}, {Min: -1000.0, Max: 1000.0}})
	add(NewGammaDistribution(), "Gamma distribution", dist.Continuous,
		[]string{"shape", "scale"},
		[]dist.Range{{Min: 0.001, Max: 1000.0}, {Min: 0.001, Max: 1000.0}})
	add(NewBetaDistribution(), "Beta distribution", dist.Continuous,
		[]string{"alpha", "beta"},
		[]dist.Range{{Min: 0.001, Max: 1000.0}, {Min: 0.001, Max: 1000.0}})
	add(NewWeibullDistribution(), "Weibull distribution", dist.Continuous,
		[]string{"shape", "scale"},
		[]dist.Range{{Min: 0.001, Max: 1000.0}, {Min: 0.001, Max: 1000.0}})
	add(NewParetoDistribution(), "Pareto distribution", dist.Continuous,
		[]string{"scale", "shape"},
		[]dist.Range{{Min: 0.001, Max: 1000.0}, {Min: 0.001, Max: 1000.0}})
	add(NewRayleighDistribution(), "Rayleigh distribution", dist.Continuous,
		[]string{"scale"},
		[]dist.Range{{Min: 0.001, Max: 1000.0}})

	return table
}

// Lookup returns the entry for a kind; ok is false for unknown kinds.
func Lookup(k dist.Kind) (Entry, bool) {
	if !k.Valid() {
		return Entry{}, false
	}
	return registry[k], true
}

// Metadata returns the immutable metadata for a kind
func Metadata(k dist.Kind) (dist.Metadata, bool) {
	e, ok := Lookup(k)
	if !ok {
		return dist.Metadata{}, false
	}
	return e.Metadata, true
}

// All returns every registry entry in kind order
func All() []Entry {
	out := make([]Entry, 0, dist.KindCount)
	for k := dist.Normal; k < dist.KindCount; k++ {
		out = append(out, registry[k])
	}
	return out
}

// ByCategory returns the entries of one category in kind order
func ByCategory(c dist.Category) []Entry {
	var out []Entry
	for k := dist.Normal; k < dist.KindCount; k++ {
		if registry[k].Metadata.Category == c {
			out = append(out, registry[k])
		}
	}
	return out
}

// Count returns the total number of registered kinds
func Count() int { return int(dist.KindCount) }

// CategoryCount returns the number of kinds in one category
func CategoryCount(c dist.Category) int { return len(ByCategory(c)) }
