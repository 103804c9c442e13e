package distribution

import (
	"math"
	"testing"

	"distcalc/domain/dist"
)

func impl(t *testing.T, k dist.Kind) Distribution {
	t.Helper()
	e, ok := Lookup(k)
	if !ok {
		t.Fatalf("no registry entry for kind %v", k)
	}
	return e.Impl
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		kind    dist.Kind
		params  dist.ParameterSet
		x       float64
		wantPDF float64
		wantCDF float64
		tol     float64
	}{
		{"standard normal at 0", dist.Normal, dist.ParameterSet{0, 1}, 0.0, 0.3989422804, 0.5, 1e-6},
		{"normal shifted", dist.Normal, dist.ParameterSet{2, 3}, 2.0, 0.1329807601, 0.5, 1e-6},
		{"exponential at origin", dist.Exponential, dist.ParameterSet{2}, 0.0, 2.0, 0.0, 1e-9},
		{"exponential at 1", dist.Exponential, dist.ParameterSet{1.5}, 1.0, 0.3346952402, 0.7768698399, 1e-8},
		{"chi-square df5", dist.ChiSquare, dist.ParameterSet{5}, 3.2, 0.1536890, 0.3308172, 1e-4},
		{"chi-square df2 at 0", dist.ChiSquare, dist.ParameterSet{2}, 0.0, 0.5, 0.0, 1e-9},
		{"t df10 at 0", dist.StudentT, dist.ParameterSet{10}, 0.0, 0.3891084, 0.5, 1e-6},
		{"uniform interior", dist.Uniform, dist.ParameterSet{1, 3}, 2.0, 0.5, 0.5, 1e-12},
		{"uniform below support", dist.Uniform, dist.ParameterSet{1, 3}, 0.0, 0.0, 0.0, 1e-12},
		{"uniform above support", dist.Uniform, dist.ParameterSet{1, 3}, 4.0, 0.0, 1.0, 1e-12},
		{"gamma shape2 scale2", dist.Gamma, dist.ParameterSet{2, 2}, 2.0, 0.1839397206, 0.2642411177, 1e-8},
		{"beta symmetric", dist.Beta, dist.ParameterSet{2, 2}, 0.5, 1.5, 0.5, 1e-9},
		{"weibull shape2", dist.Weibull, dist.ParameterSet{2, 1}, 1.0, 0.7357588823, 0.6321205588, 1e-9},
		{"pareto", dist.Pareto, dist.ParameterSet{1, 2}, 2.0, 0.25, 0.75, 1e-9},
		{"rayleigh", dist.Rayleigh, dist.ParameterSet{1}, 1.0, 0.6065306597, 0.3934693403, 1e-9},
		{"binomial 10 trials", dist.Binomial, dist.ParameterSet{10, 0.3}, 5.0, 0.1029193452, 0.9526510126, 1e-8},
		{"binomial degenerate p=1", dist.Binomial, dist.ParameterSet{10, 1}, 10.0, 1.0, 1.0, 0},
		{"poisson", dist.Poisson, dist.ParameterSet{2.5}, 3.0, 0.2137630, 0.7575761, 1e-6},
		{"geometric first trial", dist.Geometric, dist.ParameterSet{0.5}, 1.0, 0.5, 0.5, 1e-12},
		{"geometric third trial", dist.Geometric, dist.ParameterSet{0.5}, 3.0, 0.125, 0.875, 1e-12},
		{"negative binomial", dist.NegativeBinomial, dist.ParameterSet{3, 0.5}, 2.0, 0.1875, 0.5, 1e-9},
		{"hypergeometric", dist.Hypergeometric, dist.ParameterSet{10, 4, 5}, 2.0, 0.4761904762, 0.7380952381, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := impl(t, tt.kind)
			if got := d.PDF(tt.x, tt.params); math.Abs(got-tt.wantPDF) > tt.tol {
				t.Errorf("PDF(%v) = %v, want %v", tt.x, got, tt.wantPDF)
			}
			if got := d.CDF(tt.x, tt.params); math.Abs(got-tt.wantCDF) > tt.tol {
				t.Errorf("CDF(%v) = %v, want %v", tt.x, got, tt.wantCDF)
			}
		})
	}
}
