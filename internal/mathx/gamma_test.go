package mathx

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestGamma_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
		tol  float64
	}{
		{"half", 0.5, math.Sqrt(math.Pi), 1e-12},
		{"one", 1.0, 1.0, 1e-12},
		{"two", 2.0, 1.0, 1e-12},
		{"five", 5.0, 24.0, 1e-9},
		{"ten", 10.0, 362880.0, 1e-4},
		{"reflection_region", 0.1, 9.513507698668732, 1e-9},
		{"one_and_half", 1.5, 0.5 * math.Sqrt(math.Pi), 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gamma(tt.x)
			if !approxEqual(got, tt.want, tt.tol) {
				t.Errorf("Gamma(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestLogGamma_AgreesWithStdlib(t *testing.T) {
	for _, x := range []float64{0.1, 0.5, 1.0, 2.5, 10.0, 100.0, 1000.0, 1e6} {
		want, _ := math.Lgamma(x)
		got := LogGamma(x)
		if math.Abs(got-want) > 1e-8*math.Max(1.0, math.Abs(want)) {
			t.Errorf("LogGamma(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestLogGamma_FiniteWhereGammaOverflows(t *testing.T) {
	if !math.IsInf(Gamma(200.0), 1) {
		t.Error("Gamma(200) should overflow to +Inf")
	}
	if v := LogGamma(200.0); math.IsInf(v, 0) || math.IsNaN(v) {
		t.Errorf("LogGamma(200) should be finite, got %v", v)
	}
}

func TestFactorial(t *testing.T) {
	if got := Factorial(0); got != 1.0 {
		t.Errorf("Factorial(0) = %v, want 1", got)
	}
	if got := Factorial(12); got != 479001600.0 {
		t.Errorf("Factorial(12) = %v, want 479001600", got)
	}
	if got := Factorial(20); !approxEqual(got, 2.43290200817664e18, 1e5) {
		t.Errorf("Factorial(20) = %v", got)
	}
	if got := Factorial(170); math.IsInf(got, 0) {
		t.Error("Factorial(170) should still be finite")
	}
	if got := Factorial(171); !math.IsInf(got, 1) {
		t.Errorf("Factorial(171) = %v, want +Inf", got)
	}
	if got := Factorial(-1); !math.IsNaN(got) {
		t.Errorf("Factorial(-1) = %v, want NaN", got)
	}
}

// Every n! through 170 is representable; the large-n path must stay finite
// all the way up instead of overflowing in an intermediate.
func TestFactorial_FiniteThroughRange(t *testing.T) {
	want150 := 5.713383956445855e262
	if got := Factorial(150); math.Abs(got-want150) > 1e-8*want150 {
		t.Errorf("Factorial(150) = %v, want %v", got, want150)
	}

	prev := Factorial(12)
	for n := 13; n <= 170; n++ {
		got := Factorial(n)
		if math.IsInf(got, 0) || math.IsNaN(got) {
			t.Fatalf("Factorial(%d) = %v, want finite", n, got)
		}
		if got <= prev {
			t.Fatalf("Factorial(%d) = %v not greater than Factorial(%d) = %v", n, got, n-1, prev)
		}
		prev = got
	}
}

func TestLogFactorial_StaysFinite(t *testing.T) {
	want, _ := math.Lgamma(1001.0)
	if got := LogFactorial(1000); !approxEqual(got, want, 1e-6) {
		t.Errorf("LogFactorial(1000) = %v, want %v", got, want)
	}
	if got := LogFactorial(-3); !math.IsNaN(got) {
		t.Errorf("LogFactorial(-3) = %v, want NaN", got)
	}
}

func TestCombination(t *testing.T) {
	tests := []struct {
		n, k int
		want float64
	}{
		{10, 3, 120},
		{10, 7, 120}, // symmetry
		{10, 0, 1},
		{10, 10, 1},
		{10, 11, 0},
		{10, -1, 0},
		{52, 5, 2598960},
	}
	for _, tt := range tests {
		if got := Combination(tt.n, tt.k); !approxEqual(got, tt.want, 1e-6*math.Max(1, tt.want)) {
			t.Errorf("Combination(%d,%d) = %v, want %v", tt.n, tt.k, got, tt.want)
		}
	}

	if got := LogCombination(10, 11); !math.IsInf(got, -1) {
		t.Errorf("LogCombination(10,11) = %v, want -Inf", got)
	}
	if got := LogCombination(500, 250); math.IsInf(got, 0) {
		t.Error("LogCombination(500,250) should be finite in log space")
	}
}

func TestBeta(t *testing.T) {
	if got := Beta(2, 3); !approxEqual(got, 1.0/12.0, 1e-12) {
		t.Errorf("Beta(2,3) = %v, want 1/12", got)
	}
	if got := Beta(0.5, 0.5); !approxEqual(got, math.Pi, 1e-9) {
		t.Errorf("Beta(0.5,0.5) = %v, want pi", got)
	}
	if got := Beta(-1, 2); !math.IsNaN(got) {
		t.Errorf("Beta(-1,2) = %v, want NaN", got)
	}
	if got := LogBeta(0, 1); !math.IsNaN(got) {
		t.Errorf("LogBeta(0,1) = %v, want NaN", got)
	}
}
