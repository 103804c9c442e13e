package mathx

import (
	"math"
	"testing"
)

func TestErf_KnownValues(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0.0, 0.0},
		{0.5, 0.5204998778},
		{1.0, 0.8427007929},
		{2.0, 0.9953222650},
		{3.0, 0.9999779095},
	}
	// The rational approximation carries a few units in the seventh
	// decimal place, so comparisons stay at 1e-6.
	for _, tt := range tests {
		if got := Erf(tt.x); !approxEqual(got, tt.want, 1e-6) {
			t.Errorf("Erf(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestErf_Antisymmetry(t *testing.T) {
	for _, x := range []float64{0.1, 0.7, 1.3, 2.2, 4.0} {
		if got, want := Erf(-x), -Erf(x); got != want {
			t.Errorf("Erf(-%v) = %v, want %v", x, got, want)
		}
	}
}

func TestErfc_Complement(t *testing.T) {
	for _, x := range []float64{-2.0, -0.5, 0.0, 0.5, 2.0} {
		if got, want := Erfc(x), 1.0-Erf(x); !approxEqual(got, want, 1e-15) {
			t.Errorf("Erfc(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestErfInv_RoundTrip(t *testing.T) {
	for x := -2.0; x <= 2.0; x += 0.25 {
		y := Erf(x)
		back := ErfInv(y)
		if !approxEqual(back, x, 1e-4) {
			t.Errorf("ErfInv(Erf(%v)) = %v", x, back)
		}
	}
}

func TestErfInv_Domain(t *testing.T) {
	for _, x := range []float64{1.0, -1.0, 1.5, math.NaN()} {
		if got := ErfInv(x); !math.IsNaN(got) {
			t.Errorf("ErfInv(%v) = %v, want NaN", x, got)
		}
	}
	if got := ErfInv(0); got != 0 {
		t.Errorf("ErfInv(0) = %v, want 0", got)
	}
}

func TestNormalCDF(t *testing.T) {
	tests := []struct {
		z    float64
		want float64
	}{
		{0.0, 0.5},
		{1.0, 0.8413447461},
		{-1.0, 0.1586552539},
		{1.96, 0.9750021049},
		{-3.0, 0.0013498980},
	}
	for _, tt := range tests {
		if got := NormalCDF(tt.z); !approxEqual(got, tt.want, 1e-6) {
			t.Errorf("NormalCDF(%v) = %v, want %v", tt.z, got, tt.want)
		}
	}
}
