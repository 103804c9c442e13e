package dist

import "testing"

func TestKindValid(t *testing.T) {
	if !Normal.Valid() || !Rayleigh.Valid() {
		t.Error("first and last kinds must be valid")
	}
	if Kind(-1).Valid() {
		t.Error("Kind(-1) must be invalid")
	}
	if KindCount.Valid() {
		t.Error("KindCount must be invalid")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{Normal, "Normal"},
		{ChiSquare, "Chi-Square"},
		{StudentT, "t-Distribution"},
		{NegativeBinomial, "Negative Binomial"},
		{Rayleigh, "Rayleigh"},
		{Kind(99), "Kind(99)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"normal", Normal},
		{"Gaussian", Normal},
		{"Chi-Square", ChiSquare},
		{"chisquared", ChiSquare},
		{"t", StudentT},
		{"Student_T", StudentT},
		{"F", FDistribution},
		{"negative binomial", NegativeBinomial},
		{"NegBinomial", NegativeBinomial},
		{"  poisson  ", Poisson},
		{"RAYLEIGH", Rayleigh},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Errorf("ParseKind(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseKind("cauchy"); err == nil {
		t.Error("ParseKind(\"cauchy\") should fail")
	}
}

func TestRoundTripAllKinds(t *testing.T) {
	for k := Normal; k < KindCount; k++ {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Errorf("ParseKind(%q) error: %v", k.String(), err)
			continue
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
}
