package dist

import (
	"fmt"
	"strings"
)

// Kind enumerates the supported distributions. The set is closed: KindCount
// bounds every registry table and dispatch switch.
type Kind int

const (
	Normal Kind = iota
	Exponential
	ChiSquare
	StudentT
	FDistribution
	Geometric
	Hypergeometric
	Binomial
	NegativeBinomial
	Poisson
	Uniform
	Gamma
	Beta
	Weibull
	Pareto
	Rayleigh

	KindCount
)

var kindNames = [KindCount]string{
	Normal:           "Normal",
	Exponential:      "Exponential",
	ChiSquare:        "Chi-Square",
	StudentT:         "t-Distribution",
	FDistribution:    "F-Distribution",
	Geometric:        "Geometric",
	Hypergeometric:   "Hypergeometric",
	Binomial:         "Binomial",
	NegativeBinomial: "Negative Binomial",
	Poisson:          "Poisson",
	Uniform:          "Uniform",
	Gamma:            "Gamma",
	Beta:             "Beta",
	Weibull:          "Weibull",
	Pareto:           "Pareto",
	Rayleigh:         "Rayleigh",
}

// Valid reports whether k names one of the sixteen distributions.
func (k Kind) Valid() bool {
	return k >= Normal && k < KindCount
}

// String returns the display name
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a case-insensitive kind token. Both display names
// ("Chi-Square") and compact tokens ("chisquare", "t", "f") are accepted.
func ParseKind(s string) (Kind, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	token = strings.NewReplacer("-", "", "_", "", " ", "").Replace(token)

	switch token {
	case "normal", "gaussian":
		return Normal, nil
	case "exponential":
		return Exponential, nil
	case "chisquare", "chisquared":
		return ChiSquare, nil
	case "t", "tdistribution", "studentt":
		return StudentT, nil
	case "f", "fdistribution":
		return FDistribution, nil
	case "geometric":
		return Geometric, nil
	case "hypergeometric":
		return Hypergeometric, nil
	case "binomial":
		return Binomial, nil
	case "negativebinomial", "negbinomial":
		return NegativeBinomial, nil
	case "poisson":
		return Poisson, nil
	case "uniform":
		return Uniform, nil
	case "gamma":
		return Gamma, nil
	case "beta":
		return Beta, nil
	case "weibull":
		return Weibull, nil
	case "pareto":
		return Pareto, nil
	case "rayleigh":
		return Rayleigh, nil
	}
	return KindCount, fmt.Errorf("unknown distribution kind %q", s)
}
