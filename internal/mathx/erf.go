package mathx

import "math"

// Abramowitz & Stegun 7.1.26 coefficients, max error about 1.5e-7.
const (
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
	erfP  = 0.3275911
)

// Erf evaluates the error function with the A&S rational approximation.
// Antisymmetric about zero.
func Erf(x float64) float64 {
	if x == 0.0 {
		return 0.0
	}

	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	x = math.Abs(x)

	t := 1.0 / (1.0 + erfP*x)
	y := 1.0 - (((((erfA5*t+erfA4)*t)+erfA3)*t+erfA2)*t+erfA1)*t*math.Exp(-x*x)

	return sign * y
}

// Erfc is the complementary error function 1 - erf(x).
func Erfc(x float64) float64 {
	return 1.0 - Erf(x)
}

// ErfInv inverts the error function on (-1,1). Two rational-polynomial
// branches selected by the magnitude of w = -ln((1-x)(1+x)); NaN outside
// the domain.
func ErfInv(x float64) float64 {
	if math.Abs(x) >= 1.0 {
		return math.NaN()
	}
	if x == 0.0 {
		return 0.0
	}

	w := -math.Log((1.0 - x) * (1.0 + x))
	var p float64

	if w < 5.0 {
		w = w - 2.5
		p = 2.81022636e-08
		p = 3.43273939e-07 + p*w
		p = -3.5233877e-06 + p*w
		p = -4.39150654e-06 + p*w
		p = 0.00021858087 + p*w
		p = -0.00125372503 + p*w
		p = -0.00417768164 + p*w
		p = 0.246640727 + p*w
		p = 1.50140941 + p*w
	} else {
		w = math.Sqrt(w) - 3.0
		p = -0.000200214257
		p = 0.000100950558 + p*w
		p = 0.00134934322 + p*w
		p = -0.00367342844 + p*w
		p = 0.00573950773 + p*w
		p = -0.0076224613 + p*w
		p = 0.00943887047 + p*w
		p = 1.00167406 + p*w
		p = 2.83297682 + p*w
	}

	return x * p
}

// NormalCDF is the standard normal CDF via Erf; shared by the normal
// distribution and the large-parameter approximations.
func NormalCDF(z float64) float64 {
	return 0.5 * (1.0 + Erf(z/math.Sqrt2))
}
