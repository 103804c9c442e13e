package mathx

// Essential critical values for common significance levels, 1 and 2 degrees
// of freedom. Small lookup for callers that need textbook thresholds without
// inverting a CDF.

var criticalAlphaLevels = [5]float64{0.10, 0.05, 0.025, 0.01, 0.005}

var chiSquareCritical = map[int][5]float64{
	1: {2.7055, 3.8415, 5.0239, 6.6349, 7.8794},
	2: {4.6052, 5.9915, 7.3778, 9.2103, 10.5966},
}

var tCritical = map[int][5]float64{
	1: {3.0777, 6.3138, 12.7062, 31.8205, 63.6567},
	2: {1.8856, 2.9200, 4.3027, 6.9646, 9.9248},
}

func alphaIndex(alpha float64) (int, bool) {
	for i, a := range criticalAlphaLevels {
		if a == alpha {
			return i, true
		}
	}
	return 0, false
}

// ChiSquareCritical returns the tabulated chi-square critical value for the
// given degrees of freedom and significance level, if present.
func ChiSquareCritical(df int, alpha float64) (float64, bool) {
	row, ok := chiSquareCritical[df]
	if !ok {
		return 0, false
	}
	i, ok := alphaIndex(alpha)
	if !ok {
		return 0, false
	}
	return row[i], true
}

// TCritical returns the tabulated two-tailed t critical value for the given
// degrees of freedom and significance level, if present.
func TCritical(df int, alpha float64) (float64, bool) {
	row, ok := tCritical[df]
	if !ok {
		return 0, false
	}
	i, ok := alphaIndex(alpha)
	if !ok {
		return 0, false
	}
	return row[i], true
}
