package app

import (
	"fmt"
	"math"

	"distcalc/adapters/distribution"
	"distcalc/domain/core"
	"distcalc/domain/dist"
)

// ParameterValidator runs the two-stage parameter contract: structural
// checks (arity, finiteness, per-slot ranges) followed by cross-parameter
// mathematical constraints. Validation short-circuits on the first failing
// check; range violations carry a suggestion clamped to the violated bound.
type ParameterValidator struct{}

// NewParameterValidator creates a new parameter validator
func NewParameterValidator() *ParameterValidator {
	return &ParameterValidator{}
}

// Validate checks a full parameter set against the registry metadata for kind
func (v *ParameterValidator) Validate(kind dist.Kind, params dist.ParameterSet) dist.ValidationOutcome {
	meta, ok := distribution.Metadata(kind)
	if !ok {
		return dist.ValidationOutcome{
			Err:     core.NewUnknownKindError(kind),
			Message: fmt.Sprintf("unknown distribution kind: %d", int(kind)),
		}
	}

	if params.Count() != meta.ParamCount() {
		return dist.ValidationOutcome{
			Err: core.NewParameterCountError(meta.Name, meta.ParamCount(), params.Count()),
			Message: fmt.Sprintf("%s distribution requires %d parameters, but %d provided",
				meta.Name, meta.ParamCount(), params.Count()),
		}
	}

	for i, value := range params {
		if outcome := v.validateRange(meta, i, value); !outcome.OK() {
			return outcome
		}
	}

	return v.validateConstraints(kind, meta, params)
}

// ValidateSingle checks one parameter slot against its registered range
func (v *ParameterValidator) ValidateSingle(kind dist.Kind, index int, value float64) dist.ValidationOutcome {
	meta, ok := distribution.Metadata(kind)
	if !ok {
		return dist.ValidationOutcome{
			Err:     core.NewUnknownKindError(kind),
			Message: fmt.Sprintf("unknown distribution kind: %d", int(kind)),
		}
	}
	if index < 0 || index >= meta.ParamCount() {
		return dist.ValidationOutcome{
			Err:            core.NewParameterCountError(meta.Name, meta.ParamCount(), index+1),
			ParameterIndex: index,
			Message: fmt.Sprintf("parameter index %d is invalid for a distribution with %d parameters",
				index, meta.ParamCount()),
		}
	}
	return v.validateRange(meta, index, value)
}

func (v *ParameterValidator) validateRange(meta dist.Metadata, index int, value float64) dist.ValidationOutcome {
	name := meta.ParamNames[index]

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return dist.ValidationOutcome{
			Err:            core.NewOutOfRangeError(meta.Name, name, value, meta.ParamRanges[index].Min, meta.ParamRanges[index].Max),
			ParameterIndex: index,
			Message:        fmt.Sprintf("%s parameter '%s' must be a finite number", meta.Name, name),
		}
	}

	r := meta.ParamRanges[index]
	if !r.Contains(value) {
		return dist.ValidationOutcome{
			Err:            core.NewOutOfRangeError(meta.Name, name, value, r.Min, r.Max),
			ParameterIndex: index,
			Message: fmt.Sprintf("%s parameter '%s' (%.3f) must be between %.3f and %.3f",
				meta.Name, name, value, r.Min, r.Max),
			SuggestedValue: r.Clamp(value),
			HasSuggestion:  true,
		}
	}

	return dist.ValidationOutcome{}
}

// validateConstraints enforces cross-parameter rules not expressible as
// independent ranges.
func (v *ParameterValidator) validateConstraints(kind dist.Kind, meta dist.Metadata, params dist.ParameterSet) dist.ValidationOutcome {
	switch kind {
	case dist.Hypergeometric:
		population, successStates, sampleSize := params[0], params[1], params[2]
		if successStates > population {
			return dist.ValidationOutcome{
				Err:            core.NewConstraintError(meta.Name, "success states cannot exceed population size"),
				ParameterIndex: 1,
				Message:        fmt.Sprintf("%s: success states cannot exceed population size", meta.Name),
				SuggestedValue: population,
				HasSuggestion:  true,
			}
		}
		if sampleSize > population {
			return dist.ValidationOutcome{
				Err:            core.NewConstraintError(meta.Name, "sample size cannot exceed population size"),
				ParameterIndex: 2,
				Message:        fmt.Sprintf("%s: sample size cannot exceed population size", meta.Name),
				SuggestedValue: population,
				HasSuggestion:  true,
			}
		}

	case dist.FDistribution:
		df1, df2 := params[0], params[1]
		if df1 < 1.0 || df2 < 1.0 {
			index := 0
			if df1 >= 1.0 {
				index = 1
			}
			return dist.ValidationOutcome{
				Err:            core.NewConstraintError(meta.Name, "degrees of freedom must be at least 1"),
				ParameterIndex: index,
				Message:        fmt.Sprintf("%s: degrees of freedom must be at least 1", meta.Name),
				SuggestedValue: 1.0,
				HasSuggestion:  true,
			}
		}

	case dist.Uniform:
		a, b := params[0], params[1]
		if a >= b {
			return dist.ValidationOutcome{
				Err:            core.NewConstraintError(meta.Name, "upper bound must exceed lower bound"),
				ParameterIndex: 1,
				Message:        fmt.Sprintf("%s: upper bound must exceed lower bound", meta.Name),
				SuggestedValue: a + 1.0,
				HasSuggestion:  true,
			}
		}

	case dist.Binomial, dist.NegativeBinomial:
		count := params[0]
		if count < 1.0 || math.Floor(count) != count {
			return dist.ValidationOutcome{
				Err:            core.NewConstraintError(meta.Name, "count must be a positive integer"),
				ParameterIndex: 0,
				Message:        fmt.Sprintf("%s: number of trials must be a positive integer", meta.Name),
				SuggestedValue: math.Round(math.Max(1.0, count)),
				HasSuggestion:  true,
			}
		}
	}

	return dist.ValidationOutcome{}
}
