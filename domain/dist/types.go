package dist

import (
	"errors"
	"fmt"
	"math"
)

// Category partitions the kinds by support type
type Category string

const (
	Continuous Category = "continuous"
	Discrete   Category = "discrete"
)

// MaxParameters is the fixed parameter capacity shared by all kinds.
const MaxParameters = 4

// ParameterSet is an ordered sequence of up to MaxParameters values whose
// positional meaning is fixed per kind (Normal = [mean, stdDev]).
type ParameterSet []float64

// NewParameterSet builds a ParameterSet, rejecting more than MaxParameters values
func NewParameterSet(values ...float64) (ParameterSet, error) {
	if len(values) > MaxParameters {
		return nil, fmt.Errorf("parameter set holds at most %d values, got %d", MaxParameters, len(values))
	}
	ps := make(ParameterSet, len(values))
	copy(ps, values)
	return ps, nil
}

// Count returns the number of parameters present
func (p ParameterSet) Count() int { return len(p) }

// AllFinite reports whether every parameter is a finite number
func (p ParameterSet) AllFinite() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Range is an inclusive per-slot parameter bound
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within the range
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp returns v pulled to the nearest violated bound
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Metadata describes one distribution for metadata-driven callers. One
// immutable instance per kind lives in the registry.
type Metadata struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	ParamNames  []string `json:"param_names"`
	ParamRanges []Range  `json:"param_ranges"`
}

// ParamCount returns the declared arity
func (m Metadata) ParamCount() int { return len(m.ParamNames) }

// CalculationRequest carries one pdf/cdf evaluation
type CalculationRequest struct {
	Kind       Kind         `json:"kind"`
	Parameters ParameterSet `json:"parameters"`
	InputValue float64      `json:"input_value"`
}

// CalculationResult is the immutable outcome of a request
type CalculationResult struct {
	PDF     float64 `json:"pdf"`
	CDF     float64 `json:"cdf"`
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
}

// ValidationOutcome reports the first failing validation check, if any
type ValidationOutcome struct {
	Err            error   `json:"-"`
	ParameterIndex int     `json:"parameter_index"`
	Message        string  `json:"message,omitempty"`
	SuggestedValue float64 `json:"suggested_value,omitempty"`
	HasSuggestion  bool    `json:"has_suggestion"`
}

// OK reports whether validation passed
func (v ValidationOutcome) OK() bool { return v.Err == nil }

// Is allows errors.Is checks against the taxonomy sentinels
func (v ValidationOutcome) Is(target error) bool { return errors.Is(v.Err, target) }
