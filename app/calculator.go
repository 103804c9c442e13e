// Package app wires the validator and the distribution registry into the
// calculation orchestrator. All entry points are synchronous and pure apart
// from the optional history handoff.
package app

import (
	"context"
	"fmt"
	"math"

	"distcalc/adapters/distribution"
	"distcalc/domain/dist"
	"distcalc/ports"
)

// CalculationService validates a request end to end, dispatches to the bound
// distribution, classifies numerical failures, and packages the result.
type CalculationService struct {
	validator *ParameterValidator
	history   ports.HistoryRecorder
}

// NewCalculationService creates a calculation service. The history recorder
// may be nil; successful calculations are then not handed off anywhere.
func NewCalculationService(history ports.HistoryRecorder) *CalculationService {
	return &CalculationService{
		validator: NewParameterValidator(),
		history:   history,
	}
}

// Validator exposes the underlying parameter validator for metadata-driven callers
func (s *CalculationService) Validator() *ParameterValidator {
	return s.validator
}

// Calculate runs one request. Validation failures and calculation failures
// both come back as an unsuccessful result with a single message; nothing
// here panics or aborts.
func (s *CalculationService) Calculate(ctx context.Context, req dist.CalculationRequest) dist.CalculationResult {
	entry, ok := distribution.Lookup(req.Kind)
	if !ok {
		return failure(fmt.Sprintf("unknown distribution kind: %d", int(req.Kind)))
	}

	if outcome := s.validator.Validate(req.Kind, req.Parameters); !outcome.OK() {
		return failure(outcome.Message)
	}

	if msg, ok := validateInputValue(req.InputValue, entry.Metadata.Category); !ok {
		return failure(msg)
	}

	pdf := entry.Impl.PDF(req.InputValue, req.Parameters)
	if math.IsNaN(pdf) || math.IsInf(pdf, 0) {
		return failure("pdf calculation produced a non-finite result")
	}

	cdf := entry.Impl.CDF(req.InputValue, req.Parameters)
	if math.IsNaN(cdf) || math.IsInf(cdf, 0) {
		return failure("cdf calculation produced a non-finite result")
	}

	result := dist.CalculationResult{
		PDF:     pdf,
		CDF:     cdf,
		Success: true,
	}

	if s.history != nil {
		// Handoff only; a recorder failure does not invalidate the result.
		_ = s.history.Record(ctx, ports.CalculationRecord{
			Kind:       req.Kind,
			Parameters: req.Parameters,
			InputValue: req.InputValue,
			PDF:        pdf,
			CDF:        cdf,
		})
	}

	return result
}

// validateInputValue rejects non-finite inputs, and for discrete kinds any
// negative or non-integer input, before dispatch.
func validateInputValue(x float64, category dist.Category) (string, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "input value must be a finite number", false
	}
	if category == dist.Discrete {
		if x < 0.0 || math.Floor(x) != x {
			return "input value for a discrete distribution must be a non-negative integer", false
		}
	}
	return "", true
}

func failure(message string) dist.CalculationResult {
	return dist.CalculationResult{
		PDF:     math.NaN(),
		CDF:     math.NaN(),
		Success: false,
		Error:   message,
	}
}
