package ports

import (
	"context"

	"distcalc/domain/dist"
)

// CalculationRecord is the handoff payload appended after a successful
// calculation only.
type CalculationRecord struct {
	Kind       dist.Kind         `json:"kind"`
	Parameters dist.ParameterSet `json:"parameters"`
	InputValue float64           `json:"input_value"`
	PDF        float64           `json:"pdf"`
	CDF        float64           `json:"cdf"`
}

// HistoryRecorder receives successful calculations from the orchestrator.
// Implementations decide retention; the engine itself persists nothing.
type HistoryRecorder interface {
	Record(ctx context.Context, rec CalculationRecord) error
}
