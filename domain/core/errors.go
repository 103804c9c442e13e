package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Request errors
	ErrInvalidDistributionKind = errors.New("invalid distribution kind")
	ErrInvalidParameterCount   = errors.New("invalid parameter count")
	ErrInvalidInputValue       = errors.New("invalid input value")

	// Parameter errors
	ErrParameterOutOfRange    = errors.New("parameter out of range")
	ErrMathematicalConstraint = errors.New("mathematical constraint violation")

	// Dispatch errors
	ErrCalculationFailed = errors.New("calculation failed")
)

// Error constructors with context
func NewUnknownKindError(kind fmt.Stringer) error {
	return fmt.Errorf("%w: %s", ErrInvalidDistributionKind, kind)
}

func NewParameterCountError(name string, expected, provided int) error {
	return fmt.Errorf("%w: %s distribution requires %d parameters, but %d provided",
		ErrInvalidParameterCount, name, expected, provided)
}

func NewOutOfRangeError(name, param string, value, min, max float64) error {
	return fmt.Errorf("%w: %s parameter '%s' (%.3f) must be between %.3f and %.3f",
		ErrParameterOutOfRange, name, param, value, min, max)
}

func NewConstraintError(name, constraint string) error {
	return fmt.Errorf("%w: %s: %s", ErrMathematicalConstraint, name, constraint)
}

func NewInputValueError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInputValue, reason)
}

func NewCalculationError(what string) error {
	return fmt.Errorf("%w: %s produced a non-finite result", ErrCalculationFailed, what)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDistributionKind) ||
		errors.Is(err, ErrInvalidParameterCount) ||
		errors.Is(err, ErrParameterOutOfRange) ||
		errors.Is(err, ErrMathematicalConstraint) ||
		errors.Is(err, ErrInvalidInputValue)
}

func IsCalculationError(err error) bool {
	return errors.Is(err, ErrCalculationFailed)
}
