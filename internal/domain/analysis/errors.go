// internal/domain/analysis/errors.go

package analysis

import (
	"errors"
)

// Structural errors surfaced to callers as explicit failure results.
var (
	// ErrUnknownPeriod is returned when a period tag outside the declared
	// set is requested of the aggregator.
	ErrUnknownPeriod = errors.New("unknown period")

	// ErrInsufficientData is returned when a stage would have to compute
	// against an empty-period sentinel aggregate.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidThreshold is returned when a risk rule references a
	// threshold that is unset or outside its valid range.
	ErrInvalidThreshold = errors.New("invalid threshold")
)
