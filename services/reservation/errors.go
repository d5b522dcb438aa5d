package reservation

import (
	"fmt"
	"time"

	"gasthaus/models"
)

// ValidationError is a structural or business-rule violation. It is reported
// with enough detail to correct the input and never retried automatically.
type ValidationError struct {
	Code    string
	Message string
	Issues  []models.FieldIssue
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CapacityExceededError carries the actual remaining count so the UI can
// offer a smaller party size.
type CapacityExceededError struct {
	Remaining int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacityExceeded: %d remaining", e.Remaining)
}

// RateLimitedError is retryable after a cooldown. No internal detail is
// exposed to the caller.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return "rateLimited: too many reservation attempts"
}
