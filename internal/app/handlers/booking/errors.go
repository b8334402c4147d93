package booking

import (
	"errors"

	domainavailability "holidaze/internal/domain/availability"
)

var ErrRangeRejected = errors.New("booking: range rejected")

// RangeRejectedError reports why the proposed stay did not pass ValidateRange.
type RangeRejectedError struct {
	Status domainavailability.RangeStatus
}

func (e *RangeRejectedError) Error() string {
	return "booking: range rejected: " + e.Status.String()
}

func (e *RangeRejectedError) Is(target error) bool {
	return target == ErrRangeRejected
}
