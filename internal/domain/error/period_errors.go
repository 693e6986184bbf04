package error

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Period domain errors.
var (
	// ErrPeriodNotFound is returned when a period is not found for the requesting user.
	ErrPeriodNotFound = errors.New("period not found")

	// ErrInvalidDateRange is returned when a start date falls after the end date.
	ErrInvalidDateRange = errors.New("start date must be before or equal to end date")

	// ErrBillAlreadyInPeriod is returned when a bill is added to a period twice.
	ErrBillAlreadyInPeriod = errors.New("bill already exists in the period")

	// ErrBillNotInPeriod is returned when removing a bill the period does not hold.
	ErrBillNotInPeriod = errors.New("bill not found in the period")
)

// PeriodErrorCode defines error codes for period errors.
// Format: PER-XXYYYY where XX is category and YYYY is specific error.
type PeriodErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodePeriodNotFound PeriodErrorCode = "PER-010001"

	// Business rule errors (02XXXX)
	ErrCodeInvalidDateRange    PeriodErrorCode = "PER-020001"
	ErrCodeBillAlreadyInPeriod PeriodErrorCode = "PER-020002"
	ErrCodeBillNotInPeriod     PeriodErrorCode = "PER-020003"
)

// PeriodError represents a period error with code and message.
type PeriodError struct {
	Code    PeriodErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PeriodError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PeriodError) Unwrap() error {
	return e.Err
}

// NewPeriodError creates a new PeriodError with the given code and message.
func NewPeriodError(code PeriodErrorCode, message string, err error) *PeriodError {
	return &PeriodError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewPeriodNotFoundError reports a period missing for the requesting user.
func NewPeriodNotFoundError(id uuid.UUID) *PeriodError {
	return NewPeriodError(
		ErrCodePeriodNotFound,
		fmt.Sprintf("the period with ID '%s' was not found", id),
		ErrPeriodNotFound,
	)
}
