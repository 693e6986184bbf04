package error

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Bill item domain errors.
var (
	// ErrBillItemNotFound is returned when a bill item is not found for the requesting user.
	ErrBillItemNotFound = errors.New("bill item not found")

	// ErrSuggestionUnavailable is returned when no category suggester is configured.
	ErrSuggestionUnavailable = errors.New("category suggestion unavailable")

	// ErrSuggestionFailed is returned when the suggester could not produce an answer.
	ErrSuggestionFailed = errors.New("category suggestion failed")
)

// BillItemErrorCode defines error codes for bill item errors.
// Format: BIT-XXYYYY where XX is category and YYYY is specific error.
type BillItemErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeBillItemNotFound BillItemErrorCode = "BIT-010001"

	// Suggestion errors (03XXXX)
	ErrCodeSuggestionUnavailable BillItemErrorCode = "BIT-030001"
	ErrCodeSuggestionFailed      BillItemErrorCode = "BIT-030002"
)

// BillItemError represents a bill item error with code and message.
type BillItemError struct {
	Code    BillItemErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillItemError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillItemError) Unwrap() error {
	return e.Err
}

// NewBillItemError creates a new BillItemError with the given code and message.
func NewBillItemError(code BillItemErrorCode, message string, err error) *BillItemError {
	return &BillItemError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewBillItemNotFoundError reports a bill item missing for the requesting user.
func NewBillItemNotFoundError(id uuid.UUID) *BillItemError {
	return NewBillItemError(
		ErrCodeBillItemNotFound,
		fmt.Sprintf("the bill item with ID '%s' was not found", id),
		ErrBillItemNotFound,
	)
}
