package error

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Bill domain errors.
var (
	// ErrBillNotFound is returned when a bill is not found for the requesting user.
	ErrBillNotFound = errors.New("bill not found")

	// ErrItemAlreadyInBill is returned when an item is added to a bill twice.
	ErrItemAlreadyInBill = errors.New("item already exists in the bill")

	// ErrItemNotInBill is returned when removing an item the bill does not hold.
	ErrItemNotInBill = errors.New("item not found in the bill")

	// ErrCurrencyMismatch is returned when an item's currency differs from the bill's currency.
	ErrCurrencyMismatch = errors.New("all items in a bill must have the same currency")
)

// BillErrorCode defines error codes for bill errors.
// Format: BIL-XXYYYY where XX is category and YYYY is specific error.
type BillErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeBillNotFound BillErrorCode = "BIL-010001"

	// Membership errors (02XXXX)
	ErrCodeItemAlreadyInBill BillErrorCode = "BIL-020001"
	ErrCodeItemNotInBill     BillErrorCode = "BIL-020002"
	ErrCodeCurrencyMismatch  BillErrorCode = "BIL-020003"
)

// BillError represents a bill error with code and message.
type BillError struct {
	Code    BillErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillError) Unwrap() error {
	return e.Err
}

// NewBillError creates a new BillError with the given code and message.
func NewBillError(code BillErrorCode, message string, err error) *BillError {
	return &BillError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewBillNotFoundError reports a bill missing for the requesting user.
func NewBillNotFoundError(id uuid.UUID) *BillError {
	return NewBillError(
		ErrCodeBillNotFound,
		fmt.Sprintf("the bill with ID '%s' was not found", id),
		ErrBillNotFound,
	)
}
