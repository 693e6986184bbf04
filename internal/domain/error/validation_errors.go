// Package error defines domain-specific errors for the Finance App application.
package error

import "errors"

// Validation domain errors.
var (
	// ErrNameRequired is returned when a name is empty or whitespace.
	ErrNameRequired = errors.New("name is required")

	// ErrNameTooLong is returned when a name exceeds the maximum length.
	ErrNameTooLong = errors.New("name too long")

	// ErrDescriptionTooLong is returned when a description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrNegativeAmount is returned when a money amount is below zero.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrNonPositiveQuantity is returned when a quantity is zero or below.
	ErrNonPositiveQuantity = errors.New("quantity must be greater than zero")

	// ErrNilArgument is returned when a required argument is missing.
	ErrNilArgument = errors.New("argument is required")

	// ErrInvalidOwner is returned when an entity is created without an owning user.
	ErrInvalidOwner = errors.New("owner is required")

	// ErrInvalidField is returned when a request field cannot be parsed.
	ErrInvalidField = errors.New("invalid field")

	// ErrInvalidPagination is returned when page or page size are out of range.
	ErrInvalidPagination = errors.New("invalid pagination")

	// ErrInvalidSortOrder is returned when the sort order is not asc or desc.
	ErrInvalidSortOrder = errors.New("invalid sort order")
)

// ValidationErrorCode defines error codes for field validation errors.
// Format: VAL-XXYYYY where XX is category and YYYY is specific error.
type ValidationErrorCode string

const (
	// Field errors (01XXXX)
	ErrCodeNameRequired        ValidationErrorCode = "VAL-010001"
	ErrCodeNameTooLong         ValidationErrorCode = "VAL-010002"
	ErrCodeDescriptionTooLong  ValidationErrorCode = "VAL-010003"
	ErrCodeNegativeAmount      ValidationErrorCode = "VAL-010004"
	ErrCodeNonPositiveQuantity ValidationErrorCode = "VAL-010005"
	ErrCodeNilArgument         ValidationErrorCode = "VAL-010006"
	ErrCodeInvalidOwner        ValidationErrorCode = "VAL-010007"
	ErrCodeInvalidField        ValidationErrorCode = "VAL-010008"

	// Query errors (02XXXX)
	ErrCodeInvalidPagination ValidationErrorCode = "VAL-020001"
	ErrCodeInvalidSortOrder  ValidationErrorCode = "VAL-020002"
)

// ValidationError represents a field-level validation failure.
type ValidationError struct {
	Code    ValidationErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(code ValidationErrorCode, field, message string, err error) *ValidationError {
	return &ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// NewNameRequiredError is the common "name is required" failure.
func NewNameRequiredError(field string) *ValidationError {
	return NewValidationError(ErrCodeNameRequired, field, field+" is required", ErrNameRequired)
}

// NewNilArgumentError reports a missing required argument.
func NewNilArgumentError(field string) *ValidationError {
	return NewValidationError(ErrCodeNilArgument, field, field+" is required", ErrNilArgument)
}
