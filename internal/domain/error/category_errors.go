package error

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found for the requesting user.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when the user already owns a category with that name.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrPredefinedCategoryImmutable is returned on any attempt to modify a predefined category.
	ErrPredefinedCategoryImmutable = errors.New("predefined categories cannot be modified")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeCategoryNotFound CategoryErrorCode = "CAT-010001"

	// Business rule errors (02XXXX)
	ErrCodeCategoryNameExists          CategoryErrorCode = "CAT-020001"
	ErrCodePredefinedCategoryImmutable CategoryErrorCode = "CAT-020002"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewCategoryNotFoundError reports a category missing for the requesting user.
func NewCategoryNotFoundError(id uuid.UUID) *CategoryError {
	return NewCategoryError(
		ErrCodeCategoryNotFound,
		fmt.Sprintf("the category with ID '%s' was not found", id),
		ErrCategoryNotFound,
	)
}

// NewPredefinedCategoryError reports an attempted mutation of a predefined category.
func NewPredefinedCategoryError() *CategoryError {
	return NewCategoryError(
		ErrCodePredefinedCategoryImmutable,
		"predefined categories cannot be modified",
		ErrPredefinedCategoryImmutable,
	)
}
