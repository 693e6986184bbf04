package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"

	domainerror "github.com/finance-app/backend/internal/domain/error"
)

const (
	// MaxNameLength is the longest accepted name, in characters.
	MaxNameLength = 100

	// MaxDescriptionLength is the longest accepted description, in characters.
	MaxDescriptionLength = 500
)

func validateName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewNameRequiredError(field)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return domainerror.NewValidationError(
			domainerror.ErrCodeNameTooLong,
			field,
			fmt.Sprintf("%s must not exceed %d characters", field, MaxNameLength),
			domainerror.ErrNameTooLong,
		)
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return domainerror.NewValidationError(
			domainerror.ErrCodeDescriptionTooLong,
			"description",
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}
