package adapter

import (
	"context"

	"github.com/google/uuid"
)

// CategoryOption is a category the suggester may pick.
type CategoryOption struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// CategorySuggestionRequest describes the bill item to classify.
type CategorySuggestionRequest struct {
	ItemName        string
	ItemDescription string
	Categories      []CategoryOption
}

// CategorySuggestion is the suggester's answer.
type CategorySuggestion struct {
	CategoryID uuid.UUID
	Confidence float64
	Reasoning  string
}

// CategorySuggester picks the best category for a bill item.
type CategorySuggester interface {
	// Suggest returns the best matching category option.
	Suggest(ctx context.Context, request CategorySuggestionRequest) (*CategorySuggestion, error)

	// IsAvailable checks if the suggester is configured.
	IsAvailable() bool
}
