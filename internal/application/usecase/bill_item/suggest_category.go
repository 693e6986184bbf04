package billitem

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// SuggestCategoryInput describes the item to classify.
type SuggestCategoryInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
}

// SuggestCategoryOutput is the chosen category.
type SuggestCategoryOutput struct {
	Category   *entity.Category
	Confidence float64
	Reasoning  string
}

// SuggestCategoryUseCase asks the category suggester to pick one of the
// user's visible categories for a bill item.
type SuggestCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	suggester    adapter.CategorySuggester
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
// suggester may be nil when no AI provider is configured.
func NewSuggestCategoryUseCase(categoryRepo adapter.CategoryRepository, suggester adapter.CategorySuggester) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		categoryRepo: categoryRepo,
		suggester:    suggester,
	}
}

// Execute returns the suggestion.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewNameRequiredError("name")
	}
	if uc.suggester == nil || !uc.suggester.IsAvailable() {
		return nil, domainerror.NewBillItemError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestions are not configured",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	categories, err := uc.categoryRepo.FindAllVisible(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	options := make([]adapter.CategoryOption, 0, len(categories))
	byID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, c := range categories {
		options = append(options, adapter.CategoryOption{ID: c.ID(), Name: c.Name(), Description: c.Description()})
		byID[c.ID()] = c
	}

	suggestion, err := uc.suggester.Suggest(ctx, adapter.CategorySuggestionRequest{
		ItemName:        input.Name,
		ItemDescription: input.Description,
		Categories:      options,
	})
	if err != nil {
		slog.Warn("Category suggestion failed", "error", err, "userID", input.UserID)
		return nil, domainerror.NewBillItemError(
			domainerror.ErrCodeSuggestionFailed,
			"could not suggest a category",
			domainerror.ErrSuggestionFailed,
		)
	}

	// Unknown ids fall back to Other
	chosen, ok := byID[suggestion.CategoryID]
	if !ok {
		slog.Debug("Suggester returned an unknown category", "categoryID", suggestion.CategoryID)
		return &SuggestCategoryOutput{
			Category:   entity.OtherCategory(),
			Confidence: 0,
			Reasoning:  suggestion.Reasoning,
		}, nil
	}

	return &SuggestCategoryOutput{
		Category:   chosen,
		Confidence: clamp01(suggestion.Confidence),
		Reasoning:  suggestion.Reasoning,
	}, nil
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
