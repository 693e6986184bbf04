package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// GetCategoryInput represents the input for fetching one category.
type GetCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// GetCategoryOutput represents the output of fetching one category.
type GetCategoryOutput struct {
	Category *entity.Category
}

// GetCategoryUseCase loads a category visible to the user.
type GetCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase instance.
func NewGetCategoryUseCase(categoryRepo adapter.CategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute loads the category.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, input GetCategoryInput) (*GetCategoryOutput, error) {
	category, err := FindVisible(ctx, uc.categoryRepo, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetCategoryOutput{Category: category}, nil
}

// FindVisible loads a category visible to the user and maps a miss to the
// category not-found error. Other use cases resolve category ids through it.
func FindVisible(ctx context.Context, repo adapter.CategoryRepository, id, userID uuid.UUID) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}
