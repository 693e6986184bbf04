package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
	Query  adapter.ListQuery
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Page *adapter.PageResult[*entity.Category]
}

// ListCategoriesUseCase lists the user's categories together with the predefined ones.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute lists the categories.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	query, err := input.Query.Normalize()
	if err != nil {
		return nil, err
	}

	page, err := uc.categoryRepo.List(ctx, input.UserID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{Page: page}, nil
}
