package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// DeleteCategoryUseCase removes a user category. Its bill items fall back to "Other".
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	category, err := FindVisible(ctx, uc.categoryRepo, input.CategoryID, input.UserID)
	if err != nil {
		return err
	}

	if err := category.CheckMutable(); err != nil {
		return err
	}

	if err := uc.categoryRepo.Delete(ctx, category.ID(), input.UserID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
