package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update.
type UpdateCategoryInput struct {
	CategoryID  uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) error {
	// Find the existing category
	category, err := FindVisible(ctx, uc.categoryRepo, input.CategoryID, input.UserID)
	if err != nil {
		return err
	}

	// Predefined categories are rejected here, before the name check
	if err := category.CheckMutable(); err != nil {
		return err
	}

	// Check if new name already exists for this owner
	if !strings.EqualFold(input.Name, category.Name()) {
		exists, err := uc.categoryRepo.ExistsByName(ctx, input.Name, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to check category name existence: %w", err)
		}
		if exists {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameExists,
				"a category with this name already exists",
				domainerror.ErrCategoryNameExists,
			)
		}
	}

	if err := category.Update(input.Name, input.Description); err != nil {
		return err
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}
