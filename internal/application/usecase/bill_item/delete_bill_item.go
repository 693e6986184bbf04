package billitem

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
)

// DeleteBillItemInput represents the input for bill item deletion.
type DeleteBillItemInput struct {
	BillItemID uuid.UUID
	UserID     uuid.UUID
}

// DeleteBillItemUseCase removes a bill item and its bill memberships.
type DeleteBillItemUseCase struct {
	itemRepo adapter.BillItemRepository
}

// NewDeleteBillItemUseCase creates a new DeleteBillItemUseCase instance.
func NewDeleteBillItemUseCase(itemRepo adapter.BillItemRepository) *DeleteBillItemUseCase {
	return &DeleteBillItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute performs the bill item deletion.
func (uc *DeleteBillItemUseCase) Execute(ctx context.Context, input DeleteBillItemInput) error {
	item, err := FindOwned(ctx, uc.itemRepo, input.BillItemID, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.itemRepo.Delete(ctx, item.ID(), input.UserID); err != nil {
		return fmt.Errorf("failed to delete bill item: %w", err)
	}
	return nil
}
