package bill

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	billitem "github.com/finance-app/backend/internal/application/usecase/bill_item"
)

// RemoveBillItemInput represents the input for removing an item from a bill.
type RemoveBillItemInput struct {
	BillID     uuid.UUID
	BillItemID uuid.UUID
	UserID     uuid.UUID
}

// RemoveBillItemUseCase takes an item out of a bill. The item itself is kept.
type RemoveBillItemUseCase struct {
	billRepo adapter.BillRepository
	itemRepo adapter.BillItemRepository
}

// NewRemoveBillItemUseCase creates a new RemoveBillItemUseCase instance.
func NewRemoveBillItemUseCase(billRepo adapter.BillRepository, itemRepo adapter.BillItemRepository) *RemoveBillItemUseCase {
	return &RemoveBillItemUseCase{
		billRepo: billRepo,
		itemRepo: itemRepo,
	}
}

// Execute removes the item.
func (uc *RemoveBillItemUseCase) Execute(ctx context.Context, input RemoveBillItemInput) error {
	bill, err := FindOwned(ctx, uc.billRepo, input.BillID, input.UserID)
	if err != nil {
		return err
	}
	item, err := billitem.FindOwned(ctx, uc.itemRepo, input.BillItemID, input.UserID)
	if err != nil {
		return err
	}

	if err := bill.RemoveItem(item); err != nil {
		return err
	}

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return fmt.Errorf("failed to save bill: %w", err)
	}
	return nil
}
