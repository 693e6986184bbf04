package bill

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	billitem "github.com/finance-app/backend/internal/application/usecase/bill_item"
)

// AddBillItemInput represents the input for adding an item to a bill.
type AddBillItemInput struct {
	BillID     uuid.UUID
	BillItemID uuid.UUID
	UserID     uuid.UUID
}

// AddBillItemUseCase adds one of the user's items to one of the user's bills.
type AddBillItemUseCase struct {
	billRepo adapter.BillRepository
	itemRepo adapter.BillItemRepository
}

// NewAddBillItemUseCase creates a new AddBillItemUseCase instance.
func NewAddBillItemUseCase(billRepo adapter.BillRepository, itemRepo adapter.BillItemRepository) *AddBillItemUseCase {
	return &AddBillItemUseCase{
		billRepo: billRepo,
		itemRepo: itemRepo,
	}
}

// Execute adds the item.
func (uc *AddBillItemUseCase) Execute(ctx context.Context, input AddBillItemInput) error {
	bill, err := FindOwned(ctx, uc.billRepo, input.BillID, input.UserID)
	if err != nil {
		return err
	}
	item, err := billitem.FindOwned(ctx, uc.itemRepo, input.BillItemID, input.UserID)
	if err != nil {
		return err
	}

	if err := bill.AddBillItem(item); err != nil {
		return err
	}

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return fmt.Errorf("failed to save bill: %w", err)
	}
	return nil
}
