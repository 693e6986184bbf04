// Package bill contains bill use cases.
package bill

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	billitem "github.com/finance-app/backend/internal/application/usecase/bill_item"
	"github.com/finance-app/backend/internal/domain/entity"
)

// CreateBillInput represents the input for bill creation.
// BillItemIDs optionally fills the bill; all of them are added or none.
type CreateBillInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
	BillItemIDs []uuid.UUID
}

// CreateBillOutput represents the output of bill creation.
type CreateBillOutput struct {
	Bill *entity.Bill
}

// CreateBillUseCase handles bill creation logic.
type CreateBillUseCase struct {
	billRepo adapter.BillRepository
	itemRepo adapter.BillItemRepository
}

// NewCreateBillUseCase creates a new CreateBillUseCase instance.
func NewCreateBillUseCase(billRepo adapter.BillRepository, itemRepo adapter.BillItemRepository) *CreateBillUseCase {
	return &CreateBillUseCase{
		billRepo: billRepo,
		itemRepo: itemRepo,
	}
}

// Execute performs the bill creation.
func (uc *CreateBillUseCase) Execute(ctx context.Context, input CreateBillInput) (*CreateBillOutput, error) {
	bill, err := entity.NewBill(input.Name, input.Description, input.UserID)
	if err != nil {
		return nil, err
	}

	if len(input.BillItemIDs) > 0 {
		items := make([]*entity.BillItem, 0, len(input.BillItemIDs))
		for _, id := range input.BillItemIDs {
			item, err := billitem.FindOwned(ctx, uc.itemRepo, id, input.UserID)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if err := bill.AddBillItems(items); err != nil {
			return nil, err
		}
	}

	if err := uc.billRepo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	return &CreateBillOutput{Bill: bill}, nil
}
