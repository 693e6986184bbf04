package bill

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
)

// UpdateBillInput represents the input for bill update.
type UpdateBillInput struct {
	BillID      uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
}

// UpdateBillUseCase handles bill update logic.
type UpdateBillUseCase struct {
	billRepo adapter.BillRepository
}

// NewUpdateBillUseCase creates a new UpdateBillUseCase instance.
func NewUpdateBillUseCase(billRepo adapter.BillRepository) *UpdateBillUseCase {
	return &UpdateBillUseCase{
		billRepo: billRepo,
	}
}

// Execute performs the bill update.
func (uc *UpdateBillUseCase) Execute(ctx context.Context, input UpdateBillInput) error {
	bill, err := FindOwned(ctx, uc.billRepo, input.BillID, input.UserID)
	if err != nil {
		return err
	}

	if err := bill.Update(input.Name, input.Description); err != nil {
		return err
	}

	if err := uc.billRepo.Update(ctx, bill); err != nil {
		return fmt.Errorf("failed to update bill: %w", err)
	}
	return nil
}
