package bill

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
)

// DeleteBillInput represents the input for bill deletion.
type DeleteBillInput struct {
	BillID uuid.UUID
	UserID uuid.UUID
}

// DeleteBillUseCase removes a bill. Its items are kept.
type DeleteBillUseCase struct {
	billRepo adapter.BillRepository
}

// NewDeleteBillUseCase creates a new DeleteBillUseCase instance.
func NewDeleteBillUseCase(billRepo adapter.BillRepository) *DeleteBillUseCase {
	return &DeleteBillUseCase{
		billRepo: billRepo,
	}
}

// Execute performs the bill deletion.
func (uc *DeleteBillUseCase) Execute(ctx context.Context, input DeleteBillInput) error {
	bill, err := FindOwned(ctx, uc.billRepo, input.BillID, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.billRepo.Delete(ctx, bill.ID(), input.UserID); err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	return nil
}
