package period

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/application/usecase/bill"
)

// AddBillInput represents the input for adding a bill to a period.
type AddBillInput struct {
	PeriodID uuid.UUID
	BillID   uuid.UUID
	UserID   uuid.UUID
}

// AddBillUseCase adds one of the user's bills to one of the user's periods.
type AddBillUseCase struct {
	periodRepo adapter.PeriodRepository
	billRepo   adapter.BillRepository
}

// NewAddBillUseCase creates a new AddBillUseCase instance.
func NewAddBillUseCase(periodRepo adapter.PeriodRepository, billRepo adapter.BillRepository) *AddBillUseCase {
	return &AddBillUseCase{
		periodRepo: periodRepo,
		billRepo:   billRepo,
	}
}

// Execute adds the bill.
func (uc *AddBillUseCase) Execute(ctx context.Context, input AddBillInput) error {
	period, err := findOwned(ctx, uc.periodRepo, input.PeriodID, input.UserID)
	if err != nil {
		return err
	}
	b, err := bill.FindOwned(ctx, uc.billRepo, input.BillID, input.UserID)
	if err != nil {
		return err
	}

	if err := period.AddBill(b); err != nil {
		return err
	}

	if err := uc.periodRepo.Update(ctx, period); err != nil {
		return fmt.Errorf("failed to save period: %w", err)
	}
	return nil
}
