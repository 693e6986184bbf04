package period

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/application/usecase/bill"
)

// RemoveBillInput represents the input for removing a bill from a period.
type RemoveBillInput struct {
	PeriodID uuid.UUID
	BillID   uuid.UUID
	UserID   uuid.UUID
}

// RemoveBillUseCase takes a bill out of a period. The bill itself is kept.
type RemoveBillUseCase struct {
	periodRepo adapter.PeriodRepository
	billRepo   adapter.BillRepository
}

// NewRemoveBillUseCase creates a new RemoveBillUseCase instance.
func NewRemoveBillUseCase(periodRepo adapter.PeriodRepository, billRepo adapter.BillRepository) *RemoveBillUseCase {
	return &RemoveBillUseCase{
		periodRepo: periodRepo,
		billRepo:   billRepo,
	}
}

// Execute removes the bill.
func (uc *RemoveBillUseCase) Execute(ctx context.Context, input RemoveBillInput) error {
	period, err := findOwned(ctx, uc.periodRepo, input.PeriodID, input.UserID)
	if err != nil {
		return err
	}
	b, err := bill.FindOwned(ctx, uc.billRepo, input.BillID, input.UserID)
	if err != nil {
		return err
	}

	if err := period.RemoveBill(b); err != nil {
		return err
	}

	if err := uc.periodRepo.Update(ctx, period); err != nil {
		return fmt.Errorf("failed to save period: %w", err)
	}
	return nil
}
