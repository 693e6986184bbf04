// Package period contains period use cases.
package period

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/application/usecase/bill"
	"github.com/finance-app/backend/internal/domain/entity"
)

// CreatePeriodInput represents the input for period creation.
type CreatePeriodInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	BillIDs     []uuid.UUID
}

// CreatePeriodOutput represents the output of period creation.
type CreatePeriodOutput struct {
	Period *entity.Period
}

// CreatePeriodUseCase handles period creation logic.
type CreatePeriodUseCase struct {
	periodRepo adapter.PeriodRepository
	billRepo   adapter.BillRepository
}

// NewCreatePeriodUseCase creates a new CreatePeriodUseCase instance.
func NewCreatePeriodUseCase(periodRepo adapter.PeriodRepository, billRepo adapter.BillRepository) *CreatePeriodUseCase {
	return &CreatePeriodUseCase{
		periodRepo: periodRepo,
		billRepo:   billRepo,
	}
}

// Execute performs the period creation.
func (uc *CreatePeriodUseCase) Execute(ctx context.Context, input CreatePeriodInput) (*CreatePeriodOutput, error) {
	period, err := entity.NewPeriod(input.Name, input.Description, input.StartDate, input.EndDate, input.UserID)
	if err != nil {
		return nil, err
	}

	for _, id := range input.BillIDs {
		b, err := bill.FindOwned(ctx, uc.billRepo, id, input.UserID)
		if err != nil {
			return nil, err
		}
		if err := period.AddBill(b); err != nil {
			return nil, err
		}
	}

	if err := uc.periodRepo.Create(ctx, period); err != nil {
		return nil, fmt.Errorf("failed to create period: %w", err)
	}

	return &CreatePeriodOutput{Period: period}, nil
}
