package period

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
)

// UpdatePeriodInput represents the input for period update.
type UpdatePeriodInput struct {
	PeriodID    uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

// UpdatePeriodUseCase handles period update logic.
type UpdatePeriodUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewUpdatePeriodUseCase creates a new UpdatePeriodUseCase instance.
func NewUpdatePeriodUseCase(periodRepo adapter.PeriodRepository) *UpdatePeriodUseCase {
	return &UpdatePeriodUseCase{
		periodRepo: periodRepo,
	}
}

// Execute performs the period update.
func (uc *UpdatePeriodUseCase) Execute(ctx context.Context, input UpdatePeriodInput) error {
	period, err := findOwned(ctx, uc.periodRepo, input.PeriodID, input.UserID)
	if err != nil {
		return err
	}

	if err := period.Update(input.Name, input.Description, input.StartDate, input.EndDate); err != nil {
		return err
	}

	if err := uc.periodRepo.Update(ctx, period); err != nil {
		return fmt.Errorf("failed to update period: %w", err)
	}
	return nil
}
