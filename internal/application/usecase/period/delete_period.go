package period

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
)

// DeletePeriodInput represents the input for period deletion.
type DeletePeriodInput struct {
	PeriodID uuid.UUID
	UserID   uuid.UUID
}

// DeletePeriodUseCase removes a period. Its bills are kept.
type DeletePeriodUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewDeletePeriodUseCase creates a new DeletePeriodUseCase instance.
func NewDeletePeriodUseCase(periodRepo adapter.PeriodRepository) *DeletePeriodUseCase {
	return &DeletePeriodUseCase{
		periodRepo: periodRepo,
	}
}

// Execute performs the period deletion.
func (uc *DeletePeriodUseCase) Execute(ctx context.Context, input DeletePeriodInput) error {
	period, err := findOwned(ctx, uc.periodRepo, input.PeriodID, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.periodRepo.Delete(ctx, period.ID(), input.UserID); err != nil {
		return fmt.Errorf("failed to delete period: %w", err)
	}
	return nil
}
