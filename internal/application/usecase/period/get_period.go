package period

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// GetPeriodInput represents the input for fetching one period.
type GetPeriodInput struct {
	PeriodID uuid.UUID
	UserID   uuid.UUID
}

// GetPeriodOutput represents the output of fetching one period.
type GetPeriodOutput struct {
	Period *entity.Period
}

// GetPeriodUseCase loads a period owned by the user.
type GetPeriodUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewGetPeriodUseCase creates a new GetPeriodUseCase instance.
func NewGetPeriodUseCase(periodRepo adapter.PeriodRepository) *GetPeriodUseCase {
	return &GetPeriodUseCase{
		periodRepo: periodRepo,
	}
}

// Execute loads the period.
func (uc *GetPeriodUseCase) Execute(ctx context.Context, input GetPeriodInput) (*GetPeriodOutput, error) {
	period, err := findOwned(ctx, uc.periodRepo, input.PeriodID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetPeriodOutput{Period: period}, nil
}

func findOwned(ctx context.Context, repo adapter.PeriodRepository, id, userID uuid.UUID) (*entity.Period, error) {
	period, err := repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPeriodNotFound) {
			return nil, domainerror.NewPeriodNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find period: %w", err)
	}
	return period, nil
}
