package period

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
)

// ListPeriodsInput represents the input for listing periods.
type ListPeriodsInput struct {
	UserID uuid.UUID
	Query  adapter.ListQuery
}

// ListPeriodsOutput represents the output of listing periods.
type ListPeriodsOutput struct {
	Page *adapter.PageResult[*entity.Period]
}

// ListPeriodsUseCase lists the user's periods.
type ListPeriodsUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewListPeriodsUseCase creates a new ListPeriodsUseCase instance.
func NewListPeriodsUseCase(periodRepo adapter.PeriodRepository) *ListPeriodsUseCase {
	return &ListPeriodsUseCase{
		periodRepo: periodRepo,
	}
}

// Execute lists the periods.
func (uc *ListPeriodsUseCase) Execute(ctx context.Context, input ListPeriodsInput) (*ListPeriodsOutput, error) {
	query, err := input.Query.Normalize()
	if err != nil {
		return nil, err
	}

	page, err := uc.periodRepo.List(ctx, input.UserID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}

	return &ListPeriodsOutput{Page: page}, nil
}
