package bill

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
)

// ListBillsInput represents the input for listing bills.
type ListBillsInput struct {
	UserID uuid.UUID
	Query  adapter.ListQuery
}

// ListBillsOutput represents the output of listing bills.
type ListBillsOutput struct {
	Page *adapter.PageResult[*entity.Bill]
}

// ListBillsUseCase lists the user's bills.
type ListBillsUseCase struct {
	billRepo adapter.BillRepository
}

// NewListBillsUseCase creates a new ListBillsUseCase instance.
func NewListBillsUseCase(billRepo adapter.BillRepository) *ListBillsUseCase {
	return &ListBillsUseCase{
		billRepo: billRepo,
	}
}

// Execute lists the bills.
func (uc *ListBillsUseCase) Execute(ctx context.Context, input ListBillsInput) (*ListBillsOutput, error) {
	query, err := input.Query.Normalize()
	if err != nil {
		return nil, err
	}

	page, err := uc.billRepo.List(ctx, input.UserID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	return &ListBillsOutput{Page: page}, nil
}
