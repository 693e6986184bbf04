package billitem

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
)

// ListBillItemsInput represents the input for listing bill items.
type ListBillItemsInput struct {
	UserID uuid.UUID
	Query  adapter.ListQuery
}

// ListBillItemsOutput represents the output of listing bill items.
type ListBillItemsOutput struct {
	Page *adapter.PageResult[*entity.BillItem]
}

// ListBillItemsUseCase lists the user's bill items.
type ListBillItemsUseCase struct {
	itemRepo adapter.BillItemRepository
}

// NewListBillItemsUseCase creates a new ListBillItemsUseCase instance.
func NewListBillItemsUseCase(itemRepo adapter.BillItemRepository) *ListBillItemsUseCase {
	return &ListBillItemsUseCase{
		itemRepo: itemRepo,
	}
}

// Execute lists the bill items.
func (uc *ListBillItemsUseCase) Execute(ctx context.Context, input ListBillItemsInput) (*ListBillItemsOutput, error) {
	query, err := input.Query.Normalize()
	if err != nil {
		return nil, err
	}

	page, err := uc.itemRepo.List(ctx, input.UserID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bill items: %w", err)
	}

	return &ListBillItemsOutput{Page: page}, nil
}
