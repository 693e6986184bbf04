package billitem

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// GetBillItemInput represents the input for fetching one bill item.
type GetBillItemInput struct {
	BillItemID uuid.UUID
	UserID     uuid.UUID
}

// GetBillItemOutput represents the output of fetching one bill item.
type GetBillItemOutput struct {
	BillItem *entity.BillItem
}

// GetBillItemUseCase loads a bill item owned by the user.
type GetBillItemUseCase struct {
	itemRepo adapter.BillItemRepository
}

// NewGetBillItemUseCase creates a new GetBillItemUseCase instance.
func NewGetBillItemUseCase(itemRepo adapter.BillItemRepository) *GetBillItemUseCase {
	return &GetBillItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute loads the bill item.
func (uc *GetBillItemUseCase) Execute(ctx context.Context, input GetBillItemInput) (*GetBillItemOutput, error) {
	item, err := FindOwned(ctx, uc.itemRepo, input.BillItemID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetBillItemOutput{BillItem: item}, nil
}

// FindOwned loads a bill item and maps a miss to the bill item not-found error.
func FindOwned(ctx context.Context, repo adapter.BillItemRepository, id, userID uuid.UUID) (*entity.BillItem, error) {
	item, err := repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBillItemNotFound) {
			return nil, domainerror.NewBillItemNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find bill item: %w", err)
	}
	return item, nil
}
