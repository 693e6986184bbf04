package bill

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// GetBillInput represents the input for fetching one bill.
type GetBillInput struct {
	BillID uuid.UUID
	UserID uuid.UUID
}

// GetBillOutput represents the output of fetching one bill.
type GetBillOutput struct {
	Bill *entity.Bill
}

// GetBillUseCase loads a bill owned by the user.
type GetBillUseCase struct {
	billRepo adapter.BillRepository
}

// NewGetBillUseCase creates a new GetBillUseCase instance.
func NewGetBillUseCase(billRepo adapter.BillRepository) *GetBillUseCase {
	return &GetBillUseCase{
		billRepo: billRepo,
	}
}

// Execute loads the bill.
func (uc *GetBillUseCase) Execute(ctx context.Context, input GetBillInput) (*GetBillOutput, error) {
	bill, err := FindOwned(ctx, uc.billRepo, input.BillID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetBillOutput{Bill: bill}, nil
}

// FindOwned loads a bill and maps a miss to the bill not-found error.
func FindOwned(ctx context.Context, repo adapter.BillRepository, id, userID uuid.UUID) (*entity.Bill, error) {
	bill, err := repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBillNotFound) {
			return nil, domainerror.NewBillNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find bill: %w", err)
	}
	return bill, nil
}
