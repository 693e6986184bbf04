// Package billitem contains bill item use cases.
package billitem

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/application/usecase/category"
	"github.com/finance-app/backend/internal/domain/entity"
	"github.com/finance-app/backend/internal/domain/valueobject"
)

// PriceInput is a requested price before validation.
type PriceInput struct {
	Amount   decimal.Decimal
	Currency string
}

// CreateBillItemInput represents the input for bill item creation.
// Nil CategoryID, Price or Quantity select the defaults.
type CreateBillItemInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
	CategoryID  *uuid.UUID
	Price       *PriceInput
	Quantity    *int
}

// CreateBillItemOutput represents the output of bill item creation.
type CreateBillItemOutput struct {
	BillItem *entity.BillItem
}

// CreateBillItemUseCase handles bill item creation logic.
type CreateBillItemUseCase struct {
	itemRepo     adapter.BillItemRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBillItemUseCase creates a new CreateBillItemUseCase instance.
func NewCreateBillItemUseCase(itemRepo adapter.BillItemRepository, categoryRepo adapter.CategoryRepository) *CreateBillItemUseCase {
	return &CreateBillItemUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the bill item creation.
func (uc *CreateBillItemUseCase) Execute(ctx context.Context, input CreateBillItemInput) (*CreateBillItemOutput, error) {
	var cat *entity.Category
	if input.CategoryID != nil {
		found, err := category.FindVisible(ctx, uc.categoryRepo, *input.CategoryID, input.UserID)
		if err != nil {
			return nil, err
		}
		cat = found
	}

	price, err := toMoney(input.Price)
	if err != nil {
		return nil, err
	}
	quantity, err := toQuantity(input.Quantity)
	if err != nil {
		return nil, err
	}

	item, err := entity.NewBillItem(input.Name, input.Description, cat, price, quantity, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create bill item: %w", err)
	}

	return &CreateBillItemOutput{BillItem: item}, nil
}

func toMoney(price *PriceInput) (*valueobject.Money, error) {
	if price == nil {
		return nil, nil
	}
	m, err := valueobject.NewMoney(price.Amount, price.Currency)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func toQuantity(quantity *int) (*valueobject.Quantity, error) {
	if quantity == nil {
		return nil, nil
	}
	q, err := valueobject.NewQuantity(*quantity)
	if err != nil {
		return nil, err
	}
	return &q, nil
}
