package billitem

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/application/usecase/category"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// UpdateBillItemInput represents the input for bill item update.
// Category, price and quantity are required.
type UpdateBillItemInput struct {
	BillItemID  uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	CategoryID  *uuid.UUID
	Price       *PriceInput
	Quantity    *int
}

// UpdateBillItemUseCase handles bill item update logic.
type UpdateBillItemUseCase struct {
	itemRepo     adapter.BillItemRepository
	categoryRepo adapter.CategoryRepository
	billRepo     adapter.BillRepository
}

// NewUpdateBillItemUseCase creates a new UpdateBillItemUseCase instance.
func NewUpdateBillItemUseCase(
	itemRepo adapter.BillItemRepository,
	categoryRepo adapter.CategoryRepository,
	billRepo adapter.BillRepository,
) *UpdateBillItemUseCase {
	return &UpdateBillItemUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		billRepo:     billRepo,
	}
}

// Execute performs the bill item update.
func (uc *UpdateBillItemUseCase) Execute(ctx context.Context, input UpdateBillItemInput) error {
	// Find the existing item
	item, err := FindOwned(ctx, uc.itemRepo, input.BillItemID, input.UserID)
	if err != nil {
		return err
	}

	if input.CategoryID == nil {
		return domainerror.NewNilArgumentError("categoryId")
	}
	cat, err := category.FindVisible(ctx, uc.categoryRepo, *input.CategoryID, input.UserID)
	if err != nil {
		return err
	}
	price, err := toMoney(input.Price)
	if err != nil {
		return err
	}
	quantity, err := toQuantity(input.Quantity)
	if err != nil {
		return err
	}

	// Bills holding the item must keep a single currency
	if price != nil && price.Currency() != item.Currency() {
		if err := uc.checkBillCurrencies(ctx, item, price.Currency()); err != nil {
			return err
		}
	}

	if err := item.Update(input.Name, input.Description, cat, price, quantity); err != nil {
		return err
	}

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("failed to update bill item: %w", err)
	}
	return nil
}

func (uc *UpdateBillItemUseCase) checkBillCurrencies(ctx context.Context, item *entity.BillItem, currency string) error {
	bills, err := uc.billRepo.FindByItemID(ctx, item.ID(), item.UserID())
	if err != nil {
		return fmt.Errorf("failed to find bills for item: %w", err)
	}
	for _, bill := range bills {
		for _, other := range bill.Items() {
			if other.ID() != item.ID() && other.Currency() != currency {
				return domainerror.NewBillError(
					domainerror.ErrCodeCurrencyMismatch,
					fmt.Sprintf("bill '%s' holds items in %s", bill.Name(), other.Currency()),
					domainerror.ErrCurrencyMismatch,
				)
			}
		}
	}
	return nil
}
