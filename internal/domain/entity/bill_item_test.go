package entity

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/domain/valueobject"
)

func money(t *testing.T, amount, currency string) *valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoney(decimal.RequireFromString(amount), currency)
	if err != nil {
		t.Fatalf("invalid money %s %s: %v", amount, currency, err)
	}
	return &m
}

func qty(t *testing.T, value int) *valueobject.Quantity {
	t.Helper()
	q, err := valueobject.NewQuantity(value)
	if err != nil {
		t.Fatalf("invalid quantity %d: %v", value, err)
	}
	return &q
}

func newItem(t *testing.T, name, amount, currency string, quantity int) *BillItem {
	t.Helper()
	item, err := NewBillItem(name, "", nil, money(t, amount, currency), qty(t, quantity), uuid.New())
	if err != nil {
		t.Fatalf("failed to create item: %v", err)
	}
	return item
}

func TestNewBillItemDefaults(t *testing.T) {
	item, err := NewBillItem("Milk", "", nil, nil, nil, uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.Category().ID() != OtherCategoryID || item.Category().Name() != "Other" {
		t.Errorf("expected Other category, got %s", item.Category().Name())
	}
	if !item.Price().Equal(valueobject.ZeroMoney()) {
		t.Errorf("expected Money(0, \"\"), got %s", item.Price())
	}
	if item.Quantity().Value() != 1 {
		t.Errorf("expected quantity 1, got %d", item.Quantity().Value())
	}
}

func TestNewBillItemValidation(t *testing.T) {
	tests := []struct {
		name        string
		itemName    string
		userID      uuid.UUID
		expectedErr error
	}{
		{name: "empty name", itemName: "", userID: uuid.New(), expectedErr: domainerror.ErrNameRequired},
		{name: "missing owner", itemName: "Milk", userID: uuid.Nil, expectedErr: domainerror.ErrInvalidOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBillItem(tt.itemName, "", nil, nil, nil, tt.userID)
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestBillItemTotalPrice(t *testing.T) {
	item := newItem(t, "Milk", "3", "eur", 2)
	if !item.TotalPrice().Equal(*money(t, "6", "EUR")) {
		t.Errorf("expected 6 EUR, got %s", item.TotalPrice())
	}

	if err := item.UpdateQuantity(qty(t, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !item.TotalPrice().Equal(*money(t, "15", "EUR")) {
		t.Errorf("expected total to follow quantity, got %s", item.TotalPrice())
	}
}

func TestBillItemUpdatersRejectNil(t *testing.T) {
	item := newItem(t, "Milk", "3", "EUR", 2)

	if err := item.UpdateCategory(nil); !errors.Is(err, domainerror.ErrNilArgument) {
		t.Errorf("category: expected ErrNilArgument, got %v", err)
	}
	if err := item.UpdatePrice(nil); !errors.Is(err, domainerror.ErrNilArgument) {
		t.Errorf("price: expected ErrNilArgument, got %v", err)
	}
	if err := item.UpdateQuantity(nil); !errors.Is(err, domainerror.ErrNilArgument) {
		t.Errorf("quantity: expected ErrNilArgument, got %v", err)
	}
	if err := item.UpdateName(""); !errors.Is(err, domainerror.ErrNameRequired) {
		t.Errorf("name: expected ErrNameRequired, got %v", err)
	}
}

func TestBillItemUpdateIsAllOrNothing(t *testing.T) {
	item := newItem(t, "Milk", "3", "EUR", 2)
	groceries, _ := PredefinedCategory(GroceriesCategoryID)

	err := item.Update("Oat milk", "1L", groceries, money(t, "4", "EUR"), nil)
	if !errors.Is(err, domainerror.ErrNilArgument) {
		t.Fatalf("expected ErrNilArgument, got %v", err)
	}
	if item.Name() != "Milk" || item.Category().ID() != OtherCategoryID {
		t.Errorf("rejected update must leave the item untouched")
	}

	if err := item.Update("Oat milk", "1L", groceries, money(t, "4", "EUR"), qty(t, 3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name() != "Oat milk" || item.Category().ID() != GroceriesCategoryID {
		t.Errorf("update not applied")
	}
	if !item.TotalPrice().Equal(*money(t, "12", "EUR")) {
		t.Errorf("expected 12 EUR, got %s", item.TotalPrice())
	}
}
