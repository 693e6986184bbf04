package entity

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/domain/valueobject"
)

func newBill(t *testing.T) *Bill {
	t.Helper()
	bill, err := NewBill("Groceries", "", uuid.New())
	if err != nil {
		t.Fatalf("failed to create bill: %v", err)
	}
	return bill
}

func TestNewBillValidation(t *testing.T) {
	if _, err := NewBill("", "", uuid.New()); !errors.Is(err, domainerror.ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	if _, err := NewBill("Rent", "", uuid.Nil); !errors.Is(err, domainerror.ErrInvalidOwner) {
		t.Errorf("expected ErrInvalidOwner, got %v", err)
	}
}

func TestBillTotalPrice(t *testing.T) {
	bill := newBill(t)
	if !bill.TotalPrice().Equal(valueobject.ZeroMoney()) {
		t.Errorf("expected empty bill to total Money(0, \"\"), got %s", bill.TotalPrice())
	}

	if err := bill.AddBillItem(newItem(t, "Bread", "3", "USD", 2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bill.AddBillItem(newItem(t, "Butter", "5", "USD", 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bill.TotalPrice().Equal(*money(t, "11", "USD")) {
		t.Errorf("expected 11 USD, got %s", bill.TotalPrice())
	}
	if bill.Currency() != "USD" {
		t.Errorf("expected USD, got %q", bill.Currency())
	}
}

func TestBillCurrencyLock(t *testing.T) {
	bill := newBill(t)
	usd := newItem(t, "Bread", "3", "USD", 1)
	eur := newItem(t, "Cheese", "7", "EUR", 1)

	if err := bill.AddBillItem(usd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := bill.AddBillItem(eur)
	if !errors.Is(err, domainerror.ErrCurrencyMismatch) {
		t.Fatalf("expected ErrCurrencyMismatch, got %v", err)
	}
	if len(bill.Items()) != 1 {
		t.Errorf("rejected item must not be added")
	}

	if err := bill.RemoveItem(usd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bill.AddBillItem(eur); err != nil {
		t.Errorf("empty bill must accept any currency, got %v", err)
	}
	if bill.Currency() != "EUR" {
		t.Errorf("expected EUR, got %q", bill.Currency())
	}
}

func TestBillMembership(t *testing.T) {
	tests := []struct {
		name        string
		run         func(b *Bill, item *BillItem) error
		expectedErr error
	}{
		{
			name:        "add nil item",
			run:         func(b *Bill, _ *BillItem) error { return b.AddBillItem(nil) },
			expectedErr: domainerror.ErrNilArgument,
		},
		{
			name: "add duplicate item",
			run: func(b *Bill, item *BillItem) error {
				if err := b.AddBillItem(item); err != nil {
					return err
				}
				return b.AddBillItem(item)
			},
			expectedErr: domainerror.ErrItemAlreadyInBill,
		},
		{
			name:        "remove nil item",
			run:         func(b *Bill, _ *BillItem) error { return b.RemoveItem(nil) },
			expectedErr: domainerror.ErrNilArgument,
		},
		{
			name:        "remove absent item",
			run:         func(b *Bill, item *BillItem) error { return b.RemoveItem(item) },
			expectedErr: domainerror.ErrItemNotInBill,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(newBill(t), newItem(t, "Bread", "3", "USD", 1))
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestBillAddBillItemsIsAtomic(t *testing.T) {
	bill := newBill(t)
	items := []*BillItem{
		newItem(t, "Bread", "3", "USD", 1),
		newItem(t, "Milk", "2", "USD", 1),
		newItem(t, "Cheese", "7", "EUR", 1),
	}

	if err := bill.AddBillItems(items); !errors.Is(err, domainerror.ErrCurrencyMismatch) {
		t.Fatalf("expected ErrCurrencyMismatch, got %v", err)
	}
	if len(bill.Items()) != 0 {
		t.Errorf("expected no items after a rejected batch, got %d", len(bill.Items()))
	}

	if err := bill.AddBillItems(items[:2]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bill.Items()) != 2 {
		t.Errorf("expected 2 items, got %d", len(bill.Items()))
	}
}

func TestBillCheckItemCurrency(t *testing.T) {
	bill := newBill(t)
	bread := newItem(t, "Bread", "3", "USD", 1)
	milk := newItem(t, "Milk", "2", "USD", 1)
	_ = bill.AddBillItems([]*BillItem{bread, milk})

	if err := bread.UpdatePrice(money(t, "3", "EUR")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bill.CheckItemCurrency(bread); !errors.Is(err, domainerror.ErrCurrencyMismatch) {
		t.Errorf("expected ErrCurrencyMismatch, got %v", err)
	}

	single := newBill(t)
	_ = single.AddBillItem(milk)
	if err := milk.UpdatePrice(money(t, "2", "EUR")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := single.CheckItemCurrency(milk); err != nil {
		t.Errorf("sole item may change currency, got %v", err)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	bill := newBill(t)
	_ = bill.AddBillItem(newItem(t, "Bread", "3", "USD", 1))

	items := bill.Items()
	items[0] = nil
	if bill.Items()[0] == nil {
		t.Errorf("mutating the returned slice must not affect the bill")
	}
}

func TestFoodScenario(t *testing.T) {
	userID := uuid.New()

	food, err := NewCategory("Food", "", userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	milk, err := NewBillItem("Milk", "1L", food, money(t, "3", "EUR"), qty(t, 2), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bill, err := NewBill("Groceries", "", userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bill.AddBillItem(milk); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bill.TotalPrice().Equal(*money(t, "6", "EUR")) {
		t.Errorf("expected 6 EUR, got %s", bill.TotalPrice())
	}
}
