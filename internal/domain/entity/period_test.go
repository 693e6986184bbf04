package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/domain/valueobject"
)

var (
	jan1  = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	jan31 = time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	feb1  = time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
)

func newPeriod(t *testing.T) *Period {
	t.Helper()
	p, err := NewPeriod("January", "", jan1, jan31, uuid.New())
	if err != nil {
		t.Fatalf("failed to create period: %v", err)
	}
	return p
}

func billWith(t *testing.T, items ...*BillItem) *Bill {
	t.Helper()
	bill := newBill(t)
	if err := bill.AddBillItems(items); err != nil {
		t.Fatalf("failed to add items: %v", err)
	}
	return bill
}

func TestNewPeriodDates(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		expectErr bool
	}{
		{name: "start before end", start: jan1, end: jan31},
		{name: "same day", start: jan1, end: jan1},
		{name: "start after end", start: feb1, end: jan31, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPeriod("P", "", tt.start, tt.end, uuid.New())
			if tt.expectErr {
				if !errors.Is(err, domainerror.ErrInvalidDateRange) {
					t.Errorf("expected ErrInvalidDateRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPeriodDateUpdates(t *testing.T) {
	p := newPeriod(t)

	if err := p.UpdateStartDate(feb1); !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Errorf("start after end: expected ErrInvalidDateRange, got %v", err)
	}
	if !p.StartDate().Equal(jan1) {
		t.Errorf("rejected update must keep the start date")
	}

	if err := p.UpdateEndDate(jan1.AddDate(0, 0, -1)); !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Errorf("end before start: expected ErrInvalidDateRange, got %v", err)
	}

	if err := p.UpdateEndDate(feb1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.UpdateStartDate(feb1); err != nil {
		t.Fatalf("start equal to end must be accepted: %v", err)
	}
}

func TestPeriodUpdateMovesWholeRange(t *testing.T) {
	p := newPeriod(t)
	marchStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	marchEnd := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	if err := p.Update("March", "", marchStart, marchEnd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.StartDate().Equal(marchStart) || !p.EndDate().Equal(marchEnd) {
		t.Errorf("expected range moved to March")
	}

	if err := p.Update("March", "", marchEnd, marchStart); !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestPeriodTotalSpent(t *testing.T) {
	p := newPeriod(t)
	if len(p.TotalSpent()) != 0 {
		t.Errorf("expected empty mapping for an empty period")
	}

	usd := billWith(t, newItem(t, "Bread", "3", "USD", 2))
	eur := billWith(t, newItem(t, "Flight", "300", "EUR", 1))
	if err := p.AddBill(usd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.AddBill(eur); err != nil {
		t.Fatalf("periods accept mixed currencies: %v", err)
	}

	spent := p.TotalSpent()
	if len(spent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(spent))
	}
	if !spent["USD"].Equal(*money(t, "6", "USD")) {
		t.Errorf("expected USD 6, got %s", spent["USD"])
	}
	if !spent["EUR"].Equal(*money(t, "300", "EUR")) {
		t.Errorf("expected EUR 300, got %s", spent["EUR"])
	}

	second := billWith(t, newItem(t, "Milk", "1.5", "USD", 2))
	_ = p.AddBill(second)
	if !p.TotalSpent()["USD"].Equal(*money(t, "9", "USD")) {
		t.Errorf("expected USD 9, got %s", p.TotalSpent()["USD"])
	}

	list := p.TotalSpentList()
	if len(list) != 2 || list[0].Currency() != "EUR" || list[1].Currency() != "USD" {
		t.Errorf("expected list ordered by currency, got %v", list)
	}
}

func TestPeriodTotalSpentGroupsEmptyBills(t *testing.T) {
	p := newPeriod(t)
	if len(p.TotalSpent()) != 0 {
		t.Errorf("expected no entries without bills, got %v", p.TotalSpent())
	}

	_ = p.AddBill(newBill(t))
	spent := p.TotalSpent()
	if len(spent) != 1 || !spent[""].Equal(valueobject.ZeroMoney()) {
		t.Fatalf("expected a single zero entry under the empty currency, got %v", spent)
	}

	_ = p.AddBill(billWith(t, newItem(t, "Bread", "3", "USD", 1)))
	spent = p.TotalSpent()
	if len(spent) != 2 {
		t.Fatalf("expected 2 entries, got %v", spent)
	}
	if !spent[""].Amount().IsZero() || !spent["USD"].Equal(*money(t, "3", "USD")) {
		t.Errorf("unexpected totals %v", spent)
	}

	list := p.TotalSpentList()
	if list[0].Currency() != "" || list[1].Currency() != "USD" {
		t.Errorf("expected the empty currency first, got %v", list)
	}
}

func TestPeriodTotalSpentIsNotCached(t *testing.T) {
	p := newPeriod(t)
	item := newItem(t, "Bread", "3", "USD", 1)
	bill := billWith(t, item)
	_ = p.AddBill(bill)

	if err := item.UpdateQuantity(qty(t, 4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.TotalSpent()["USD"].Equal(*money(t, "12", "USD")) {
		t.Errorf("expected total to reflect the new quantity, got %s", p.TotalSpent()["USD"])
	}
}

func TestPeriodMembership(t *testing.T) {
	p := newPeriod(t)
	bill := newBill(t)

	if err := p.AddBill(nil); !errors.Is(err, domainerror.ErrNilArgument) {
		t.Errorf("expected ErrNilArgument, got %v", err)
	}
	if err := p.AddBill(bill); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.AddBill(bill); !errors.Is(err, domainerror.ErrBillAlreadyInPeriod) {
		t.Errorf("expected ErrBillAlreadyInPeriod, got %v", err)
	}
	if err := p.RemoveBill(newBill(t)); !errors.Is(err, domainerror.ErrBillNotInPeriod) {
		t.Errorf("expected ErrBillNotInPeriod, got %v", err)
	}
	if err := p.RemoveBill(bill); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if p.HasBill(bill.ID()) {
		t.Errorf("bill must be gone after removal")
	}
}
