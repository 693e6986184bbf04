package period

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/adapter/adaptertest"
	"github.com/finance-app/backend/internal/application/usecase/bill"
	billitem "github.com/finance-app/backend/internal/application/usecase/bill_item"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

var (
	start = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end   = time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	periods    *adaptertest.PeriodRepository
	bills      *adaptertest.BillRepository
	items      *adaptertest.BillItemRepository
	categories *adaptertest.CategoryRepository
	userID     uuid.UUID
}

func newFixture() *fixture {
	return &fixture{
		periods:    adaptertest.NewPeriodRepository(),
		bills:      adaptertest.NewBillRepository(),
		items:      adaptertest.NewBillItemRepository(),
		categories: adaptertest.NewCategoryRepository(),
		userID:     uuid.New(),
	}
}

func (f *fixture) billTotaling(t *testing.T, amount, currency string) *entity.Bill {
	t.Helper()
	ctx := context.Background()
	item, err := billitem.NewCreateBillItemUseCase(f.items, f.categories).Execute(ctx, billitem.CreateBillItemInput{
		UserID: f.userID,
		Name:   "item",
		Price:  &billitem.PriceInput{Amount: decimal.RequireFromString(amount), Currency: currency},
	})
	if err != nil {
		t.Fatalf("failed to create item: %v", err)
	}
	out, err := bill.NewCreateBillUseCase(f.bills, f.items).Execute(ctx, bill.CreateBillInput{
		UserID: f.userID, Name: currency + " bill", BillItemIDs: []uuid.UUID{item.BillItem.ID()},
	})
	if err != nil {
		t.Fatalf("failed to create bill: %v", err)
	}
	return out.Bill
}

func TestCreatePeriod(t *testing.T) {
	f := newFixture()
	uc := NewCreatePeriodUseCase(f.periods, f.bills)

	_, err := uc.Execute(context.Background(), CreatePeriodInput{UserID: f.userID, Name: "Jan", StartDate: end, EndDate: start})
	if !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}

	usd := f.billTotaling(t, "6", "USD")
	eur := f.billTotaling(t, "300", "EUR")
	out, err := uc.Execute(context.Background(), CreatePeriodInput{
		UserID: f.userID, Name: "Jan", StartDate: start, EndDate: end,
		BillIDs: []uuid.UUID{usd.ID(), eur.ID()},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spent := out.Period.TotalSpent()
	if len(spent) != 2 || !spent["USD"].Amount().Equal(decimal.NewFromInt(6)) || !spent["EUR"].Amount().Equal(decimal.NewFromInt(300)) {
		t.Errorf("unexpected totals: %v", spent)
	}

	_, err = uc.Execute(context.Background(), CreatePeriodInput{
		UserID: f.userID, Name: "Dup", StartDate: start, EndDate: end,
		BillIDs: []uuid.UUID{usd.ID(), usd.ID()},
	})
	if !errors.Is(err, domainerror.ErrBillAlreadyInPeriod) {
		t.Errorf("expected ErrBillAlreadyInPeriod, got %v", err)
	}
}

func TestPeriodBillMembership(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created, _ := NewCreatePeriodUseCase(f.periods, f.bills).Execute(ctx, CreatePeriodInput{
		UserID: f.userID, Name: "Jan", StartDate: start, EndDate: end,
	})
	periodID := created.Period.ID()
	b := f.billTotaling(t, "10", "USD")

	add := NewAddBillUseCase(f.periods, f.bills)
	remove := NewRemoveBillUseCase(f.periods, f.bills)

	if err := add.Execute(ctx, AddBillInput{PeriodID: periodID, BillID: b.ID(), UserID: f.userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := add.Execute(ctx, AddBillInput{PeriodID: periodID, BillID: b.ID(), UserID: f.userID}); !errors.Is(err, domainerror.ErrBillAlreadyInPeriod) {
		t.Errorf("expected ErrBillAlreadyInPeriod, got %v", err)
	}
	if err := remove.Execute(ctx, RemoveBillInput{PeriodID: periodID, BillID: b.ID(), UserID: f.userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := remove.Execute(ctx, RemoveBillInput{PeriodID: periodID, BillID: b.ID(), UserID: f.userID}); !errors.Is(err, domainerror.ErrBillNotInPeriod) {
		t.Errorf("expected ErrBillNotInPeriod, got %v", err)
	}
	if err := add.Execute(ctx, AddBillInput{PeriodID: periodID, BillID: uuid.New(), UserID: f.userID}); !errors.Is(err, domainerror.ErrBillNotFound) {
		t.Errorf("expected ErrBillNotFound, got %v", err)
	}
}

func TestUpdatePeriod(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created, _ := NewCreatePeriodUseCase(f.periods, f.bills).Execute(ctx, CreatePeriodInput{
		UserID: f.userID, Name: "Jan", StartDate: start, EndDate: end,
	})
	uc := NewUpdatePeriodUseCase(f.periods)

	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	err := uc.Execute(ctx, UpdatePeriodInput{
		PeriodID: created.Period.ID(), UserID: f.userID, Name: "March",
		StartDate: march, EndDate: march.AddDate(0, 1, -1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.Period.StartDate().Equal(march) {
		t.Errorf("expected start moved to March")
	}

	err = uc.Execute(ctx, UpdatePeriodInput{
		PeriodID: created.Period.ID(), UserID: f.userID, Name: "March",
		StartDate: march, EndDate: march.AddDate(0, 0, -1),
	})
	if !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestPeriodNotFoundForOtherUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created, _ := NewCreatePeriodUseCase(f.periods, f.bills).Execute(ctx, CreatePeriodInput{
		UserID: f.userID, Name: "Jan", StartDate: start, EndDate: end,
	})

	_, err := NewGetPeriodUseCase(f.periods).Execute(ctx, GetPeriodInput{PeriodID: created.Period.ID(), UserID: uuid.New()})
	var periodErr *domainerror.PeriodError
	if !errors.As(err, &periodErr) || periodErr.Code != domainerror.ErrCodePeriodNotFound {
		t.Fatalf("expected period not-found, got %v", err)
	}

	if err := NewDeletePeriodUseCase(f.periods).Execute(ctx, DeletePeriodInput{PeriodID: created.Period.ID(), UserID: f.userID}); err != nil {
		t.Errorf("owner delete failed: %v", err)
	}
	out, _ := NewListPeriodsUseCase(f.periods).Execute(ctx, ListPeriodsInput{UserID: f.userID})
	if out.Page.TotalCount != 0 {
		t.Errorf("expected no periods after delete, got %d", out.Page.TotalCount)
	}
}
