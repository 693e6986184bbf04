package entity

import (
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/domain/valueobject"
)

// Period groups bills over a closed date range. Bills may use different currencies.
type Period struct {
	id          uuid.UUID
	name        string
	description string
	startDate   time.Time
	endDate     time.Time
	userID      uuid.UUID
	bills       []*Bill
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPeriod creates an empty period owned by userID.
func NewPeriod(name, description string, startDate, endDate time.Time, userID uuid.UUID) (*Period, error) {
	if userID == uuid.Nil {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidOwner, "userId", "owner is required", domainerror.ErrInvalidOwner,
		)
	}
	if err := validateName("name", name); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if startDate.After(endDate) {
		return nil, invalidDateRangeError()
	}

	now := time.Now().UTC()
	return &Period{
		id:          uuid.New(),
		name:        name,
		description: description,
		startDate:   startDate,
		endDate:     endDate,
		userID:      userID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// RestorePeriod rebuilds a period and its bills from stored state without validation.
func RestorePeriod(
	id uuid.UUID,
	name, description string,
	startDate, endDate time.Time,
	userID uuid.UUID,
	bills []*Bill,
	createdAt, updatedAt time.Time,
) *Period {
	return &Period{
		id:          id,
		name:        name,
		description: description,
		startDate:   startDate,
		endDate:     endDate,
		userID:      userID,
		bills:       slices.Clone(bills),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Period) ID() uuid.UUID        { return p.id }
func (p *Period) Name() string         { return p.name }
func (p *Period) Description() string  { return p.description }
func (p *Period) StartDate() time.Time { return p.startDate }
func (p *Period) EndDate() time.Time   { return p.endDate }
func (p *Period) UserID() uuid.UUID    { return p.userID }
func (p *Period) CreatedAt() time.Time { return p.createdAt }
func (p *Period) UpdatedAt() time.Time { return p.updatedAt }

// Bills returns a copy of the bill list in insertion order.
func (p *Period) Bills() []*Bill {
	return slices.Clone(p.bills)
}

// HasBill reports whether the period holds the bill with the given id.
func (p *Period) HasBill(billID uuid.UUID) bool {
	return p.indexOf(billID) >= 0
}

// TotalSpent sums bill totals per currency. A bill without items totals
// Money(0, "") and contributes an entry under the empty currency.
func (p *Period) TotalSpent() map[string]valueobject.Money {
	sums := make(map[string]decimal.Decimal)
	for _, bill := range p.bills {
		total := bill.TotalPrice()
		sums[total.Currency()] = sums[total.Currency()].Add(total.Amount())
	}

	spent := make(map[string]valueobject.Money, len(sums))
	for currency, amount := range sums {
		spent[currency] = valueobject.MustMoney(amount, currency)
	}
	return spent
}

// TotalSpentList is TotalSpent ordered by currency code.
func (p *Period) TotalSpentList() []valueobject.Money {
	spent := p.TotalSpent()
	list := make([]valueobject.Money, 0, len(spent))
	for _, money := range spent {
		list = append(list, money)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Currency() < list[j].Currency() })
	return list
}

// AddBill appends a bill, enforcing unique membership.
func (p *Period) AddBill(bill *Bill) error {
	if bill == nil {
		return domainerror.NewNilArgumentError("bill")
	}
	if p.HasBill(bill.ID()) {
		return domainerror.NewPeriodError(
			domainerror.ErrCodeBillAlreadyInPeriod,
			"bill already exists in the period",
			domainerror.ErrBillAlreadyInPeriod,
		)
	}
	p.bills = append(p.bills, bill)
	p.touch()
	return nil
}

// RemoveBill takes a bill out of the period.
func (p *Period) RemoveBill(bill *Bill) error {
	if bill == nil {
		return domainerror.NewNilArgumentError("bill")
	}
	idx := p.indexOf(bill.ID())
	if idx < 0 {
		return domainerror.NewPeriodError(
			domainerror.ErrCodeBillNotInPeriod,
			"bill not found in the period",
			domainerror.ErrBillNotInPeriod,
		)
	}
	p.bills = slices.Delete(p.bills, idx, idx+1)
	p.touch()
	return nil
}

// UpdateStartDate moves the start date. It may not pass the end date.
func (p *Period) UpdateStartDate(startDate time.Time) error {
	if startDate.After(p.endDate) {
		return invalidDateRangeError()
	}
	p.startDate = startDate
	p.touch()
	return nil
}

// UpdateEndDate moves the end date. It may not precede the start date.
func (p *Period) UpdateEndDate(endDate time.Time) error {
	if endDate.Before(p.startDate) {
		return invalidDateRangeError()
	}
	p.endDate = endDate
	p.touch()
	return nil
}

// UpdateName changes the period name.
func (p *Period) UpdateName(name string) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	p.name = name
	p.touch()
	return nil
}

// UpdateDescription changes the period description.
func (p *Period) UpdateDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	p.description = description
	p.touch()
	return nil
}

// Update replaces every mutable field. The new dates are checked as a pair,
// so a range can be moved past its old bounds in one call.
func (p *Period) Update(name, description string, startDate, endDate time.Time) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}
	if startDate.After(endDate) {
		return invalidDateRangeError()
	}
	p.name = name
	p.description = description
	p.startDate = startDate
	p.endDate = endDate
	p.touch()
	return nil
}

func (p *Period) indexOf(billID uuid.UUID) int {
	return slices.IndexFunc(p.bills, func(b *Bill) bool { return b.ID() == billID })
}

func (p *Period) touch() {
	p.updatedAt = time.Now().UTC()
}

func invalidDateRangeError() error {
	return domainerror.NewPeriodError(
		domainerror.ErrCodeInvalidDateRange,
		"start date must be before or equal to end date",
		domainerror.ErrInvalidDateRange,
	)
}
