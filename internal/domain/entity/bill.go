package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/domain/valueobject"
)

// Bill groups bill items that share one currency.
// An empty bill accepts an item of any currency.
type Bill struct {
	id          uuid.UUID
	name        string
	description string
	userID      uuid.UUID
	items       []*BillItem
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBill creates an empty bill owned by userID.
func NewBill(name, description string, userID uuid.UUID) (*Bill, error) {
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

	now := time.Now().UTC()
	return &Bill{
		id:          uuid.New(),
		name:        name,
		description: description,
		userID:      userID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// RestoreBill rebuilds a bill and its items from stored state without validation.
func RestoreBill(
	id uuid.UUID,
	name, description string,
	userID uuid.UUID,
	items []*BillItem,
	createdAt, updatedAt time.Time,
) *Bill {
	return &Bill{
		id:          id,
		name:        name,
		description: description,
		userID:      userID,
		items:       slices.Clone(items),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Bill) ID() uuid.UUID        { return b.id }
func (b *Bill) Name() string         { return b.name }
func (b *Bill) Description() string  { return b.description }
func (b *Bill) UserID() uuid.UUID    { return b.userID }
func (b *Bill) CreatedAt() time.Time { return b.createdAt }
func (b *Bill) UpdatedAt() time.Time { return b.updatedAt }

// Items returns a copy of the item list in insertion order.
func (b *Bill) Items() []*BillItem {
	return slices.Clone(b.items)
}

// HasItem reports whether the bill holds the item with the given id.
func (b *Bill) HasItem(itemID uuid.UUID) bool {
	return b.indexOf(itemID) >= 0
}

// Currency is the currency shared by the items, or "" for an empty bill.
func (b *Bill) Currency() string {
	if len(b.items) == 0 {
		return ""
	}
	return b.items[0].Currency()
}

// TotalPrice sums price times quantity over the items.
// An empty bill totals Money(0, "").
func (b *Bill) TotalPrice() valueobject.Money {
	if len(b.items) == 0 {
		return valueobject.ZeroMoney()
	}
	total := decimal.Zero
	for _, item := range b.items {
		total = total.Add(item.TotalPrice().Amount())
	}
	return valueobject.MustMoney(total, b.Currency())
}

// AddBillItem appends an item, enforcing unique membership and the currency lock.
func (b *Bill) AddBillItem(item *BillItem) error {
	if err := b.checkAddable(b.items, item); err != nil {
		return err
	}
	b.items = append(b.items, item)
	b.touch()
	return nil
}

// AddBillItems appends several items. Either all are added or none.
func (b *Bill) AddBillItems(items []*BillItem) error {
	staged := slices.Clone(b.items)
	for _, item := range items {
		if err := b.checkAddable(staged, item); err != nil {
			return err
		}
		staged = append(staged, item)
	}
	b.items = staged
	b.touch()
	return nil
}

// RemoveItem takes an item out of the bill. Removing the last item lifts the currency lock.
func (b *Bill) RemoveItem(item *BillItem) error {
	if item == nil {
		return domainerror.NewNilArgumentError("billItem")
	}
	idx := b.indexOf(item.ID())
	if idx < 0 {
		return domainerror.NewBillError(
			domainerror.ErrCodeItemNotInBill,
			"item not found in the bill",
			domainerror.ErrItemNotInBill,
		)
	}
	b.items = slices.Delete(b.items, idx, idx+1)
	b.touch()
	return nil
}

// CheckItemCurrency verifies that item, with its current price, can stay in the bill.
// The item's own previous version is ignored when comparing.
func (b *Bill) CheckItemCurrency(item *BillItem) error {
	for _, other := range b.items {
		if other.ID() == item.ID() {
			continue
		}
		if other.Currency() != item.Currency() {
			return currencyMismatchError()
		}
	}
	return nil
}

// UpdateName changes the bill name.
func (b *Bill) UpdateName(name string) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	b.name = name
	b.touch()
	return nil
}

// UpdateDescription changes the bill description.
func (b *Bill) UpdateDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	b.description = description
	b.touch()
	return nil
}

// Update replaces name and description. Nothing changes if either is invalid.
func (b *Bill) Update(name, description string) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}
	b.name = name
	b.description = description
	b.touch()
	return nil
}

func (b *Bill) checkAddable(current []*BillItem, item *BillItem) error {
	if item == nil {
		return domainerror.NewNilArgumentError("billItem")
	}
	for _, existing := range current {
		if existing.ID() == item.ID() {
			return domainerror.NewBillError(
				domainerror.ErrCodeItemAlreadyInBill,
				"item already exists in the bill",
				domainerror.ErrItemAlreadyInBill,
			)
		}
	}
	if len(current) > 0 && current[0].Currency() != item.Currency() {
		return currencyMismatchError()
	}
	return nil
}

func (b *Bill) indexOf(itemID uuid.UUID) int {
	return slices.IndexFunc(b.items, func(i *BillItem) bool { return i.ID() == itemID })
}

func (b *Bill) touch() {
	b.updatedAt = time.Now().UTC()
}

func currencyMismatchError() error {
	return domainerror.NewBillError(
		domainerror.ErrCodeCurrencyMismatch,
		"all items in a bill must have the same currency",
		domainerror.ErrCurrencyMismatch,
	)
}
