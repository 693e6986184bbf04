package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/domain/valueobject"
)

// BillItem is a priced, quantified and categorized line entry.
type BillItem struct {
	id          uuid.UUID
	name        string
	description string
	category    *Category
	price       valueobject.Money
	quantity    valueobject.Quantity
	userID      uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBillItem creates a bill item owned by userID.
// A nil category, price or quantity falls back to Other, Money(0, "") and 1.
func NewBillItem(
	name, description string,
	category *Category,
	price *valueobject.Money,
	quantity *valueobject.Quantity,
	userID uuid.UUID,
) (*BillItem, error) {
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

	item := &BillItem{
		id:          uuid.New(),
		name:        name,
		description: description,
		category:    OtherCategory(),
		price:       valueobject.ZeroMoney(),
		quantity:    valueobject.DefaultQuantity(),
		userID:      userID,
	}
	if category != nil {
		item.category = category
	}
	if price != nil {
		item.price = *price
	}
	if quantity != nil {
		item.quantity = *quantity
	}

	now := time.Now().UTC()
	item.createdAt = now
	item.updatedAt = now
	return item, nil
}

// RestoreBillItem rebuilds a bill item from stored state without validation.
func RestoreBillItem(
	id uuid.UUID,
	name, description string,
	category *Category,
	price valueobject.Money,
	quantity valueobject.Quantity,
	userID uuid.UUID,
	createdAt, updatedAt time.Time,
) *BillItem {
	if category == nil {
		category = OtherCategory()
	}
	return &BillItem{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		price:       price,
		quantity:    quantity,
		userID:      userID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (i *BillItem) ID() uuid.UUID                  { return i.id }
func (i *BillItem) Name() string                   { return i.name }
func (i *BillItem) Description() string            { return i.description }
func (i *BillItem) Category() *Category            { return i.category }
func (i *BillItem) Price() valueobject.Money       { return i.price }
func (i *BillItem) Quantity() valueobject.Quantity { return i.quantity }
func (i *BillItem) UserID() uuid.UUID              { return i.userID }
func (i *BillItem) CreatedAt() time.Time           { return i.createdAt }
func (i *BillItem) UpdatedAt() time.Time           { return i.updatedAt }

// Currency is the currency of the item's price.
func (i *BillItem) Currency() string {
	return i.price.Currency()
}

// TotalPrice is price times quantity, in the price's currency.
func (i *BillItem) TotalPrice() valueobject.Money {
	total := i.price.Amount().Mul(decimal.NewFromInt(int64(i.quantity.Value())))
	return valueobject.MustMoney(total, i.price.Currency())
}

// UpdateName changes the item name.
func (i *BillItem) UpdateName(name string) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	i.name = name
	i.touch()
	return nil
}

// UpdateDescription changes the item description.
func (i *BillItem) UpdateDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	i.description = description
	i.touch()
	return nil
}

// UpdateCategory changes the item category. Nil is rejected.
func (i *BillItem) UpdateCategory(category *Category) error {
	if category == nil {
		return domainerror.NewNilArgumentError("category")
	}
	i.category = category
	i.touch()
	return nil
}

// UpdatePrice changes the item price. Nil is rejected.
func (i *BillItem) UpdatePrice(price *valueobject.Money) error {
	if price == nil {
		return domainerror.NewNilArgumentError("price")
	}
	i.price = *price
	i.touch()
	return nil
}

// UpdateQuantity changes the item quantity. Nil is rejected.
func (i *BillItem) UpdateQuantity(quantity *valueobject.Quantity) error {
	if quantity == nil {
		return domainerror.NewNilArgumentError("quantity")
	}
	i.quantity = *quantity
	i.touch()
	return nil
}

// Update replaces every mutable field. All arguments are validated first,
// so a rejected update leaves the item unchanged.
func (i *BillItem) Update(
	name, description string,
	category *Category,
	price *valueobject.Money,
	quantity *valueobject.Quantity,
) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}
	if category == nil {
		return domainerror.NewNilArgumentError("category")
	}
	if price == nil {
		return domainerror.NewNilArgumentError("price")
	}
	if quantity == nil {
		return domainerror.NewNilArgumentError("quantity")
	}

	i.name = name
	i.description = description
	i.category = category
	i.price = *price
	i.quantity = *quantity
	i.touch()
	return nil
}

func (i *BillItem) touch() {
	i.updatedAt = time.Now().UTC()
}
