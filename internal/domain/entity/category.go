// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// OwnerKind tells user-owned categories apart from system-seeded ones.
type OwnerKind string

const (
	OwnerKindOwned      OwnerKind = "owned"
	OwnerKindPredefined OwnerKind = "predefined"
)

// Ownership is either Owned(userID) or Predefined.
type Ownership struct {
	kind   OwnerKind
	userID uuid.UUID
}

// OwnedBy returns the ownership of a category created by userID.
func OwnedBy(userID uuid.UUID) Ownership {
	return Ownership{kind: OwnerKindOwned, userID: userID}
}

// Predefined returns the ownership of a system-seeded category.
func Predefined() Ownership {
	return Ownership{kind: OwnerKindPredefined}
}

// Kind returns the ownership variant.
func (o Ownership) Kind() OwnerKind {
	return o.kind
}

// IsPredefined reports whether the category is system-seeded.
func (o Ownership) IsPredefined() bool {
	return o.kind == OwnerKindPredefined
}

// OwnerID returns the owning user. ok is false for predefined categories.
func (o Ownership) OwnerID() (id uuid.UUID, ok bool) {
	if o.kind != OwnerKindOwned {
		return uuid.Nil, false
	}
	return o.userID, true
}

// IsVisibleTo reports whether userID may read a category with this ownership.
func (o Ownership) IsVisibleTo(userID uuid.UUID) bool {
	return o.IsPredefined() || o.userID == userID
}

// Category labels bill items. Predefined categories are immutable.
type Category struct {
	id          uuid.UUID
	name        string
	description string
	ownership   Ownership
	createdAt   time.Time
	updatedAt   time.Time
}

// NewCategory creates a category owned by userID.
func NewCategory(name, description string, userID uuid.UUID) (*Category, error) {
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
	return &Category{
		id:          uuid.New(),
		name:        name,
		description: description,
		ownership:   OwnedBy(userID),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// RestoreCategory rebuilds a category from stored state without validation.
func RestoreCategory(id uuid.UUID, name, description string, ownership Ownership, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		ownership:   ownership,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) Ownership() Ownership { return c.ownership }
func (c *Category) IsPredefined() bool   { return c.ownership.IsPredefined() }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

// CheckMutable fails for predefined categories.
func (c *Category) CheckMutable() error {
	if c.ownership.IsPredefined() {
		return domainerror.NewPredefinedCategoryError()
	}
	return nil
}

// Rename changes the category name.
func (c *Category) Rename(newName string) error {
	if err := c.CheckMutable(); err != nil {
		return err
	}
	if err := validateName("name", newName); err != nil {
		return err
	}
	c.name = newName
	c.touch()
	return nil
}

// UpdateDescription changes the category description.
func (c *Category) UpdateDescription(newDescription string) error {
	if err := c.CheckMutable(); err != nil {
		return err
	}
	if err := validateDescription(newDescription); err != nil {
		return err
	}
	c.description = newDescription
	c.touch()
	return nil
}

// Update replaces name and description. Nothing changes if either is invalid.
func (c *Category) Update(name, description string) error {
	if err := c.CheckMutable(); err != nil {
		return err
	}
	if err := validateName("name", name); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}
	c.name = name
	c.description = description
	c.touch()
	return nil
}

func (c *Category) touch() {
	c.updatedAt = time.Now().UTC()
}
