package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/finance-app/backend/internal/domain/error"
)

func TestNewCategory(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		catName     string
		userID      uuid.UUID
		expectedErr error
	}{
		{name: "valid", catName: "Food", userID: userID},
		{name: "empty name", catName: "", userID: userID, expectedErr: domainerror.ErrNameRequired},
		{name: "whitespace name", catName: "   ", userID: userID, expectedErr: domainerror.ErrNameRequired},
		{name: "name too long", catName: strings.Repeat("a", MaxNameLength+1), userID: userID, expectedErr: domainerror.ErrNameTooLong},
		{name: "missing owner", catName: "Food", userID: uuid.Nil, expectedErr: domainerror.ErrInvalidOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCategory(tt.catName, "", tt.userID)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			owner, ok := c.Ownership().OwnerID()
			if !ok || owner != userID {
				t.Errorf("expected category owned by %s", userID)
			}
			if c.IsPredefined() {
				t.Errorf("user category must not be predefined")
			}
		})
	}
}

func TestCategoryMutations(t *testing.T) {
	c, err := NewCategory("Food", "", uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.Rename("Groceries & Food"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if err := c.UpdateDescription("weekly market"); err != nil {
		t.Fatalf("update description failed: %v", err)
	}
	if c.Name() != "Groceries & Food" || c.Description() != "weekly market" {
		t.Errorf("unexpected state: %q / %q", c.Name(), c.Description())
	}

	if err := c.Rename(" "); !errors.Is(err, domainerror.ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	if c.Name() != "Groceries & Food" {
		t.Errorf("failed rename must not change the name")
	}

	if err := c.Update("", "new"); err == nil {
		t.Errorf("expected update with empty name to fail")
	}
	if c.Description() != "weekly market" {
		t.Errorf("failed update must not change the description")
	}
}

func TestPredefinedCategoryIsImmutable(t *testing.T) {
	for _, c := range PredefinedCategories() {
		t.Run(c.Name(), func(t *testing.T) {
			if !c.IsPredefined() {
				t.Fatalf("expected predefined category")
			}
			if err := c.Rename("Changed"); !errors.Is(err, domainerror.ErrPredefinedCategoryImmutable) {
				t.Errorf("rename: expected ErrPredefinedCategoryImmutable, got %v", err)
			}
			if err := c.UpdateDescription("changed"); !errors.Is(err, domainerror.ErrPredefinedCategoryImmutable) {
				t.Errorf("update description: expected ErrPredefinedCategoryImmutable, got %v", err)
			}
			if err := c.Update("Changed", "changed"); !errors.Is(err, domainerror.ErrPredefinedCategoryImmutable) {
				t.Errorf("update: expected ErrPredefinedCategoryImmutable, got %v", err)
			}
		})
	}
}

func TestPredefinedSeedTable(t *testing.T) {
	expected := []struct {
		id          string
		name        string
		description string
	}{
		{"11111111-1111-1111-1111-111111111111", "Groceries", "Essential food and daily consumables"},
		{"22222222-2222-2222-2222-222222222222", "Utilities", "Electricity, water, gas, and related services"},
		{"33333333-3333-3333-3333-333333333333", "Entertainment", "Movies, go outs, and leisure activities"},
		{"44444444-4444-4444-4444-444444444444", "Other", ""},
	}

	seeded := PredefinedCategories()
	if len(seeded) != len(expected) {
		t.Fatalf("expected %d seeds, got %d", len(expected), len(seeded))
	}
	for i, want := range expected {
		got := seeded[i]
		if got.ID().String() != want.id || got.Name() != want.name || got.Description() != want.description {
			t.Errorf("seed %d: got (%s, %q, %q)", i, got.ID(), got.Name(), got.Description())
		}
		if _, ok := got.Ownership().OwnerID(); ok {
			t.Errorf("seed %s must have no owner", got.Name())
		}
	}

	other := OtherCategory()
	if other.ID() != OtherCategoryID || other.Name() != "Other" {
		t.Errorf("unexpected Other category: %s %s", other.ID(), other.Name())
	}

	// Each call hands out a fresh copy.
	if PredefinedCategories()[0] == PredefinedCategories()[0] {
		t.Errorf("expected distinct instances per call")
	}
	if _, ok := PredefinedCategory(uuid.New()); ok {
		t.Errorf("random id must not resolve to a predefined category")
	}
}

func TestOwnershipVisibility(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	owned := OwnedBy(owner)
	if !owned.IsVisibleTo(owner) || owned.IsVisibleTo(stranger) {
		t.Errorf("owned category must only be visible to its owner")
	}

	predefined := Predefined()
	if !predefined.IsVisibleTo(owner) || !predefined.IsVisibleTo(stranger) {
		t.Errorf("predefined category must be visible to everyone")
	}
}
