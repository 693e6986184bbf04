package entity

import (
	"time"

	"github.com/google/uuid"
)

// Fixed identifiers of the system-seeded categories.
var (
	GroceriesCategoryID     = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	UtilitiesCategoryID     = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	EntertainmentCategoryID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	OtherCategoryID         = uuid.MustParse("44444444-4444-4444-4444-444444444444")
)

var predefinedSeedTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

type categorySeed struct {
	id          uuid.UUID
	name        string
	description string
}

// Read-only seed table. Callers get fresh copies, never these rows.
var predefinedSeeds = [...]categorySeed{
	{id: GroceriesCategoryID, name: "Groceries", description: "Essential food and daily consumables"},
	{id: UtilitiesCategoryID, name: "Utilities", description: "Electricity, water, gas, and related services"},
	{id: EntertainmentCategoryID, name: "Entertainment", description: "Movies, go outs, and leisure activities"},
	{id: OtherCategoryID, name: "Other", description: ""},
}

func (s categorySeed) category() *Category {
	return RestoreCategory(s.id, s.name, s.description, Predefined(), predefinedSeedTime, predefinedSeedTime)
}

// PredefinedCategories returns the seeded categories in seed order.
func PredefinedCategories() []*Category {
	categories := make([]*Category, 0, len(predefinedSeeds))
	for _, seed := range predefinedSeeds {
		categories = append(categories, seed.category())
	}
	return categories
}

// PredefinedCategory looks up a seeded category by its fixed id.
func PredefinedCategory(id uuid.UUID) (*Category, bool) {
	for _, seed := range predefinedSeeds {
		if seed.id == id {
			return seed.category(), true
		}
	}
	return nil, false
}

// IsPredefinedCategoryID reports whether id belongs to the seed table.
func IsPredefinedCategoryID(id uuid.UUID) bool {
	_, ok := PredefinedCategory(id)
	return ok
}

// OtherCategory returns the fallback category for uncategorized items.
func OtherCategory() *Category {
	c, _ := PredefinedCategory(OtherCategoryID)
	return c
}
