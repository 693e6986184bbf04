package model

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/domain/entity"
	"github.com/finance-app/backend/internal/domain/valueobject"
)

// BillItemModel represents the bill_items table in the database.
type BillItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:varchar(500);not null;default:''"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(19,4);not null"`
	Currency    string          `gorm:"type:varchar(10);not null;default:'';index"`
	Quantity    int             `gorm:"not null;default:1"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the BillItemModel.
func (BillItemModel) TableName() string {
	return "bill_items"
}

// ToEntity converts a BillItemModel to a domain BillItem entity.
// The Category relationship must be preloaded; without it the item falls
// back to the "Other" category.
func (m *BillItemModel) ToEntity() *entity.BillItem {
	var category *entity.Category
	if m.Category != nil {
		category = m.Category.ToEntity()
	}

	price, err := valueobject.NewMoney(m.Amount, m.Currency)
	if err != nil {
		slog.Warn("Stored bill item has an invalid price", "error", err, "id", m.ID)
		price = valueobject.ZeroMoney()
	}
	quantity, err := valueobject.NewQuantity(m.Quantity)
	if err != nil {
		slog.Warn("Stored bill item has an invalid quantity", "error", err, "id", m.ID)
		quantity = valueobject.DefaultQuantity()
	}

	return entity.RestoreBillItem(m.ID, m.Name, m.Description, category, price, quantity, m.UserID, m.CreatedAt, m.UpdatedAt)
}

// BillItemFromEntity creates a BillItemModel from a domain BillItem entity.
func BillItemFromEntity(item *entity.BillItem) *BillItemModel {
	return &BillItemModel{
		ID:          item.ID(),
		UserID:      item.UserID(),
		Name:        item.Name(),
		Description: item.Description(),
		CategoryID:  item.Category().ID(),
		Amount:      item.Price().Amount(),
		Currency:    item.Price().Currency(),
		Quantity:    item.Quantity().Value(),
		CreatedAt:   item.CreatedAt(),
		UpdatedAt:   item.UpdatedAt(),
	}
}
