package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// BillModel represents the bills table in the database.
type BillModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:varchar(500);not null;default:''"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the BillModel.
func (BillModel) TableName() string {
	return "bills"
}

// ToEntity converts a BillModel and its ordered items to a domain Bill entity.
func (m *BillModel) ToEntity(items []*entity.BillItem) *entity.Bill {
	return entity.RestoreBill(m.ID, m.Name, m.Description, m.UserID, items, m.CreatedAt, m.UpdatedAt)
}

// BillFromEntity creates a BillModel from a domain Bill entity.
func BillFromEntity(bill *entity.Bill) *BillModel {
	return &BillModel{
		ID:          bill.ID(),
		UserID:      bill.UserID(),
		Name:        bill.Name(),
		Description: bill.Description(),
		CreatedAt:   bill.CreatedAt(),
		UpdatedAt:   bill.UpdatedAt(),
	}
}

// BillItemLinkModel represents the bill_bill_items join table.
// Position keeps the insertion order of items within a bill.
type BillItemLinkModel struct {
	BillID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	BillItemID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position   int       `gorm:"not null"`

	BillItem *BillItemModel `gorm:"foreignKey:BillItemID;references:ID"`
}

// TableName returns the table name for the BillItemLinkModel.
func (BillItemLinkModel) TableName() string {
	return "bill_bill_items"
}

// BillItemLinksFromEntity lists the membership rows of a bill in order.
func BillItemLinksFromEntity(bill *entity.Bill) []BillItemLinkModel {
	items := bill.Items()
	links := make([]BillItemLinkModel, len(items))
	for i, item := range items {
		links[i] = BillItemLinkModel{BillID: bill.ID(), BillItemID: item.ID(), Position: i}
	}
	return links
}
