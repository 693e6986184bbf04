package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// PeriodModel represents the periods table in the database.
type PeriodModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:varchar(500);not null;default:''"`
	StartDate   time.Time `gorm:"not null;index"`
	EndDate     time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the PeriodModel.
func (PeriodModel) TableName() string {
	return "periods"
}

// ToEntity converts a PeriodModel and its ordered bills to a domain Period entity.
func (m *PeriodModel) ToEntity(bills []*entity.Bill) *entity.Period {
	return entity.RestorePeriod(m.ID, m.Name, m.Description, m.StartDate.UTC(), m.EndDate.UTC(), m.UserID, bills, m.CreatedAt, m.UpdatedAt)
}

// PeriodFromEntity creates a PeriodModel from a domain Period entity.
func PeriodFromEntity(period *entity.Period) *PeriodModel {
	return &PeriodModel{
		ID:          period.ID(),
		UserID:      period.UserID(),
		Name:        period.Name(),
		Description: period.Description(),
		StartDate:   period.StartDate(),
		EndDate:     period.EndDate(),
		CreatedAt:   period.CreatedAt(),
		UpdatedAt:   period.UpdatedAt(),
	}
}

// PeriodBillLinkModel represents the period_bills join table.
type PeriodBillLinkModel struct {
	PeriodID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BillID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position int       `gorm:"not null"`
}

// TableName returns the table name for the PeriodBillLinkModel.
func (PeriodBillLinkModel) TableName() string {
	return "period_bills"
}

// PeriodBillLinksFromEntity lists the membership rows of a period in order.
func PeriodBillLinksFromEntity(period *entity.Period) []PeriodBillLinkModel {
	bills := period.Bills()
	links := make([]PeriodBillLinkModel, len(bills))
	for i, bill := range bills {
		links[i] = PeriodBillLinkModel{PeriodID: period.ID(), BillID: bill.ID(), Position: i}
	}
	return links
}
