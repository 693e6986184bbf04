// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
// OwnerID is null for predefined rows.
type CategoryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Description string     `gorm:"type:varchar(500);not null;default:''"`
	OwnerKind   string     `gorm:"type:varchar(10);not null;index"`
	OwnerID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	ownership := entity.Predefined()
	if entity.OwnerKind(m.OwnerKind) == entity.OwnerKindOwned && m.OwnerID != nil {
		ownership = entity.OwnedBy(*m.OwnerID)
	}
	return entity.RestoreCategory(m.ID, m.Name, m.Description, ownership, m.CreatedAt, m.UpdatedAt)
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	m := &CategoryModel{
		ID:          category.ID(),
		Name:        category.Name(),
		Description: category.Description(),
		OwnerKind:   string(category.Ownership().Kind()),
		CreatedAt:   category.CreatedAt(),
		UpdatedAt:   category.UpdatedAt(),
	}
	if ownerID, ok := category.Ownership().OwnerID(); ok {
		m.OwnerID = &ownerID
	}
	return m
}
