package dto

import (
	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// CreateBillItemRequest represents the request body for bill item creation.
// Omitted category, price and quantity fall back to Other, zero and one.
type CreateBillItemRequest struct {
	Name        string        `json:"name" binding:"required,max=100"`
	Description string        `json:"description" binding:"max=500"`
	CategoryID  *uuid.UUID    `json:"categoryId"`
	Price       *MoneyRequest `json:"price"`
	Quantity    *int          `json:"quantity" binding:"omitempty,min=1"`
}

// UpdateBillItemRequest represents the request body for bill item update.
type UpdateBillItemRequest struct {
	Name        string        `json:"name" binding:"required,max=100"`
	Description string        `json:"description" binding:"max=500"`
	CategoryID  *uuid.UUID    `json:"categoryId" binding:"required"`
	Price       *MoneyRequest `json:"price" binding:"required"`
	Quantity    *int          `json:"quantity" binding:"required,min=1"`
}

// SuggestCategoryRequest describes the item to classify.
type SuggestCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// SuggestCategoryResponse is the suggested category.
type SuggestCategoryResponse struct {
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Confidence   float64 `json:"confidence"`
	Reasoning    string  `json:"reasoning"`
}

// BillItemResponse represents a single bill item in API responses.
type BillItemResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    CategoryResponse `json:"category"`
	Price       MoneyResponse    `json:"price"`
	Quantity    int              `json:"quantity"`
	TotalPrice  MoneyResponse    `json:"totalPrice"`
}

// ToBillItemResponse converts a domain BillItem entity to a BillItemResponse DTO.
func ToBillItemResponse(item *entity.BillItem) BillItemResponse {
	return BillItemResponse{
		ID:          item.ID().String(),
		Name:        item.Name(),
		Description: item.Description(),
		Category:    ToCategoryResponse(item.Category()),
		Price:       ToMoneyResponse(item.Price()),
		Quantity:    item.Quantity().Value(),
		TotalPrice:  ToMoneyResponse(item.TotalPrice()),
	}
}
