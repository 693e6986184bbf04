package dto

import (
	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// CreateBillRequest represents the request body for bill creation.
type CreateBillRequest struct {
	Name        string      `json:"name" binding:"required,max=100"`
	Description string      `json:"description" binding:"max=500"`
	BillItemIDs []uuid.UUID `json:"billItemIds"`
}

// UpdateBillRequest represents the request body for bill update.
type UpdateBillRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// AddBillItemRequest names the item to add to a bill.
type AddBillItemRequest struct {
	BillItemID uuid.UUID `json:"billItemId" binding:"required"`
}

// BillResponse represents a single bill in API responses.
type BillResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Currency    string             `json:"currency"`
	TotalPrice  MoneyResponse      `json:"totalPrice"`
	Items       []BillItemResponse `json:"items"`
}

// BillSummaryResponse is a bill as listed inside a period.
type BillSummaryResponse struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	TotalPrice MoneyResponse `json:"totalPrice"`
}

// ToBillResponse converts a domain Bill entity to a BillResponse DTO.
func ToBillResponse(bill *entity.Bill) BillResponse {
	items := make([]BillItemResponse, 0, len(bill.Items()))
	for _, item := range bill.Items() {
		items = append(items, ToBillItemResponse(item))
	}
	return BillResponse{
		ID:          bill.ID().String(),
		Name:        bill.Name(),
		Description: bill.Description(),
		Currency:    bill.Currency(),
		TotalPrice:  ToMoneyResponse(bill.TotalPrice()),
		Items:       items,
	}
}

// ToBillSummaryResponse converts a bill without its items.
func ToBillSummaryResponse(bill *entity.Bill) BillSummaryResponse {
	return BillSummaryResponse{
		ID:         bill.ID().String(),
		Name:       bill.Name(),
		TotalPrice: ToMoneyResponse(bill.TotalPrice()),
	}
}
