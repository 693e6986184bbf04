package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// CreatePeriodRequest represents the request body for period creation.
type CreatePeriodRequest struct {
	Name        string      `json:"name" binding:"required,max=100"`
	Description string      `json:"description" binding:"max=500"`
	StartDate   string      `json:"startDate" binding:"required"`
	EndDate     string      `json:"endDate" binding:"required"`
	BillIDs     []uuid.UUID `json:"billIds"`
}

// UpdatePeriodRequest represents the request body for period update.
type UpdatePeriodRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
}

// ParseDates parses both bounds of a period request.
func ParseDates(start, end string) (time.Time, time.Time, error) {
	startDate, err := ParseDate("startDate", start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := ParseDate("endDate", end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startDate, endDate, nil
}

// AddBillRequest names the bill to add to a period.
type AddBillRequest struct {
	BillID uuid.UUID `json:"billId" binding:"required"`
}

// PeriodResponse represents a single period in API responses.
type PeriodResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	StartDate   time.Time             `json:"startDate"`
	EndDate     time.Time             `json:"endDate"`
	TotalSpent  []MoneyResponse       `json:"totalSpent"`
	Bills       []BillSummaryResponse `json:"bills"`
}

// ToPeriodResponse converts a domain Period entity to a PeriodResponse DTO.
// Totals are ordered by currency code.
func ToPeriodResponse(period *entity.Period) PeriodResponse {
	totals := period.TotalSpentList()
	totalSpent := make([]MoneyResponse, 0, len(totals))
	for _, total := range totals {
		totalSpent = append(totalSpent, ToMoneyResponse(total))
	}

	bills := make([]BillSummaryResponse, 0, len(period.Bills()))
	for _, bill := range period.Bills() {
		bills = append(bills, ToBillSummaryResponse(bill))
	}

	return PeriodResponse{
		ID:          period.ID().String(),
		Name:        period.Name(),
		Description: period.Description(),
		StartDate:   period.StartDate(),
		EndDate:     period.EndDate(),
		TotalSpent:  totalSpent,
		Bills:       bills,
	}
}
