// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/finance-app/backend/internal/application/adapter"
	billitem "github.com/finance-app/backend/internal/application/usecase/bill_item"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/domain/valueobject"
)

// dateOnlyLayout is accepted next to RFC 3339 for period dates.
const dateOnlyLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code,omitempty"`
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError describes why one request field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewValidationErrorResponse builds the 400 body for a request that failed
// binding. Validator errors become one entry per field.
func NewValidationErrorResponse(err error) ErrorResponse {
	response := ErrorResponse{
		Error: "Invalid request",
		Code:  string(domainerror.ErrCodeInvalidField),
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		response.Error = "Invalid request body"
		return response
	}

	for _, fe := range validationErrs {
		field := jsonFieldPath(fe.Namespace())
		response.Fields = append(response.Fields, FieldError{
			Field:   field,
			Message: fieldMessage(field, fe),
		})
	}
	return response
}

// jsonFieldPath turns "CreateBillItemRequest.Price.Amount" into "price.amount".
func jsonFieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = lowerFirst(part)
	}
	return strings.Join(parts, ".")
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "uuid":
		return field + " must be a valid UUID"
	default:
		return field + " is invalid"
	}
}

// MoneyRequest is a price as sent by clients.
type MoneyRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" binding:"max=3"`
}

// ToPriceInput converts the request to the use case form. Nil stays nil.
func (m *MoneyRequest) ToPriceInput() *billitem.PriceInput {
	if m == nil {
		return nil
	}
	return &billitem.PriceInput{Amount: m.Amount, Currency: m.Currency}
}

// MoneyResponse is a monetary amount in API responses.
type MoneyResponse struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// ToMoneyResponse converts a Money value object.
func ToMoneyResponse(m valueobject.Money) MoneyResponse {
	return MoneyResponse{
		Amount:   m.Amount().String(),
		Currency: m.Currency(),
	}
}

// ListQueryParams are the query string options shared by list endpoints.
type ListQueryParams struct {
	SearchTerm string `form:"searchTerm"`
	SortColumn string `form:"sortColumn"`
	SortOrder  string `form:"sortOrder"`
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
}

// ToListQuery converts the parameters. Validation happens in the use case.
func (p ListQueryParams) ToListQuery() adapter.ListQuery {
	return adapter.ListQuery{
		SearchTerm: p.SearchTerm,
		SortColumn: p.SortColumn,
		SortOrder:  p.SortOrder,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}
}

// PageResponse is the envelope of every list endpoint.
type PageResponse[T any] struct {
	Items           []T   `json:"items"`
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	TotalCount      int64 `json:"totalCount"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// ToPageResponse converts a page of entities with fn.
func ToPageResponse[T, U any](page *adapter.PageResult[T], fn func(T) U) PageResponse[U] {
	mapped := adapter.MapPage(page, fn)
	return PageResponse[U]{
		Items:           mapped.Items,
		Page:            mapped.Page,
		PageSize:        mapped.PageSize,
		TotalCount:      mapped.TotalCount,
		TotalPages:      mapped.TotalPages(),
		HasNextPage:     mapped.HasNextPage(),
		HasPreviousPage: mapped.HasPreviousPage(),
	}
}

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func ParseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t, nil
	}
	return time.Time{}, domainerror.NewValidationError(
		domainerror.ErrCodeInvalidField,
		field,
		field+" must be an RFC 3339 timestamp or a YYYY-MM-DD date",
		domainerror.ErrInvalidField,
	)
}
