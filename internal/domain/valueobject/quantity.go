package valueobject

import (
	"strconv"

	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// Quantity is a strictly positive item count.
type Quantity struct {
	value int
}

// NewQuantity creates a Quantity, rejecting values below one.
func NewQuantity(value int) (Quantity, error) {
	if value <= 0 {
		return Quantity{}, domainerror.NewValidationError(
			domainerror.ErrCodeNonPositiveQuantity,
			"quantity",
			"quantity must be greater than zero",
			domainerror.ErrNonPositiveQuantity,
		)
	}
	return Quantity{value: value}, nil
}

// DefaultQuantity returns a quantity of one.
func DefaultQuantity() Quantity {
	return Quantity{value: 1}
}

// Value returns the count.
func (q Quantity) Value() int {
	return q.value
}

// Equal reports whether both quantities hold the same count.
func (q Quantity) Equal(other Quantity) bool {
	return q.value == other.value
}

// String renders the count.
func (q Quantity) String() string {
	return strconv.Itoa(q.value)
}
