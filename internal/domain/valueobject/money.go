// Package valueobject contains immutable, self-validating domain values.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-app/backend/internal/domain/error"
)

// Money is a non-negative decimal amount in an upper-cased currency.
// An empty currency means the currency is not determined yet.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney creates a Money value, rejecting negative amounts.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, domainerror.NewValidationError(
			domainerror.ErrCodeNegativeAmount,
			"price.amount",
			"amount cannot be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	return Money{
		amount:   amount,
		currency: strings.ToUpper(strings.TrimSpace(currency)),
	}, nil
}

// MustMoney is NewMoney for values known to be valid. It panics otherwise.
func MustMoney(amount decimal.Decimal, currency string) Money {
	m, err := NewMoney(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns Money(0, "").
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the upper-cased currency code, or "" when undetermined.
func (m Money) Currency() string {
	return m.currency
}

// Equal reports whether both amount and currency match.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount) && m.currency == other.currency
}

// String renders the amount followed by the currency code.
func (m Money) String() string {
	if m.currency == "" {
		return m.amount.String()
	}
	return m.amount.String() + " " + m.currency
}
