package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vendsim/vendsim/internal/apperrors"
)

// Currency is the closed set of settlement currencies the machine accepts.
type Currency string

const (
	PLN Currency = "PLN"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// DefaultCurrency is the currency every product starts in.
const DefaultCurrency = PLN

// ParseCurrency validates a raw currency code at the system boundary.
func ParseCurrency(code string) (Currency, error) {
	switch Currency(code) {
	case PLN, USD, EUR:
		return Currency(code), nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, code)
}

// Rate returns the conversion rate from the base (PLN) price into c.
func (c Currency) Rate() (decimal.Decimal, error) {
	switch c {
	case PLN:
		return decimal.NewFromFloat(1.00), nil
	case USD:
		return decimal.NewFromFloat(0.26), nil
	case EUR:
		return decimal.NewFromFloat(0.22), nil
	}
	return decimal.Decimal{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, string(c))
}

// DenominationValues returns the canonical coin values for c in descending
// order. The change algorithm relies on this ordering.
func (c Currency) DenominationValues() ([]decimal.Decimal, error) {
	var cents []int64
	switch c {
	case PLN:
		cents = []int64{500, 200, 100, 50, 20, 10, 5, 1}
	case USD:
		cents = []int64{100, 50, 25, 10, 5, 1}
	case EUR:
		cents = []int64{200, 100, 50, 20, 10, 5, 2, 1}
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, string(c))
	}
	values := make([]decimal.Decimal, len(cents))
	for i, v := range cents {
		values[i] = decimal.New(v, -2)
	}
	return values, nil
}
