package domain

import "github.com/shopspring/decimal"

// Product is the item a customer selected. Name and BasePrice never change
// after creation; Currency and Price are mutated only by currency selection.
type Product struct {
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"basePrice"` // currency-independent, in PLN terms
	Currency  Currency        `json:"currency"`
	Price     decimal.Decimal `json:"price"` // always Quantize(BasePrice × Currency rate)
}

// NewProduct creates a product priced in the default currency.
func NewProduct(name string, basePrice decimal.Decimal) *Product {
	return &Product{
		Name:      name,
		BasePrice: basePrice,
		Currency:  DefaultCurrency,
		Price:     Quantize(basePrice),
	}
}
