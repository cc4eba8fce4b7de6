package domain

import "github.com/shopspring/decimal"

// CatalogItem is a product the machine offers, with its base (PLN) price.
type CatalogItem struct {
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"basePrice"`
}

// DefaultCatalog returns the fixed product grid of the machine.
func DefaultCatalog() []CatalogItem {
	return []CatalogItem{
		{Name: "Kawa", BasePrice: decimal.New(200, -2)},
		{Name: "Herbata", BasePrice: decimal.New(200, -2)},
		{Name: "Woda", BasePrice: decimal.New(100, -2)},
		{Name: "Snickers", BasePrice: decimal.New(400, -2)},
		{Name: "Twix", BasePrice: decimal.New(400, -2)},
		{Name: "Kitkat", BasePrice: decimal.New(400, -2)},
		{Name: "Cola", BasePrice: decimal.New(500, -2)},
		{Name: "Sok", BasePrice: decimal.New(500, -2)},
		{Name: "Czipsy", BasePrice: decimal.New(300, -2)},
	}
}
