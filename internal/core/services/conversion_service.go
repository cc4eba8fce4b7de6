package services

import (
	"github.com/shopspring/decimal"

	"github.com/vendsim/vendsim/internal/core/domain"
)

// ConversionService converts base prices into settlement currencies.
type ConversionService struct{}

// NewConversionService creates a new ConversionService.
func NewConversionService() *ConversionService {
	return &ConversionService{}
}

// Convert sets the product's currency and reprices it from the base price.
// On an invalid currency the product is left unmodified.
func (s *ConversionService) Convert(product *domain.Product, currency domain.Currency) error {
	price, err := s.PriceIn(product, currency)
	if err != nil {
		return err
	}
	product.Currency = currency
	product.Price = price
	return nil
}

// PriceIn computes the product's price in the given currency without
// touching the product.
func (s *ConversionService) PriceIn(product *domain.Product, currency domain.Currency) (decimal.Decimal, error) {
	rate, err := currency.Rate()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return domain.Quantize(product.BasePrice.Mul(rate)), nil
}
