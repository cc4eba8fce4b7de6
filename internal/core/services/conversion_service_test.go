package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendsim/vendsim/internal/apperrors"
	"github.com/vendsim/vendsim/internal/core/domain"
	"github.com/vendsim/vendsim/internal/core/services"
)

func TestConvert_Rates(t *testing.T) {
	tests := []struct {
		currency domain.Currency
		want     string
	}{
		{domain.PLN, "5.00"},
		{domain.USD, "1.30"},
		{domain.EUR, "1.10"},
	}

	for _, tt := range tests {
		t.Run(string(tt.currency), func(t *testing.T) {
			svc := services.NewConversionService()
			product := domain.NewProduct("Cola", decimal.RequireFromString("5.00"))

			err := svc.Convert(product, tt.currency)

			require.NoError(t, err)
			assert.Equal(t, tt.currency, product.Currency)
			assert.Equal(t, tt.want, product.Price.StringFixed(2))
			// base price never changes
			assert.Equal(t, "5.00", product.BasePrice.StringFixed(2))
		})
	}
}

func TestConvert_QuantizesHalfToEven(t *testing.T) {
	svc := services.NewConversionService()
	// 4.25 × 0.26 = 1.105, which rounds to 1.10 under half-to-even
	product := domain.NewProduct("Sok", decimal.RequireFromString("4.25"))

	err := svc.Convert(product, domain.USD)

	require.NoError(t, err)
	assert.Equal(t, "1.10", product.Price.StringFixed(2))
}

func TestConvert_InvalidCurrencyLeavesProductUnmodified(t *testing.T) {
	svc := services.NewConversionService()
	product := domain.NewProduct("Woda", decimal.RequireFromString("1.00"))

	err := svc.Convert(product, domain.Currency("XXX"))

	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
	assert.Equal(t, domain.PLN, product.Currency)
	assert.Equal(t, "1.00", product.Price.StringFixed(2))
}

func TestPriceIn_DoesNotMutate(t *testing.T) {
	svc := services.NewConversionService()
	product := domain.NewProduct("Twix", decimal.RequireFromString("4.00"))

	price, err := svc.PriceIn(product, domain.EUR)

	require.NoError(t, err)
	assert.Equal(t, "0.88", price.StringFixed(2))
	assert.Equal(t, domain.PLN, product.Currency)
	assert.Equal(t, "4.00", product.Price.StringFixed(2))
}
