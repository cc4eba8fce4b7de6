package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendsim/vendsim/internal/apperrors"
	"github.com/vendsim/vendsim/internal/core/domain"
	"github.com/vendsim/vendsim/internal/core/services"
)

func TestNewStore_CanonicalListWithBoundedStock(t *testing.T) {
	factory := services.NewStoreFactory()

	for _, currency := range []domain.Currency{domain.PLN, domain.USD, domain.EUR} {
		t.Run(string(currency), func(t *testing.T) {
			store, err := factory.NewStore(currency)
			require.NoError(t, err)

			values, err := currency.DenominationValues()
			require.NoError(t, err)
			require.Len(t, store.Denominations, len(values))

			for i, d := range store.Denominations {
				assert.True(t, d.Value.Equal(values[i]), "denomination order must match the canonical list")
				assert.Equal(t, currency, d.Currency)
				assert.GreaterOrEqual(t, d.Quantity, 0)
				assert.LessOrEqual(t, d.Quantity, 20)
			}
		})
	}
}

func TestNewStore_InvalidCurrency(t *testing.T) {
	factory := services.NewStoreFactory()

	store, err := factory.NewStore(domain.Currency("GBP"))

	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrency)
	assert.Nil(t, store)
}

func TestNewSeededStoreFactory_Reproducible(t *testing.T) {
	a, err := services.NewSeededStoreFactory(7).NewStore(domain.PLN)
	require.NoError(t, err)
	b, err := services.NewSeededStoreFactory(7).NewStore(domain.PLN)
	require.NoError(t, err)

	require.Len(t, b.Denominations, len(a.Denominations))
	for i := range a.Denominations {
		assert.Equal(t, a.Denominations[i].Quantity, b.Denominations[i].Quantity)
	}
}

func TestNewStoreFactoryWithQuantities(t *testing.T) {
	factory := services.NewStoreFactoryWithQuantities(func(n int) int { return 5 })

	store, err := factory.NewStore(domain.USD)

	require.NoError(t, err)
	for _, d := range store.Denominations {
		assert.Equal(t, 5, d.Quantity)
	}
}
