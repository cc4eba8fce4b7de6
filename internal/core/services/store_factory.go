package services

import (
	"math/rand/v2"

	"github.com/vendsim/vendsim/internal/core/domain"
)

// maxInitialQuantity bounds the random stock drawn for each denomination.
const maxInitialQuantity = 20

// StoreFactory builds denomination stores with randomized stock. A fresh
// store is created for every change calculation, modelling unpredictable
// machine resupply between transactions.
type StoreFactory struct {
	randInt func(n int) int
}

// NewStoreFactory creates a factory using the shared random source.
func NewStoreFactory() *StoreFactory {
	return &StoreFactory{randInt: rand.IntN}
}

// NewSeededStoreFactory creates a factory with reproducible stock draws.
func NewSeededStoreFactory(seed uint64) *StoreFactory {
	rng := rand.New(rand.NewPCG(seed, seed))
	return &StoreFactory{randInt: rng.IntN}
}

// NewStoreFactoryWithQuantities creates a factory whose draws come from the
// given function; tests use it to pin the stock.
func NewStoreFactoryWithQuantities(randInt func(n int) int) *StoreFactory {
	return &StoreFactory{randInt: randInt}
}

// NewStore builds the canonical denomination list for the currency, each
// quantity drawn independently and uniformly from [0, 20].
func (f *StoreFactory) NewStore(currency domain.Currency) (*domain.DenominationStore, error) {
	values, err := currency.DenominationValues()
	if err != nil {
		return nil, err
	}
	denominations := make([]domain.Denomination, len(values))
	for i, v := range values {
		denominations[i] = domain.Denomination{
			Value:    v,
			Quantity: f.randInt(maxInitialQuantity + 1),
			Currency: currency,
		}
	}
	return &domain.DenominationStore{Currency: currency, Denominations: denominations}, nil
}
