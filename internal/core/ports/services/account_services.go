package services

import (
	"context"

	"github.com/vendsim/vendsim/internal/core/domain"
)

// AccountSvcFacade exposes the read side of the account registry.
type AccountSvcFacade interface {
	// GetAccountByID retrieves a specific account by its identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every seeded account.
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}

// CatalogSvcFacade exposes the fixed product grid.
type CatalogSvcFacade interface {
	// ListProducts returns every product the machine offers.
	ListProducts(ctx context.Context) []domain.CatalogItem

	// FindProduct looks a product up by name.
	FindProduct(ctx context.Context, name string) (*domain.CatalogItem, error)
}
