package services

import (
	"context"
	"fmt"

	"github.com/vendsim/vendsim/internal/apperrors"
	"github.com/vendsim/vendsim/internal/core/domain"
)

// CatalogService serves the machine's fixed product grid.
type CatalogService struct {
	items []domain.CatalogItem
}

// NewCatalogService creates a CatalogService over the default catalog.
func NewCatalogService() *CatalogService {
	return &CatalogService{items: domain.DefaultCatalog()}
}

// ListProducts returns every product the machine offers.
func (s *CatalogService) ListProducts(ctx context.Context) []domain.CatalogItem {
	out := make([]domain.CatalogItem, len(s.items))
	copy(out, s.items)
	return out
}

// FindProduct looks a product up by name.
func (s *CatalogService) FindProduct(ctx context.Context, name string) (*domain.CatalogItem, error) {
	for i := range s.items {
		if s.items[i].Name == name {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("%w: product %q", apperrors.ErrNotFound, name)
}
