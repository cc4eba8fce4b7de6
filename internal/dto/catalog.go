package dto

import "github.com/vendsim/vendsim/internal/core/domain"

// CatalogItemResponse is one product of the machine's grid.
type CatalogItemResponse struct {
	Name      string `json:"name"`
	BasePrice string `json:"basePrice"`
}

// ToCatalogResponse converts the catalog for display.
func ToCatalogResponse(items []domain.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CatalogItemResponse{
			Name:      it.Name,
			BasePrice: domain.FormatAmount(it.BasePrice),
		})
	}
	return out
}
