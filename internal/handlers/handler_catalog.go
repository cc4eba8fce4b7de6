package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vendsim/vendsim/internal/core/ports/services"
	"github.com/vendsim/vendsim/internal/dto"
)

// catalogHandler serves the fixed product grid.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

// registerCatalogRoutes registers the catalog routes.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := &catalogHandler{catalogService: catalogService}
	rg.GET("/catalog", h.listProducts)
}

func (h *catalogHandler) listProducts(c *gin.Context) {
	items := h.catalogService.ListProducts(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToCatalogResponse(items))
}
