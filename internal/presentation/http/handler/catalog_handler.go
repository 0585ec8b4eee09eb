package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lakshmiplex/canteen-api/internal/application/service"
	"github.com/lakshmiplex/canteen-api/internal/presentation/http/dto/response"
	"github.com/lakshmiplex/canteen-api/pkg/pagination"
)

// CatalogHandler serves the read-only menu and the purchase log.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetCategories handles GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.GetCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Categories retrieved successfully", categories)
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.catalogService.GetProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved successfully", products)
}

// GetPurchases handles GET /purchases?page=&per_page=
func (h *CatalogHandler) GetPurchases(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "invalid pagination parameters")
		return
	}

	result, err := h.catalogService.GetPurchases(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Purchases retrieved successfully", result)
}
