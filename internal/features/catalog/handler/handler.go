package handler

import (
	"net/http"

	"marketplace-settlement/internal/core/logger"
	"marketplace-settlement/internal/features/catalog/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	service ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// ListProducts handles GET /products.
// @Summary List products
// @Description Returns every product in the marketplace catalog.
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Product
// @Failure 500 {object} map[string]string
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list products", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(products)
}

// GetProduct handles GET /products/:id.
// @Summary Get product by ID
// @Description Returns a single catalog product.
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	product, err := h.service.GetProduct(c.Context(), id)
	if err != nil {
		logger.Get().Error("Failed to get product", zap.String("product_id", id), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if product == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	return c.Status(http.StatusOK).JSON(product)
}

// ListSellers handles GET /sellers.
// @Summary List sellers
// @Description Returns every registered wholesaler and reseller.
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Seller
// @Failure 500 {object} map[string]string
// @Router /sellers [get]
func (h *CatalogHandler) ListSellers(c *fiber.Ctx) error {
	sellers, err := h.service.ListSellers(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list sellers", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(sellers)
}
