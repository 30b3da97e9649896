package handler

import (
	"errors"
	"net/http"

	"marketplace-settlement/internal/core/logger"
	"marketplace-settlement/internal/features/orders/domain"
	"marketplace-settlement/internal/features/orders/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// checkoutRequest is the body of POST /orders.
type checkoutRequest struct {
	Form domain.CheckoutForm `json:"form"`
	Cart []domain.CartItem   `json:"cart"`
}

// OrderHandler handles HTTP requests for checkout and order lookup.
type OrderHandler struct {
	service ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// Checkout handles POST /orders.
// @Summary Create an order
// @Description Validates the checkout form, builds the order and the purchase obligations for reseller-sold lines, and persists them atomically.
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body checkoutRequest true "Checkout form and cart"
// @Success 201 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	order, err := h.service.Checkout(c.Context(), req.Form, req.Cart)
	if err != nil {
		var missingErr *domain.MissingFieldError
		switch {
		case errors.As(err, &missingErr):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": missingErr.Error(),
			})
		case errors.Is(err, domain.ErrCartEmpty):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Cart is empty",
			})
		default:
			logger.Get().Error("Checkout failed", zap.Error(err))
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}
	}

	return c.Status(http.StatusCreated).JSON(order)
}

// GetOrder handles GET /orders/:id.
// @Summary Get order by ID
// @Description Returns a single order.
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id := c.Params("id")

	order, err := h.service.GetOrder(c.Context(), id)
	if err != nil {
		logger.Get().Error("Failed to get order", zap.String("order_id", id), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if order == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}
