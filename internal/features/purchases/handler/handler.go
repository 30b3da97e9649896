package handler

import (
	"errors"
	"net/http"

	"marketplace-settlement/internal/core/logger"
	"marketplace-settlement/internal/features/purchases/adapters"
	"marketplace-settlement/internal/features/purchases/domain"
	"marketplace-settlement/internal/features/purchases/ports"
	"marketplace-settlement/internal/features/purchases/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PurchaseHandler handles HTTP requests for purchase obligations.
type PurchaseHandler struct {
	service ports.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(service ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		service: service,
	}
}

// ListPurchases handles GET /purchases.
// @Summary List purchase obligations
// @Description Returns purchase obligations of a reseller. With pending=true only unpaid ones are returned.
// @Tags Purchases
// @Produce json
// @Param reseller_id query string true "Reseller ID"
// @Param pending query bool false "Only pending obligations"
// @Success 200 {array} domain.PurchaseRecord
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /purchases [get]
func (h *PurchaseHandler) ListPurchases(c *fiber.Ctx) error {
	resellerID := c.Query("reseller_id")
	if resellerID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "reseller_id is required",
		})
	}

	var (
		records []domain.PurchaseRecord
		err     error
	)
	if c.QueryBool("pending") {
		records, err = h.service.PendingByReseller(c.Context(), resellerID)
	} else {
		records, err = h.service.ListByReseller(c.Context(), resellerID)
	}
	if err != nil {
		logger.Get().Error("Failed to list purchases", zap.String("reseller_id", resellerID), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(records)
}

// CompletePurchase handles POST /purchases/:id/complete.
// @Summary Complete a purchase obligation
// @Description Marks the obligation as paid by the reseller. The transition is one-way.
// @Tags Purchases
// @Produce json
// @Param id path string true "Purchase record ID"
// @Success 200 {object} domain.PurchaseRecord
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /purchases/{id}/complete [post]
func (h *PurchaseHandler) CompletePurchase(c *fiber.Ctx) error {
	id := c.Params("id")

	record, err := h.service.Complete(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Purchase record not found",
			})
		case errors.Is(err, domain.ErrAlreadyCompleted):
			return c.Status(http.StatusConflict).JSON(fiber.Map{
				"error": "Purchase record is already completed",
			})
		case errors.Is(err, adapters.ErrVersionConflict):
			return c.Status(http.StatusConflict).JSON(fiber.Map{
				"error": "Purchase record was modified concurrently, retry",
			})
		default:
			logger.Get().Error("Failed to complete purchase", zap.String("purchase_id", id), zap.Error(err))
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(record)
}
