package handler

import (
	"errors"
	"net/http"

	"marketplace-settlement/internal/core/logger"
	"marketplace-settlement/internal/features/wallet/adapters"
	"marketplace-settlement/internal/features/wallet/ports"
	"marketplace-settlement/internal/features/wallet/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WalletHandler handles HTTP requests for reseller withdrawals.
type WalletHandler struct {
	service ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(service ports.WalletService) *WalletHandler {
	return &WalletHandler{
		service: service,
	}
}

// GetEligibility handles GET /wallet/:resellerId.
// @Summary Check withdrawal eligibility
// @Description Evaluates whether the reseller may withdraw, given their balance and pending purchase obligations.
// @Tags Wallet
// @Produce json
// @Param resellerId path string true "Reseller ID"
// @Success 200 {object} domain.Decision
// @Failure 500 {object} map[string]string
// @Router /wallet/{resellerId} [get]
func (h *WalletHandler) GetEligibility(c *fiber.Ctx) error {
	resellerID := c.Params("resellerId")

	decision, err := h.service.Eligibility(c.Context(), resellerID)
	if err != nil {
		logger.Get().Error("Failed to evaluate eligibility", zap.String("reseller_id", resellerID), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(decision)
}

// Withdraw handles POST /wallet/:resellerId/withdrawals.
// @Summary Withdraw available funds
// @Description Cashes out the reseller's full available balance. Blocked while any purchase obligation is pending.
// @Tags Wallet
// @Produce json
// @Param resellerId path string true "Reseller ID"
// @Success 201 {object} domain.Withdrawal
// @Failure 409 {object} map[string]string
// @Failure 422 {object} domain.Decision
// @Failure 500 {object} map[string]string
// @Router /wallet/{resellerId}/withdrawals [post]
func (h *WalletHandler) Withdraw(c *fiber.Ctx) error {
	resellerID := c.Params("resellerId")

	withdrawal, err := h.service.Withdraw(c.Context(), resellerID)
	if err != nil {
		var blocked *service.BlockedError
		switch {
		case errors.As(err, &blocked):
			return c.Status(http.StatusUnprocessableEntity).JSON(blocked.Decision)
		case errors.Is(err, adapters.ErrVersionConflict):
			return c.Status(http.StatusConflict).JSON(fiber.Map{
				"error": "Balance changed concurrently, retry",
			})
		default:
			logger.Get().Error("Withdrawal failed", zap.String("reseller_id", resellerID), zap.Error(err))
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}
	}

	return c.Status(http.StatusCreated).JSON(withdrawal)
}

// ListWithdrawals handles GET /wallet/:resellerId/withdrawals.
// @Summary List withdrawals
// @Description Returns the reseller's withdrawal history, newest first.
// @Tags Wallet
// @Produce json
// @Param resellerId path string true "Reseller ID"
// @Success 200 {array} domain.Withdrawal
// @Failure 500 {object} map[string]string
// @Router /wallet/{resellerId}/withdrawals [get]
func (h *WalletHandler) ListWithdrawals(c *fiber.Ctx) error {
	resellerID := c.Params("resellerId")

	withdrawals, err := h.service.ListWithdrawals(c.Context(), resellerID)
	if err != nil {
		logger.Get().Error("Failed to list withdrawals", zap.String("reseller_id", resellerID), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(withdrawals)
}
