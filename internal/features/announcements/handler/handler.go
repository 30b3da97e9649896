package handler

import (
	"errors"
	"net/http"

	"marketplace-settlement/internal/core/logger"
	"marketplace-settlement/internal/features/announcements/domain"
	"marketplace-settlement/internal/features/announcements/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AnnouncementHandler handles HTTP requests for announcements.
type AnnouncementHandler struct {
	service ports.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(service ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{
		service: service,
	}
}

// CreateAnnouncementRequest represents the request body for creating an announcement.
type CreateAnnouncementRequest struct {
	Title    string                  `json:"title"`
	Message  string                  `json:"message"`
	Type     domain.AnnouncementType `json:"type"`
	Duration int                     `json:"duration"` // Seconds
}

// SetAnnouncement handles POST /announcement.
// @Summary Set a new announcement
// @Description Creates or replaces the site-wide storefront announcement.
// @Tags Announcement
// @Accept json
// @Produce json
// @Param announcement body CreateAnnouncementRequest true "Announcement details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /announcement [post]
func (h *AnnouncementHandler) SetAnnouncement(c *fiber.Ctx) error {
	var req CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx := c.Context()
	if err := h.service.SetAnnouncement(ctx, req.Title, req.Message, req.Type, req.Duration); err != nil {
		if errors.Is(err, domain.ErrInvalidAnnouncementType) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid announcement type. Must be INFO, PROMO, or MAINTENANCE",
			})
		}
		logger.Get().Error("Failed to set announcement", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Announcement set successfully",
	})
}

// GetAnnouncement handles GET /announcement.
// @Summary Get the current announcement
// @Description Retrieves the active site-wide announcement.
// @Tags Announcement
// @Produce json
// @Success 200 {object} domain.Announcement
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /announcement [get]
func (h *AnnouncementHandler) GetAnnouncement(c *fiber.Ctx) error {
	ctx := c.Context()
	announcement, err := h.service.GetAnnouncement(ctx)
	if err != nil {
		logger.Get().Error("Failed to get announcement", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if announcement == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "No active announcement",
		})
	}

	return c.Status(http.StatusOK).JSON(announcement)
}

// RemoveAnnouncement handles DELETE /announcement.
// @Summary Remove the current announcement
// @Description Manually removes the active site-wide announcement.
// @Tags Announcement
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /announcement [delete]
func (h *AnnouncementHandler) RemoveAnnouncement(c *fiber.Ctx) error {
	ctx := c.Context()
	if err := h.service.RemoveAnnouncement(ctx); err != nil {
		logger.Get().Error("Failed to remove announcement", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Announcement removed successfully",
	})
}
