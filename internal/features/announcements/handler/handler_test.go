package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-settlement/internal/features/announcements/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAnnouncementService is a mock implementation of ports.AnnouncementService
type MockAnnouncementService struct {
	mock.Mock
}

func (m *MockAnnouncementService) SetAnnouncement(ctx context.Context, title, message string, announcementType domain.AnnouncementType, duration int) error {
	args := m.Called(ctx, title, message, announcementType, duration)
	return args.Error(0)
}

func (m *MockAnnouncementService) GetAnnouncement(ctx context.Context) (*domain.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Announcement), args.Error(1)
}

func (m *MockAnnouncementService) RemoveAnnouncement(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func setupApp(service *MockAnnouncementService) *fiber.App {
	app := fiber.New()
	handler := NewAnnouncementHandler(service)
	app.Post("/announcement", handler.SetAnnouncement)
	app.Get("/announcement", handler.GetAnnouncement)
	app.Delete("/announcement", handler.RemoveAnnouncement)
	return app
}

func TestAnnouncementHandler_SetAnnouncement(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAnnouncementService)
		app := setupApp(mockService)

		mockService.On("SetAnnouncement", mock.Anything, "Summer sale", "20% off", domain.AnnouncementTypePromo, 3600).
			Return(nil).Once()

		body, _ := json.Marshal(CreateAnnouncementRequest{
			Title:    "Summer sale",
			Message:  "20% off",
			Type:     domain.AnnouncementTypePromo,
			Duration: 3600,
		})
		req := httptest.NewRequest("POST", "/announcement", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid Type", func(t *testing.T) {
		mockService := new(MockAnnouncementService)
		app := setupApp(mockService)

		mockService.On("SetAnnouncement", mock.Anything, mock.Anything, mock.Anything, domain.AnnouncementType("NOPE"), mock.Anything).
			Return(domain.ErrInvalidAnnouncementType).Once()

		body, _ := json.Marshal(CreateAnnouncementRequest{Title: "Bad", Type: "NOPE"})
		req := httptest.NewRequest("POST", "/announcement", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		mockService := new(MockAnnouncementService)
		app := setupApp(mockService)

		req := httptest.NewRequest("POST", "/announcement", bytes.NewReader([]byte("not json")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertNotCalled(t, "SetAnnouncement", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAnnouncementHandler_GetAnnouncement(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAnnouncementService)
		app := setupApp(mockService)

		announcement := &domain.Announcement{Title: "Scheduled downtime", Type: domain.AnnouncementTypeMaintenance}
		mockService.On("GetAnnouncement", mock.Anything).Return(announcement, nil).Once()

		req := httptest.NewRequest("GET", "/announcement", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got domain.Announcement
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, domain.AnnouncementTypeMaintenance, got.Type)
		mockService.AssertExpectations(t)
	})

	t.Run("None Active", func(t *testing.T) {
		mockService := new(MockAnnouncementService)
		app := setupApp(mockService)

		mockService.On("GetAnnouncement", mock.Anything).Return(nil, nil).Once()

		req := httptest.NewRequest("GET", "/announcement", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("InternalError", func(t *testing.T) {
		mockService := new(MockAnnouncementService)
		app := setupApp(mockService)

		mockService.On("GetAnnouncement", mock.Anything).Return(nil, errors.New("redis down")).Once()

		req := httptest.NewRequest("GET", "/announcement", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}

func TestAnnouncementHandler_RemoveAnnouncement(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAnnouncementService)
		app := setupApp(mockService)

		mockService.On("RemoveAnnouncement", mock.Anything).Return(nil).Once()

		req := httptest.NewRequest("DELETE", "/announcement", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("InternalError", func(t *testing.T) {
		mockService := new(MockAnnouncementService)
		app := setupApp(mockService)

		mockService.On("RemoveAnnouncement", mock.Anything).Return(errors.New("redis down")).Once()

		req := httptest.NewRequest("DELETE", "/announcement", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}
