package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-settlement/internal/features/purchases/adapters"
	"marketplace-settlement/internal/features/purchases/domain"
	"marketplace-settlement/internal/features/purchases/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPurchaseService is a mock implementation of ports.PurchaseService
type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) ListByReseller(ctx context.Context, resellerID string) ([]domain.PurchaseRecord, error) {
	args := m.Called(ctx, resellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseService) PendingByReseller(ctx context.Context, resellerID string) ([]domain.PurchaseRecord, error) {
	args := m.Called(ctx, resellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseService) Complete(ctx context.Context, id string) (*domain.PurchaseRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseRecord), args.Error(1)
}

func setupApp(svc *MockPurchaseService) *fiber.App {
	app := fiber.New()
	handler := NewPurchaseHandler(svc)
	app.Get("/purchases", handler.ListPurchases)
	app.Post("/purchases/:id/complete", handler.CompletePurchase)
	return app
}

func TestPurchaseHandler_ListPurchases(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockPurchaseService)
		app := setupApp(mockService)

		records := []domain.PurchaseRecord{
			{ID: "pr-1", ResellerID: "rs-1", Status: domain.StatusPending},
			{ID: "pr-2", ResellerID: "rs-1", Status: domain.StatusCompleted},
		}
		mockService.On("ListByReseller", mock.Anything, "rs-1").Return(records, nil).Once()

		req := httptest.NewRequest("GET", "/purchases?reseller_id=rs-1", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got []domain.PurchaseRecord
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Len(t, got, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("Pending Only", func(t *testing.T) {
		mockService := new(MockPurchaseService)
		app := setupApp(mockService)

		records := []domain.PurchaseRecord{{ID: "pr-1", ResellerID: "rs-1", Status: domain.StatusPending}}
		mockService.On("PendingByReseller", mock.Anything, "rs-1").Return(records, nil).Once()

		req := httptest.NewRequest("GET", "/purchases?reseller_id=rs-1&pending=true", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("Missing Reseller ID", func(t *testing.T) {
		mockService := new(MockPurchaseService)
		app := setupApp(mockService)

		req := httptest.NewRequest("GET", "/purchases", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("InternalError", func(t *testing.T) {
		mockService := new(MockPurchaseService)
		app := setupApp(mockService)

		mockService.On("ListByReseller", mock.Anything, "rs-1").Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest("GET", "/purchases?reseller_id=rs-1", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}

func TestPurchaseHandler_CompletePurchase(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockPurchaseService)
		app := setupApp(mockService)

		now := time.Now()
		record := &domain.PurchaseRecord{ID: "pr-1", Status: domain.StatusCompleted, CompletedAt: &now}
		mockService.On("Complete", mock.Anything, "pr-1").Return(record, nil).Once()

		req := httptest.NewRequest("POST", "/purchases/pr-1/complete", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got domain.PurchaseRecord
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, domain.StatusCompleted, got.Status)
		mockService.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockPurchaseService)
		app := setupApp(mockService)

		mockService.On("Complete", mock.Anything, "missing").Return(nil, service.ErrRecordNotFound).Once()

		req := httptest.NewRequest("POST", "/purchases/missing/complete", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("AlreadyCompleted", func(t *testing.T) {
		mockService := new(MockPurchaseService)
		app := setupApp(mockService)

		mockService.On("Complete", mock.Anything, "pr-1").Return(nil, domain.ErrAlreadyCompleted).Once()

		req := httptest.NewRequest("POST", "/purchases/pr-1/complete", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("VersionConflict", func(t *testing.T) {
		mockService := new(MockPurchaseService)
		app := setupApp(mockService)

		wrapped := fmt.Errorf("service: failed to save completion: %w", adapters.ErrVersionConflict)
		mockService.On("Complete", mock.Anything, "pr-1").Return(nil, wrapped).Once()

		req := httptest.NewRequest("POST", "/purchases/pr-1/complete", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("InternalError", func(t *testing.T) {
		mockService := new(MockPurchaseService)
		app := setupApp(mockService)

		mockService.On("Complete", mock.Anything, "pr-1").Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest("POST", "/purchases/pr-1/complete", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}
