package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-settlement/internal/features/purchases/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPurchaseRepository is a mock implementation of ports.PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id string) (*domain.PurchaseRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseRepository) FindByReseller(ctx context.Context, resellerID string) ([]domain.PurchaseRecord, error) {
	args := m.Called(ctx, resellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseRepository) FindPendingByReseller(ctx context.Context, resellerID string) ([]domain.PurchaseRecord, error) {
	args := m.Called(ctx, resellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseRecord), args.Error(1)
}

func (m *MockPurchaseRepository) Update(ctx context.Context, record *domain.PurchaseRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockPublisher is a mock implementation of events.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestPurchaseService_ListByReseller(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockPurchaseRepository)
		svc := NewPurchaseService(repo, nil)

		expected := []domain.PurchaseRecord{
			{ID: "pr-1", ResellerID: "rs-1", Status: domain.StatusPending},
			{ID: "pr-2", ResellerID: "rs-1", Status: domain.StatusCompleted},
		}
		repo.On("FindByReseller", ctx, "rs-1").Return(expected, nil).Once()

		records, err := svc.ListByReseller(ctx, "rs-1")
		assert.NoError(t, err)
		assert.Equal(t, expected, records)
		repo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockPurchaseRepository)
		svc := NewPurchaseService(repo, nil)

		repo.On("FindByReseller", ctx, "rs-1").Return(nil, errors.New("db error")).Once()

		records, err := svc.ListByReseller(ctx, "rs-1")
		assert.Error(t, err)
		assert.Nil(t, records)
		repo.AssertExpectations(t)
	})
}

func TestPurchaseService_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Publishes Event", func(t *testing.T) {
		repo := new(MockPurchaseRepository)
		publisher := new(MockPublisher)
		svc := NewPurchaseService(repo, publisher)

		completedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return completedAt }

		pending := &domain.PurchaseRecord{ID: "pr-1", Status: domain.StatusPending, Version: 1}
		repo.On("FindByID", ctx, "pr-1").Return(pending, nil).Once()
		repo.On("Update", ctx, mock.AnythingOfType("*domain.PurchaseRecord")).Return(nil).Once()
		publisher.On("Publish", mock.Anything, "purchase.completed", mock.Anything).Return(nil).Once()

		record, err := svc.Complete(ctx, "pr-1")
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, domain.StatusCompleted, record.Status)
		require.NotNil(t, record.CompletedAt)
		assert.True(t, completedAt.Equal(*record.CompletedAt))

		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockPurchaseRepository)
		svc := NewPurchaseService(repo, nil)

		repo.On("FindByID", ctx, "missing").Return(nil, nil).Once()

		record, err := svc.Complete(ctx, "missing")
		assert.ErrorIs(t, err, ErrRecordNotFound)
		assert.Nil(t, record)
		repo.AssertExpectations(t)
	})

	t.Run("AlreadyCompleted", func(t *testing.T) {
		repo := new(MockPurchaseRepository)
		svc := NewPurchaseService(repo, nil)

		done := time.Now()
		completed := &domain.PurchaseRecord{ID: "pr-1", Status: domain.StatusCompleted, CompletedAt: &done}
		repo.On("FindByID", ctx, "pr-1").Return(completed, nil).Once()

		record, err := svc.Complete(ctx, "pr-1")
		assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
		assert.Nil(t, record)
		repo.AssertExpectations(t)
	})

	t.Run("UpdateError", func(t *testing.T) {
		repo := new(MockPurchaseRepository)
		svc := NewPurchaseService(repo, nil)

		pending := &domain.PurchaseRecord{ID: "pr-1", Status: domain.StatusPending}
		repo.On("FindByID", ctx, "pr-1").Return(pending, nil).Once()
		repo.On("Update", ctx, mock.AnythingOfType("*domain.PurchaseRecord")).Return(errors.New("version conflict")).Once()

		record, err := svc.Complete(ctx, "pr-1")
		assert.Error(t, err)
		assert.Nil(t, record)
		repo.AssertExpectations(t)
	})

	t.Run("Publish Failure Does Not Fail Completion", func(t *testing.T) {
		repo := new(MockPurchaseRepository)
		publisher := new(MockPublisher)
		svc := NewPurchaseService(repo, publisher)

		pending := &domain.PurchaseRecord{ID: "pr-1", Status: domain.StatusPending}
		repo.On("FindByID", ctx, "pr-1").Return(pending, nil).Once()
		repo.On("Update", ctx, mock.AnythingOfType("*domain.PurchaseRecord")).Return(nil).Once()
		publisher.On("Publish", mock.Anything, "purchase.completed", mock.Anything).Return(errors.New("broker down")).Once()

		record, err := svc.Complete(ctx, "pr-1")
		assert.NoError(t, err)
		assert.NotNil(t, record)

		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})
}
