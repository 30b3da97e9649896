package service

import (
	"context"
	"errors"
	"testing"

	"marketplace-settlement/internal/features/announcements/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAnnouncementRepository is a mock implementation of ports.AnnouncementRepository
type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) Save(ctx context.Context, announcement *domain.Announcement) error {
	args := m.Called(ctx, announcement)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) Get(ctx context.Context) (*domain.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestAnnouncementService_SetAnnouncement(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		svc := NewAnnouncementService(repo)

		repo.On("Save", ctx, mock.AnythingOfType("*domain.Announcement")).Return(nil).Once()

		err := svc.SetAnnouncement(ctx, "Summer sale", "20% off", domain.AnnouncementTypePromo, 3600)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Invalid Type", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		svc := NewAnnouncementService(repo)

		err := svc.SetAnnouncement(ctx, "Bad", "Bad", "NOPE", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidAnnouncementType)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Save Failure", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		svc := NewAnnouncementService(repo)

		repo.On("Save", ctx, mock.Anything).Return(errors.New("redis down")).Once()

		err := svc.SetAnnouncement(ctx, "Title", "Message", domain.AnnouncementTypeInfo, 0)
		assert.Error(t, err)
		repo.AssertExpectations(t)
	})
}

func TestAnnouncementService_GetAnnouncement(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		svc := NewAnnouncementService(repo)

		expected := &domain.Announcement{Title: "Scheduled downtime", Type: domain.AnnouncementTypeMaintenance}
		repo.On("Get", ctx).Return(expected, nil).Once()

		announcement, err := svc.GetAnnouncement(ctx)
		assert.NoError(t, err)
		assert.Equal(t, expected, announcement)
	})

	t.Run("None Active", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		svc := NewAnnouncementService(repo)

		repo.On("Get", ctx).Return(nil, nil).Once()

		announcement, err := svc.GetAnnouncement(ctx)
		assert.NoError(t, err)
		assert.Nil(t, announcement)
	})
}

func TestAnnouncementService_RemoveAnnouncement(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAnnouncementRepository)
	svc := NewAnnouncementService(repo)

	repo.On("Delete", ctx).Return(nil).Once()

	err := svc.RemoveAnnouncement(ctx)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
