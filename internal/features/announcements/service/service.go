package service

import (
	"context"
	"fmt"

	"marketplace-settlement/internal/features/announcements/domain"
	"marketplace-settlement/internal/features/announcements/ports"
)

// AnnouncementServiceImpl implements ports.AnnouncementService.
type AnnouncementServiceImpl struct {
	repo ports.AnnouncementRepository
}

// NewAnnouncementService creates a new AnnouncementServiceImpl.
func NewAnnouncementService(repo ports.AnnouncementRepository) *AnnouncementServiceImpl {
	return &AnnouncementServiceImpl{
		repo: repo,
	}
}

// SetAnnouncement creates and saves a new announcement.
func (s *AnnouncementServiceImpl) SetAnnouncement(ctx context.Context, title, message string, announcementType domain.AnnouncementType, duration int) error {
	announcement, err := domain.NewAnnouncement(title, message, announcementType, duration)
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, announcement); err != nil {
		return fmt.Errorf("service: failed to save announcement: %w", err)
	}

	return nil
}

// GetAnnouncement retrieves the current announcement.
func (s *AnnouncementServiceImpl) GetAnnouncement(ctx context.Context) (*domain.Announcement, error) {
	announcement, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get announcement: %w", err)
	}

	return announcement, nil
}

// RemoveAnnouncement deletes the current announcement.
func (s *AnnouncementServiceImpl) RemoveAnnouncement(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("service: failed to remove announcement: %w", err)
	}

	return nil
}
