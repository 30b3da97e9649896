package ports

import (
	"context"

	"marketplace-settlement/internal/features/announcements/domain"
)

// AnnouncementService defines the primary port for announcement operations.
type AnnouncementService interface {
	SetAnnouncement(ctx context.Context, title, message string, announcementType domain.AnnouncementType, duration int) error
	GetAnnouncement(ctx context.Context) (*domain.Announcement, error)
	RemoveAnnouncement(ctx context.Context) error
}

// AnnouncementRepository defines the secondary port for announcement storage.
type AnnouncementRepository interface {
	Save(ctx context.Context, announcement *domain.Announcement) error
	Get(ctx context.Context) (*domain.Announcement, error)
	Delete(ctx context.Context) error
}
