package domain

import (
	"errors"
	"time"
)

// AnnouncementType represents the kind of storefront announcement.
type AnnouncementType string

const (
	AnnouncementTypeInfo        AnnouncementType = "INFO"
	AnnouncementTypePromo       AnnouncementType = "PROMO"
	AnnouncementTypeMaintenance AnnouncementType = "MAINTENANCE"
)

var (
	ErrInvalidAnnouncementType = errors.New("invalid announcement type")
)

// Announcement represents a site-wide storefront message.
type Announcement struct {
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      AnnouncementType `json:"type"`
	Duration  int              `json:"duration,omitempty"` // Duration in seconds. 0 means permanent (until manually deleted).
	CreatedAt time.Time        `json:"created_at"`
}

// NewAnnouncement creates a new Announcement and validates it.
func NewAnnouncement(title, message string, announcementType AnnouncementType, duration int) (*Announcement, error) {
	if announcementType != AnnouncementTypeInfo && announcementType != AnnouncementTypePromo && announcementType != AnnouncementTypeMaintenance {
		return nil, ErrInvalidAnnouncementType
	}

	return &Announcement{
		Title:     title,
		Message:   message,
		Type:      announcementType,
		Duration:  duration,
		CreatedAt: time.Now(),
	}, nil
}
