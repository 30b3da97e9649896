package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/cache"
	"marketplace-settlement/internal/features/announcements/domain"
)

const announcementCacheKey = "site_announcement"

// RedisAnnouncementRepository implements ports.AnnouncementRepository over
// the cache port.
type RedisAnnouncementRepository struct {
	cache cache.Cache
}

// NewRedisAnnouncementRepository creates a new RedisAnnouncementRepository.
func NewRedisAnnouncementRepository(c cache.Cache) *RedisAnnouncementRepository {
	return &RedisAnnouncementRepository{
		cache: c,
	}
}

// Save stores the announcement in the cache. A zero duration means
// permanent, which the cache treats as no expiration.
func (r *RedisAnnouncementRepository) Save(ctx context.Context, announcement *domain.Announcement) error {
	data, err := json.Marshal(announcement)
	if err != nil {
		return fmt.Errorf("failed to marshal announcement: %w", err)
	}

	ttl := time.Duration(announcement.Duration) * time.Second
	if err := r.cache.Set(ctx, announcementCacheKey, data, ttl); err != nil {
		return fmt.Errorf("failed to save announcement to cache: %w", err)
	}

	return nil
}

// Get retrieves the announcement from the cache, nil when none is active.
func (r *RedisAnnouncementRepository) Get(ctx context.Context) (*domain.Announcement, error) {
	data, err := r.cache.Get(ctx, announcementCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get announcement from cache: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var announcement domain.Announcement
	if err := json.Unmarshal(data, &announcement); err != nil {
		return nil, fmt.Errorf("failed to unmarshal announcement: %w", err)
	}

	return &announcement, nil
}

// Delete removes the announcement from the cache.
func (r *RedisAnnouncementRepository) Delete(ctx context.Context) error {
	if err := r.cache.Delete(ctx, announcementCacheKey); err != nil {
		return fmt.Errorf("failed to delete announcement from cache: %w", err)
	}
	return nil
}
