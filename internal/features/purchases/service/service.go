package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/events"
	"marketplace-settlement/internal/core/logger"
	"marketplace-settlement/internal/features/purchases/domain"
	"marketplace-settlement/internal/features/purchases/ports"

	"go.uber.org/zap"
)

// ErrRecordNotFound is returned when the purchase record does not exist.
var ErrRecordNotFound = errors.New("purchase record not found")

// PurchaseServiceImpl implements ports.PurchaseService.
type PurchaseServiceImpl struct {
	repo      ports.PurchaseRepository
	publisher events.Publisher
	now       func() time.Time
}

// NewPurchaseService creates a new PurchaseServiceImpl. The publisher may
// be nil, in which case completion events are not emitted.
func NewPurchaseService(repo ports.PurchaseRepository, publisher events.Publisher) *PurchaseServiceImpl {
	return &PurchaseServiceImpl{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// ListByReseller returns every obligation owed by the reseller.
func (s *PurchaseServiceImpl) ListByReseller(ctx context.Context, resellerID string) ([]domain.PurchaseRecord, error) {
	records, err := s.repo.FindByReseller(ctx, resellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list purchases: %w", err)
	}
	return records, nil
}

// PendingByReseller returns only the unpaid obligations of the reseller.
func (s *PurchaseServiceImpl) PendingByReseller(ctx context.Context, resellerID string) ([]domain.PurchaseRecord, error) {
	records, err := s.repo.FindPendingByReseller(ctx, resellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list pending purchases: %w", err)
	}
	return records, nil
}

// Complete marks an obligation as paid. Completion is trust-based: the
// caller asserts the reseller settled with the wholesaler out of band, no
// payment verification happens here. Re-completion is rejected.
func (s *PurchaseServiceImpl) Complete(ctx context.Context, id string) (*domain.PurchaseRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load purchase record: %w", err)
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	if err := record.Complete(s.now()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("service: failed to save completion: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.PurchaseCompleted, record); err != nil {
			logger.Get().Warn("Failed to publish purchase.completed",
				zap.String("purchase_id", record.ID),
				zap.Error(err),
			)
		}
	}

	return record, nil
}
