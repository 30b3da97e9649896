package ports

import (
	"context"

	"marketplace-settlement/internal/features/purchases/domain"
)

// PurchaseService defines the primary port for purchase obligation operations.
type PurchaseService interface {
	// ListByReseller returns every obligation owed by the given reseller.
	ListByReseller(ctx context.Context, resellerID string) ([]domain.PurchaseRecord, error)
	// PendingByReseller returns only the unpaid obligations of the reseller.
	PendingByReseller(ctx context.Context, resellerID string) ([]domain.PurchaseRecord, error)
	// Complete marks an obligation as paid. The transition is one-way.
	Complete(ctx context.Context, id string) (*domain.PurchaseRecord, error)
}

// PurchaseRepository defines the secondary port for obligation storage.
type PurchaseRepository interface {
	// FindByID returns the record or nil when absent.
	FindByID(ctx context.Context, id string) (*domain.PurchaseRecord, error)
	// FindByReseller returns every record for the reseller, newest first.
	FindByReseller(ctx context.Context, resellerID string) ([]domain.PurchaseRecord, error)
	// FindPendingByReseller returns the reseller's pending records.
	FindPendingByReseller(ctx context.Context, resellerID string) ([]domain.PurchaseRecord, error)
	// Update persists a modified record, failing on concurrent modification.
	Update(ctx context.Context, record *domain.PurchaseRecord) error
}
