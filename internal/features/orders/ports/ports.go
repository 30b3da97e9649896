package ports

import (
	"context"

	"marketplace-settlement/internal/features/orders/domain"
	purchases "marketplace-settlement/internal/features/purchases/domain"
)

// OrderService defines the primary port for checkout operations.
type OrderService interface {
	// Checkout validates the form, builds the order and its purchase
	// obligations, and persists both atomically.
	Checkout(ctx context.Context, form domain.CheckoutForm, cart []domain.CartItem) (*domain.Order, error)
	// GetOrder returns the order or nil when absent.
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
}

// OrderRepository defines the secondary port for order storage.
type OrderRepository interface {
	// CreateWithObligations persists the order and its purchase records in
	// a single transaction; either all rows commit or none do.
	CreateWithObligations(ctx context.Context, order *domain.Order, records []purchases.PurchaseRecord) error
	// FindByID returns the order or nil when absent.
	FindByID(ctx context.Context, id string) (*domain.Order, error)
}
