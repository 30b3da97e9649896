package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/events"
	"marketplace-settlement/internal/core/logger"
	catalogdomain "marketplace-settlement/internal/features/catalog/domain"
	catalogports "marketplace-settlement/internal/features/catalog/ports"
	"marketplace-settlement/internal/features/orders/domain"
	"marketplace-settlement/internal/features/orders/ports"
	purchases "marketplace-settlement/internal/features/purchases/domain"

	"go.uber.org/zap"
)

// OrderServiceImpl implements ports.OrderService.
type OrderServiceImpl struct {
	repo      ports.OrderRepository
	catalog   catalogports.CatalogService
	publisher events.Publisher
	margin    float64
	now       func() time.Time
}

// NewOrderService creates a new OrderServiceImpl. The margin is used to
// derive wholesale prices for products that carry no explicit one. The
// publisher may be nil, in which case order events are not emitted.
func NewOrderService(repo ports.OrderRepository, catalog catalogports.CatalogService, publisher events.Publisher, margin float64) *OrderServiceImpl {
	return &OrderServiceImpl{
		repo:      repo,
		catalog:   catalog,
		publisher: publisher,
		margin:    margin,
		now:       time.Now,
	}
}

// Checkout turns a checkout form and cart into a persisted order. For every
// cart line sold by a reseller it also creates the pending obligation owed
// to the upstream wholesaler, committed in the same transaction as the
// order so neither ever exists without the other.
func (s *OrderServiceImpl) Checkout(ctx context.Context, form domain.CheckoutForm, cart []domain.CartItem) (*domain.Order, error) {
	now := s.now()

	order, err := domain.NewOrder(form, cart, now)
	if err != nil {
		return nil, err
	}

	dir, err := s.catalog.Directory(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load seller directory: %w", err)
	}

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load products: %w", err)
	}
	byID := make(map[string]catalogdomain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	lookup := func(id string) *catalogdomain.Product {
		if p, ok := byID[id]; ok {
			return &p
		}
		return nil
	}

	lines := make([]purchases.SaleLine, 0, len(cart))
	for _, item := range cart {
		lines = append(lines, purchases.SaleLine{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			UnitPrice:   item.Price,
			Quantity:    item.Quantity,
		})
	}
	records := purchases.BuildRecords(order.ID, lines, dir, lookup, s.margin, now)

	if err := s.repo.CreateWithObligations(ctx, order, records); err != nil {
		return nil, fmt.Errorf("service: failed to persist checkout: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.OrderCreated, order); err != nil {
			logger.Get().Warn("Failed to publish order.created",
				zap.String("order_id", order.ID),
				zap.Error(err),
			)
		}
	}

	logger.Get().Info("Order created",
		zap.String("order_id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.Int("obligations", len(records)),
	)

	return order, nil
}

// GetOrder returns the order or nil when absent.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load order: %w", err)
	}
	return order, nil
}
