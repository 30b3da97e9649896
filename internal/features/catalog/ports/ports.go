package ports

import (
	"context"

	"marketplace-settlement/internal/features/catalog/domain"
)

// CatalogService defines the primary port for catalog operations.
type CatalogService interface {
	// GetProduct returns the product with the given ID, or nil when absent.
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	// ListProducts returns every product in the catalog.
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// ListSellers returns every registered seller.
	ListSellers(ctx context.Context) ([]domain.Seller, error)
	// Directory returns a seller directory snapshot for resolution.
	Directory(ctx context.Context) (*domain.Directory, error)
	// Sync replaces the stored catalog with the upstream export.
	Sync(ctx context.Context, source CatalogSource) error
}

// ProductRepository defines the secondary port for product storage.
type ProductRepository interface {
	// FindByID returns the product or nil when absent.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindAll returns every stored product.
	FindAll(ctx context.Context) ([]domain.Product, error)
	// ReplaceAll swaps the stored products for the given set.
	ReplaceAll(ctx context.Context, products []domain.Product) error
}

// SellerRepository defines the secondary port for seller storage.
type SellerRepository interface {
	// FindAll returns every stored seller.
	FindAll(ctx context.Context) ([]domain.Seller, error)
	// ReplaceAll swaps the stored sellers for the given set.
	ReplaceAll(ctx context.Context, sellers []domain.Seller) error
}

// CatalogSource defines the secondary port for upstream catalog exports.
type CatalogSource interface {
	// FetchCatalog retrieves the complete product and seller export.
	FetchCatalog(ctx context.Context) ([]domain.Product, []domain.Seller, error)
	// HealthCheck verifies the upstream endpoint is reachable.
	HealthCheck(ctx context.Context) error
}
