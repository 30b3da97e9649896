package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/cache"
	"marketplace-settlement/internal/core/logger"
	"marketplace-settlement/internal/features/catalog/domain"
	"marketplace-settlement/internal/features/catalog/ports"

	"go.uber.org/zap"
)

const (
	sellersCacheKey = "catalog:sellers"
	catalogCacheTTL = 5 * time.Minute
)

// CatalogServiceImpl implements ports.CatalogService with a redis
// read-through cache in front of the repositories.
type CatalogServiceImpl struct {
	products ports.ProductRepository
	sellers  ports.SellerRepository
	cache    cache.Cache
}

// NewCatalogService creates a new CatalogServiceImpl. The cache may be nil,
// in which case every read goes to the repositories.
func NewCatalogService(products ports.ProductRepository, sellers ports.SellerRepository, c cache.Cache) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		products: products,
		sellers:  sellers,
		cache:    c,
	}
}

// GetProduct returns a single product, or nil when absent.
func (s *CatalogServiceImpl) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get product: %w", err)
	}
	return product, nil
}

// ListProducts returns the full product catalog.
func (s *CatalogServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}
	return products, nil
}

// ListSellers returns every registered seller, served from cache when warm.
func (s *CatalogServiceImpl) ListSellers(ctx context.Context) ([]domain.Seller, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, sellersCacheKey); err == nil {
			var sellers []domain.Seller
			if err := json.Unmarshal(data, &sellers); err == nil {
				return sellers, nil
			}
		}
	}

	sellers, err := s.sellers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list sellers: %w", err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(sellers); err == nil {
			if err := s.cache.Set(ctx, sellersCacheKey, data, catalogCacheTTL); err != nil {
				logger.Get().Warn("Failed to cache sellers", zap.Error(err))
			}
		}
	}

	return sellers, nil
}

// Directory builds a seller directory snapshot for resolution.
func (s *CatalogServiceImpl) Directory(ctx context.Context) (*domain.Directory, error) {
	sellers, err := s.ListSellers(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewDirectory(sellers), nil
}

// Sync replaces the stored catalog with the upstream export and drops the
// seller cache so the next read sees the fresh data.
func (s *CatalogServiceImpl) Sync(ctx context.Context, source ports.CatalogSource) error {
	products, sellers, err := source.FetchCatalog(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to fetch catalog: %w", err)
	}

	if err := s.sellers.ReplaceAll(ctx, sellers); err != nil {
		return fmt.Errorf("service: failed to replace sellers: %w", err)
	}
	if err := s.products.ReplaceAll(ctx, products); err != nil {
		return fmt.Errorf("service: failed to replace products: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, sellersCacheKey); err != nil {
			logger.Get().Warn("Failed to invalidate seller cache", zap.Error(err))
		}
	}

	logger.Get().Info("Catalog synced",
		zap.Int("products", len(products)),
		zap.Int("sellers", len(sellers)),
	)

	return nil
}
