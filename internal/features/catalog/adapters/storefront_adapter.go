package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"marketplace-settlement/internal/core/httpclient"
	"marketplace-settlement/internal/features/catalog/domain"
)

// StorefrontAdapter implements ports.CatalogSource against the storefront's
// catalog export endpoint. The export carries the same JSON shapes the web
// frontend ships as static fixtures.
type StorefrontAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the catalog export endpoint.
	baseURL string
}

// NewStorefrontAdapter creates a new StorefrontAdapter.
func NewStorefrontAdapter(baseURL string) *StorefrontAdapter {
	return &StorefrontAdapter{
		client:  httpclient.NewClient(10 * time.Second),
		baseURL: baseURL,
	}
}

// storefrontExport is the raw payload returned by the export endpoint.
type storefrontExport struct {
	Products []storefrontProduct `json:"products"`
	Sellers  []storefrontSeller  `json:"sellers"`
}

type storefrontProduct struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Brand          string  `json:"brand"`
	Category       string  `json:"category"`
	Image          string  `json:"image"`
	SellerID       string  `json:"sellerId"`
	InStock        bool    `json:"inStock"`
	WholesalePrice float64 `json:"wholesalePrice"`
}

type storefrontSeller struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	BrandAliases []string `json:"brandAliases"`
	IsDefault    bool     `json:"isDefault"`
}

// FetchCatalog retrieves and maps the complete catalog export.
func (a *StorefrontAdapter) FetchCatalog(ctx context.Context) ([]domain.Product, []domain.Seller, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("storefront export returned status: %d", resp.StatusCode)
	}

	var export storefrontExport
	if err := json.NewDecoder(resp.Body).Decode(&export); err != nil {
		return nil, nil, fmt.Errorf("failed to decode export: %w", err)
	}

	products := make([]domain.Product, 0, len(export.Products))
	for _, p := range export.Products {
		products = append(products, domain.Product{
			ID:             p.ID,
			Name:           p.Name,
			Price:          p.Price,
			Brand:          p.Brand,
			Category:       p.Category,
			Image:          p.Image,
			SellerID:       p.SellerID,
			InStock:        p.InStock,
			WholesalePrice: p.WholesalePrice,
		})
	}

	sellers := make([]domain.Seller, 0, len(export.Sellers))
	for _, s := range export.Sellers {
		sellers = append(sellers, domain.Seller{
			ID:           s.ID,
			Name:         s.Name,
			Type:         domain.SellerType(s.Type),
			BrandAliases: s.BrandAliases,
			IsDefault:    s.IsDefault,
		})
	}

	return products, sellers, nil
}

// HealthCheck verifies that the export endpoint is reachable.
func (a *StorefrontAdapter) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, a.baseURL, nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}
