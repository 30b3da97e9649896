package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"marketplace-settlement/internal/features/catalog/domain"

	"gorm.io/gorm"
)

// productModel is the persistence shape for products.
type productModel struct {
	ID             string `gorm:"primaryKey;size:64"`
	Name           string `gorm:"size:255;not null"`
	Price          float64
	Brand          string `gorm:"size:255;index"`
	Category       string `gorm:"size:255"`
	Image          string `gorm:"size:512"`
	SellerID       string `gorm:"size:64;index"`
	InStock        bool
	WholesalePrice float64
}

func (productModel) TableName() string { return "products" }

// sellerModel is the persistence shape for sellers. Brand aliases are kept
// as a JSON array in a text column.
type sellerModel struct {
	ID           string `gorm:"primaryKey;size:64"`
	Name         string `gorm:"size:255;not null"`
	Type         string `gorm:"size:16;not null"`
	BrandAliases string `gorm:"type:text"`
	IsDefault    bool
}

func (sellerModel) TableName() string { return "sellers" }

// CatalogModels lists the models this feature migrates.
func CatalogModels() []interface{} {
	return []interface{}{&productModel{}, &sellerModel{}}
}

// GormProductRepository implements ports.ProductRepository over MySQL.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID returns a product by ID, or nil when absent.
func (r *GormProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var m productModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product %s: %w", id, err)
	}
	p := toProductDomain(m)
	return &p, nil
}

// FindAll returns every stored product.
func (r *GormProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	var models []productModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]domain.Product, 0, len(models))
	for _, m := range models {
		products = append(products, toProductDomain(m))
	}
	return products, nil
}

// ReplaceAll swaps the stored products for the given set in one transaction.
func (r *GormProductRepository) ReplaceAll(ctx context.Context, products []domain.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&productModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear products: %w", err)
		}
		if len(products) == 0 {
			return nil
		}

		models := make([]productModel, 0, len(products))
		for _, p := range products {
			models = append(models, toProductModel(p))
		}
		if err := tx.CreateInBatches(models, 100).Error; err != nil {
			return fmt.Errorf("failed to insert products: %w", err)
		}
		return nil
	})
}

// GormSellerRepository implements ports.SellerRepository over MySQL.
type GormSellerRepository struct {
	db *gorm.DB
}

// NewGormSellerRepository creates a new GormSellerRepository.
func NewGormSellerRepository(db *gorm.DB) *GormSellerRepository {
	return &GormSellerRepository{db: db}
}

// FindAll returns every stored seller.
func (r *GormSellerRepository) FindAll(ctx context.Context) ([]domain.Seller, error) {
	var models []sellerModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}

	sellers := make([]domain.Seller, 0, len(models))
	for _, m := range models {
		sellers = append(sellers, toSellerDomain(m))
	}
	return sellers, nil
}

// ReplaceAll swaps the stored sellers for the given set.
func (r *GormSellerRepository) ReplaceAll(ctx context.Context, sellers []domain.Seller) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&sellerModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear sellers: %w", err)
		}
		if len(sellers) == 0 {
			return nil
		}

		models := make([]sellerModel, 0, len(sellers))
		for _, s := range sellers {
			models = append(models, toSellerModel(s))
		}
		if err := tx.CreateInBatches(models, 100).Error; err != nil {
			return fmt.Errorf("failed to insert sellers: %w", err)
		}
		return nil
	})
}

func toProductDomain(m productModel) domain.Product {
	return domain.Product{
		ID:             m.ID,
		Name:           m.Name,
		Price:          m.Price,
		Brand:          m.Brand,
		Category:       m.Category,
		Image:          m.Image,
		SellerID:       m.SellerID,
		InStock:        m.InStock,
		WholesalePrice: m.WholesalePrice,
	}
}

func toProductModel(p domain.Product) productModel {
	return productModel{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		Brand:          p.Brand,
		Category:       p.Category,
		Image:          p.Image,
		SellerID:       p.SellerID,
		InStock:        p.InStock,
		WholesalePrice: p.WholesalePrice,
	}
}

func toSellerDomain(m sellerModel) domain.Seller {
	var aliases []string
	if m.BrandAliases != "" {
		// Stored by this adapter, so a decode failure means a manual edit;
		// treat it as no aliases.
		_ = json.Unmarshal([]byte(m.BrandAliases), &aliases)
	}
	return domain.Seller{
		ID:           m.ID,
		Name:         m.Name,
		Type:         domain.SellerType(m.Type),
		BrandAliases: aliases,
		IsDefault:    m.IsDefault,
	}
}

func toSellerModel(s domain.Seller) sellerModel {
	aliases := ""
	if len(s.BrandAliases) > 0 {
		if data, err := json.Marshal(s.BrandAliases); err == nil {
			aliases = string(data)
		}
	}
	return sellerModel{
		ID:           s.ID,
		Name:         s.Name,
		Type:         string(s.Type),
		BrandAliases: aliases,
		IsDefault:    s.IsDefault,
	}
}
