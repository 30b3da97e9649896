package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-settlement/internal/features/purchases/domain"

	"gorm.io/gorm"
)

// ErrVersionConflict is returned when an update lost a concurrent-write race.
var ErrVersionConflict = errors.New("purchase record was modified concurrently")

// PurchaseRecordModel is the persistence shape for purchase obligations.
// Exported so the orders adapter can insert records inside the checkout
// transaction.
type PurchaseRecordModel struct {
	ID              string `gorm:"primaryKey;size:36"`
	OrderID         string `gorm:"size:64;index"`
	ProductID       string `gorm:"size:64"`
	ResellerID      string `gorm:"size:64;index"`
	WholesalerID    string `gorm:"size:64"`
	ProductName     string `gorm:"size:255"`
	Quantity        int
	ResellerPrice   float64
	WholesalerPrice float64
	Status          string `gorm:"size:16;index"`
	CreatedAt       time.Time
	OrderDate       time.Time
	CompletedAt     *time.Time
	Version         int `gorm:"not null;default:1"`
}

// TableName sets the table name for purchase records.
func (PurchaseRecordModel) TableName() string { return "purchase_records" }

// PurchaseModels lists the models this feature migrates.
func PurchaseModels() []interface{} {
	return []interface{}{&PurchaseRecordModel{}}
}

// ToModel maps a domain record to its persistence shape.
func ToModel(r domain.PurchaseRecord) PurchaseRecordModel {
	return PurchaseRecordModel{
		ID:              r.ID,
		OrderID:         r.OrderID,
		ProductID:       r.ProductID,
		ResellerID:      r.ResellerID,
		WholesalerID:    r.WholesalerID,
		ProductName:     r.ProductName,
		Quantity:        r.Quantity,
		ResellerPrice:   r.ResellerPrice,
		WholesalerPrice: r.WholesalerPrice,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
		OrderDate:       r.OrderDate,
		CompletedAt:     r.CompletedAt,
		Version:         r.Version,
	}
}

// ToDomain maps a persistence record back to the domain shape.
func ToDomain(m PurchaseRecordModel) domain.PurchaseRecord {
	return domain.PurchaseRecord{
		ID:              m.ID,
		OrderID:         m.OrderID,
		ProductID:       m.ProductID,
		ResellerID:      m.ResellerID,
		WholesalerID:    m.WholesalerID,
		ProductName:     m.ProductName,
		Quantity:        m.Quantity,
		ResellerPrice:   m.ResellerPrice,
		WholesalerPrice: m.WholesalerPrice,
		Status:          domain.Status(m.Status),
		CreatedAt:       m.CreatedAt,
		OrderDate:       m.OrderDate,
		CompletedAt:     m.CompletedAt,
		Version:         m.Version,
	}
}

// GormPurchaseRepository implements ports.PurchaseRepository over MySQL.
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository.
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// FindByID returns a record by ID, or nil when absent.
func (r *GormPurchaseRepository) FindByID(ctx context.Context, id string) (*domain.PurchaseRecord, error) {
	var m PurchaseRecordModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find purchase record %s: %w", id, err)
	}
	record := ToDomain(m)
	return &record, nil
}

// FindByReseller returns every record owed by the reseller, newest first.
func (r *GormPurchaseRepository) FindByReseller(ctx context.Context, resellerID string) ([]domain.PurchaseRecord, error) {
	var models []PurchaseRecordModel
	err := r.db.WithContext(ctx).
		Where("reseller_id = ?", resellerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase records: %w", err)
	}
	return toDomainSlice(models), nil
}

// FindPendingByReseller returns the reseller's unpaid records.
func (r *GormPurchaseRepository) FindPendingByReseller(ctx context.Context, resellerID string) ([]domain.PurchaseRecord, error) {
	var models []PurchaseRecordModel
	err := r.db.WithContext(ctx).
		Where("reseller_id = ? AND status = ?", resellerID, string(domain.StatusPending)).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending purchase records: %w", err)
	}
	return toDomainSlice(models), nil
}

// Update persists a modified record using its version column as an
// optimistic lock. A concurrent writer bumps the version first and this
// update then matches zero rows.
func (r *GormPurchaseRepository) Update(ctx context.Context, record *domain.PurchaseRecord) error {
	result := r.db.WithContext(ctx).
		Model(&PurchaseRecordModel{}).
		Where("id = ? AND version = ?", record.ID, record.Version).
		Updates(map[string]interface{}{
			"status":       string(record.Status),
			"completed_at": record.CompletedAt,
			"version":      record.Version + 1,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update purchase record %s: %w", record.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrVersionConflict
	}

	record.Version++
	return nil
}

func toDomainSlice(models []PurchaseRecordModel) []domain.PurchaseRecord {
	records := make([]domain.PurchaseRecord, 0, len(models))
	for _, m := range models {
		records = append(records, ToDomain(m))
	}
	return records
}
