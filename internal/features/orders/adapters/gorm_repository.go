package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace-settlement/internal/features/orders/domain"
	purchaseadapters "marketplace-settlement/internal/features/purchases/adapters"
	purchases "marketplace-settlement/internal/features/purchases/domain"

	"gorm.io/gorm"
)

// orderModel is the persistence shape for orders. Line items and address
// snapshots are kept as JSON in text columns since this core never queries
// inside them.
type orderModel struct {
	ID                string `gorm:"primaryKey;size:64"`
	Customer          string `gorm:"size:255"`
	Status            string `gorm:"size:16;index"`
	Items             string `gorm:"type:text"`
	Total             float64
	Billing           string `gorm:"type:text"`
	Shipping          string `gorm:"type:text"`
	PaymentMethod     string `gorm:"size:64"`
	Note              string `gorm:"type:text"`
	CreatedAt         time.Time
	OrderDate         string `gorm:"size:64"`
	EstimatedDelivery string `gorm:"size:64"`
}

func (orderModel) TableName() string { return "orders" }

// OrderModels lists the models this feature migrates.
func OrderModels() []interface{} {
	return []interface{}{&orderModel{}}
}

// GormOrderRepository implements ports.OrderRepository over MySQL.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// CreateWithObligations persists the order and its purchase records in a
// single transaction so an order is never stored without its obligations,
// and vice versa.
func (r *GormOrderRepository) CreateWithObligations(ctx context.Context, order *domain.Order, records []purchases.PurchaseRecord) error {
	m, err := toOrderModel(order)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("failed to insert order %s: %w", order.ID, err)
		}

		if len(records) == 0 {
			return nil
		}
		models := make([]purchaseadapters.PurchaseRecordModel, 0, len(records))
		for _, record := range records {
			models = append(models, purchaseadapters.ToModel(record))
		}
		if err := tx.Create(&models).Error; err != nil {
			return fmt.Errorf("failed to insert purchase records for order %s: %w", order.ID, err)
		}
		return nil
	})
}

// FindByID returns an order by ID, or nil when absent.
func (r *GormOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var m orderModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order %s: %w", id, err)
	}
	return toOrderDomain(m)
}

func toOrderModel(o *domain.Order) (orderModel, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return orderModel{}, fmt.Errorf("failed to encode order items: %w", err)
	}
	billing, err := json.Marshal(o.Billing)
	if err != nil {
		return orderModel{}, fmt.Errorf("failed to encode billing address: %w", err)
	}
	var shipping []byte
	if o.Shipping != nil {
		shipping, err = json.Marshal(o.Shipping)
		if err != nil {
			return orderModel{}, fmt.Errorf("failed to encode shipping address: %w", err)
		}
	}

	return orderModel{
		ID:                o.ID,
		Customer:          o.Customer,
		Status:            string(o.Status),
		Items:             string(items),
		Total:             o.Total,
		Billing:           string(billing),
		Shipping:          string(shipping),
		PaymentMethod:     o.PaymentMethod,
		Note:              o.Note,
		CreatedAt:         o.CreatedAt,
		OrderDate:         o.OrderDate,
		EstimatedDelivery: o.EstimatedDelivery,
	}, nil
}

func toOrderDomain(m orderModel) (*domain.Order, error) {
	order := domain.Order{
		ID:                m.ID,
		Customer:          m.Customer,
		Status:            domain.OrderStatus(m.Status),
		Total:             m.Total,
		PaymentMethod:     m.PaymentMethod,
		Note:              m.Note,
		CreatedAt:         m.CreatedAt,
		OrderDate:         m.OrderDate,
		EstimatedDelivery: m.EstimatedDelivery,
	}

	if m.Items != "" {
		if err := json.Unmarshal([]byte(m.Items), &order.Items); err != nil {
			return nil, fmt.Errorf("failed to decode items of order %s: %w", m.ID, err)
		}
	}
	if m.Billing != "" {
		if err := json.Unmarshal([]byte(m.Billing), &order.Billing); err != nil {
			return nil, fmt.Errorf("failed to decode billing address of order %s: %w", m.ID, err)
		}
	}
	if m.Shipping != "" {
		var shipping domain.Address
		if err := json.Unmarshal([]byte(m.Shipping), &shipping); err != nil {
			return nil, fmt.Errorf("failed to decode shipping address of order %s: %w", m.ID, err)
		}
		order.Shipping = &shipping
	}

	return &order, nil
}
