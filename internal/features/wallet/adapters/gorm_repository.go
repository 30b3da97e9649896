package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-settlement/internal/features/wallet/domain"

	"gorm.io/gorm"
)

// ErrVersionConflict is returned when a withdrawal lost a concurrent-write
// race on the balance row.
var ErrVersionConflict = errors.New("balance was modified concurrently")

// balanceModel is the persistence shape for reseller balances.
type balanceModel struct {
	ResellerID string `gorm:"primaryKey;size:64"`
	Available  float64
	Version    int `gorm:"not null;default:1"`
	UpdatedAt  time.Time
}

func (balanceModel) TableName() string { return "balances" }

// withdrawalModel is the persistence shape for withdrawals.
type withdrawalModel struct {
	ID         string `gorm:"primaryKey;size:36"`
	ResellerID string `gorm:"size:64;index"`
	Amount     float64
	CreatedAt  time.Time
}

func (withdrawalModel) TableName() string { return "withdrawals" }

// WalletModels lists the models this feature migrates.
func WalletModels() []interface{} {
	return []interface{}{&balanceModel{}, &withdrawalModel{}}
}

// GormWalletRepository implements ports.WalletRepository over MySQL.
type GormWalletRepository struct {
	db *gorm.DB
}

// NewGormWalletRepository creates a new GormWalletRepository.
func NewGormWalletRepository(db *gorm.DB) *GormWalletRepository {
	return &GormWalletRepository{db: db}
}

// FindBalance returns the reseller's balance. A reseller without a balance
// row has simply never earned, which is a zero balance, not an error.
func (r *GormWalletRepository) FindBalance(ctx context.Context, resellerID string) (*domain.Balance, error) {
	var m balanceModel
	if err := r.db.WithContext(ctx).First(&m, "reseller_id = ?", resellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.Balance{ResellerID: resellerID}, nil
		}
		return nil, fmt.Errorf("failed to find balance of %s: %w", resellerID, err)
	}
	return &domain.Balance{
		ResellerID: m.ResellerID,
		Available:  m.Available,
		Version:    m.Version,
	}, nil
}

// Withdraw zeroes the balance and records the withdrawal in one
// transaction. The balance update is guarded by the version read earlier:
// if another withdrawal or a credit landed in between, nothing commits and
// ErrVersionConflict is returned.
func (r *GormWalletRepository) Withdraw(ctx context.Context, balance *domain.Balance, withdrawal *domain.Withdrawal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&balanceModel{}).
			Where("reseller_id = ? AND version = ?", balance.ResellerID, balance.Version).
			Updates(map[string]interface{}{
				"available": 0,
				"version":   balance.Version + 1,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to clear balance of %s: %w", balance.ResellerID, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrVersionConflict
		}

		m := withdrawalModel{
			ID:         withdrawal.ID,
			ResellerID: withdrawal.ResellerID,
			Amount:     withdrawal.Amount,
			CreatedAt:  withdrawal.CreatedAt,
		}
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("failed to insert withdrawal %s: %w", withdrawal.ID, err)
		}
		return nil
	})
}

// FindWithdrawals returns the reseller's withdrawals, newest first.
func (r *GormWalletRepository) FindWithdrawals(ctx context.Context, resellerID string) ([]domain.Withdrawal, error) {
	var models []withdrawalModel
	if err := r.db.WithContext(ctx).
		Where("reseller_id = ?", resellerID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list withdrawals of %s: %w", resellerID, err)
	}

	withdrawals := make([]domain.Withdrawal, 0, len(models))
	for _, m := range models {
		withdrawals = append(withdrawals, domain.Withdrawal{
			ID:         m.ID,
			ResellerID: m.ResellerID,
			Amount:     m.Amount,
			CreatedAt:  m.CreatedAt,
		})
	}
	return withdrawals, nil
}
