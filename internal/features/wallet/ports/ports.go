package ports

import (
	"context"

	purchases "marketplace-settlement/internal/features/purchases/domain"
	"marketplace-settlement/internal/features/wallet/domain"
)

// WalletService defines the primary port for withdrawal operations.
type WalletService interface {
	// Eligibility evaluates whether the reseller may withdraw right now.
	Eligibility(ctx context.Context, resellerID string) (*domain.Decision, error)
	// Withdraw cashes out the reseller's full available balance, failing
	// when the eligibility gate blocks.
	Withdraw(ctx context.Context, resellerID string) (*domain.Withdrawal, error)
	// ListWithdrawals returns the reseller's withdrawal history, newest first.
	ListWithdrawals(ctx context.Context, resellerID string) ([]domain.Withdrawal, error)
}

// WalletRepository defines the secondary port for balance and withdrawal
// storage.
type WalletRepository interface {
	// FindBalance returns the reseller's balance, a zero balance when the
	// reseller has never earned.
	FindBalance(ctx context.Context, resellerID string) (*domain.Balance, error)
	// Withdraw zeroes the balance and records the withdrawal in one
	// transaction, failing on a concurrent balance change.
	Withdraw(ctx context.Context, balance *domain.Balance, withdrawal *domain.Withdrawal) error
	// FindWithdrawals returns the reseller's withdrawals, newest first.
	FindWithdrawals(ctx context.Context, resellerID string) ([]domain.Withdrawal, error)
}

// ObligationSource exposes the pending purchase obligations that gate
// withdrawals.
type ObligationSource interface {
	// PendingByReseller returns the reseller's unpaid obligations.
	PendingByReseller(ctx context.Context, resellerID string) ([]purchases.PurchaseRecord, error)
}
