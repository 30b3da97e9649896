package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/events"
	"marketplace-settlement/internal/core/logger"
	"marketplace-settlement/internal/features/wallet/domain"
	"marketplace-settlement/internal/features/wallet/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrWithdrawalBlocked is returned when the eligibility gate denies a
// withdrawal. The decision carried alongside explains why.
var ErrWithdrawalBlocked = errors.New("withdrawal blocked")

// BlockedError wraps ErrWithdrawalBlocked with the gate's decision.
type BlockedError struct {
	Decision domain.Decision
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("withdrawal blocked: %s", e.Decision.Reason)
}

func (e *BlockedError) Unwrap() error { return ErrWithdrawalBlocked }

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	repo        ports.WalletRepository
	obligations ports.ObligationSource
	publisher   events.Publisher
	now         func() time.Time
}

// NewWalletService creates a new WalletServiceImpl. The publisher may be
// nil, in which case withdrawal events are not emitted.
func NewWalletService(repo ports.WalletRepository, obligations ports.ObligationSource, publisher events.Publisher) *WalletServiceImpl {
	return &WalletServiceImpl{
		repo:        repo,
		obligations: obligations,
		publisher:   publisher,
		now:         time.Now,
	}
}

// Eligibility evaluates the withdrawal gate against the reseller's current
// balance and pending obligations.
func (s *WalletServiceImpl) Eligibility(ctx context.Context, resellerID string) (*domain.Decision, error) {
	decision, _, err := s.evaluate(ctx, resellerID)
	if err != nil {
		return nil, err
	}
	return decision, nil
}

// Withdraw cashes out the reseller's full available balance. The gate is
// re-evaluated here so a purchase created between the eligibility check and
// the withdrawal still blocks; the balance update itself is guarded by a
// version check against concurrent withdrawals.
func (s *WalletServiceImpl) Withdraw(ctx context.Context, resellerID string) (*domain.Withdrawal, error) {
	decision, balance, err := s.evaluate(ctx, resellerID)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, &BlockedError{Decision: *decision}
	}

	withdrawal := &domain.Withdrawal{
		ID:         uuid.NewString(),
		ResellerID: resellerID,
		Amount:     balance.Available,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Withdraw(ctx, balance, withdrawal); err != nil {
		return nil, fmt.Errorf("service: failed to record withdrawal: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.WithdrawalCreated, withdrawal); err != nil {
			logger.Get().Warn("Failed to publish withdrawal.created",
				zap.String("withdrawal_id", withdrawal.ID),
				zap.Error(err),
			)
		}
	}

	logger.Get().Info("Withdrawal completed",
		zap.String("reseller_id", resellerID),
		zap.Float64("amount", withdrawal.Amount),
	)

	return withdrawal, nil
}

// ListWithdrawals returns the reseller's withdrawal history, newest first.
func (s *WalletServiceImpl) ListWithdrawals(ctx context.Context, resellerID string) ([]domain.Withdrawal, error) {
	withdrawals, err := s.repo.FindWithdrawals(ctx, resellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list withdrawals: %w", err)
	}
	return withdrawals, nil
}

func (s *WalletServiceImpl) evaluate(ctx context.Context, resellerID string) (*domain.Decision, *domain.Balance, error) {
	balance, err := s.repo.FindBalance(ctx, resellerID)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to load balance: %w", err)
	}

	pending, err := s.obligations.PendingByReseller(ctx, resellerID)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to load pending purchases: %w", err)
	}

	decision := domain.Evaluate(balance.Available, pending)
	return &decision, balance, nil
}
