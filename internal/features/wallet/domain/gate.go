package domain

import (
	"fmt"
	"time"

	purchases "marketplace-settlement/internal/features/purchases/domain"
)

// Decision is the outcome of evaluating a reseller's withdrawal request.
type Decision struct {
	// Allowed reports whether the withdrawal may proceed.
	Allowed bool `json:"allowed"`
	// Reason explains a blocked withdrawal, empty when allowed.
	Reason string `json:"reason,omitempty"`
	// NetAvailable is the amount withdrawable after pending obligations.
	NetAvailable float64 `json:"net_available"`
	// PendingCount is the number of unpaid obligations, when any exist.
	PendingCount int `json:"pending_count,omitempty"`
	// PendingAmount is the total owed across unpaid obligations.
	PendingAmount float64 `json:"pending_amount,omitempty"`
}

// Evaluate decides whether a reseller may withdraw. Any pending obligation
// blocks the withdrawal outright; the reseller must settle with the
// wholesalers first. With nothing pending, a non-positive balance still
// blocks. Pure function over its inputs.
func Evaluate(availableBalance float64, records []purchases.PurchaseRecord) Decision {
	pendingTotal := purchases.OutstandingAmount(records)
	pendingCount := purchases.PendingCount(records)

	if pendingTotal > 0 {
		net := availableBalance - pendingTotal
		if net < 0 {
			net = 0
		}
		return Decision{
			Allowed:       false,
			Reason:        fmt.Sprintf("%d pending purchase(s) totaling %.2f must be settled before withdrawing", pendingCount, pendingTotal),
			NetAvailable:  net,
			PendingCount:  pendingCount,
			PendingAmount: pendingTotal,
		}
	}

	if availableBalance <= 0 {
		return Decision{
			Allowed:      false,
			Reason:       "no funds available",
			NetAvailable: 0,
		}
	}

	return Decision{
		Allowed:      true,
		NetAvailable: availableBalance,
	}
}

// Balance is a reseller's withdrawable funds.
type Balance struct {
	// ResellerID identifies the owning reseller.
	ResellerID string `json:"reseller_id"`
	// Available is the withdrawable amount.
	Available float64 `json:"available"`
	// Version supports optimistic concurrency on updates.
	Version int `json:"-"`
}

// Withdrawal records a completed cash-out of a reseller's balance.
type Withdrawal struct {
	// ID is the unique identifier for the withdrawal.
	ID string `json:"id"`
	// ResellerID identifies the withdrawing reseller.
	ResellerID string `json:"reseller_id"`
	// Amount is the withdrawn sum.
	Amount float64 `json:"amount"`
	// CreatedAt is when the withdrawal was made.
	CreatedAt time.Time `json:"created_at"`
}
