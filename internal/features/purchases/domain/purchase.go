package domain

import (
	"errors"
	"time"
)

// Status represents the settlement state of a purchase obligation.
type Status string

const (
	// StatusPending means the reseller still owes the wholesaler for this sale.
	StatusPending Status = "pending"
	// StatusCompleted means the reseller has confirmed payment. Terminal.
	StatusCompleted Status = "completed"
)

// ErrAlreadyCompleted is returned when completing a record twice.
var ErrAlreadyCompleted = errors.New("purchase record already completed")

// PurchaseRecord is the obligation a reseller owes the upstream wholesaler
// for one sold order line. Created at order time, cleared exactly once when
// the reseller confirms payment.
type PurchaseRecord struct {
	// ID is the unique identifier for the record.
	ID string `json:"id"`
	// OrderID back-references the originating order (not ownership).
	OrderID string `json:"order_id"`
	// ProductID identifies the sold product.
	ProductID string `json:"product_id"`
	// ResellerID is the seller that owes payment.
	ResellerID string `json:"reseller_id"`
	// WholesalerID is the seller owed payment.
	WholesalerID string `json:"wholesaler_id"`
	// ProductName is a display snapshot of the product name.
	ProductName string `json:"product_name"`
	// Quantity is the number of units sold.
	Quantity int `json:"quantity"`
	// ResellerPrice is the unit price charged to the end customer.
	ResellerPrice float64 `json:"reseller_price"`
	// WholesalerPrice is the unit price the reseller owes the wholesaler.
	WholesalerPrice float64 `json:"wholesaler_price"`
	// Status is the settlement state, pending until confirmed.
	Status Status `json:"status"`
	// CreatedAt is when the record was constructed.
	CreatedAt time.Time `json:"created_at"`
	// OrderDate mirrors CreatedAt at construction time.
	OrderDate time.Time `json:"order_date"`
	// CompletedAt is set exactly once, on completion.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Version supports optimistic concurrency on updates.
	Version int `json:"-"`
}

// Amount returns the total owed for this record.
func (r PurchaseRecord) Amount() float64 {
	return r.WholesalerPrice * float64(r.Quantity)
}

// Complete transitions the record to completed. The transition is one-way:
// a completed record is never re-completed and keeps its original
// completion timestamp.
func (r *PurchaseRecord) Complete(now time.Time) error {
	if r.Status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	r.Status = StatusCompleted
	r.CompletedAt = &now
	return nil
}

// OutstandingAmount sums wholesaler price times quantity over pending
// records. This total gates reseller withdrawals.
func OutstandingAmount(records []PurchaseRecord) float64 {
	var total float64
	for _, r := range records {
		if r.Status == StatusPending {
			total += r.Amount()
		}
	}
	return total
}

// PendingCount returns the number of pending records.
func PendingCount(records []PurchaseRecord) int {
	count := 0
	for _, r := range records {
		if r.Status == StatusPending {
			count++
		}
	}
	return count
}
