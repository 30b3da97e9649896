package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseRecord_Complete(t *testing.T) {
	t.Run("Pending Completes Once", func(t *testing.T) {
		r := PurchaseRecord{ID: "pr-1", Status: StatusPending}
		now := time.Now()

		err := r.Complete(now)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, r.Status)
		require.NotNil(t, r.CompletedAt)
		assert.True(t, now.Equal(*r.CompletedAt))
	})

	t.Run("Re-completion Is Rejected And Keeps Timestamp", func(t *testing.T) {
		first := time.Now()
		r := PurchaseRecord{ID: "pr-1", Status: StatusPending}
		require.NoError(t, r.Complete(first))

		err := r.Complete(first.Add(time.Hour))
		assert.ErrorIs(t, err, ErrAlreadyCompleted)
		assert.Equal(t, StatusCompleted, r.Status)
		require.NotNil(t, r.CompletedAt)
		assert.True(t, first.Equal(*r.CompletedAt))
	})
}

func TestPurchaseRecord_Amount(t *testing.T) {
	r := PurchaseRecord{WholesalerPrice: 50, Quantity: 2}
	assert.InDelta(t, 100, r.Amount(), 1e-9)
}

func TestOutstandingAmount(t *testing.T) {
	records := []PurchaseRecord{
		{Status: StatusPending, WholesalerPrice: 50, Quantity: 2},
		{Status: StatusCompleted, WholesalerPrice: 99, Quantity: 3},
		{Status: StatusPending, WholesalerPrice: 10.5, Quantity: 1},
	}

	assert.InDelta(t, 110.5, OutstandingAmount(records), 1e-9)
	assert.Equal(t, 2, PendingCount(records))
}

func TestOutstandingAmount_Empty(t *testing.T) {
	assert.Zero(t, OutstandingAmount(nil))
	assert.Zero(t, PendingCount(nil))
}
