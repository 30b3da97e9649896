package events

import "context"

// Routing keys for settlement events published to the topic exchange.
const (
	OrderCreated      = "order.created"
	PurchaseCompleted = "purchase.completed"
	WithdrawalCreated = "withdrawal.created"
)

// Publisher defines the port for emitting settlement events.
// Publishing is best effort: callers log failures and continue, an
// undelivered event never fails the originating operation.
type Publisher interface {
	// Publish sends data under the given routing key.
	Publish(ctx context.Context, routingKey string, data any) error

	// Close releases the underlying connection.
	Close() error
}
