package messaging

import (
	"context"
	"time"
)

// EventType names a transaction lifecycle event
type EventType string

// Event types
const (
	EventTransactionCreated EventType = "transaction.created"
	EventTransactionDeleted EventType = "transaction.deleted"
)

// TransactionEvent is the payload published when a transaction is created or deleted
type TransactionEvent struct {
	EventID       string    `json:"eventId"`
	Type          EventType `json:"type"`
	TransactionID uint64    `json:"transactionId"`
	Kind          string    `json:"kind,omitempty"`
	Amount        float64   `json:"amount,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// EventPublisher delivers transaction events to interested consumers
type EventPublisher interface {
	// Publish sends the event; implementations must not block past ctx
	Publish(ctx context.Context, event TransactionEvent) error
	// Close releases the underlying connection
	Close() error
}
