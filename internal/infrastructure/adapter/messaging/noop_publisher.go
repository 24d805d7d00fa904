package messaging

import (
	"context"

	msgport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/messaging"
)

// NoopPublisher drops every event
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher for deployments without a broker
func NewNoopPublisher() msgport.EventPublisher {
	return NoopPublisher{}
}

func (NoopPublisher) Publish(context.Context, msgport.TransactionEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
