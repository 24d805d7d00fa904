package transaction

import (
	"context"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/messaging"
	"github.com/google/uuid"
)

// EventNotifier turns completed writes into lifecycle events.
// Publishing is best effort: failures are logged and never reach the caller.
type EventNotifier struct {
	publisher    messaging.EventPublisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewEventNotifier creates a new EventNotifier; a nil publisher disables events
func NewEventNotifier(
	publisher messaging.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *EventNotifier {
	return &EventNotifier{
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Created announces a stored transaction
func (n *EventNotifier) Created(ctx context.Context, tx *entity.Transaction) {
	n.publish(ctx, messaging.TransactionEvent{
		Type:          messaging.EventTransactionCreated,
		TransactionID: tx.ID,
		Kind:          string(tx.Type),
		Amount:        tx.Amount,
	})
}

// Deleted announces a removed transaction
func (n *EventNotifier) Deleted(ctx context.Context, id uint64) {
	n.publish(ctx, messaging.TransactionEvent{
		Type:          messaging.EventTransactionDeleted,
		TransactionID: id,
	})
}

func (n *EventNotifier) publish(ctx context.Context, event messaging.TransactionEvent) {
	if n.publisher == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.OccurredAt = n.timeProvider.Now().UTC()

	if err := n.publisher.Publish(ctx, event); err != nil {
		n.logger.Warn("Failed to publish transaction event", map[string]any{
			"event_type":     event.Type,
			"transaction_id": event.TransactionID,
			"error":          err.Error(),
		})
	}
}
