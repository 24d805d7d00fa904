package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	msgport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/messaging"
	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultPublishTimeout = 5 * time.Second

// AMQPConfig configures the RabbitMQ event publisher
type AMQPConfig struct {
	URL              string
	Exchange         string
	RoutingKeyPrefix string
	PublishTimeout   time.Duration
}

// Validate checks if the configuration is usable
func (c AMQPConfig) Validate() error {
	if c.URL == "" {
		return errors.New("events url is required")
	}
	if c.Exchange == "" {
		return errors.New("events exchange is required")
	}
	return nil
}

// channel is the subset of *amqp.Channel the publisher uses
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes transaction events as JSON to a direct exchange
type AMQPPublisher struct {
	conn         *amqp.Connection
	channel      channel
	config       AMQPConfig
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	mu           sync.Mutex
}

var _ msgport.EventPublisher = (*AMQPPublisher)(nil)

// NewAMQPPublisher dials the broker and declares the exchange
func NewAMQPPublisher(config AMQPConfig, logger coreport.Logger, timeProvider coreport.TimeProvider) (*AMQPPublisher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	conn, err := amqp.Dial(config.URL)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	publisher, err := newAMQPPublisher(ch, config, logger, timeProvider)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	publisher.conn = conn

	logger.Info("Connected to event broker", map[string]any{
		"exchange": config.Exchange,
	})
	return publisher, nil
}

func newAMQPPublisher(ch channel, config AMQPConfig, logger coreport.Logger, timeProvider coreport.TimeProvider) (*AMQPPublisher, error) {
	if config.PublishTimeout <= 0 {
		config.PublishTimeout = defaultPublishTimeout
	}

	err := ch.ExchangeDeclare(
		config.Exchange, // name
		"direct",        // type
		true,            // durable
		false,           // auto-deleted
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{
		channel:      ch,
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}, nil
}

// RoutingKey returns the routing key an event of the given type is published under
func (p *AMQPPublisher) RoutingKey(eventType msgport.EventType) string {
	return p.config.RoutingKeyPrefix + string(eventType)
}

// Publish sends the event, giving up after the publish timeout
func (p *AMQPPublisher) Publish(ctx context.Context, event msgport.TransactionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := p.timeProvider.WithTimeout(ctx, p.config.PublishTimeout)
	defer cancel()

	routingKey := p.RoutingKey(event.Type)

	p.mu.Lock()
	err = p.channel.PublishWithContext(
		ctx,
		p.config.Exchange, // exchange
		routingKey,        // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.EventID,
			Timestamp:    event.OccurredAt,
			Type:         string(event.Type),
			Body:         body,
		},
	)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	p.logger.Debug("Published transaction event", map[string]any{
		"event_id":       event.EventID,
		"event_type":     event.Type,
		"transaction_id": event.TransactionID,
		"routing_key":    routingKey,
	})
	return nil
}

// Close closes the channel and the connection
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close channel: %w", err))
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}
