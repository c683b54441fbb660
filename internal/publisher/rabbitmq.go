package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/multierr"

	"campaign_syncer/internal/domain"
)

// RabbitMQ publishes sync events to a topic exchange. Each event is routed
// as "<routing key>.<event type>", e.g. "sync.campaign_set.synced".
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger

	mu sync.Mutex
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string

	// QueueName is the durable queue bound to the exchange. Empty means the
	// process only publishes and leaves queue topology to consumers.
	QueueName string

	// Events restricts the queue binding to these event types; empty binds
	// every event under RoutingKey.
	Events []domain.EventType
}

// bindingKeys returns the routing keys the queue is bound with.
func (c Config) bindingKeys() []string {
	if len(c.Events) == 0 {
		return []string{c.RoutingKey + ".#"}
	}
	keys := make([]string, 0, len(c.Events))
	for _, e := range c.Events {
		keys = append(keys, c.RoutingKey+"."+string(e))
	}
	return keys
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("open channel: %w", err), conn.Close())
	}

	if err := declareTopology(ch, cfg); err != nil {
		return nil, multierr.Combine(err, ch.Close(), conn.Close())
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"bindings", cfg.bindingKeys(),
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}
	if cfg.QueueName == "" {
		return nil
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", cfg.QueueName, err)
	}
	for _, key := range cfg.bindingKeys() {
		if err := ch.QueueBind(q.Name, key, cfg.Exchange, false, nil); err != nil {
			return fmt.Errorf("bind queue %s to %s: %w", q.Name, key, err)
		}
	}
	return nil
}

func (r *RabbitMQ) Publish(ctx context.Context, event domain.SyncEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey+"."+string(event.Type),
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    event.ID,
			Type:         string(event.Type),
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	r.logger.Debug("published sync event",
		"event_id", event.ID,
		"type", event.Type,
		"set_id", event.SetID,
		"campaign_id", event.CampaignID,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	var err error
	if r.channel != nil {
		err = multierr.Append(err, r.channel.Close())
	}
	if r.conn != nil {
		err = multierr.Append(err, r.conn.Close())
	}
	return err
}
