//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"campaign_syncer/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "sync",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishSetSynced() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-synced",
		RoutingKey: "sync",
		QueueName:  "test-queue-synced",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	event := domain.SyncEvent{
		ID:    "evt-1",
		Type:  domain.EventSetSynced,
		SetID: "set-1",
		Payload: &domain.SyncSetResult{
			RunID:   "run-1",
			SetID:   "set-1",
			Success: true,
			Synced:  3,
		},
		Timestamp: time.Now().UTC().Truncate(time.Millisecond),
	}

	err = pub.Publish(s.ctx, event)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal("evt-1", msg.MessageId)
	s.Equal("sync.campaign_set.synced", msg.RoutingKey)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received struct {
		ID      string           `json:"id"`
		Type    domain.EventType `json:"type"`
		SetID   string           `json:"setId"`
		Payload struct {
			RunID  string `json:"runId"`
			Synced int    `json:"synced"`
		} `json:"payload"`
		Timestamp time.Time `json:"timestamp"`
	}
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal(domain.EventSetSynced, received.Type)
	s.Equal("set-1", received.SetID)
	s.Equal("run-1", received.Payload.RunID)
	s.Equal(3, received.Payload.Synced)
	s.True(event.Timestamp.Equal(received.Timestamp))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishConflictDetected() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-conflict",
		RoutingKey: "sync",
		QueueName:  "test-queue-conflict",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	event := domain.SyncEvent{
		ID:         "evt-2",
		Type:       domain.EventConflictDetected,
		CampaignID: "c-1",
		Payload: domain.ConflictDetails{
			CampaignID:     "c-1",
			Field:          "status",
			LocalStatus:    domain.CampaignStatusActive,
			PlatformStatus: domain.CampaignStatusPaused,
		},
		Timestamp: time.Now().UTC(),
	}

	s.NoError(pub.Publish(s.ctx, event))

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal("sync.campaign.conflict_detected", msg.RoutingKey)
	s.Equal(string(domain.EventConflictDetected), msg.Type)

	var received struct {
		CampaignID string                 `json:"campaignId"`
		Payload    domain.ConflictDetails `json:"payload"`
	}
	s.NoError(json.Unmarshal(msg.Body, &received))
	s.Equal("c-1", received.CampaignID)
	s.Equal(domain.CampaignStatusPaused, received.Payload.PlatformStatus)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_BindsOnlyConfiguredEvents() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-filtered",
		RoutingKey: "sync",
		QueueName:  "test-queue-filtered",
		Events:     []domain.EventType{domain.EventConflictDetected},
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	s.NoError(pub.Publish(s.ctx, domain.SyncEvent{
		ID:        "evt-skip",
		Type:      domain.EventSetSynced,
		SetID:     "set-1",
		Timestamp: time.Now().UTC(),
	}))
	s.NoError(pub.Publish(s.ctx, domain.SyncEvent{
		ID:         "evt-keep",
		Type:       domain.EventConflictDetected,
		CampaignID: "c-1",
		Timestamp:  time.Now().UTC(),
	}))

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)
	s.Equal("sync.campaign.conflict_detected", msg.RoutingKey)
	s.Equal("evt-keep", msg.MessageId)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishOnlyDeclaresNoQueue() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-publish-only",
		RoutingKey: "sync",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	s.NoError(pub.Publish(s.ctx, domain.SyncEvent{
		ID:        "evt-3",
		Type:      domain.EventSetPaused,
		SetID:     "set-1",
		Timestamp: time.Now().UTC(),
	}))

	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()
	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	s.NoError(ch.ExchangeDeclarePassive(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil))
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
