package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign_syncer/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("SYNCER_TEST_DB_PASSWORD", "s3cret")

	path := writeConfig(t, `
database:
  host: db
  port: 5433
  user: syncer
  password: ${SYNCER_TEST_DB_PASSWORD}
  dbname: campaigns
breaker:
  failure_threshold: 3
  reset_timeout: 30s
conflict:
  interval: 1m
  accounts:
    - id: acct-1
      platform: reddit
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "host=db port=5433 user=syncer password=s3cret dbname=campaigns sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "postgres://syncer:s3cret@db:5433/campaigns?sslmode=disable", cfg.Database.URL())

	assert.Equal(t, 3, cfg.Breaker.FailureThreshold)
	assert.Equal(t, 30*time.Second, cfg.Breaker.ResetTimeout)
	assert.Equal(t, 1, cfg.Breaker.HalfOpenMaxAttempts)

	assert.Equal(t, time.Minute, cfg.Conflict.Interval)
	assert.Equal(t, []domain.AdAccount{{ID: "acct-1", Platform: domain.PlatformReddit}}, cfg.Conflict.Accounts)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 10*time.Minute, cfg.Redis.LockTTL)
	assert.Equal(t, "sync", cfg.RabbitMQ.RoutingKey)
	assert.Equal(t, "campaign_sync_events", cfg.RabbitMQ.QueueName)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
	assert.Equal(t, 5, cfg.Breaker.FailureThreshold)
	assert.Equal(t, 60*time.Second, cfg.Breaker.ResetTimeout)
	assert.Equal(t, 3, cfg.Platforms.Reddit.Retry.MaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Conflict.Interval)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_PublishOnly(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
rabbitmq:
  queue_name: ignored
  publish_only: true
  events:
    - campaign_set.synced
    - campaign.conflict_detected
`))
	require.NoError(t, err)

	assert.Empty(t, cfg.RabbitMQ.QueueName)
	assert.Equal(t, []domain.EventType{domain.EventSetSynced, domain.EventConflictDetected}, cfg.RabbitMQ.Events)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative threshold", "breaker:\n  failure_threshold: -1\n"},
		{"account without id", "conflict:\n  accounts:\n    - platform: reddit\n"},
		{"unknown platform", "conflict:\n  accounts:\n    - id: a\n      platform: myspace\n"},
		{"malformed yaml", "database: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
