package main

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/multierr"

	"campaign_syncer/internal/breaker"
	"campaign_syncer/internal/config"
	"campaign_syncer/internal/metrics"
	"campaign_syncer/internal/platform/reddit"
	"campaign_syncer/internal/publisher"
	"campaign_syncer/internal/service"
	"campaign_syncer/internal/storage/postgres"
	"campaign_syncer/internal/storage/redis"
)

// app holds the wired service graph shared by every command.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	db        *sqlx.DB
	rdb       *goredis.Client
	publisher *publisher.RabbitMQ

	metrics      *metrics.Metrics
	breakers     *breaker.Registry
	orchestrator *service.Orchestrator
	detector     *service.ConflictDetector
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	logger := setupLogger("info")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, logger, fmt.Errorf("load config: %w", err)
	}

	return cfg, setupLogger(cfg.LogLevel), nil
}

func newApp() (*app, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, metrics: metrics.New()}

	a.db, err = sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database")

	a.rdb, err = redis.NewClient(redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	a.publisher, err = publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
		Events:     cfg.RabbitMQ.Events,
	}, logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	breakerCfg := cfg.Breaker
	breakerCfg.OnStateChange = func(key string, from, to breaker.State) {
		a.metrics.BreakerStateChanged(key, from, to)
		logger.Warn("circuit breaker state changed", "platform", key, "from", from, "to", to)
	}
	a.breakers, err = breaker.NewRegistry(breakerCfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create breaker registry: %w", err)
	}

	rc := cfg.Platforms.Reddit
	redditAdapter := reddit.NewAdapter(reddit.NewClient(reddit.Config{
		BaseURL:        rc.BaseURL,
		AccessToken:    rc.AccessToken,
		PageSize:       rc.PageSize,
		Timeout:        rc.Timeout,
		MaxAttempts:    rc.Retry.MaxAttempts,
		InitialBackoff: rc.Retry.InitialBackoff,
		MaxBackoff:     rc.Retry.MaxBackoff,
	}, logger), rc.PageSize, logger)

	store := postgres.NewCampaignStore(a.db, postgres.NewTransactionManager(a.db))
	locker := redis.NewLocker(a.rdb, cfg.Redis.LockTTL)
	adapters := []service.Adapter{redditAdapter}

	a.orchestrator = service.NewOrchestrator(store, adapters, a.breakers, locker, a.publisher, a.metrics, logger)
	a.detector = service.NewConflictDetector(
		store,
		[]service.Poller{redditAdapter},
		adapters,
		a.breakers,
		a.publisher,
		a.metrics,
		cfg.Conflict.Accounts,
		logger,
	)

	return a, nil
}

func (a *app) Close() error {
	var err error
	if a.publisher != nil {
		err = multierr.Append(err, a.publisher.Close())
	}
	if a.rdb != nil {
		err = multierr.Append(err, a.rdb.Close())
	}
	if a.db != nil {
		err = multierr.Append(err, a.db.Close())
	}
	if err != nil {
		a.logger.Error("failed to close resources", "error", err)
	}
	return err
}
