package scheduler

import (
	"context"
	"log/slog"
	"time"

	"campaign_syncer/internal/domain"
)

// Detector is the periodic job: one pass over every configured ad account.
type Detector interface {
	PollAll(ctx context.Context) []*domain.PollResult
}

type Scheduler struct {
	detector   Detector
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(detector Detector, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		detector:   detector,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger.With("component", "scheduler"),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runPoll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runPoll(ctx)
		}
	}
}

func (s *Scheduler) runPoll(ctx context.Context) {
	pollCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	startTime := time.Now()
	results := s.detector.PollAll(pollCtx)

	var updated, conflicts, deleted, errs int
	for _, r := range results {
		updated += r.Updated
		conflicts += r.Conflicts
		deleted += r.Deleted
		errs += r.Errors
	}

	logger := s.logger.With(
		"accounts", len(results),
		"updated", updated,
		"conflicts", conflicts,
		"deleted", deleted,
		"errors", errs,
		"duration", time.Since(startTime),
	)
	if errs > 0 {
		logger.Warn("conflict poll finished with errors")
		return
	}
	logger.Info("conflict poll finished")
}
