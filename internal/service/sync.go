package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"campaign_syncer/internal/breaker"
	"campaign_syncer/internal/domain"
	"campaign_syncer/internal/metrics"
)

// Orchestrator pushes local campaign trees to ad platforms. Campaigns of one
// set are synced one after another; a failing campaign never stops the batch.
type Orchestrator struct {
	repo      Repository
	adapters  map[domain.Platform]Adapter
	breakers  *breaker.Registry
	locker    Locker
	publisher Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewOrchestrator(
	repo Repository,
	adapters []Adapter,
	breakers *breaker.Registry,
	locker Locker,
	publisher Publisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Orchestrator {
	byPlatform := make(map[domain.Platform]Adapter, len(adapters))
	for _, a := range adapters {
		byPlatform[a.Platform()] = a
	}
	return &Orchestrator{
		repo:      repo,
		adapters:  byPlatform,
		breakers:  breakers,
		locker:    locker,
		publisher: publisher,
		metrics:   m,
		logger:    logger.With("component", "orchestrator"),
	}
}

func (o *Orchestrator) SyncCampaignSet(ctx context.Context, setID string) *domain.SyncSetResult {
	startTime := time.Now()
	result := &domain.SyncSetResult{
		RunID:     uuid.NewString(),
		SetID:     setID,
		Errors:    []domain.SyncError{},
		Campaigns: []domain.CampaignSyncResult{},
	}
	logger := o.logger.With("run_id", result.RunID, "set_id", setID)

	set, err := o.repo.GetCampaignSetWithRelations(ctx, setID)
	if errors.Is(err, domain.ErrNotFound) {
		result.Errors = append(result.Errors, domain.SyncError{
			Code:    domain.CodeCampaignSetNotFound,
			Message: fmt.Sprintf("campaign set %s not found", setID),
		})
		logger.Warn("campaign set not found")
		return result
	}
	if err != nil {
		result.Errors = append(result.Errors, domain.SyncError{
			Code:    domain.CodeLoadFailed,
			Message: fmt.Sprintf("load campaign set: %v", err),
		})
		logger.Error("failed to load campaign set", "error", err)
		return result
	}

	logger.Info("starting campaign set sync", "campaigns", len(set.Campaigns))

	if err := o.repo.UpdateCampaignSetStatus(ctx, setID, domain.SetStatusSyncing, domain.SyncStatusSyncing); err != nil {
		logger.Error("failed to mark set syncing", "error", err)
	}

	for i := range set.Campaigns {
		campaign := &set.Campaigns[i]
		cr := o.syncOne(ctx, campaign, logger)
		result.Campaigns = append(result.Campaigns, cr)

		switch {
		case cr.Success:
			result.Synced++
		case cr.Skipped:
			result.Skipped++
			if cr.Code != domain.CodeCampaignDraft {
				result.Errors = append(result.Errors, syncErrorFrom(campaign, &cr))
			}
		default:
			result.Failed++
			result.Errors = append(result.Errors, syncErrorFrom(campaign, &cr))
		}
	}

	result.Success = result.Failed == 0
	status, syncStatus := domain.SetStatusActive, domain.SyncStatusSynced
	if !result.Success {
		status, syncStatus = domain.SetStatusError, domain.SyncStatusFailed
	}
	if err := o.repo.UpdateCampaignSetStatus(ctx, setID, status, syncStatus); err != nil {
		logger.Error("failed to update set status", "status", status, "error", err)
	}

	result.Duration = time.Since(startTime)
	o.metrics.ObserveSetSync(result, result.Duration)
	o.publish(ctx, domain.SyncEvent{Type: domain.EventSetSynced, SetID: setID, Payload: result})

	logger.Info("campaign set sync completed",
		"synced", result.Synced,
		"failed", result.Failed,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
		"duration", result.Duration,
	)

	return result
}

// SyncCampaign syncs one campaign outside of its set, typically to retry it.
func (o *Orchestrator) SyncCampaign(ctx context.Context, campaignID string) *domain.CampaignSyncResult {
	logger := o.logger.With("run_id", uuid.NewString(), "campaign_id", campaignID)

	campaign, err := o.repo.GetCampaignByID(ctx, campaignID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.CampaignSyncResult{
			CampaignID: campaignID,
			Code:       domain.CodeCampaignNotFound,
			Error:      fmt.Sprintf("campaign %s not found", campaignID),
		}
	}
	if err != nil {
		logger.Error("failed to load campaign", "error", err)
		return &domain.CampaignSyncResult{
			CampaignID: campaignID,
			Code:       domain.CodeLoadFailed,
			Error:      fmt.Sprintf("load campaign: %v", err),
		}
	}

	cr := o.syncOne(ctx, campaign, logger)
	o.publish(ctx, domain.SyncEvent{
		Type:       domain.EventCampaignSynced,
		SetID:      campaign.CampaignSetID,
		CampaignID: campaignID,
		Payload:    cr,
	})
	return &cr
}

// syncOne applies the skip rules, takes the campaign lock, runs the tree
// sync and records the campaign's sync status.
func (o *Orchestrator) syncOne(ctx context.Context, c *domain.Campaign, logger *slog.Logger) domain.CampaignSyncResult {
	logger = logger.With("campaign_id", c.ID, "platform", c.Platform)

	cr := o.syncGuarded(ctx, c, logger)
	o.metrics.ObserveCampaignSync(c.Platform, &cr)

	if cr.Skipped {
		logger.Info("campaign skipped", "code", cr.Code, "reason", cr.Error)
		return cr
	}

	if cr.Success {
		if err := o.repo.UpdateCampaignSyncStatus(ctx, c.ID, domain.SyncStatusSynced, ""); err != nil {
			logger.Error("failed to mark campaign synced", "error", err)
		}
		logger.Info("campaign synced", "platform_campaign_id", cr.PlatformCampaignID)
		return cr
	}

	if err := o.repo.UpdateCampaignSyncStatus(ctx, c.ID, domain.SyncStatusFailed, cr.Error); err != nil {
		logger.Error("failed to mark campaign failed", "error", err)
	}
	logger.Warn("campaign sync failed", "code", cr.Code, "error", cr.Error)
	return cr
}

func (o *Orchestrator) syncGuarded(ctx context.Context, c *domain.Campaign, logger *slog.Logger) domain.CampaignSyncResult {
	if c.Status == domain.CampaignStatusDraft {
		return domain.CampaignSyncResult{
			CampaignID: c.ID,
			Platform:   c.Platform,
			Skipped:    true,
			Code:       domain.CodeCampaignDraft,
			Error:      "campaign is a draft",
		}
	}

	adapter, ok := o.adapters[c.Platform]
	if !ok {
		return domain.CampaignSyncResult{
			CampaignID: c.ID,
			Platform:   c.Platform,
			Skipped:    true,
			Code:       domain.CodeNoAdapter,
			Error:      fmt.Sprintf("no adapter registered for platform %q", c.Platform),
		}
	}

	if o.locker != nil {
		key := "campaign-sync:" + c.ID
		acquired, err := o.locker.TryLock(ctx, key)
		if err != nil {
			return exceptionResult(c, fmt.Errorf("acquire sync lock: %w", err))
		}
		if !acquired {
			return domain.CampaignSyncResult{
				CampaignID: c.ID,
				Platform:   c.Platform,
				Skipped:    true,
				Code:       domain.CodeSyncInProgress,
				Error:      "another sync of this campaign is in progress",
				Retryable:  true,
			}
		}
		defer func() {
			if err := o.locker.Unlock(ctx, key); err != nil {
				logger.Warn("failed to release sync lock", "error", err)
			}
		}()
	}

	return o.runTree(ctx, c, adapter, logger)
}

// runTree walks the campaign tree behind the platform's circuit breaker and
// turns panics and persistence failures into SYNC_EXCEPTION results.
func (o *Orchestrator) runTree(ctx context.Context, c *domain.Campaign, adapter Adapter, logger *slog.Logger) (cr domain.CampaignSyncResult) {
	cb := o.breakers.Get(string(c.Platform))
	if !cb.CanExecute() {
		return domain.CampaignSyncResult{
			CampaignID: c.ID,
			Platform:   c.Platform,
			Code:       domain.CodeCircuitOpen,
			Error:      fmt.Sprintf("circuit breaker for %s is open", c.Platform),
			Retryable:  true,
		}
	}

	t := newTreeSync(o.repo, adapter, c, logger)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic during campaign sync", "panic", r)
			t.unexpected = true
			t.abort(domain.CodeSyncAborted)
			cr = exceptionResult(c, fmt.Errorf("panic: %v", r))
			cr.Entities = t.result.Entities
			cr.PlatformCampaignID = t.result.PlatformCampaignID
		}
		t.report(cb)
	}()

	if err := t.run(ctx); err != nil {
		logger.Error("campaign sync aborted", "error", err)
		t.abort(domain.CodeSyncAborted)
		res := exceptionResult(c, err)
		res.Entities = t.result.Entities
		res.PlatformCampaignID = t.result.PlatformCampaignID
		return res
	}
	return *t.result
}

func (o *Orchestrator) PauseCampaignSet(ctx context.Context, setID string) *domain.PauseResult {
	return o.setCampaignsState(ctx, setID, true)
}

func (o *Orchestrator) ResumeCampaignSet(ctx context.Context, setID string) *domain.PauseResult {
	return o.setCampaignsState(ctx, setID, false)
}

// setCampaignsState pauses or resumes every campaign that exists on its
// platform. Campaigns that were never created there are left alone.
func (o *Orchestrator) setCampaignsState(ctx context.Context, setID string, pause bool) *domain.PauseResult {
	action, event := "resume", domain.EventSetResumed
	target, setStatus := domain.CampaignStatusActive, domain.SetStatusActive
	if pause {
		action, event = "pause", domain.EventSetPaused
		target, setStatus = domain.CampaignStatusPaused, domain.SetStatusPaused
	}

	result := &domain.PauseResult{SetID: setID, Errors: []domain.SyncError{}}
	logger := o.logger.With("set_id", setID, "action", action)

	set, err := o.repo.GetCampaignSetWithRelations(ctx, setID)
	if errors.Is(err, domain.ErrNotFound) {
		result.Errors = append(result.Errors, domain.SyncError{
			Code:    domain.CodeCampaignSetNotFound,
			Message: fmt.Sprintf("campaign set %s not found", setID),
		})
		return result
	}
	if err != nil {
		result.Errors = append(result.Errors, domain.SyncError{
			Code:    domain.CodeLoadFailed,
			Message: fmt.Sprintf("load campaign set: %v", err),
		})
		logger.Error("failed to load campaign set", "error", err)
		return result
	}

	done := 0
	for i := range set.Campaigns {
		c := &set.Campaigns[i]
		if c.PlatformCampaignID == nil || *c.PlatformCampaignID == "" {
			continue
		}

		if serr := o.toggleCampaign(ctx, c, pause); serr != nil {
			result.Failed++
			result.Errors = append(result.Errors, *serr)
			o.metrics.ObservePauseResume(action, false)
			logger.Warn("campaign "+action+" failed", "campaign_id", c.ID, "code", serr.Code, "error", serr.Message)
			continue
		}

		done++
		o.metrics.ObservePauseResume(action, true)
		if err := o.repo.UpdateCampaignStatus(ctx, c.ID, target); err != nil {
			logger.Error("failed to update campaign status", "campaign_id", c.ID, "error", err)
		}
	}

	if pause {
		result.Paused = done
	} else {
		result.Resumed = done
	}

	if result.Failed == 0 && done > 0 {
		if err := o.repo.UpdateCampaignSetStatus(ctx, setID, setStatus, set.SyncStatus); err != nil {
			logger.Error("failed to update set status", "error", err)
		}
	}

	o.publish(ctx, domain.SyncEvent{Type: event, SetID: setID, Payload: result})
	logger.Info("campaign set "+action+" completed", "done", done, "failed", result.Failed)

	return result
}

func (o *Orchestrator) toggleCampaign(ctx context.Context, c *domain.Campaign, pause bool) *domain.SyncError {
	adapter, ok := o.adapters[c.Platform]
	if !ok {
		return &domain.SyncError{
			CampaignID: c.ID,
			Platform:   c.Platform,
			Code:       domain.CodeNoAdapter,
			Message:    fmt.Sprintf("no adapter registered for platform %q", c.Platform),
		}
	}

	cb := o.breakers.Get(string(c.Platform))
	if !cb.CanExecute() {
		return &domain.SyncError{
			CampaignID: c.ID,
			Platform:   c.Platform,
			Code:       domain.CodeCircuitOpen,
			Message:    fmt.Sprintf("circuit breaker for %s is open", c.Platform),
			Retryable:  true,
		}
	}

	var err error
	if pause {
		err = adapter.PauseCampaign(ctx, *c.PlatformCampaignID)
	} else {
		err = adapter.ResumeCampaign(ctx, *c.PlatformCampaignID)
	}
	recordCall(cb, err)
	if err == nil {
		return nil
	}

	serr := platformSyncError(c, err)
	return &serr
}

func (o *Orchestrator) publish(ctx context.Context, event domain.SyncEvent) {
	if o.publisher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	if err := o.publisher.Publish(ctx, event); err != nil {
		o.metrics.PublishFailed()
		o.logger.Warn("failed to publish sync event", "type", event.Type, "error", err)
	}
}

func exceptionResult(c *domain.Campaign, err error) domain.CampaignSyncResult {
	return domain.CampaignSyncResult{
		CampaignID: c.ID,
		Platform:   c.Platform,
		Code:       domain.CodeSyncException,
		Error:      err.Error(),
	}
}

func syncErrorFrom(c *domain.Campaign, cr *domain.CampaignSyncResult) domain.SyncError {
	return domain.SyncError{
		CampaignID: c.ID,
		Platform:   c.Platform,
		Code:       cr.Code,
		Message:    cr.Error,
		Retryable:  cr.Retryable,
		RetryAfter: cr.RetryAfter,
	}
}
