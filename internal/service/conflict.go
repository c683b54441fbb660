package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"campaign_syncer/internal/breaker"
	"campaign_syncer/internal/domain"
	"campaign_syncer/internal/metrics"
)

// ConflictDetector reconciles local campaign status with what the platform
// reports, using lastSyncedAt as the baseline that decides which side owns
// a divergence.
type ConflictDetector struct {
	repo      Repository
	pollers   map[domain.Platform]Poller
	adapters  map[domain.Platform]Adapter
	breakers  *breaker.Registry
	publisher Publisher
	metrics   *metrics.Metrics
	accounts  []domain.AdAccount
	logger    *slog.Logger
	now       func() time.Time
}

func NewConflictDetector(
	repo Repository,
	pollers []Poller,
	adapters []Adapter,
	breakers *breaker.Registry,
	publisher Publisher,
	m *metrics.Metrics,
	accounts []domain.AdAccount,
	logger *slog.Logger,
) *ConflictDetector {
	byPlatform := make(map[domain.Platform]Poller, len(pollers))
	for _, p := range pollers {
		byPlatform[p.Platform()] = p
	}
	adapterByPlatform := make(map[domain.Platform]Adapter, len(adapters))
	for _, a := range adapters {
		adapterByPlatform[a.Platform()] = a
	}
	return &ConflictDetector{
		repo:      repo,
		pollers:   byPlatform,
		adapters:  adapterByPlatform,
		breakers:  breakers,
		publisher: publisher,
		metrics:   m,
		accounts:  accounts,
		logger:    logger.With("component", "conflict_detector"),
		now:       time.Now,
	}
}

// PollAll polls every configured account one after another.
func (d *ConflictDetector) PollAll(ctx context.Context) []*domain.PollResult {
	results := make([]*domain.PollResult, 0, len(d.accounts))
	for _, account := range d.accounts {
		if ctx.Err() != nil {
			d.logger.Warn("poll cancelled", "error", ctx.Err())
			break
		}
		results = append(results, d.Poll(ctx, account))
	}
	return results
}

func (d *ConflictDetector) Poll(ctx context.Context, account domain.AdAccount) *domain.PollResult {
	result := &domain.PollResult{
		AccountID:     account.ID,
		Platform:      account.Platform,
		ErrorMessages: []string{},
	}
	logger := d.logger.With("account_id", account.ID, "platform", account.Platform)

	defer d.metrics.ObservePoll(result)

	poller, ok := d.pollers[account.Platform]
	if !ok {
		result.AddError(fmt.Sprintf("no poller registered for platform %q", account.Platform))
		logger.Warn("no poller for platform")
		return result
	}

	cb := d.breakers.Get(string(account.Platform))
	if !cb.CanExecute() {
		result.AddError(fmt.Sprintf("circuit breaker for %s is open", account.Platform))
		logger.Warn("poll skipped, circuit open")
		return result
	}

	statuses, err := poller.ListCampaignStatuses(ctx, account.ID)
	recordCall(cb, err)
	if err != nil {
		result.AddError(fmt.Sprintf("list campaign statuses: %v", err))
		logger.Error("failed to list campaign statuses", "error", err)
		return result
	}

	campaigns, err := d.repo.GetSyncedCampaignsForAccount(ctx, account.ID)
	if err != nil {
		result.AddError(fmt.Sprintf("load local campaigns: %v", err))
		logger.Error("failed to load local campaigns", "error", err)
		return result
	}

	byPlatformID := make(map[string]domain.PlatformCampaignStatus, len(statuses))
	for _, s := range statuses {
		byPlatformID[s.PlatformID] = s
	}

	for i := range campaigns {
		c := &campaigns[i]
		if err := d.reconcile(ctx, c, byPlatformID, result); err != nil {
			result.AddError(fmt.Sprintf("campaign %s: %v", c.ID, err))
			logger.Error("failed to reconcile campaign", "campaign_id", c.ID, "error", err)
		}
	}

	logger.Info("conflict poll completed",
		"updated", result.Updated,
		"conflicts", result.Conflicts,
		"unchanged", result.Unchanged,
		"deleted", result.Deleted,
		"skipped", result.Skipped,
		"errors", result.Errors,
	)

	return result
}

func (d *ConflictDetector) reconcile(
	ctx context.Context,
	c *domain.Campaign,
	platformState map[string]domain.PlatformCampaignStatus,
	result *domain.PollResult,
) error {
	var platformID string
	if c.PlatformCampaignID != nil {
		platformID = *c.PlatformCampaignID
	}

	state, found := platformState[platformID]
	if !found || platformID == "" {
		if c.NeverSynced() {
			result.Skipped++
			return nil
		}
		if err := d.repo.MarkCampaignDeletedOnPlatform(ctx, c.ID); err != nil {
			return fmt.Errorf("mark deleted on platform: %w", err)
		}
		result.Deleted++
		d.publish(ctx, domain.SyncEvent{
			Type:       domain.EventDeletedOnPlatform,
			SetID:      c.CampaignSetID,
			CampaignID: c.ID,
			Payload:    map[string]string{"platformCampaignId": platformID},
		})
		return nil
	}

	if state.Status == "" {
		d.logger.Debug("platform status has no local mapping, campaign left alone",
			"campaign_id", c.ID,
			"platform_campaign_id", platformID,
		)
		result.Skipped++
		return nil
	}

	if state.Status == c.Status {
		result.Unchanged++
		return nil
	}

	if !c.NeverSynced() && c.LocalUpdatedAt.After(*c.LastSyncedAt) {
		details := domain.ConflictDetails{
			CampaignID:     c.ID,
			Field:          "status",
			LocalStatus:    c.Status,
			PlatformStatus: state.Status,
			DetectedAt:     d.now().UTC(),
		}
		if err := d.repo.MarkCampaignConflict(ctx, c.ID, details); err != nil {
			return fmt.Errorf("mark conflict: %w", err)
		}
		result.Conflicts++
		d.publish(ctx, domain.SyncEvent{
			Type:       domain.EventConflictDetected,
			SetID:      c.CampaignSetID,
			CampaignID: c.ID,
			Payload:    details,
		})
		return nil
	}

	if err := d.repo.UpdateCampaignFromPlatform(ctx, c.ID, state); err != nil {
		return fmt.Errorf("apply platform status: %w", err)
	}
	result.Updated++
	return nil
}

// ResolveConflict settles an open conflict. keep_local pushes the local
// status back to the platform first; accept_platform only touches the
// local record.
func (d *ConflictDetector) ResolveConflict(ctx context.Context, campaignID string, resolution domain.ConflictResolution) error {
	if resolution != domain.ResolutionKeepLocal && resolution != domain.ResolutionAcceptPlatform {
		return fmt.Errorf("unknown conflict resolution %q", resolution)
	}

	c, err := d.repo.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("get campaign %s: %w", campaignID, err)
	}
	if c.SyncStatus != domain.SyncStatusConflict || c.Conflict == nil {
		return fmt.Errorf("resolve campaign %s: %w", campaignID, domain.ErrNoConflict)
	}

	if resolution == domain.ResolutionKeepLocal {
		if err := d.pushLocalStatus(ctx, c); err != nil {
			return fmt.Errorf("push local status of campaign %s: %w", campaignID, err)
		}
	}

	if err := d.repo.ResolveCampaignConflict(ctx, campaignID, resolution); err != nil {
		return fmt.Errorf("resolve campaign %s: %w", campaignID, err)
	}

	d.logger.Info("conflict resolved", "campaign_id", campaignID, "resolution", resolution)
	d.publish(ctx, domain.SyncEvent{
		Type:       domain.EventConflictResolved,
		SetID:      c.CampaignSetID,
		CampaignID: campaignID,
		Payload:    map[string]string{"resolution": string(resolution)},
	})
	return nil
}

func (d *ConflictDetector) pushLocalStatus(ctx context.Context, c *domain.Campaign) error {
	if c.PlatformCampaignID == nil || *c.PlatformCampaignID == "" {
		return fmt.Errorf("campaign has no platform id")
	}
	adapter, ok := d.adapters[c.Platform]
	if !ok {
		return fmt.Errorf("no adapter registered for platform %q", c.Platform)
	}

	var call func(ctx context.Context, platformID string) error
	switch c.Status {
	case domain.CampaignStatusActive:
		call = adapter.ResumeCampaign
	case domain.CampaignStatusPaused:
		call = adapter.PauseCampaign
	default:
		return fmt.Errorf("local status %q cannot be pushed to the platform", c.Status)
	}

	cb := d.breakers.Get(string(c.Platform))
	if !cb.CanExecute() {
		return fmt.Errorf("circuit breaker for %s is open", c.Platform)
	}
	err := call(ctx, *c.PlatformCampaignID)
	recordCall(cb, err)
	return err
}

func (d *ConflictDetector) publish(ctx context.Context, event domain.SyncEvent) {
	if d.publisher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = d.now().UTC()
	if err := d.publisher.Publish(ctx, event); err != nil {
		d.metrics.PublishFailed()
		d.logger.Warn("failed to publish sync event", "type", event.Type, "error", err)
	}
}
