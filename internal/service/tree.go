package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"campaign_syncer/internal/breaker"
	"campaign_syncer/internal/domain"
	"campaign_syncer/internal/platform"
)

// persistError marks a repository write that failed after the platform
// accepted the call. It aborts the tree walk.
type persistError struct {
	entity domain.EntityType
	id     string
	err    error
}

func (e *persistError) Error() string {
	return fmt.Sprintf("persist %s %s platform id: %v", e.entity, e.id, e.err)
}

func (e *persistError) Unwrap() error {
	return e.err
}

type entityKey struct {
	typ domain.EntityType
	id  string
}

// entityOp describes one create-or-update step of the tree walk.
type entityOp struct {
	typ       domain.EntityType
	id        string
	current   **string
	allowNoop bool
	create    func(ctx context.Context) (string, error)
	update    func(ctx context.Context, platformID string) (string, error)
	persist   func(ctx context.Context, id, platformID string) error
}

// treeSync walks one campaign tree parent first, persisting every new
// platform ID before descending.
type treeSync struct {
	repo     Repository
	adapter  Adapter
	campaign *domain.Campaign
	logger   *slog.Logger

	result *domain.CampaignSyncResult
	seen   map[entityKey]bool

	failures         []string
	reachedPlatform  bool
	retryableFailure bool
	unexpected       bool
}

func newTreeSync(repo Repository, adapter Adapter, c *domain.Campaign, logger *slog.Logger) *treeSync {
	return &treeSync{
		repo:     repo,
		adapter:  adapter,
		campaign: c,
		logger:   logger,
		seen:     make(map[entityKey]bool),
		result: &domain.CampaignSyncResult{
			CampaignID: c.ID,
			Platform:   c.Platform,
			Entities:   []domain.EntityOutcome{},
		},
	}
}

func (t *treeSync) run(ctx context.Context) error {
	c := t.campaign
	if c.PlatformCampaignID != nil {
		t.result.PlatformCampaignID = *c.PlatformCampaignID
	}

	campaignPID, ok, err := t.upsert(ctx, entityOp{
		typ:     domain.EntityCampaign,
		id:      c.ID,
		current: &c.PlatformCampaignID,
		create: func(ctx context.Context) (string, error) {
			return t.adapter.CreateCampaign(ctx, c)
		},
		update: func(ctx context.Context, platformID string) (string, error) {
			return t.adapter.UpdateCampaign(ctx, c, platformID)
		},
		persist: t.repo.UpdateCampaignPlatformID,
	})
	if err != nil {
		return err
	}
	if !ok {
		for i := range c.AdGroups {
			t.skipAdGroup(&c.AdGroups[i])
		}
		t.finish()
		return nil
	}
	t.result.PlatformCampaignID = campaignPID

	for i := range c.AdGroups {
		if err := t.syncAdGroup(ctx, &c.AdGroups[i], campaignPID); err != nil {
			return err
		}
	}

	t.finish()
	return nil
}

func (t *treeSync) syncAdGroup(ctx context.Context, ag *domain.AdGroup, campaignPID string) error {
	adGroupPID, ok, err := t.upsert(ctx, entityOp{
		typ:     domain.EntityAdGroup,
		id:      ag.ID,
		current: &ag.PlatformAdGroupID,
		create: func(ctx context.Context) (string, error) {
			return t.adapter.CreateAdGroup(ctx, ag, campaignPID)
		},
		update: func(ctx context.Context, platformID string) (string, error) {
			return t.adapter.UpdateAdGroup(ctx, ag, platformID)
		},
		persist: t.repo.UpdateAdGroupPlatformID,
	})
	if err != nil {
		return err
	}
	if !ok {
		t.skipAdGroupChildren(ag)
		return nil
	}

	for i := range ag.Ads {
		ad := &ag.Ads[i]
		_, _, err := t.upsert(ctx, entityOp{
			typ:     domain.EntityAd,
			id:      ad.ID,
			current: &ad.PlatformAdID,
			create: func(ctx context.Context) (string, error) {
				return t.adapter.CreateAd(ctx, ad, adGroupPID)
			},
			update: func(ctx context.Context, platformID string) (string, error) {
				return t.adapter.UpdateAd(ctx, ad, platformID)
			},
			persist: t.repo.UpdateAdPlatformID,
		})
		if err != nil {
			return err
		}
	}

	for i := range ag.Keywords {
		kw := &ag.Keywords[i]
		_, _, err := t.upsert(ctx, entityOp{
			typ:       domain.EntityKeyword,
			id:        kw.ID,
			current:   &kw.PlatformKeywordID,
			allowNoop: true,
			create: func(ctx context.Context) (string, error) {
				return t.adapter.CreateKeyword(ctx, kw, adGroupPID)
			},
			update: func(ctx context.Context, platformID string) (string, error) {
				return t.adapter.UpdateKeyword(ctx, kw, platformID)
			},
			persist: t.repo.UpdateKeywordPlatformID,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// upsert creates or updates one entity. ok is false when the entity failed,
// so its children must not be synced; err is set only when persisting a
// platform ID failed, which stops the walk.
func (t *treeSync) upsert(ctx context.Context, op entityOp) (platformID string, ok bool, err error) {
	existing := ""
	if *op.current != nil {
		existing = **op.current
	}

	var returned error
	action := domain.ActionCreated
	if existing == "" {
		platformID, returned = op.create(ctx)
	} else {
		action = domain.ActionUpdated
		platformID, returned = op.update(ctx, existing)
	}

	if returned != nil {
		perr, structured := platform.AsError(returned)
		if !structured {
			t.exception(op, existing, returned)
			return "", false, nil
		}
		t.fail(op, existing, perr)
		return "", false, nil
	}
	t.reachedPlatform = true

	if action == domain.ActionCreated {
		if platformID == "" {
			if !op.allowNoop {
				t.exception(op, "", fmt.Errorf("platform returned an empty id"))
				return "", false, nil
			}
			t.outcome(op, domain.ActionNoop, "", "")
			return "", true, nil
		}
		if err := op.persist(ctx, op.id, platformID); err != nil {
			t.outcome(op, domain.ActionFailed, platformID, err.Error())
			return "", false, &persistError{entity: op.typ, id: op.id, err: err}
		}
		*op.current = &platformID
		t.outcome(op, domain.ActionCreated, platformID, "")
		return platformID, true, nil
	}

	if platformID == "" || platformID == existing {
		t.outcome(op, domain.ActionUpdated, existing, "")
		return existing, true, nil
	}

	if err := op.persist(ctx, op.id, platformID); err != nil {
		t.outcome(op, domain.ActionFailed, platformID, err.Error())
		return "", false, &persistError{entity: op.typ, id: op.id, err: err}
	}
	t.logger.Info("platform reassigned entity id",
		"entity", op.typ,
		"id", op.id,
		"old_platform_id", existing,
		"new_platform_id", platformID,
	)
	*op.current = &platformID
	t.outcome(op, domain.ActionUpdated, platformID, "")
	return platformID, true, nil
}

func (t *treeSync) fail(op entityOp, platformID string, perr *platform.Error) {
	if !perr.Validation() {
		t.reachedPlatform = true
	}
	if perr.Retryable {
		t.retryableFailure = true
	}

	if len(t.failures) == 0 {
		t.result.Code = string(perr.Code)
		t.result.Retryable = perr.Retryable
		t.result.RetryAfter = perr.RetryAfter
	}
	t.failures = append(t.failures, fmt.Sprintf("%s %s failed: %s", op.typ, op.id, perr.Message))
	t.outcome(op, domain.ActionFailed, platformID, perr.Message)
}

// exception records an unexpected adapter error against one entity. The
// campaign result becomes SYNC_EXCEPTION but siblings keep syncing.
func (t *treeSync) exception(op entityOp, platformID string, err error) {
	t.unexpected = true
	t.logger.Error("unexpected adapter error", "entity", op.typ, "id", op.id, "error", err)
	t.failures = append(t.failures, fmt.Sprintf("%s %s: %v", op.typ, op.id, err))
	t.outcome(op, domain.ActionFailed, platformID, err.Error())
}

func (t *treeSync) skipAdGroup(ag *domain.AdGroup) {
	t.skip(domain.EntityAdGroup, ag.ID, domain.CodeParentNotSynced)
	t.skipAdGroupChildren(ag)
}

func (t *treeSync) skipAdGroupChildren(ag *domain.AdGroup) {
	for _, ad := range ag.Ads {
		t.skip(domain.EntityAd, ad.ID, domain.CodeParentNotSynced)
	}
	for _, kw := range ag.Keywords {
		t.skip(domain.EntityKeyword, kw.ID, domain.CodeParentNotSynced)
	}
}

// abort reports every entity the walk never reached as skipped with reason.
func (t *treeSync) abort(reason string) {
	c := t.campaign
	t.skipUnseen(domain.EntityCampaign, c.ID, reason)
	for _, ag := range c.AdGroups {
		t.skipUnseen(domain.EntityAdGroup, ag.ID, reason)
		for _, ad := range ag.Ads {
			t.skipUnseen(domain.EntityAd, ad.ID, reason)
		}
		for _, kw := range ag.Keywords {
			t.skipUnseen(domain.EntityKeyword, kw.ID, reason)
		}
	}
}

func (t *treeSync) skipUnseen(typ domain.EntityType, id, reason string) {
	if t.seen[entityKey{typ: typ, id: id}] {
		return
	}
	t.skip(typ, id, reason)
}

func (t *treeSync) skip(typ domain.EntityType, id, reason string) {
	t.record(domain.EntityOutcome{Type: typ, ID: id, Action: domain.ActionSkipped, Error: reason})
}

func (t *treeSync) record(o domain.EntityOutcome) {
	t.seen[entityKey{typ: o.Type, id: o.ID}] = true
	t.result.Entities = append(t.result.Entities, o)
}

func (t *treeSync) outcome(op entityOp, action domain.EntityAction, platformID, message string) {
	t.logger.Debug("entity synced",
		"entity", op.typ,
		"id", op.id,
		"action", action,
		"platform_id", platformID,
	)
	t.record(domain.EntityOutcome{
		Type:       op.typ,
		ID:         op.id,
		Action:     action,
		PlatformID: platformID,
		Error:      message,
	})
}

func (t *treeSync) finish() {
	if len(t.failures) == 0 {
		t.result.Success = true
		return
	}
	t.result.Error = strings.Join(t.failures, "; ")
	if t.unexpected {
		t.result.Code = domain.CodeSyncException
		t.result.Retryable = false
		t.result.RetryAfter = 0
	}
}

// report feeds the walk's outcome into the platform's breaker.
func (t *treeSync) report(cb *breaker.Breaker) {
	switch {
	case t.unexpected || t.retryableFailure:
		cb.RecordFailure()
	case t.reachedPlatform:
		cb.RecordSuccess()
	default:
		cb.Release()
	}
}

// recordCall feeds a single adapter call into the breaker.
func recordCall(cb *breaker.Breaker, err error) {
	if err == nil {
		cb.RecordSuccess()
		return
	}
	perr, ok := platform.AsError(err)
	switch {
	case !ok || perr.Retryable:
		cb.RecordFailure()
	case perr.Validation():
		cb.Release()
	default:
		cb.RecordSuccess()
	}
}

func platformSyncError(c *domain.Campaign, err error) domain.SyncError {
	perr := platform.Classify(err)
	return domain.SyncError{
		CampaignID: c.ID,
		Platform:   c.Platform,
		Code:       string(perr.Code),
		Message:    perr.Message,
		Retryable:  perr.Retryable,
		RetryAfter: perr.RetryAfter,
	}
}
