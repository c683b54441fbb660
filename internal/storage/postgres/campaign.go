package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"campaign_syncer/internal/domain"
)

const campaignColumns = `
	id, campaign_set_id, ad_account_id, name, platform, objective, budget,
	budget_type, start_time, end_time, status, sync_status,
	platform_campaign_id, last_synced_at, local_updated_at, sync_error,
	conflict_details, deleted_on_platform`

// CampaignStore persists campaign sets and their trees.
type CampaignStore struct {
	db *sqlx.DB
	tx *TransactionManager
}

func NewCampaignStore(db *sqlx.DB, tx *TransactionManager) *CampaignStore {
	return &CampaignStore{db: db, tx: tx}
}

func (s *CampaignStore) GetCampaignSetWithRelations(ctx context.Context, setID string) (*domain.CampaignSet, error) {
	var set domain.CampaignSet

	err := s.tx.WithSnapshot(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, s.db)

		err := sqlx.GetContext(ctx, exec, &set,
			`SELECT id, team_id, name, status, sync_status FROM campaign_sets WHERE id = $1`, setID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get campaign set: %w", err)
		}

		var campaigns []domain.Campaign
		err = sqlx.SelectContext(ctx, exec, &campaigns,
			`SELECT `+campaignColumns+` FROM campaigns WHERE campaign_set_id = $1 ORDER BY position, id`, setID)
		if err != nil {
			return fmt.Errorf("select campaigns: %w", err)
		}

		if err := s.loadAdGroups(ctx, exec, campaigns); err != nil {
			return err
		}
		set.Campaigns = campaigns
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &set, nil
}

func (s *CampaignStore) GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	var c domain.Campaign

	err := s.tx.WithSnapshot(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, s.db)

		err := sqlx.GetContext(ctx, exec, &c, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, campaignID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get campaign: %w", err)
		}

		campaigns := []domain.Campaign{c}
		if err := s.loadAdGroups(ctx, exec, campaigns); err != nil {
			return err
		}
		c = campaigns[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// GetSyncedCampaignsForAccount returns the campaigns of an account that
// exist on the platform, without their children.
func (s *CampaignStore) GetSyncedCampaignsForAccount(ctx context.Context, accountID string) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	err := s.db.SelectContext(ctx, &campaigns, `
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE ad_account_id = $1
			AND platform_campaign_id IS NOT NULL
			AND NOT deleted_on_platform
		ORDER BY id`, accountID)
	if err != nil {
		return nil, fmt.Errorf("select campaigns for account: %w", err)
	}
	return campaigns, nil
}

func (s *CampaignStore) loadAdGroups(ctx context.Context, exec sqlx.ExtContext, campaigns []domain.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	campaignIDs := make([]string, len(campaigns))
	for i, c := range campaigns {
		campaignIDs[i] = c.ID
	}

	var adGroups []domain.AdGroup
	err := sqlx.SelectContext(ctx, exec, &adGroups, `
		SELECT id, campaign_id, name, platform_ad_group_id, settings
		FROM ad_groups
		WHERE campaign_id = ANY($1)
		ORDER BY position, id`, pq.Array(campaignIDs))
	if err != nil {
		return fmt.Errorf("select ad groups: %w", err)
	}
	if len(adGroups) == 0 {
		return nil
	}

	adGroupIDs := make([]string, len(adGroups))
	for i, ag := range adGroups {
		adGroupIDs[i] = ag.ID
	}

	var ads []domain.Ad
	err = sqlx.SelectContext(ctx, exec, &ads, `
		SELECT id, ad_group_id, platform_ad_id, headline, description,
			display_url, final_url, call_to_action, status
		FROM ads
		WHERE ad_group_id = ANY($1)
		ORDER BY position, id`, pq.Array(adGroupIDs))
	if err != nil {
		return fmt.Errorf("select ads: %w", err)
	}

	var keywords []domain.Keyword
	err = sqlx.SelectContext(ctx, exec, &keywords, `
		SELECT id, ad_group_id, platform_keyword_id, text, match_type
		FROM keywords
		WHERE ad_group_id = ANY($1)
		ORDER BY position, id`, pq.Array(adGroupIDs))
	if err != nil {
		return fmt.Errorf("select keywords: %w", err)
	}

	adsByGroup := make(map[string][]domain.Ad)
	for _, ad := range ads {
		adsByGroup[ad.AdGroupID] = append(adsByGroup[ad.AdGroupID], ad)
	}
	keywordsByGroup := make(map[string][]domain.Keyword)
	for _, kw := range keywords {
		keywordsByGroup[kw.AdGroupID] = append(keywordsByGroup[kw.AdGroupID], kw)
	}

	groupsByCampaign := make(map[string][]domain.AdGroup)
	for _, ag := range adGroups {
		ag.Ads = adsByGroup[ag.ID]
		ag.Keywords = keywordsByGroup[ag.ID]
		groupsByCampaign[ag.CampaignID] = append(groupsByCampaign[ag.CampaignID], ag)
	}

	for i := range campaigns {
		campaigns[i].AdGroups = groupsByCampaign[campaigns[i].ID]
	}
	return nil
}

func (s *CampaignStore) UpdateCampaignSetStatus(ctx context.Context, setID string, status domain.SetStatus, syncStatus domain.SyncStatus) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE campaign_sets
		SET status = $2, sync_status = $3, updated_at = now()
		WHERE id = $1`, setID, status, syncStatus)
	return affectedOne(res, err, "update campaign set status")
}

// UpdateCampaignSyncStatus records a sync outcome. Only a successful sync
// advances the last_synced_at baseline.
func (s *CampaignStore) UpdateCampaignSyncStatus(ctx context.Context, campaignID string, syncStatus domain.SyncStatus, errorMessage string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE campaigns
		SET sync_status = $2::text,
			sync_error = NULLIF($3, ''),
			last_synced_at = CASE WHEN $2::text = 'synced' THEN now() ELSE last_synced_at END,
			updated_at = now()
		WHERE id = $1`, campaignID, syncStatus, errorMessage)
	return affectedOne(res, err, "update campaign sync status")
}

// UpdateCampaignStatus stores a status that was just pushed to the platform,
// so local and platform agree as of now.
func (s *CampaignStore) UpdateCampaignStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE campaigns
		SET status = $2,
			local_updated_at = now(),
			last_synced_at = now(),
			updated_at = now()
		WHERE id = $1`, campaignID, status)
	return affectedOne(res, err, "update campaign status")
}

func (s *CampaignStore) UpdateCampaignPlatformID(ctx context.Context, campaignID, platformID string) error {
	return s.updatePlatformID(ctx, "campaigns", "platform_campaign_id", campaignID, platformID)
}

func (s *CampaignStore) UpdateAdGroupPlatformID(ctx context.Context, adGroupID, platformID string) error {
	return s.updatePlatformID(ctx, "ad_groups", "platform_ad_group_id", adGroupID, platformID)
}

func (s *CampaignStore) UpdateAdPlatformID(ctx context.Context, adID, platformID string) error {
	return s.updatePlatformID(ctx, "ads", "platform_ad_id", adID, platformID)
}

func (s *CampaignStore) UpdateKeywordPlatformID(ctx context.Context, keywordID, platformID string) error {
	return s.updatePlatformID(ctx, "keywords", "platform_keyword_id", keywordID, platformID)
}

// updatePlatformID is only called with the fixed table and column names above.
func (s *CampaignStore) updatePlatformID(ctx context.Context, table, column, id, platformID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, updated_at = now() WHERE id = $1`, table, column)
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, platformID)
	return affectedOne(res, err, "update "+column)
}

func (s *CampaignStore) MarkCampaignConflict(ctx context.Context, campaignID string, details domain.ConflictDetails) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE campaigns
		SET sync_status = 'conflict', conflict_details = $2, updated_at = now()
		WHERE id = $1`, campaignID, details)
	return affectedOne(res, err, "mark campaign conflict")
}

// UpdateCampaignFromPlatform applies the platform's status and resets the
// baseline so local and platform agree as of now.
func (s *CampaignStore) UpdateCampaignFromPlatform(ctx context.Context, campaignID string, state domain.PlatformCampaignStatus) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE campaigns
		SET status = $2,
			budget = COALESCE($3, budget),
			sync_status = 'synced',
			sync_error = NULL,
			conflict_details = NULL,
			last_synced_at = now(),
			local_updated_at = now(),
			updated_at = now()
		WHERE id = $1`, campaignID, state.Status, state.Budget)
	return affectedOne(res, err, "update campaign from platform")
}

// MarkCampaignDeletedOnPlatform keeps platform_campaign_id: the identity is
// permanent even after the platform forgets it.
func (s *CampaignStore) MarkCampaignDeletedOnPlatform(ctx context.Context, campaignID string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE campaigns
		SET deleted_on_platform = TRUE,
			status = 'error',
			sync_status = 'failed',
			sync_error = 'deleted on platform',
			updated_at = now()
		WHERE id = $1`, campaignID)
	return affectedOne(res, err, "mark campaign deleted on platform")
}

func (s *CampaignStore) ResolveCampaignConflict(ctx context.Context, campaignID string, resolution domain.ConflictResolution) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, s.db)

		var details domain.ConflictDetails
		err := sqlx.GetContext(ctx, exec, &details, `
			SELECT conflict_details
			FROM campaigns
			WHERE id = $1 AND sync_status = 'conflict' AND conflict_details IS NOT NULL
			FOR UPDATE`, campaignID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNoConflict
		}
		if err != nil {
			return fmt.Errorf("lock conflicted campaign: %w", err)
		}

		status := details.LocalStatus
		if resolution == domain.ResolutionAcceptPlatform {
			status = details.PlatformStatus
		}

		res, err := exec.ExecContext(ctx, `
			UPDATE campaigns
			SET status = $2,
				sync_status = 'synced',
				sync_error = NULL,
				conflict_details = NULL,
				last_synced_at = now(),
				local_updated_at = now(),
				updated_at = now()
			WHERE id = $1`, campaignID, status)
		return affectedOne(res, err, "resolve campaign conflict")
	})
}

func affectedOne(res sql.Result, err error, op string) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}
