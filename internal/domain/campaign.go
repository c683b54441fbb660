package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrNoConflict = errors.New("campaign has no open conflict")
)

type Platform string

const (
	PlatformReddit   Platform = "reddit"
	PlatformGoogle   Platform = "google"
	PlatformFacebook Platform = "facebook"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformReddit, PlatformGoogle, PlatformFacebook:
		return true
	}
	return false
}

type SetStatus string

const (
	SetStatusDraft     SetStatus = "draft"
	SetStatusPending   SetStatus = "pending"
	SetStatusSyncing   SetStatus = "syncing"
	SetStatusActive    SetStatus = "active"
	SetStatusPaused    SetStatus = "paused"
	SetStatusCompleted SetStatus = "completed"
	SetStatusArchived  SetStatus = "archived"
	SetStatusError     SetStatus = "error"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusPending   CampaignStatus = "pending"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusError     CampaignStatus = "error"
)

type SyncStatus string

const (
	SyncStatusPending  SyncStatus = "pending"
	SyncStatusSyncing  SyncStatus = "syncing"
	SyncStatusSynced   SyncStatus = "synced"
	SyncStatusFailed   SyncStatus = "failed"
	SyncStatusConflict SyncStatus = "conflict"
)

// CampaignSet is a group of campaigns generated together and synced as one unit.
type CampaignSet struct {
	ID         string     `db:"id"`
	TeamID     string     `db:"team_id"`
	Name       string     `db:"name"`
	Status     SetStatus  `db:"status"`
	SyncStatus SyncStatus `db:"sync_status"`
	Campaigns  []Campaign `db:"-"`
}

type Campaign struct {
	ID                 string           `db:"id"`
	CampaignSetID      string           `db:"campaign_set_id"`
	AdAccountID        string           `db:"ad_account_id"`
	Name               string           `db:"name"`
	Platform           Platform         `db:"platform"`
	Objective          string           `db:"objective"`
	Budget             float64          `db:"budget"` // currency units, e.g. 12.50
	BudgetType         string           `db:"budget_type"`
	StartTime          *time.Time       `db:"start_time"`
	EndTime            *time.Time       `db:"end_time"`
	Status             CampaignStatus   `db:"status"`
	SyncStatus         SyncStatus       `db:"sync_status"`
	PlatformCampaignID *string          `db:"platform_campaign_id"`
	LastSyncedAt       *time.Time       `db:"last_synced_at"`
	LocalUpdatedAt     time.Time        `db:"local_updated_at"`
	SyncError          *string          `db:"sync_error"`
	Conflict           *ConflictDetails `db:"conflict_details"`
	DeletedOnPlatform  bool             `db:"deleted_on_platform"`
	AdGroups           []AdGroup        `db:"-"`
}

// NeverSynced reports whether the campaign has no meaningful sync baseline.
// A nil, zero or epoch timestamp all count as never synced.
func (c *Campaign) NeverSynced() bool {
	return c.LastSyncedAt == nil || c.LastSyncedAt.IsZero() || c.LastSyncedAt.Unix() == 0
}

type AdGroup struct {
	ID                string    `db:"id"`
	CampaignID        string    `db:"campaign_id"`
	Name              string    `db:"name"`
	PlatformAdGroupID *string   `db:"platform_ad_group_id"`
	Settings          Settings  `db:"settings"`
	Ads               []Ad      `db:"-"`
	Keywords          []Keyword `db:"-"`
}

type Ad struct {
	ID           string         `db:"id"`
	AdGroupID    string         `db:"ad_group_id"`
	PlatformAdID *string        `db:"platform_ad_id"`
	Headline     string         `db:"headline"`
	Description  string         `db:"description"`
	DisplayURL   string         `db:"display_url"`
	FinalURL     string         `db:"final_url"`
	CallToAction string         `db:"call_to_action"`
	Status       CampaignStatus `db:"status"`
}

type MatchType string

const (
	MatchExact  MatchType = "exact"
	MatchPhrase MatchType = "phrase"
	MatchBroad  MatchType = "broad"
)

type Keyword struct {
	ID                string    `db:"id"`
	AdGroupID         string    `db:"ad_group_id"`
	PlatformKeywordID *string   `db:"platform_keyword_id"`
	Text              string    `db:"text"`
	MatchType         MatchType `db:"match_type"`
}
