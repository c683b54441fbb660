package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	CodeCampaignSetNotFound = "CAMPAIGN_SET_NOT_FOUND"
	CodeCampaignNotFound    = "CAMPAIGN_NOT_FOUND"
	CodeNoAdapter           = "NO_ADAPTER_FOR_PLATFORM"
	CodeSyncException       = "SYNC_EXCEPTION"
	CodeSyncFailed          = "SYNC_FAILED"
	CodeCircuitOpen         = "CIRCUIT_OPEN"
	CodeSyncInProgress      = "SYNC_IN_PROGRESS"
	CodeCampaignDraft       = "CAMPAIGN_DRAFT"
	CodeParentNotSynced     = "PARENT_NOT_SYNCED"
	CodeSyncAborted         = "SYNC_ABORTED"
	CodeLoadFailed          = "LOAD_FAILED"
)

// SyncError identifies one failed campaign well enough to retry just that campaign.
type SyncError struct {
	CampaignID string   `json:"campaignId,omitempty"`
	Platform   Platform `json:"platform,omitempty"`
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Retryable  bool     `json:"retryable,omitempty"`
	RetryAfter int      `json:"retryAfter,omitempty"`
}

type SyncSetResult struct {
	RunID     string               `json:"runId"`
	SetID     string               `json:"setId"`
	Success   bool                 `json:"success"`
	Synced    int                  `json:"synced"`
	Failed    int                  `json:"failed"`
	Skipped   int                  `json:"skipped"`
	Errors    []SyncError          `json:"errors"`
	Campaigns []CampaignSyncResult `json:"campaigns"`
	Duration  time.Duration        `json:"duration"`
}

type EntityType string

const (
	EntityCampaign EntityType = "campaign"
	EntityAdGroup  EntityType = "ad_group"
	EntityAd       EntityType = "ad"
	EntityKeyword  EntityType = "keyword"
)

type EntityAction string

const (
	ActionCreated EntityAction = "created"
	ActionUpdated EntityAction = "updated"
	ActionNoop    EntityAction = "noop"
	ActionFailed  EntityAction = "failed"
	ActionSkipped EntityAction = "skipped"
)

// EntityOutcome is the record of what one sync attempt did to one entity.
type EntityOutcome struct {
	Type       EntityType   `json:"type"`
	ID         string       `json:"id"`
	Action     EntityAction `json:"action"`
	PlatformID string       `json:"platformId,omitempty"`
	Error      string       `json:"error,omitempty"`
}

type CampaignSyncResult struct {
	CampaignID         string          `json:"campaignId"`
	Platform           Platform        `json:"platform"`
	Success            bool            `json:"success"`
	Skipped            bool            `json:"skipped,omitempty"`
	PlatformCampaignID string          `json:"platformCampaignId,omitempty"`
	Code               string          `json:"code,omitempty"`
	Error              string          `json:"error,omitempty"`
	Retryable          bool            `json:"retryable,omitempty"`
	RetryAfter         int             `json:"retryAfter,omitempty"`
	Entities           []EntityOutcome `json:"entities,omitempty"`
}

// PauseResult is shared by pause and resume; exactly one of Paused/Resumed is used.
type PauseResult struct {
	SetID   string      `json:"setId"`
	Paused  int         `json:"paused,omitempty"`
	Resumed int         `json:"resumed,omitempty"`
	Failed  int         `json:"failed"`
	Errors  []SyncError `json:"errors"`
}

// PlatformCampaignStatus is one campaign as the platform reports it. Status is
// empty when the platform reported a status with no local equivalent.
type PlatformCampaignStatus struct {
	PlatformID   string         `json:"platformId"`
	Status       CampaignStatus `json:"status"`
	LastModified time.Time      `json:"lastModified"`
	Budget       *float64       `json:"budget,omitempty"`
}

type ConflictDetails struct {
	CampaignID     string         `json:"campaignId"`
	Field          string         `json:"field"`
	LocalStatus    CampaignStatus `json:"localStatus"`
	PlatformStatus CampaignStatus `json:"platformStatus"`
	DetectedAt     time.Time      `json:"detectedAt"`
}

func (d ConflictDetails) Value() (driver.Value, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal conflict details: %w", err)
	}
	return string(b), nil
}

func (d *ConflictDetails) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("scan conflict details: unsupported type %T", src)
	}
}

type ConflictResolution string

const (
	ResolutionKeepLocal      ConflictResolution = "keep_local"
	ResolutionAcceptPlatform ConflictResolution = "accept_platform"
)

// AdAccount is one platform account polled for platform-side changes.
type AdAccount struct {
	ID       string   `yaml:"id" json:"id"`
	Platform Platform `yaml:"platform" json:"platform"`
}

type PollResult struct {
	AccountID     string   `json:"accountId"`
	Platform      Platform `json:"platform"`
	Updated       int      `json:"updated"`
	Conflicts     int      `json:"conflicts"`
	Unchanged     int      `json:"unchanged"`
	Deleted       int      `json:"deleted"`
	Skipped       int      `json:"skipped"`
	Errors        int      `json:"errors"`
	ErrorMessages []string `json:"errorMessages"`
}

func (r *PollResult) AddError(msg string) {
	r.Errors++
	r.ErrorMessages = append(r.ErrorMessages, msg)
}
