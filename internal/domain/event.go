package domain

import "time"

type EventType string

const (
	EventSetSynced         EventType = "campaign_set.synced"
	EventCampaignSynced    EventType = "campaign.synced"
	EventSetPaused         EventType = "campaign_set.paused"
	EventSetResumed        EventType = "campaign_set.resumed"
	EventConflictDetected  EventType = "campaign.conflict_detected"
	EventConflictResolved  EventType = "campaign.conflict_resolved"
	EventDeletedOnPlatform EventType = "campaign.deleted_on_platform"
)

// SyncEvent is published after every orchestrator or detector operation.
type SyncEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	SetID      string    `json:"setId,omitempty"`
	CampaignID string    `json:"campaignId,omitempty"`
	Payload    any       `json:"payload,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
