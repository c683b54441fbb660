package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"campaign_syncer/internal/domain"
	"campaign_syncer/internal/platform"
)

type Repository interface {
	GetCampaignSetWithRelations(ctx context.Context, setID string) (*domain.CampaignSet, error)
	GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error)
	GetSyncedCampaignsForAccount(ctx context.Context, accountID string) ([]domain.Campaign, error)

	UpdateCampaignSetStatus(ctx context.Context, setID string, status domain.SetStatus, syncStatus domain.SyncStatus) error
	UpdateCampaignSyncStatus(ctx context.Context, campaignID string, syncStatus domain.SyncStatus, errorMessage string) error
	UpdateCampaignStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error

	UpdateCampaignPlatformID(ctx context.Context, campaignID, platformID string) error
	UpdateAdGroupPlatformID(ctx context.Context, adGroupID, platformID string) error
	UpdateAdPlatformID(ctx context.Context, adID, platformID string) error
	UpdateKeywordPlatformID(ctx context.Context, keywordID, platformID string) error

	MarkCampaignConflict(ctx context.Context, campaignID string, details domain.ConflictDetails) error
	UpdateCampaignFromPlatform(ctx context.Context, campaignID string, state domain.PlatformCampaignStatus) error
	MarkCampaignDeletedOnPlatform(ctx context.Context, campaignID string) error
	ResolveCampaignConflict(ctx context.Context, campaignID string, resolution domain.ConflictResolution) error
}

// Adapter is one ad platform integration. Structured failures are returned
// as *platform.Error; anything else is treated as unexpected.
type Adapter interface {
	Platform() domain.Platform
	AdLimits() platform.AdLimits

	CreateCampaign(ctx context.Context, campaign *domain.Campaign) (string, error)
	UpdateCampaign(ctx context.Context, campaign *domain.Campaign, platformID string) (string, error)
	PauseCampaign(ctx context.Context, platformID string) error
	ResumeCampaign(ctx context.Context, platformID string) error
	DeleteCampaign(ctx context.Context, platformID string) error

	CreateAdGroup(ctx context.Context, adGroup *domain.AdGroup, platformCampaignID string) (string, error)
	UpdateAdGroup(ctx context.Context, adGroup *domain.AdGroup, platformID string) (string, error)
	DeleteAdGroup(ctx context.Context, platformID string) error

	CreateAd(ctx context.Context, ad *domain.Ad, platformAdGroupID string) (string, error)
	UpdateAd(ctx context.Context, ad *domain.Ad, platformID string) (string, error)
	DeleteAd(ctx context.Context, platformID string) error

	CreateKeyword(ctx context.Context, keyword *domain.Keyword, platformAdGroupID string) (string, error)
	UpdateKeyword(ctx context.Context, keyword *domain.Keyword, platformID string) (string, error)
	DeleteKeyword(ctx context.Context, platformID string) error
}

type Poller interface {
	Platform() domain.Platform
	ListCampaignStatuses(ctx context.Context, accountID string) ([]domain.PlatformCampaignStatus, error)
}

// Locker guards against two syncs of the same campaign running at once.
type Locker interface {
	TryLock(ctx context.Context, key string) (bool, error)
	Unlock(ctx context.Context, key string) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.SyncEvent) error
	Close() error
}
