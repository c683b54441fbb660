package reddit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campaign_syncer/internal/domain"
	"campaign_syncer/internal/platform"
)

const (
	statusActive   = "ACTIVE"
	statusPaused   = "PAUSED"
	statusArchived = "ARCHIVED"
	statusDeleted  = "DELETED"

	goalDaily    = "DAILY_SPEND"
	goalLifetime = "LIFETIME_SPEND"
)

var callsToAction = []string{
	"Learn More", "Sign Up", "Shop Now", "Download", "Install",
	"Contact Us", "Get Quote", "Apply Now", "Play Now", "Watch Now", "View More",
}

// Adapter maps the local campaign tree onto Reddit Ads. Reddit has no keyword
// targeting, so keyword calls succeed without a request.
type Adapter struct {
	client   *Client
	pageSize int
	logger   *slog.Logger
}

func NewAdapter(client *Client, pageSize int, logger *slog.Logger) *Adapter {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &Adapter{
		client:   client,
		pageSize: pageSize,
		logger:   logger.With("platform", "reddit"),
	}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformReddit
}

func (a *Adapter) AdLimits() platform.AdLimits {
	return platform.AdLimits{
		HeadlineMax:      300,
		DescriptionMax:   500,
		DisplayURLMax:    64,
		CallToActionMax:  20,
		RequireFinalURL:  true,
		RequireHeadline:  true,
		AllowedCTAs:      callsToAction,
		FallbackHeadline: "Learn more",
		FallbackCTA:      "Learn More",
	}
}

func (a *Adapter) CreateCampaign(ctx context.Context, c *domain.Campaign) (string, error) {
	if c.AdAccountID == "" {
		return "", platform.NewValidationError("campaign %s: ad account id is required", c.ID)
	}
	payload, err := campaignToPayload(c)
	if err != nil {
		return "", err
	}
	path := fmt.Sprintf("/ad_accounts/%s/campaigns", url.PathEscape(c.AdAccountID))
	return a.write(ctx, http.MethodPost, path, payload)
}

func (a *Adapter) UpdateCampaign(ctx context.Context, c *domain.Campaign, platformID string) (string, error) {
	payload, err := campaignToPayload(c)
	if err != nil {
		return "", err
	}
	return a.write(ctx, http.MethodPatch, "/campaigns/"+url.PathEscape(platformID), payload)
}

func (a *Adapter) PauseCampaign(ctx context.Context, platformID string) error {
	return a.setCampaignStatus(ctx, platformID, statusPaused)
}

func (a *Adapter) ResumeCampaign(ctx context.Context, platformID string) error {
	return a.setCampaignStatus(ctx, platformID, statusActive)
}

func (a *Adapter) DeleteCampaign(ctx context.Context, platformID string) error {
	return a.delete(ctx, "/campaigns/"+url.PathEscape(platformID))
}

func (a *Adapter) CreateAdGroup(ctx context.Context, ag *domain.AdGroup, platformCampaignID string) (string, error) {
	if platformCampaignID == "" {
		return "", platform.NewValidationError("ad group %s: parent campaign has no platform id", ag.ID)
	}
	payload, err := adGroupToPayload(ag)
	if err != nil {
		return "", err
	}
	path := fmt.Sprintf("/campaigns/%s/ad_groups", url.PathEscape(platformCampaignID))
	return a.write(ctx, http.MethodPost, path, payload)
}

func (a *Adapter) UpdateAdGroup(ctx context.Context, ag *domain.AdGroup, platformID string) (string, error) {
	payload, err := adGroupToPayload(ag)
	if err != nil {
		return "", err
	}
	return a.write(ctx, http.MethodPatch, "/ad_groups/"+url.PathEscape(platformID), payload)
}

func (a *Adapter) DeleteAdGroup(ctx context.Context, platformID string) error {
	return a.delete(ctx, "/ad_groups/"+url.PathEscape(platformID))
}

func (a *Adapter) CreateAd(ctx context.Context, ad *domain.Ad, platformAdGroupID string) (string, error) {
	if platformAdGroupID == "" {
		return "", platform.NewValidationError("ad %s: parent ad group has no platform id", ad.ID)
	}
	payload, err := adToPayload(ad)
	if err != nil {
		return "", err
	}
	path := fmt.Sprintf("/ad_groups/%s/ads", url.PathEscape(platformAdGroupID))
	return a.write(ctx, http.MethodPost, path, payload)
}

func (a *Adapter) UpdateAd(ctx context.Context, ad *domain.Ad, platformID string) (string, error) {
	payload, err := adToPayload(ad)
	if err != nil {
		return "", err
	}
	return a.write(ctx, http.MethodPatch, "/ads/"+url.PathEscape(platformID), payload)
}

func (a *Adapter) DeleteAd(ctx context.Context, platformID string) error {
	return a.delete(ctx, "/ads/"+url.PathEscape(platformID))
}

func (a *Adapter) CreateKeyword(_ context.Context, kw *domain.Keyword, _ string) (string, error) {
	a.logger.Debug("keyword targeting not supported, skipping", "keyword_id", kw.ID)
	return "", nil
}

func (a *Adapter) UpdateKeyword(_ context.Context, _ *domain.Keyword, platformID string) (string, error) {
	return platformID, nil
}

func (a *Adapter) DeleteKeyword(_ context.Context, _ string) error {
	return nil
}

// ListCampaignStatuses pages through every campaign of the ad account.
// Campaigns Reddit reports as deleted are left out, so the caller sees them as
// gone; campaigns in a status with no local mapping are kept with an empty status.
func (a *Adapter) ListCampaignStatuses(ctx context.Context, accountID string) ([]domain.PlatformCampaignStatus, error) {
	var statuses []domain.PlatformCampaignStatus

	for page := 0; ; page++ {
		var resp campaignListResponse
		path := fmt.Sprintf("/ad_accounts/%s/campaigns?page=%d&page_size=%d",
			url.PathEscape(accountID), page, a.pageSize)
		if err := a.client.Do(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return statuses, classify(fmt.Errorf("list campaigns page %d: %w", page, err))
		}

		for _, item := range resp.Data {
			status, deleted := toLocalStatus(item.ConfiguredStatus)
			if deleted {
				continue
			}
			if status == "" {
				a.logger.Warn("unmapped campaign status",
					"platform_id", item.ID,
					"configured_status", item.ConfiguredStatus,
				)
			}
			modified, err := time.Parse(time.RFC3339, item.ModifiedAt)
			if err != nil {
				a.logger.Warn("failed to parse modified_at",
					"platform_id", item.ID,
					"modified_at", item.ModifiedAt,
				)
			}
			st := domain.PlatformCampaignStatus{
				PlatformID:   item.ID,
				Status:       status,
				LastModified: modified,
			}
			if item.GoalValue != nil {
				budget := platform.FromMicros(*item.GoalValue)
				st.Budget = &budget
			}
			statuses = append(statuses, st)
		}

		a.logger.Debug("fetched campaign page",
			"account_id", accountID,
			"page", page,
			"campaigns", len(resp.Data),
		)

		if page >= resp.Pagination.NumPages-1 {
			break
		}
	}

	return statuses, nil
}

func (a *Adapter) setCampaignStatus(ctx context.Context, platformID, status string) error {
	payload := envelope[campaignPayload]{Data: campaignPayload{ConfiguredStatus: status}}
	if err := a.client.Do(ctx, http.MethodPatch, "/campaigns/"+url.PathEscape(platformID), payload, nil); err != nil {
		return classify(err)
	}
	return nil
}

func (a *Adapter) write(ctx context.Context, method, path string, data any) (string, error) {
	var resp envelope[entityResponse]
	if err := a.client.Do(ctx, method, path, envelope[any]{Data: data}, &resp); err != nil {
		return "", classify(err)
	}
	if resp.Data.ID == "" {
		return "", &platform.Error{
			Code:    platform.CodeUnknown,
			Message: fmt.Sprintf("%s %s: response carried no id", method, path),
		}
	}
	return resp.Data.ID, nil
}

func (a *Adapter) delete(ctx context.Context, path string) error {
	if err := a.client.Do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return classify(err)
	}
	return nil
}

func campaignToPayload(c *domain.Campaign) (campaignPayload, error) {
	if strings.TrimSpace(c.Name) == "" {
		return campaignPayload{}, platform.NewValidationError("campaign %s: name is required", c.ID)
	}
	if c.Budget < 0 {
		return campaignPayload{}, platform.NewValidationError("campaign %s: budget must not be negative", c.ID)
	}

	p := campaignPayload{
		Name:             c.Name,
		Objective:        strings.ToUpper(c.Objective),
		ConfiguredStatus: toPlatformStatus(c.Status),
	}
	if c.Budget > 0 {
		micros := platform.ToMicros(c.Budget)
		p.GoalValue = &micros
		p.GoalType = goalDaily
		if strings.EqualFold(c.BudgetType, "lifetime") {
			p.GoalType = goalLifetime
		}
	}
	if c.StartTime != nil {
		s := c.StartTime.UTC().Format(time.RFC3339)
		p.StartTime = &s
	}
	if c.EndTime != nil {
		s := c.EndTime.UTC().Format(time.RFC3339)
		p.EndTime = &s
	}
	return p, nil
}

// adGroupToPayload decodes the settings keys this platform understands:
// bid_amount, bid_strategy and targeting.{communities,geolocations,devices}.
func adGroupToPayload(ag *domain.AdGroup) (adGroupPayload, error) {
	if strings.TrimSpace(ag.Name) == "" {
		return adGroupPayload{}, platform.NewValidationError("ad group %s: name is required", ag.ID)
	}

	p := adGroupPayload{
		Name:             ag.Name,
		ConfiguredStatus: statusActive,
	}

	bid, ok, err := platform.Float(ag.Settings, "bid_amount")
	if err != nil {
		return adGroupPayload{}, platform.NewValidationError("ad group %s: %v", ag.ID, err)
	}
	if ok {
		if bid <= 0 {
			return adGroupPayload{}, platform.NewValidationError("ad group %s: bid_amount must be positive", ag.ID)
		}
		micros := platform.ToMicros(bid)
		p.BidValue = &micros
	}

	strategy, _, err := platform.String(ag.Settings, "bid_strategy")
	if err != nil {
		return adGroupPayload{}, platform.NewValidationError("ad group %s: %v", ag.ID, err)
	}
	p.BidStrategy = strings.ToUpper(strategy)

	targeting, err := platform.Section(ag.Settings, "targeting")
	if err != nil {
		return adGroupPayload{}, platform.NewValidationError("ad group %s: %v", ag.ID, err)
	}
	t := targetingPayload{}
	for key, dst := range map[string]*[]string{
		"communities":  &t.Communities,
		"geolocations": &t.Geolocations,
		"devices":      &t.Devices,
	} {
		values, err := platform.Strings(targeting, key)
		if err != nil {
			return adGroupPayload{}, platform.NewValidationError("ad group %s: targeting: %v", ag.ID, err)
		}
		*dst = values
	}
	if len(t.Communities) > 0 || len(t.Geolocations) > 0 || len(t.Devices) > 0 {
		p.Targeting = &t
	}

	return p, nil
}

func adToPayload(ad *domain.Ad) (adPayload, error) {
	if strings.TrimSpace(ad.FinalURL) == "" {
		return adPayload{}, platform.NewValidationError("ad %s: final url is required", ad.ID)
	}
	if strings.TrimSpace(ad.Headline) == "" {
		return adPayload{}, platform.NewValidationError("ad %s: headline is required", ad.ID)
	}
	return adPayload{
		Name:             ad.Headline,
		Headline:         ad.Headline,
		Body:             ad.Description,
		ClickURL:         ad.FinalURL,
		DisplayURL:       ad.DisplayURL,
		CallToAction:     ad.CallToAction,
		ConfiguredStatus: toPlatformStatus(ad.Status),
	}, nil
}

// New entities are created paused unless the local status is explicitly active.
func toPlatformStatus(s domain.CampaignStatus) string {
	switch s {
	case domain.CampaignStatusActive:
		return statusActive
	case domain.CampaignStatusCompleted:
		return statusArchived
	default:
		return statusPaused
	}
}

// toLocalStatus maps a Reddit configured status. An unmapped status yields
// an empty status so callers can leave the campaign alone.
func toLocalStatus(s string) (status domain.CampaignStatus, deleted bool) {
	switch strings.ToUpper(s) {
	case statusActive:
		return domain.CampaignStatusActive, false
	case statusPaused:
		return domain.CampaignStatusPaused, false
	case statusArchived, "COMPLETED":
		return domain.CampaignStatusCompleted, false
	case statusDeleted:
		return "", true
	default:
		return "", false
	}
}

func classify(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		perr := &platform.Error{Message: apiErr.Message, Err: err}
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests:
			perr.Code = platform.CodeRateLimited
			perr.Retryable = true
			perr.RetryAfter = apiErr.RetryAfter
		case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
			perr.Code = platform.CodeAuth
		case apiErr.StatusCode == http.StatusNotFound:
			perr.Code = platform.CodeNotFound
		case apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusUnprocessableEntity:
			perr.Code = platform.CodeBadRequest
		case apiErr.StatusCode >= 500:
			perr.Code = platform.CodeUnavailable
			perr.Retryable = true
			perr.RetryAfter = apiErr.RetryAfter
		default:
			perr.Code = platform.CodeUnknown
		}
		return perr
	}

	var transport *TransportError
	if errors.As(err, &transport) {
		return &platform.Error{
			Code:      platform.CodeNetwork,
			Message:   transport.Err.Error(),
			Retryable: true,
			Err:       err,
		}
	}

	return platform.Classify(err)
}
