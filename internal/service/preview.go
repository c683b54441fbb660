package service

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"slices"
	"unicode/utf8"

	"campaign_syncer/internal/domain"
	"campaign_syncer/internal/platform"
)

const highSkipRatePercent = 20

type issue struct {
	domain.AdIssue
	fixable bool
}

// Previewer checks ads against platform creative limits without calling
// any platform.
type Previewer struct {
	limits map[domain.Platform]platform.AdLimits
}

func NewPreviewer(adapters []Adapter) *Previewer {
	limits := make(map[domain.Platform]platform.AdLimits, len(adapters))
	for _, a := range adapters {
		limits[a.Platform()] = a.AdLimits()
	}
	return &Previewer{limits: limits}
}

// PreviewCampaignSet reports how many ads of a set would sync as-is, with a
// fallback, or not at all. It makes no platform calls.
func (o *Orchestrator) PreviewCampaignSet(ctx context.Context, setID string, strategy domain.FallbackStrategy) (*domain.SyncPreview, error) {
	set, err := o.repo.GetCampaignSetWithRelations(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("load campaign set %s: %w", setID, err)
	}

	adapters := make([]Adapter, 0, len(o.adapters))
	for _, a := range o.adapters {
		adapters = append(adapters, a)
	}

	preview := NewPreviewer(adapters).Preview(set, strategy)
	o.logger.Info("sync preview built",
		"set_id", setID,
		"strategy", strategy,
		"valid", preview.Breakdown.Valid,
		"fallback", preview.Breakdown.Fallback,
		"skipped", preview.Breakdown.Skipped,
	)
	return preview, nil
}

func (p *Previewer) Preview(set *domain.CampaignSet, strategy domain.FallbackStrategy) *domain.SyncPreview {
	preview := &domain.SyncPreview{
		SetID:    set.ID,
		Ads:      []domain.AdPreview{},
		Warnings: []string{},
	}

	for _, c := range set.Campaigns {
		if c.Status == domain.CampaignStatusDraft {
			continue
		}
		limits, ok := p.limits[c.Platform]
		if !ok {
			preview.Warnings = append(preview.Warnings,
				fmt.Sprintf("Campaign %s: no adapter for platform %q, its ads were not checked", c.ID, c.Platform))
			continue
		}

		for _, ag := range c.AdGroups {
			for _, ad := range ag.Ads {
				issues := checkAd(&ad, limits)
				ap := domain.AdPreview{
					AdID:        ad.ID,
					CampaignID:  c.ID,
					Disposition: disposition(issues, strategy),
				}
				for _, is := range issues {
					ap.Issues = append(ap.Issues, is.AdIssue)
				}
				preview.Ads = append(preview.Ads, ap)

				preview.Breakdown.Total++
				switch ap.Disposition {
				case domain.AdValid:
					preview.Breakdown.Valid++
				case domain.AdFallback:
					preview.Breakdown.Fallback++
				case domain.AdSkipped:
					preview.Breakdown.Skipped++
				}
			}
		}
	}

	b := preview.Breakdown
	if b.Total == 0 {
		preview.Warnings = append(preview.Warnings, "No ads to sync")
	} else {
		skipRate := int(math.Round(float64(b.Skipped) * 100 / float64(b.Total)))
		if skipRate > highSkipRatePercent {
			preview.Warnings = append(preview.Warnings,
				fmt.Sprintf("High skip rate: %d%% of ads (%d of %d) will be skipped", skipRate, b.Skipped, b.Total))
		}
	}
	if b.Fallback > 0 {
		preview.Warnings = append(preview.Warnings,
			fmt.Sprintf("%d ads will be modified to fit platform limits", b.Fallback))
	}

	preview.CanProceed = b.Valid+b.Fallback > 0
	return preview
}

func disposition(issues []issue, strategy domain.FallbackStrategy) domain.AdDisposition {
	if len(issues) == 0 {
		return domain.AdValid
	}

	switch strategy {
	case domain.FallbackTruncate:
		for _, is := range issues {
			if is.Code != domain.IssueFieldTooLong {
				return domain.AdSkipped
			}
		}
		return domain.AdFallback
	case domain.FallbackDefault:
		for _, is := range issues {
			if !is.fixable {
				return domain.AdSkipped
			}
		}
		return domain.AdFallback
	default:
		return domain.AdSkipped
	}
}

func checkAd(ad *domain.Ad, limits platform.AdLimits) []issue {
	var issues []issue

	tooLong := func(field, value string, max int) {
		if max > 0 && utf8.RuneCountInString(value) > max {
			issues = append(issues, issue{
				AdIssue: domain.AdIssue{
					Field:   field,
					Code:    domain.IssueFieldTooLong,
					Message: fmt.Sprintf("%s is %d characters, limit is %d", field, utf8.RuneCountInString(value), max),
				},
				fixable: true,
			})
		}
	}

	if ad.Headline == "" && limits.RequireHeadline {
		issues = append(issues, issue{
			AdIssue: domain.AdIssue{
				Field:   "headline",
				Code:    domain.IssueRequiredMissing,
				Message: "headline is required",
			},
			fixable: limits.FallbackHeadline != "",
		})
	}
	tooLong("headline", ad.Headline, limits.HeadlineMax)
	tooLong("description", ad.Description, limits.DescriptionMax)
	tooLong("display_url", ad.DisplayURL, limits.DisplayURLMax)

	switch {
	case ad.FinalURL == "" && limits.RequireFinalURL:
		issues = append(issues, issue{AdIssue: domain.AdIssue{
			Field:   "final_url",
			Code:    domain.IssueRequiredMissing,
			Message: "final url is required",
		}})
	case ad.FinalURL != "" && !validURL(ad.FinalURL):
		issues = append(issues, issue{AdIssue: domain.AdIssue{
			Field:   "final_url",
			Code:    domain.IssueInvalidURL,
			Message: fmt.Sprintf("final url %q is not an absolute http(s) url", ad.FinalURL),
		}})
	}

	if ad.CallToAction != "" {
		tooLong("call_to_action", ad.CallToAction, limits.CallToActionMax)
		if len(limits.AllowedCTAs) > 0 && !slices.Contains(limits.AllowedCTAs, ad.CallToAction) {
			issues = append(issues, issue{
				AdIssue: domain.AdIssue{
					Field:   "call_to_action",
					Code:    domain.IssueInvalidValue,
					Message: fmt.Sprintf("call to action %q is not supported", ad.CallToAction),
				},
				fixable: limits.FallbackCTA != "",
			})
		}
	}

	return issues
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
