package domain

import "fmt"

type FallbackStrategy string

const (
	FallbackSkip     FallbackStrategy = "skip"
	FallbackTruncate FallbackStrategy = "truncate"
	FallbackDefault  FallbackStrategy = "fallback"
)

func ParseFallbackStrategy(s string) (FallbackStrategy, error) {
	switch FallbackStrategy(s) {
	case "", FallbackSkip:
		return FallbackSkip, nil
	case FallbackTruncate, FallbackDefault:
		return FallbackStrategy(s), nil
	default:
		return "", fmt.Errorf("unknown fallback strategy %q", s)
	}
}

const (
	IssueFieldTooLong    = "FIELD_TOO_LONG"
	IssueRequiredMissing = "REQUIRED_FIELD_MISSING"
	IssueInvalidURL      = "INVALID_URL"
	IssueInvalidValue    = "INVALID_VALUE"
)

type AdIssue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AdDisposition string

const (
	AdValid    AdDisposition = "valid"
	AdFallback AdDisposition = "fallback"
	AdSkipped  AdDisposition = "skipped"
)

type AdPreview struct {
	AdID        string        `json:"adId"`
	CampaignID  string        `json:"campaignId"`
	Disposition AdDisposition `json:"disposition"`
	Issues      []AdIssue     `json:"issues,omitempty"`
}

type PreviewBreakdown struct {
	Total    int `json:"total"`
	Valid    int `json:"valid"`
	Fallback int `json:"fallback"`
	Skipped  int `json:"skipped"`
}

type SyncPreview struct {
	SetID      string           `json:"setId,omitempty"`
	Breakdown  PreviewBreakdown `json:"breakdown"`
	Ads        []AdPreview      `json:"ads"`
	Warnings   []string         `json:"warnings"`
	CanProceed bool             `json:"canProceed"`
}
