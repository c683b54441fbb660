package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"campaign_syncer/internal/breaker"
	"campaign_syncer/internal/domain"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveCampaignSync(domain.PlatformReddit, &domain.CampaignSyncResult{Success: true})
		m.ObserveSetSync(&domain.SyncSetResult{}, time.Second)
		m.ObservePauseResume("pause", true)
		m.ObservePoll(&domain.PollResult{})
		m.BreakerStateChanged("reddit", breaker.StateClosed, breaker.StateOpen)
		m.PublishFailed()
	})
}

func TestObserveCampaignSync(t *testing.T) {
	m := New()

	m.ObserveCampaignSync(domain.PlatformReddit, &domain.CampaignSyncResult{Success: true})
	m.ObserveCampaignSync(domain.PlatformReddit, &domain.CampaignSyncResult{Success: true})
	m.ObserveCampaignSync(domain.PlatformReddit, &domain.CampaignSyncResult{Skipped: true})
	m.ObserveCampaignSync(domain.PlatformGoogle, &domain.CampaignSyncResult{})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CampaignSyncsTotal.WithLabelValues("reddit", "synced")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CampaignSyncsTotal.WithLabelValues("reddit", "skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CampaignSyncsTotal.WithLabelValues("google", "failed")))
}

func TestObservePoll(t *testing.T) {
	m := New()

	m.ObservePoll(&domain.PollResult{Platform: domain.PlatformReddit, Updated: 2, Conflicts: 1, Errors: 3})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ConflictPollTotal.WithLabelValues("reddit", "updated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ConflictPollTotal.WithLabelValues("reddit", "conflict")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ConflictPollErrors.WithLabelValues("reddit")))
}

func TestBreakerStateChanged(t *testing.T) {
	m := New()

	m.BreakerStateChanged("reddit", breaker.StateClosed, breaker.StateOpen)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BreakerState.WithLabelValues("reddit")))

	m.BreakerStateChanged("reddit", breaker.StateOpen, breaker.StateHalfOpen)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BreakerState.WithLabelValues("reddit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BreakerTransitions.WithLabelValues("reddit", "open")))
}

func TestRegistryGathers(t *testing.T) {
	m := New()
	m.ObserveSetSync(&domain.SyncSetResult{Success: true}, 2*time.Second)

	families, err := m.Registry().Gather()
	assert.NoError(t, err)
	assert.NotEmpty(t, families)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SetSyncsTotal.WithLabelValues("success")))
}
