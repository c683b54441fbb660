package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"campaign_syncer/internal/breaker"
	"campaign_syncer/internal/domain"
)

// Metrics holds all Prometheus metrics for the syncer. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	CampaignSyncsTotal  *prometheus.CounterVec
	SetSyncDuration     prometheus.Histogram
	SetSyncsTotal       *prometheus.CounterVec
	PauseResumeTotal    *prometheus.CounterVec
	ConflictPollTotal   *prometheus.CounterVec
	ConflictPollErrors  *prometheus.CounterVec
	BreakerState        *prometheus.GaugeVec
	BreakerTransitions  *prometheus.CounterVec
	EventsPublishFailed prometheus.Counter

	registry *prometheus.Registry
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		CampaignSyncsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_syncer_campaign_syncs_total",
				Help: "Campaign sync attempts by platform and outcome",
			},
			[]string{"platform", "outcome"},
		),
		SetSyncDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "campaign_syncer_set_sync_duration_seconds",
				Help:    "Duration of campaign set syncs",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
		),
		SetSyncsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_syncer_set_syncs_total",
				Help: "Campaign set syncs by result",
			},
			[]string{"result"},
		),
		PauseResumeTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_syncer_pause_resume_total",
				Help: "Campaign pause/resume calls by action and outcome",
			},
			[]string{"action", "outcome"},
		),
		ConflictPollTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_syncer_conflict_poll_campaigns_total",
				Help: "Campaigns classified by the conflict poller",
			},
			[]string{"platform", "outcome"},
		),
		ConflictPollErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_syncer_conflict_poll_errors_total",
				Help: "Errors raised while polling platform campaign state",
			},
			[]string{"platform"},
		),
		BreakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "campaign_syncer_circuit_breaker_state",
				Help: "Circuit breaker state per key (0=closed, 1=open, 2=half-open)",
			},
			[]string{"key"},
		),
		BreakerTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_syncer_circuit_breaker_transitions_total",
				Help: "Circuit breaker state transitions",
			},
			[]string{"key", "to"},
		),
		EventsPublishFailed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "campaign_syncer_events_publish_failed_total",
				Help: "Sync events that could not be published",
			},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.CampaignSyncsTotal,
		m.SetSyncDuration,
		m.SetSyncsTotal,
		m.PauseResumeTotal,
		m.ConflictPollTotal,
		m.ConflictPollErrors,
		m.BreakerState,
		m.BreakerTransitions,
		m.EventsPublishFailed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveCampaignSync(p domain.Platform, r *domain.CampaignSyncResult) {
	if m == nil {
		return
	}
	outcome := "failed"
	switch {
	case r.Success:
		outcome = "synced"
	case r.Skipped:
		outcome = "skipped"
	}
	m.CampaignSyncsTotal.WithLabelValues(string(p), outcome).Inc()
}

func (m *Metrics) ObserveSetSync(r *domain.SyncSetResult, d time.Duration) {
	if m == nil {
		return
	}
	result := "success"
	if !r.Success {
		result = "failure"
	}
	m.SetSyncsTotal.WithLabelValues(result).Inc()
	m.SetSyncDuration.Observe(d.Seconds())
}

func (m *Metrics) ObservePauseResume(action string, ok bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	m.PauseResumeTotal.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) ObservePoll(r *domain.PollResult) {
	if m == nil {
		return
	}
	p := string(r.Platform)
	m.ConflictPollTotal.WithLabelValues(p, "updated").Add(float64(r.Updated))
	m.ConflictPollTotal.WithLabelValues(p, "conflict").Add(float64(r.Conflicts))
	m.ConflictPollTotal.WithLabelValues(p, "unchanged").Add(float64(r.Unchanged))
	m.ConflictPollTotal.WithLabelValues(p, "deleted").Add(float64(r.Deleted))
	m.ConflictPollTotal.WithLabelValues(p, "skipped").Add(float64(r.Skipped))
	m.ConflictPollErrors.WithLabelValues(p).Add(float64(r.Errors))
}

// BreakerStateChanged matches breaker.Config.OnStateChange.
func (m *Metrics) BreakerStateChanged(key string, _, to breaker.State) {
	if m == nil {
		return
	}
	m.BreakerState.WithLabelValues(key).Set(float64(to))
	m.BreakerTransitions.WithLabelValues(key, to.String()).Inc()
}

func (m *Metrics) PublishFailed() {
	if m == nil {
		return
	}
	m.EventsPublishFailed.Inc()
}
