package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ActionMetrics counts state-store dispatches by action name.
type ActionMetrics struct {
	dispatched *prometheus.CounterVec
	dropped    *prometheus.CounterVec
}

// NewActionMetrics registers the dispatch counters on the provided registerer.
func NewActionMetrics(reg prometheus.Registerer) *ActionMetrics {
	if reg == nil {
		return &ActionMetrics{}
	}
	dispatched := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "state_actions_dispatched_total",
		Help: "Actions applied by the state store.",
	}, []string{"action"})
	dropped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "state_actions_noop_total",
		Help: "Actions that left the state unchanged.",
	}, []string{"action"})
	reg.MustRegister(dispatched, dropped)
	return &ActionMetrics{dispatched: dispatched, dropped: dropped}
}

// IncDispatched counts an applied action.
func (a *ActionMetrics) IncDispatched(action string) {
	if a == nil || a.dispatched == nil {
		return
	}
	a.dispatched.WithLabelValues(normalizeLabel(action)).Inc()
}

// IncNoop counts an action that degraded to a no-op.
func (a *ActionMetrics) IncNoop(action string) {
	if a == nil || a.dropped == nil {
		return
	}
	a.dropped.WithLabelValues(normalizeLabel(action)).Inc()
}

// CronJobMetrics records metadata for scheduled jobs.
type CronJobMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewCronJobMetrics registers the cron job metrics on the provided registerer.
func NewCronJobMetrics(reg prometheus.Registerer) *CronJobMetrics {
	if reg == nil {
		return &CronJobMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "job_duration_seconds",
		Help:    "Duration of cron jobs in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "job_success",
		Help: "Successful cron job executions.",
	}, []string{"job"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "job_failure",
		Help: "Failed cron job executions.",
	}, []string{"job"})
	reg.MustRegister(duration, success, failure)
	return &CronJobMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named job.
func (c *CronJobMetrics) ObserveDuration(job string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(job)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named job.
func (c *CronJobMetrics) IncSuccess(job string) {
	if c == nil || c.success == nil {
		return
	}
	c.success.WithLabelValues(normalizeLabel(job)).Inc()
}

// IncFailure increments the failure counter for the named job.
func (c *CronJobMetrics) IncFailure(job string) {
	if c == nil || c.failure == nil {
		return
	}
	c.failure.WithLabelValues(normalizeLabel(job)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
