// Package metrics collects and exposes Prometheus metrics for the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics interface used by handlers and middleware.
// Labels never carry personal data: no dates, coordinates or session IDs.
type Recorder interface {
	RecordRequest(method, route string, status int, duration time.Duration)
	RecordSessionStarted()
	RecordPrediction(phase, status string)
	RecordCycleAdjustment(direction string, changed bool)
	RecordHelpShare(sos bool)
	RecordFeedback(feedbackType string)
	RecordRateLimited(route string)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	sessions        prometheus.Counter
	predictions     *prometheus.CounterVec
	adjustments     *prometheus.CounterVec
	helpShares      *prometheus.CounterVec
	feedback        *prometheus.CounterVec
	rateLimited     *prometheus.CounterVec
}

// Ensure Collector implements Recorder
var _ Recorder = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sakhi_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status_code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sakhi_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sakhi_tracker_sessions_started_total",
			Help: "Tracker sessions started.",
		}),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sakhi_cycle_predictions_total",
			Help: "Predictions served by resulting phase and status.",
		}, []string{"phase", "status"}),
		adjustments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sakhi_cycle_length_adjustments_total",
			Help: "Cycle length adjustments by direction and whether the value changed.",
		}, []string{"direction", "outcome"}),
		helpShares: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sakhi_help_location_shares_total",
			Help: "Location share messages built, split by SOS and plain shares.",
		}, []string{"kind"}),
		feedback: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sakhi_feedback_submissions_total",
			Help: "Feedback submissions by type.",
		}, []string{"type"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sakhi_rate_limited_requests_total",
			Help: "Requests rejected by the rate limiter.",
		}, []string{"route"}),
	}

	reg.MustRegister(
		c.requests,
		c.requestDuration,
		c.sessions,
		c.predictions,
		c.adjustments,
		c.helpShares,
		c.feedback,
		c.rateLimited,
	)

	return c
}

// RecordRequest records one served HTTP request.
func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordSessionStarted records a new tracker session.
func (c *Collector) RecordSessionStarted() {
	c.sessions.Inc()
}

// RecordPrediction records a served prediction. An empty phase is recorded as "none".
func (c *Collector) RecordPrediction(phase, status string) {
	if phase == "" {
		phase = "none"
	}
	if status == "" {
		status = "none"
	}
	c.predictions.WithLabelValues(phase, status).Inc()
}

// RecordCycleAdjustment records a +/- step; changed is false when the bound held the value.
func (c *Collector) RecordCycleAdjustment(direction string, changed bool) {
	outcome := "changed"
	if !changed {
		outcome = "clamped"
	}
	c.adjustments.WithLabelValues(direction, outcome).Inc()
}

// RecordHelpShare records a location share message.
func (c *Collector) RecordHelpShare(sos bool) {
	kind := "share"
	if sos {
		kind = "sos"
	}
	c.helpShares.WithLabelValues(kind).Inc()
}

// RecordFeedback records a feedback submission.
func (c *Collector) RecordFeedback(feedbackType string) {
	c.feedback.WithLabelValues(feedbackType).Inc()
}

// RecordRateLimited records a request rejected with 429.
func (c *Collector) RecordRateLimited(route string) {
	c.rateLimited.WithLabelValues(route).Inc()
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop is a Recorder that discards everything, used when metrics are disabled.
type Nop struct{}

func (Nop) RecordRequest(string, string, int, time.Duration) {}
func (Nop) RecordSessionStarted()                            {}
func (Nop) RecordPrediction(string, string)                  {}
func (Nop) RecordCycleAdjustment(string, bool)               {}
func (Nop) RecordHelpShare(bool)                             {}
func (Nop) RecordFeedback(string)                            {}
func (Nop) RecordRateLimited(string)                         {}
