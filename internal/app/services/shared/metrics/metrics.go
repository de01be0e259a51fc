package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels shared by API calls and form submissions.
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation"
	OutcomeNetwork    = "network"
	OutcomeNotFound   = "not_found"
	OutcomeServer     = "server"
	OutcomeAuth       = "auth"
	OutcomeGeneric    = "generic"
)

// WebsiteMetrics exposes counters and histograms for the website and its
// calls to the backend API. A nil *WebsiteMetrics records nothing.
type WebsiteMetrics struct {
	apiRequestsTotal      *prometheus.CounterVec
	apiRequestLatency     *prometheus.HistogramVec
	formSubmissionsTotal  *prometheus.CounterVec
	httpRequestsTotal     *prometheus.CounterVec
	httpRequestLatency    *prometheus.HistogramVec
	submissionEventsTotal *prometheus.CounterVec
}

func NewWebsiteMetrics(reg prometheus.Registerer, namespace string) *WebsiteMetrics {
	m := &WebsiteMetrics{
		apiRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total backend API requests by operation and outcome",
		}, []string{"operation", "outcome"}),
		apiRequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Latency of backend API requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		formSubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "forms",
			Name:      "submissions_total",
			Help:      "Total form submissions by form and outcome",
		}, []string{"form", "outcome"}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total inbound HTTP requests",
		}, []string{"method", "route", "status"}),
		httpRequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of inbound HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		submissionEventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Total submission events published to the message queue",
		}, []string{"form", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.apiRequestsTotal,
		m.apiRequestLatency,
		m.formSubmissionsTotal,
		m.httpRequestsTotal,
		m.httpRequestLatency,
		m.submissionEventsTotal,
	)
	return m
}

func (m *WebsiteMetrics) ObserveAPIRequest(operation, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.apiRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.apiRequestLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *WebsiteMetrics) ObserveFormSubmission(form, outcome string) {
	if m == nil {
		return
	}
	m.formSubmissionsTotal.WithLabelValues(form, outcome).Inc()
}

func (m *WebsiteMetrics) ObserveHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	m.httpRequestLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *WebsiteMetrics) ObserveSubmissionEvent(form string, published bool) {
	if m == nil {
		return
	}
	status := "published"
	if !published {
		status = "failed"
	}
	m.submissionEventsTotal.WithLabelValues(form, status).Inc()
}
