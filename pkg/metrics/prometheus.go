// Package metrics provides Prometheus metrics for the conference
// targeting service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	registry  prometheus.Registerer

	// Core business metrics
	contactsUploaded   prometheus.Counter
	contactsScored     prometheus.Counter
	analysisRuns       prometheus.Counter
	meetingSuggestions prometheus.Counter

	// Collection sizes
	totalContacts prometheus.Gauge
	totalMeetings prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Collaborator metrics
	researchRequests prometheus.Counter
	researchErrors   prometheus.Counter
	researchLatency  prometheus.Histogram

	// Error metrics
	errorsByEndpoint *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "medahead",
		subsystem: "targeting",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.contactsUploaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "contacts_uploaded_total",
		Help:      "Total number of contacts ingested from uploads",
	})
	m.contactsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "contacts_scored_total",
		Help:      "Total number of contacts scored by analysis runs",
	})
	m.analysisRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_runs_total",
		Help:      "Total number of contact analysis invocations",
	})
	m.meetingSuggestions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "meeting_suggestions_total",
		Help:      "Total number of meeting recommendations generated",
	})

	m.totalContacts = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_contacts",
		Help:      "Current number of contacts in the store",
	})
	m.totalMeetings = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_meetings",
		Help:      "Current number of stored meeting recommendations",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.buckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.researchRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "research_requests_total",
		Help:      "Total number of LLM research calls attempted",
	})
	m.researchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "research_errors_total",
		Help:      "Total number of failed LLM research calls",
	})
	m.researchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "research_latency_milliseconds",
		Help:      "Histogram of LLM research call latency in milliseconds",
		Buckets:   m.buckets,
	})

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of error responses by endpoint and type",
		},
		[]string{"endpoint", "method", "error_type"},
	)
}

// Package-level helpers that operate on the global manager.

// RecordContactsUploaded increments the uploaded-contacts counter by n.
func RecordContactsUploaded(n int) {
	globalManager.contactsUploaded.Add(float64(n))
}

// RecordContactsScored increments the scored-contacts counter by n.
func RecordContactsScored(n int) {
	globalManager.contactsScored.Add(float64(n))
}

// RecordAnalysisRun increments the analysis-run counter.
func RecordAnalysisRun() {
	globalManager.analysisRuns.Inc()
}

// RecordMeetingSuggestions increments the suggestions counter by n.
func RecordMeetingSuggestions(n int) {
	globalManager.meetingSuggestions.Add(float64(n))
}

// UpdateTotalContacts sets the contact collection size gauge.
func UpdateTotalContacts(n int) {
	globalManager.totalContacts.Set(float64(n))
}

// UpdateTotalMeetings sets the meeting collection size gauge.
func UpdateTotalMeetings(n int) {
	globalManager.totalMeetings.Set(float64(n))
}

// RecordHTTPRequest records a completed HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordResearchRequest increments the LLM call counter.
func RecordResearchRequest() {
	globalManager.researchRequests.Inc()
}

// RecordResearchError increments the LLM failure counter.
func RecordResearchError() {
	globalManager.researchErrors.Inc()
}

// RecordResearchLatency records LLM call latency in milliseconds.
func RecordResearchLatency(latencyMs float64) {
	globalManager.researchLatency.Observe(latencyMs)
}

// RecordErrorByEndpoint records an error response by endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// GetRegistry returns the custom registry used for metric exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
