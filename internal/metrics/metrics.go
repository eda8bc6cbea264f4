package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "research_blender_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "research_blender_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "research_blender_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	HTTPPanicsRecovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "research_blender_http_panics_recovered_total",
			Help: "Total number of handler panics converted into 500 responses",
		},
	)
)

// API metrics
var (
	APIErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "research_blender_api_errors_total",
			Help: "Total number of JSON error envelopes returned, by endpoint and HTTP status",
		},
		[]string{"endpoint", "status"},
	)

	VideoIDExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "research_blender_video_id_extractions_total",
			Help: "Total number of video identifier extractions by result",
		},
		[]string{"result"}, // "ok" or "invalid"
	)
)

// Transcript metrics
var (
	TranscriptFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "research_blender_transcript_fetches_total",
			Help: "Total number of transcript fetch attempts by tier and status",
		},
		[]string{"tier", "status"}, // tier: "primary", "fallback"
	)

	TranscriptFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "research_blender_transcript_fetch_duration_seconds",
			Help:    "Duration of a transcript fetch tier in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"tier"},
	)

	TranscriptSegments = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "research_blender_transcript_segments",
			Help:    "Number of segments in successfully fetched transcripts",
			Buckets: []float64{0, 10, 50, 100, 250, 500, 1000, 2500, 5000},
		},
	)
)

// Provider metrics
var (
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "research_blender_provider_requests_total",
			Help: "Total number of outbound requests to the transcript provider",
		},
		[]string{"operation", "status"},
	)

	ProviderRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "research_blender_provider_retries_total",
			Help: "Total number of retried outbound provider requests",
		},
		[]string{"operation"},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "research_blender_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)

	UptimeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "research_blender_uptime_seconds",
			Help: "Seconds since the process started",
		},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}
