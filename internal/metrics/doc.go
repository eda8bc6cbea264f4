// Package metrics provides Prometheus instrumentation for the research
// blender API.
//
// All metrics are registered with the default registry through promauto
// and prefixed with "research_blender_".
//
// # Metric Categories
//
// HTTP metrics:
//   - HTTPRequestsTotal: Counter of requests by method, path, and status
//   - HTTPRequestDuration: Histogram of request duration by method and path
//   - HTTPRequestsInFlight: Gauge of currently processing requests
//   - HTTPPanicsRecovered: Counter of recovered handler panics
//
// API metrics:
//   - APIErrorsTotal: Counter of error envelopes by endpoint and status
//   - VideoIDExtractionsTotal: Counter of identifier extractions by result
//
// Transcript metrics:
//   - TranscriptFetchesTotal: Counter by tier (primary/fallback) and status
//   - TranscriptFetchDuration: Histogram of tier duration
//   - TranscriptSegments: Histogram of segment counts
//
// Provider metrics:
//   - ProviderRequestsTotal: Counter of outbound requests by operation and status
//   - ProviderRetriesTotal: Counter of retried outbound requests
//
// # Usage
//
// Mount promhttp.Handler() on the metrics listener:
//
//	mux.Handle("/metrics", promhttp.Handler())
//
// Example PromQL, fallback share of successful fetches:
//
//	sum(rate(research_blender_transcript_fetches_total{tier="fallback",status="success"}[5m])) /
//	sum(rate(research_blender_transcript_fetches_total{status="success"}[5m]))
package metrics
