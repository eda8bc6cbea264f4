package metrics

// Provider operation labels.
const (
	OpWatchPage = "watch_page"
	OpPlayer    = "player"
	OpTimedText = "timedtext"
)

// Transcript tier labels.
const (
	TierPrimary  = "primary"
	TierFallback = "fallback"
)

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	for _, tier := range []string{TierPrimary, TierFallback} {
		TranscriptFetchesTotal.WithLabelValues(tier, "success")
		TranscriptFetchesTotal.WithLabelValues(tier, "error")
		TranscriptFetchDuration.WithLabelValues(tier)
	}

	for _, op := range []string{OpWatchPage, OpPlayer, OpTimedText} {
		ProviderRequestsTotal.WithLabelValues(op, "success")
		ProviderRequestsTotal.WithLabelValues(op, "error")
		ProviderRetriesTotal.WithLabelValues(op)
	}

	for _, result := range []string{"ok", "invalid"} {
		VideoIDExtractionsTotal.WithLabelValues(result)
	}

	for _, endpoint := range []string{"transcript", "info"} {
		for _, status := range []string{"400", "404", "500"} {
			APIErrorsTotal.WithLabelValues(endpoint, status)
		}
	}
}
