package transcript

import (
	"context"
	"time"

	"research-blender-api/internal/logging"
	"research-blender-api/internal/metrics"
)

// DefaultLanguages is the primary tier's preference list.
var DefaultLanguages = []string{"en", "en-US", "en-GB"}

// Fetcher implements the two-tier retrieval strategy over a Provider.
type Fetcher struct {
	provider  Provider
	languages []string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithLanguages replaces the primary tier's preference list. An empty list
// keeps the default.
func WithLanguages(languages ...string) Option {
	return func(f *Fetcher) {
		if len(languages) > 0 {
			f.languages = append([]string(nil), languages...)
		}
	}
}

// NewFetcher creates a Fetcher backed by provider.
func NewFetcher(provider Provider, opts ...Option) *Fetcher {
	f := &Fetcher{
		provider:  provider,
		languages: append([]string(nil), DefaultLanguages...),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Languages returns the primary tier's preference list.
func (f *Fetcher) Languages() []string {
	return append([]string(nil), f.languages...)
}

// Fetch retrieves the transcript for videoID. Any error returned is a
// *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, videoID string) (*Result, error) {
	segments, primaryErr := f.fetchPrimary(ctx, videoID)
	if primaryErr == nil {
		return f.finish(videoID, segments), nil
	}

	logging.Warn("transcript: preferred-language fetch failed for %s, falling back to first listed track: %v",
		videoID, primaryErr)

	segments, err := f.fetchFallback(ctx, videoID)
	if err != nil {
		logging.Warn("transcript: fallback failed for %s: %v", videoID, err)
		return nil, &FetchError{VideoID: videoID, Primary: primaryErr, Err: err}
	}

	return f.finish(videoID, segments), nil
}

func (f *Fetcher) fetchPrimary(ctx context.Context, videoID string) ([]Segment, error) {
	start := time.Now()
	segments, err := f.provider.Fetch(ctx, videoID, f.languages)
	observeTier(metrics.TierPrimary, start, err)
	return segments, err
}

func (f *Fetcher) fetchFallback(ctx context.Context, videoID string) (segments []Segment, err error) {
	start := time.Now()
	defer func() { observeTier(metrics.TierFallback, start, err) }()

	tracks, err := f.provider.List(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, ErrNoTranscripts
	}

	// The first listed track is taken regardless of its language.
	track := tracks[0]
	logging.Debug("transcript: fallback using track %s (generated=%v) for %s",
		track.LanguageCode, track.IsGenerated, videoID)

	return f.provider.FetchTrack(ctx, track)
}

func (f *Fetcher) finish(videoID string, segments []Segment) *Result {
	metrics.TranscriptSegments.Observe(float64(len(segments)))
	return NewResult(videoID, segments)
}

func observeTier(tier string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.TranscriptFetchesTotal.WithLabelValues(tier, status).Inc()
	metrics.TranscriptFetchDuration.WithLabelValues(tier).Observe(time.Since(start).Seconds())
}
