package transcript

import (
	"context"
	"strings"
)

// Segment is one timed caption unit.
type Segment struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// Track is a fetchable caption track handle returned by a provider listing.
type Track struct {
	VideoID        string
	LanguageCode   string
	Language       string
	IsGenerated    bool
	IsTranslatable bool
	BaseURL        string
}

// Result is a normalized transcript. FullText is always the space-joined
// concatenation of the segment texts in order.
type Result struct {
	VideoID  string    `json:"video_id"`
	FullText string    `json:"transcript"`
	Segments []Segment `json:"segments"`
}

// Provider retrieves transcripts from an external source.
type Provider interface {
	// Fetch returns the segments of the best track matching languages,
	// tried in order.
	Fetch(ctx context.Context, videoID string, languages []string) ([]Segment, error)

	// List returns every track available for the video in provider order.
	List(ctx context.Context, videoID string) ([]Track, error)

	// FetchTrack returns the segments of a track obtained from List.
	FetchTrack(ctx context.Context, track Track) ([]Segment, error)
}

// NewResult builds a Result, keeping segment order and deriving FullText.
func NewResult(videoID string, segments []Segment) *Result {
	if segments == nil {
		segments = []Segment{}
	}

	texts := make([]string, len(segments))
	for i, seg := range segments {
		texts[i] = seg.Text
	}

	return &Result{
		VideoID:  videoID,
		FullText: strings.Join(texts, " "),
		Segments: segments,
	}
}
