package handlers

import (
	"context"

	"research-blender-api/internal/transcript"
)

// TranscriptFetcher retrieves a transcript for a validated video ID.
// *transcript.Fetcher satisfies it.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) (*transcript.Result, error)
}

type Handlers struct {
	fetcher TranscriptFetcher
}

func New(fetcher TranscriptFetcher) *Handlers {
	return &Handlers{
		fetcher: fetcher,
	}
}
