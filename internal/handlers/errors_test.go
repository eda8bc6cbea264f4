package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"research-blender-api/internal/transcript"
)

// =============================================================================
// classifyFetchError Tests
// =============================================================================

func TestClassifyFetchError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		msg         string
		wantStatus  int
		wantMessage string
	}{
		{"disabled", "Subtitles are disabled for this video", http.StatusNotFound, msgTranscriptsDisabled},
		{"disabled uppercase", "TRANSCRIPTS DISABLED", http.StatusNotFound, msgTranscriptsDisabled},
		{"unavailable", "The video is no longer available: Video Unavailable", http.StatusNotFound, msgVideoUnavailable},
		{"no transcript", "No transcript found for video x", http.StatusNotFound, msgNoTranscriptFound},
		{"no transcripts available", "No transcripts available", http.StatusNotFound, msgNoTranscriptFound},
		{"disabled beats unavailable", "video unavailable and captions disabled", http.StatusNotFound, msgTranscriptsDisabled},
		{"unavailable beats no transcript", "no transcript: unavailable", http.StatusNotFound, msgVideoUnavailable},
		{"other", "connection reset by peer", http.StatusInternalServerError, "Could not fetch transcript: connection reset by peer"},
		{"empty", "", http.StatusInternalServerError, "Could not fetch transcript: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifyFetchError(errors.New(tt.msg))
			if got.Status != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, got.Status)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("Expected message %q, got %q", tt.wantMessage, got.Message)
			}
		})
	}
}

func TestClassifyFetchErrorWrapped(t *testing.T) {
	t.Parallel()

	inner := fmt.Errorf("youtube player: %w", errors.New("server returned status 503"))
	err := &transcript.FetchError{VideoID: "abcdefghijk", Primary: errors.New("disabled"), Err: inner}

	got := classifyFetchError(err)
	if got.Status != http.StatusInternalServerError {
		t.Fatalf("Primary error must not influence classification, got %d", got.Status)
	}
	want := "Could not fetch transcript: Could not fetch transcript: youtube player: server returned status 503"
	if got.Message != want {
		t.Errorf("Expected %q, got %q", want, got.Message)
	}
}
