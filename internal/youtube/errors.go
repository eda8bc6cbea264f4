package youtube

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the client.
var (
	ErrVideoUnavailable    = errors.New("video is unavailable")
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
	ErrRequestBlocked      = errors.New("request blocked by YouTube")
	ErrAgeRestricted       = errors.New("video is age restricted")
	ErrPoTokenRequired     = errors.New("caption track requires a PO token")
	ErrConsentCookie       = errors.New("failed to pass the YouTube consent page")
	ErrAPIKeyNotFound      = errors.New("innertube API key not found in watch page")
)

// NoTranscriptFoundError means none of the requested languages has a track.
type NoTranscriptFoundError struct {
	VideoID   string
	Requested []string
	Available []string
}

func (e *NoTranscriptFoundError) Error() string {
	available := "none"
	if len(e.Available) > 0 {
		available = strings.Join(e.Available, ", ")
	}
	return fmt.Sprintf("no transcript found for video %s in languages %v (available: %s)",
		e.VideoID, e.Requested, available)
}

// UnplayableError carries the playability reason YouTube gave for a video.
type UnplayableError struct {
	VideoID string
	Status  string
	Reason  string
}

func (e *UnplayableError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("video %s is unplayable (status %s)", e.VideoID, e.Status)
	}
	return fmt.Sprintf("video %s is unplayable: %s", e.VideoID, e.Reason)
}

// HTTPError is a non-retryable, unexpected HTTP status from YouTube.
type HTTPError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("youtube %s: unexpected status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("youtube %s: unexpected status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// checkPlayability maps a non-OK playability status to an error.
func checkPlayability(videoID string, ps *playabilityStatus) error {
	if ps == nil || ps.Status == "" || ps.Status == "OK" {
		return nil
	}

	reason := strings.ToLower(ps.Reason)
	switch ps.Status {
	case "LOGIN_REQUIRED":
		if strings.Contains(reason, "not a bot") {
			return ErrRequestBlocked
		}
		if strings.Contains(reason, "inappropriate") || strings.Contains(reason, "confirm your age") {
			return ErrAgeRestricted
		}
	case "ERROR":
		if strings.Contains(reason, "unavailable") {
			return ErrVideoUnavailable
		}
	}

	return &UnplayableError{VideoID: videoID, Status: ps.Status, Reason: ps.Reason}
}
