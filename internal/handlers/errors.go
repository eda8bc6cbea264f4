package handlers

import (
	"net/http"
	"strings"
)

// User-facing messages.
const (
	msgInvalidTranscriptURL = "Invalid YouTube URL or video ID"
	msgInvalidInfoURL       = "Invalid YouTube URL"
	msgTranscriptsDisabled  = "Transcripts are disabled for this video"
	msgVideoUnavailable     = "Video is unavailable"
	msgNoTranscriptFound    = "No transcript found for this video"
	msgFetchFailedPrefix    = "Could not fetch transcript: "
)

// APIError is an HTTP status and message built at the request boundary.
type APIError struct {
	Status  int
	Message string
}

// classification rules, checked in order against the lowercased error text.
var fetchErrorRules = []struct {
	substr string
	apiErr APIError
}{
	{"disabled", APIError{http.StatusNotFound, msgTranscriptsDisabled}},
	{"unavailable", APIError{http.StatusNotFound, msgVideoUnavailable}},
	{"no transcript", APIError{http.StatusNotFound, msgNoTranscriptFound}},
}

// classifyFetchError maps a transcript failure to an APIError by
// case-insensitive substring inspection of its message. The first matching
// rule wins; anything else is a 500 carrying the full message.
func classifyFetchError(err error) APIError {
	msg := err.Error()
	lower := strings.ToLower(msg)

	for _, rule := range fetchErrorRules {
		if strings.Contains(lower, rule.substr) {
			return rule.apiErr
		}
	}

	return APIError{Status: http.StatusInternalServerError, Message: msgFetchFailedPrefix + msg}
}
