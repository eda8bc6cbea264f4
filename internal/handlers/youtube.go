package handlers

import (
	"net/http"

	"research-blender-api/internal/logging"
	"research-blender-api/internal/metrics"
	"research-blender-api/internal/transcript"
	"research-blender-api/internal/videoid"
)

const (
	endpointTranscript = "transcript"
	endpointInfo       = "info"
)

// VideoRequest is the body of the YouTube endpoints.
type VideoRequest struct {
	URL string `json:"url"`
}

// TranscriptResponse is returned by GetTranscript on success.
type TranscriptResponse struct {
	Success    bool                 `json:"success"`
	VideoID    string               `json:"video_id"`
	Transcript string               `json:"transcript"`
	Segments   []transcript.Segment `json:"segments"`
}

// InfoResponse is returned by GetInfo on success.
type InfoResponse struct {
	Success   bool   `json:"success"`
	VideoID   string `json:"video_id"`
	Thumbnail string `json:"thumbnail"`
}

// GetTranscript handles POST /api/youtube/transcript.
func (h *Handlers) GetTranscript(w http.ResponseWriter, r *http.Request) {
	var req VideoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logging.Warn("transcript: unreadable request body: %v", err)
		writeError(w, endpointTranscript, classifyFetchError(err))
		return
	}

	id, ok := extractVideoID(req.URL)
	if !ok {
		writeError(w, endpointTranscript, APIError{http.StatusBadRequest, msgInvalidTranscriptURL})
		return
	}

	result, err := h.fetcher.Fetch(r.Context(), id)
	if err != nil {
		apiErr := classifyFetchError(err)
		logging.Warn("transcript: %s failed (%d): %v", id, apiErr.Status, err)
		writeError(w, endpointTranscript, apiErr)
		return
	}

	logging.Debug("transcript: %s returned %d segments", id, len(result.Segments))
	writeJSONStatus(w, http.StatusOK, TranscriptResponse{
		Success:    true,
		VideoID:    result.VideoID,
		Transcript: result.FullText,
		Segments:   result.Segments,
	})
}

// GetInfo handles POST /api/youtube/info. It validates the URL only.
func (h *Handlers) GetInfo(w http.ResponseWriter, r *http.Request) {
	var req VideoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logging.Warn("info: unreadable request body: %v", err)
		writeError(w, endpointInfo, APIError{http.StatusInternalServerError, err.Error()})
		return
	}

	id, ok := extractVideoID(req.URL)
	if !ok {
		writeError(w, endpointInfo, APIError{http.StatusBadRequest, msgInvalidInfoURL})
		return
	}

	writeJSONStatus(w, http.StatusOK, InfoResponse{
		Success:   true,
		VideoID:   id,
		Thumbnail: videoid.ThumbnailURL(id),
	})
}

func extractVideoID(raw string) (string, bool) {
	id, ok := videoid.Extract(raw)
	if ok {
		metrics.VideoIDExtractionsTotal.WithLabelValues("ok").Inc()
	} else {
		metrics.VideoIDExtractionsTotal.WithLabelValues("invalid").Inc()
	}
	return id, ok
}
