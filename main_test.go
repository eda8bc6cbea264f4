package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"research-blender-api/internal/handlers"
	"research-blender-api/internal/logging"
	"research-blender-api/internal/middleware"
	"research-blender-api/internal/startup"
	"research-blender-api/internal/transcript"
)

// =============================================================================
// Fake Provider
// =============================================================================

type fakeProvider struct {
	segments []transcript.Segment
	fetchErr error
	tracks   []transcript.Track
	listErr  error
}

func (p *fakeProvider) Fetch(context.Context, string, []string) ([]transcript.Segment, error) {
	return p.segments, p.fetchErr
}

func (p *fakeProvider) List(context.Context, string) ([]transcript.Track, error) {
	return p.tracks, p.listErr
}

func (p *fakeProvider) FetchTrack(context.Context, transcript.Track) ([]transcript.Segment, error) {
	return p.segments, nil
}

func newTestServer(t *testing.T, p transcript.Provider) *httptest.Server {
	t.Helper()

	logging.SetOutput(io.Discard)
	t.Cleanup(func() { logging.SetOutput(os.Stderr) })

	config := &startup.Config{
		LogHealthChecks:    true,
		CORSAllowedOrigins: []string{"*"},
	}

	h := handlers.New(transcript.NewFetcher(p))
	srv := httptest.NewServer(buildHandler(setupRouter(h), config))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// =============================================================================
// Router Tests
// =============================================================================

func TestSetupRouterRoutes(t *testing.T) {
	routes, err := startup.GetRoutes(setupRouter(handlers.New(nil)))
	if err != nil {
		t.Fatalf("GetRoutes() error = %v", err)
	}

	want := map[string]bool{
		"GET /api/health":              true,
		"HEAD /api/health":             true,
		"GET /api/version":             true,
		"POST /api/youtube/transcript": true,
		"POST /api/youtube/info":       true,
	}

	got := make(map[string]bool)
	for _, r := range routes {
		if r.Method != "*" {
			got[r.Method+" "+r.Path] = true
		}
	}
	for route := range want {
		if !got[route] {
			t.Errorf("Expected route %s to be registered (got %v)", route, got)
		}
	}
}

// =============================================================================
// End-to-end Tests
// =============================================================================

func TestTranscriptEndToEnd(t *testing.T) {
	srv := newTestServer(t, &fakeProvider{segments: []transcript.Segment{
		{Start: 0, Duration: 1, Text: "one"},
		{Start: 1, Duration: 1, Text: "two"},
	}})

	resp := post(t, srv.URL+"/api/youtube/transcript", `{"url":"https://youtu.be/abcdefghijk"}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get(middleware.RequestIDHeader) == "" {
		t.Error("Expected X-Request-ID on response")
	}

	var body handlers.TranscriptResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !body.Success || body.VideoID != "abcdefghijk" || body.Transcript != "one two" || len(body.Segments) != 2 {
		t.Errorf("Unexpected response %+v", body)
	}
}

func TestTranscriptFallbackEmptyListing(t *testing.T) {
	srv := newTestServer(t, &fakeProvider{fetchErr: errors.New("no transcript found in languages [en]")})

	resp := post(t, srv.URL+"/api/youtube/transcript", `{"url":"abcdefghijk"}`)

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", resp.StatusCode)
	}

	var body handlers.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Success || body.Error != "No transcript found for this video" {
		t.Errorf("Unexpected response %+v", body)
	}
}

func TestInfoEndToEnd(t *testing.T) {
	srv := newTestServer(t, &fakeProvider{})

	resp := post(t, srv.URL+"/api/youtube/info", `{"url":"https://youtu.be/abcdefghijk"}`)

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	want := map[string]interface{}{
		"success":   true,
		"video_id":  "abcdefghijk",
		"thumbnail": "https://img.youtube.com/vi/abcdefghijk/maxresdefault.jpg",
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("Expected %s=%v, got %v", k, v, body[k])
		}
	}
}

func TestCORSPreflightEndToEnd(t *testing.T) {
	srv := newTestServer(t, &fakeProvider{})

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/youtube/transcript", http.NoBody)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected Access-Control-Allow-Origin *, got %q", got)
	}
}

func TestUnknownRouteReturnsJSON(t *testing.T) {
	srv := newTestServer(t, &fakeProvider{})

	resp, err := http.Get(srv.URL + "/api/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
}

func TestWrongMethodReturnsJSON(t *testing.T) {
	srv := newTestServer(t, &fakeProvider{})

	resp, err := http.Get(srv.URL + "/api/youtube/transcript")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", resp.StatusCode)
	}
}

func TestHealthEndToEnd(t *testing.T) {
	srv := newTestServer(t, &fakeProvider{})

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body handlers.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Status != "ok" || body.Service != "research-blender-api" {
		t.Errorf("Unexpected health payload %+v", body)
	}
}
