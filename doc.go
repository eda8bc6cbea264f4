// Research Blender API is a small HTTP service that validates YouTube URLs
// and fetches video transcripts for a browser frontend.
//
// # Endpoints
//
//   - GET  /api/health: liveness payload {"status":"ok","service":"research-blender-api"}
//   - POST /api/youtube/transcript: {"url": ...} to the transcript text and timed segments
//   - POST /api/youtube/info: {"url": ...} to the video ID and thumbnail URL
//   - GET  /api/version: build information
//   - GET  /metrics: Prometheus metrics, served on METRICS_PORT
//
// Transcripts are fetched in two tiers: first a track in one of the
// preferred languages (TRANSCRIPT_LANGUAGES), then the first track YouTube
// lists. Failures are reported as {"success":false,"error":...} with a 404
// for disabled, unavailable or missing transcripts and a 500 otherwise.
//
// # Application Lifecycle
//
//  1. Configuration Loading: Reads environment variables (see package startup)
//  2. Provider Setup: Builds the YouTube client and two-tier fetcher
//  3. HTTP Server Setup: Routes, middleware chain and metrics listener
//  4. Graceful Shutdown: Handles SIGINT/SIGTERM within SHUTDOWN_TIMEOUT
//
// # Build Information
//
// Version information is injected at build time using ldflags:
//
//	go build -ldflags "-X research-blender-api/internal/startup.Version=1.0.0 \
//	  -X research-blender-api/internal/startup.Commit=$(git rev-parse HEAD) \
//	  -X research-blender-api/internal/startup.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package main
