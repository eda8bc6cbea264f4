// Package handlers provides HTTP request handlers for the research blender API.
//
// It includes handlers for:
//   - YouTube transcript retrieval with user-facing error classification
//   - Video URL validation and thumbnail lookup
//   - Health checks and build information
//   - Prometheus metrics exposition
package handlers
