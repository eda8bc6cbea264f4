// Package middleware provides the HTTP middleware chain wrapped around the
// API router: panic recovery, request IDs, CORS, W3C access logging,
// Prometheus request metrics and response compression.
package middleware
