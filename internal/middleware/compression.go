package middleware

import (
	"compress/gzip"
	"net/http"

	"github.com/gorilla/handlers"
)

// CompressionConfig holds configuration for the compression middleware
type CompressionConfig struct {
	// Level is the gzip compression level (gzip.BestSpeed to gzip.BestCompression)
	Level int
}

// DefaultCompressionConfig returns sensible defaults for compression
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		Level: gzip.DefaultCompression,
	}
}

// Compression returns a middleware that gzip- or deflate-compresses
// responses for clients that accept it. Transcript payloads for long videos
// run to hundreds of kilobytes of JSON.
func Compression(config CompressionConfig) func(http.Handler) http.Handler {
	level := config.Level
	if level < gzip.HuffmanOnly || level > gzip.BestCompression {
		level = gzip.DefaultCompression
	}

	return func(next http.Handler) http.Handler {
		return handlers.CompressHandlerLevel(next, level)
	}
}
