package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORSConfig holds configuration for the CORS middleware
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// DefaultCORSConfig allows browser frontends on any origin.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}
}

// CORS returns a middleware answering preflight requests and setting
// Access-Control-* headers. It must wrap the router itself, since the
// router has no OPTIONS routes.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	origins := config.AllowedOrigins
	if len(origins) == 0 {
		origins = DefaultCORSConfig().AllowedOrigins
	}

	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods(config.AllowedMethods),
		handlers.AllowedHeaders(config.AllowedHeaders),
		handlers.ExposedHeaders([]string{RequestIDHeader}),
	)
}
