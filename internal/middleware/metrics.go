package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"

	"research-blender-api/internal/metrics"
)

const unmatchedRoute = "unmatched"

// MetricsConfig holds configuration for the metrics middleware
type MetricsConfig struct {
	// SkipPaths are paths that should not be recorded
	SkipPaths []string
}

// DefaultMetricsConfig returns the default metrics configuration
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		SkipPaths: []string{"/metrics", "/api/health"},
	}
}

// Metrics returns a middleware that records Prometheus metrics. It must
// wrap router, the gorilla/mux router serving the request, so that paths
// are labelled by route template instead of raw URL.
func Metrics(config MetricsConfig, router *mux.Router) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, path := range config.SkipPaths {
				if strings.HasPrefix(r.URL.Path, path) {
					next.ServeHTTP(w, r)
					return
				}
			}

			metrics.HTTPRequestsInFlight.Inc()
			defer metrics.HTTPRequestsInFlight.Dec()

			m := httpsnoop.CaptureMetrics(next, w, r)

			path := routeTemplate(router, r)
			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(m.Code)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(m.Duration.Seconds())
		})
	}
}

// routeTemplate returns the path template of the route matching r, or
// "unmatched" so that unknown URLs cannot grow label cardinality.
func routeTemplate(router *mux.Router, r *http.Request) string {
	if router == nil {
		return unmatchedRoute
	}

	var match mux.RouteMatch
	if !router.Match(r, &match) || match.Route == nil {
		return unmatchedRoute
	}

	tmpl, err := match.Route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tmpl
}
