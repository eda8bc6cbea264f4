package middleware

import (
	"net/http"
	"runtime/debug"

	"research-blender-api/internal/handlers"
	"research-blender-api/internal/logging"
	"research-blender-api/internal/metrics"
)

// Recover returns a middleware that turns a handler panic into the JSON 500
// error envelope. http.ErrAbortHandler is re-panicked for net/http.
func Recover() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				metrics.HTTPPanicsRecovered.Inc()
				logging.Error("panic serving %s %s (request %s): %v\n%s",
					r.Method, sanitizeLogField(r.URL.Path), RequestIDFromContext(r.Context()), rec, debug.Stack())

				handlers.WriteInternalError(w, "Internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
