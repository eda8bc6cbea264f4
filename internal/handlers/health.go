package handlers

import (
	"net/http"
)

// ServiceName is reported by the health check.
const ServiceName = "research-blender-api"

// HealthResponse contains the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthCheck returns the health status of the service
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	// For HEAD requests, only send headers (no body)
	if r.Method != http.MethodHead {
		writeJSON(w, HealthResponse{Status: "ok", Service: ServiceName})
	}
}
