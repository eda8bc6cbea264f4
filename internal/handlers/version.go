package handlers

import (
	"net/http"

	"research-blender-api/internal/startup"
)

// VersionResponse is the /api/version payload: build info plus the
// transcript language preference the service was started with.
type VersionResponse struct {
	Service string `json:"service"`
	startup.BuildInfo
	Languages []string `json:"languages,omitempty"`
}

// GetVersion reports what is running.
func (h *Handlers) GetVersion(w http.ResponseWriter, _ *http.Request) {
	resp := VersionResponse{
		Service:   ServiceName,
		BuildInfo: startup.GetBuildInfo(),
	}
	if l, ok := h.fetcher.(interface{ Languages() []string }); ok {
		resp.Languages = l.Languages()
	}

	w.Header().Set("Cache-Control", "no-cache")
	writeJSONStatus(w, http.StatusOK, resp)
}
