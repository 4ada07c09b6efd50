package handler

import (
	"net/http"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

// HealthHandler reports liveness together with the loaded record count.
type HealthHandler struct {
	records func() int
}

// NewHealthHandler creates a health handler. records is called per request.
func NewHealthHandler(records func() int) *HealthHandler {
	return &HealthHandler{records: records}
}

// Health handles GET /health requests.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Records: h.records()})
}
