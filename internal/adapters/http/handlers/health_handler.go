package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/list-creation-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/list-creation-service/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: dto.HealthAlive})
}

// Readiness handles GET /health/ready, answering 503 when any registered
// dependency check fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, ready := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, r, status, resp)
}
