package dto

// Health probe statuses.
const (
	HealthAlive    = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness probes. Checks
// maps each dependency to "ok" or its failure message and is omitted from
// liveness responses.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse folds check results into a HealthResponse and reports
// whether every check passed.
func ToReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	ready := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			ready = false
			continue
		}
		resp.Checks[name] = HealthAlive
	}
	if !ready {
		resp.Status = HealthNotReady
	}
	return resp, ready
}
