package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

const (
	statusOK          = "ok"
	statusReady       = "ready"
	statusNotReady    = "not_ready"
	statusUnavailable = "unavailable"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	logger   *slog.Logger
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
// A nil logger discards the failure log.
func NewHealthHandler(registry ports.HealthRegistry, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &HealthHandler{registry: registry, logger: logger}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if all checks pass,
// 503 if any check fails. Failure detail goes to the log only; probes see
// "unavailable" so connection strings never leave the process.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			h.logger.WarnContext(r.Context(), "readiness check failed",
				slog.String("check", name),
				slog.Any("error", err),
			)
			checks[name] = statusUnavailable
			healthy = false
		} else {
			checks[name] = statusOK
		}
	}

	status := statusReady
	code := http.StatusOK
	if !healthy {
		status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
