package guard

import (
	"context"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

// Compile-time check that HealthChecker implements ports.HealthChecker.
var _ ports.HealthChecker = (*HealthChecker)(nil)

// HealthChecker reports the guarded backend's readiness. An open or
// half-open breaker fails the check without touching the backend;
// otherwise the backend's own check runs.
type HealthChecker struct {
	guard *Guard
	next  ports.HealthChecker
}

// Checker wraps the backend's health check. next may be nil, in which case
// only the breaker state is reported.
func (g *Guard) Checker(next ports.HealthChecker) *HealthChecker {
	return &HealthChecker{guard: g, next: next}
}

// Name returns the guarded backend name.
func (h *HealthChecker) Name() string {
	return h.guard.Name()
}

// HealthCheck implements ports.HealthChecker.
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	if err := h.guard.State(); err != nil {
		return err
	}
	if h.next == nil {
		return nil
	}
	return h.next.HealthCheck(ctx)
}
