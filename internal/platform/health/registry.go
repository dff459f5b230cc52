// Package health provides a thread-safe health check registry for tracking
// the health of downstream dependencies. The registry is used by the readiness
// endpoint to determine whether the service can accept traffic.
package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

// DefaultCheckTimeout bounds a single checker when no timeout is configured.
const DefaultCheckTimeout = 2 * time.Second

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness probe.
type Registry struct {
	mu           sync.RWMutex
	checkers     []ports.HealthChecker
	checkTimeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets the deadline applied to each individual check.
// Non-positive values keep DefaultCheckTimeout.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.checkTimeout = d
		}
	}
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{checkTimeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs all registered health checks concurrently, each under its
// own timeout, and returns results keyed by checker name. Nil values
// indicate healthy components. When two checkers share a name, the one
// registered last wins. The slice is copied under a read lock so checks run
// without holding the lock.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	names := make([]string, len(checkers))
	errs := make([]error, len(checkers))

	// Checker errors are collected per slot; the group itself never fails.
	var g errgroup.Group
	for i, c := range checkers {
		names[i] = c.Name()
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, r.checkTimeout)
			defer cancel()
			errs[i] = c.HealthCheck(checkCtx)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(checkers))
	for i, name := range names {
		results[name] = errs[i]
	}
	return results
}
