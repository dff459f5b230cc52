// Package guard decorates the persistence ports with a circuit breaker, a
// per-operation deadline, OpenTelemetry spans, and store metrics.
//
// The pipeline for every call is:
//
//	Circuit Breaker → Deadline → OTEL Span → Store
//
// Construction:
//
//	g := guard.New(cfg, "mongo", metrics, logger)
//	tasks := g.Tasks(mongoClient.Tasks())
//	users := g.Users(mongoClient.Users())
package guard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/platform/telemetry"
)

// Config holds the breaker and deadline settings.
type Config struct {
	// Timeout bounds each store call. Zero disables the deadline.
	Timeout time.Duration
	// MaxFailures is the number of consecutive failures that opens the breaker.
	MaxFailures int
	// OpenTimeout is how long the breaker stays open before probing.
	OpenTimeout time.Duration
	// HalfOpenLimit caps the probe requests allowed while half-open.
	HalfOpenLimit int
}

// Guard wraps store calls for a single backend.
type Guard struct {
	backend string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates a Guard. The backend names the store in spans, metrics, and
// health output (e.g., "mongo"). If metrics is nil, metric recording is skipped.
func New(cfg Config, backend string, metrics *telemetry.Metrics, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        backend,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return cfg.MaxFailures > 0 && int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isHealthyOutcome,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Guard{
		backend: backend,
		timeout: cfg.Timeout,
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}
}

// Name returns the guarded backend name.
func (g *Guard) Name() string {
	return g.backend
}

// State reports the breaker state without making a store call. It lets the
// readiness probe distinguish a tripped breaker from a slow ping.
func (g *Guard) State() error {
	state := g.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", g.backend)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", g.backend)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", g.backend, state)
	}
}

// do runs fn through the guard pipeline.
func (g *Guard) do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	start := time.Now()

	_, err := g.breaker.Execute(func() (struct{}, error) {
		callCtx := ctx
		if g.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, g.timeout)
			defer cancel()
		}

		spanCtx, span := g.startSpan(callCtx, op)
		defer span.End()

		callErr := fn(spanCtx)
		if callErr != nil && !isHealthyOutcome(callErr) {
			span.RecordError(callErr)
			span.SetStatus(codes.Error, callErr.Error())
		}
		return struct{}{}, callErr
	})

	g.recordMetrics(ctx, op, start, err)

	return g.translate(err)
}

// translate maps breaker rejections and deadlines to domain.ErrUnavailable.
func (g *Guard) translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%s: %w: %w", g.backend, domain.ErrUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", g.backend, domain.ErrUnavailable, err)
	default:
		return err
	}
}

func (g *Guard) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("store")
	return tracer.Start(ctx, fmt.Sprintf("store %s %s", g.backend, op),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", g.backend),
			attribute.String("db.operation", op),
		),
	)
}

// recordMetrics is recorded outside the breaker so that rejections are
// captured. Safe to call with nil metrics.
func (g *Guard) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if g.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case err != nil && !isHealthyOutcome(err):
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrBackend.String(g.backend),
		telemetry.AttrOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	g.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	g.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// isHealthyOutcome reports whether err says nothing about backend health.
// Domain outcomes such as a duplicate email are answers, not failures, and
// caller cancellation is the caller's doing.
func isHealthyOutcome(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, context.Canceled)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
