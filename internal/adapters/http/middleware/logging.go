package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/platform/logging"
)

// accessRecord collects attributes that inner middleware learn after the
// access log line has started, such as the authenticated caller.
type accessRecord struct {
	caller domain.Identity
}

type accessRecordKey struct{}

// noteCaller records the caller on the enclosing access log entry, if any.
func noteCaller(ctx context.Context, caller domain.Identity) {
	if rec, ok := ctx.Value(accessRecordKey{}).(*accessRecord); ok {
		rec.caller = caller
	}
}

// Logging returns middleware that writes one access log entry when a request
// starts and one when it completes. The child logger carries the request and
// correlation IDs and is stored via logging.WithLogger for handlers and
// services. The completion entry names the matched chi route, the response
// size, and the caller when the route was authenticated.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			record := &accessRecord{}
			ctx = context.WithValue(ctx, accessRecordKey{}, record)

			startAttrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			}
			if ct := r.Header.Get("Content-Type"); ct != "" {
				startAttrs = append(startAttrs,
					slog.String("content_type", ct),
					slog.Int64("content_length", r.ContentLength),
				)
			}
			child.InfoContext(ctx, "request started", startAttrs...)

			if child.Enabled(ctx, slog.LevelDebug) {
				headerAttrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(headerAttrs))
				for _, a := range headerAttrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			rw := newResponseWriter(w)
			req := r.WithContext(ctx)
			next.ServeHTTP(rw, req)

			doneAttrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			}
			if route := routePattern(req); route != "" {
				doneAttrs = append(doneAttrs, slog.String("route", route))
			}
			if !record.caller.IsZero() {
				doneAttrs = append(doneAttrs, slog.String("caller", string(record.caller)))
			}

			level := slog.LevelInfo
			if rw.statusCode >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			child.Log(ctx, level, "request completed", doneAttrs...)
		})
	}
}
