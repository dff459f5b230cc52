package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/dto"
)

// errInternalServer is what clients see when a handler panics. The panic
// value and stack stay in the log.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into a logged
// error and an RFC 9457 500 response. When the handler already started the
// response, only the log entry is emitted. http.ErrAbortHandler is
// re-raised so net/http can abort the connection quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				attrs := []any{
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}
				if route := routePattern(r); route != "" {
					attrs = append(attrs, slog.String("route", route))
				}
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
