// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The server installs them in this order, outermost first:
//
//	Recovery → RequestID → CorrelationID → SecurityHeaders → RateLimit → OpenTelemetry → Logging → Timeout → Handler
//
// Authenticate is not global; the router mounts it on the route group that
// needs a caller identity.
package middleware

import "net/http"

// responseWriter records the status code and body size of a response.
// Recovery, OpenTelemetry and Logging all observe the same response, so
// they share one wrapper per request.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

// newResponseWriter wraps w, or returns w itself when an outer middleware
// already wrapped it.
func newResponseWriter(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records the first status code and forwards it. Later calls
// are dropped, as net/http would do with a superfluous WriteHeader.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

// Write forwards b and counts the bytes that reached the client. A Write
// without a prior WriteHeader is an implicit 200.
func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
