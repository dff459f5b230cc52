package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_Records(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		write       func(w http.ResponseWriter)
		wantStatus  int
		wantWritten int64
		wantHeader  bool
	}{
		{
			name:       "nothing written",
			write:      func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "explicit status",
			write:      func(w http.ResponseWriter) { w.WriteHeader(http.StatusCreated) },
			wantStatus: http.StatusCreated,
			wantHeader: true,
		},
		{
			name: "first status wins",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusBadRequest)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusBadRequest,
			wantHeader: true,
		},
		{
			name: "implicit 200 with body",
			write: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"id":`))
				_, _ = w.Write([]byte(`"t1"}`))
			},
			wantStatus:  http.StatusOK,
			wantWritten: 11,
			wantHeader:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tt.write(rw)

			assert.Equal(t, tt.wantStatus, rw.statusCode)
			assert.Equal(t, tt.wantWritten, rw.written)
			assert.Equal(t, tt.wantHeader, rw.headerWritten)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestResponseWriter_SharedAcrossLayers(t *testing.T) {
	t.Parallel()

	outer := newResponseWriter(httptest.NewRecorder())
	inner := newResponseWriter(outer)
	require.Same(t, outer, inner)

	inner.WriteHeader(http.StatusNoContent)
	assert.Equal(t, http.StatusNoContent, outer.statusCode)
	assert.True(t, outer.headerWritten)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	assert.Same(t, rec, rw.Unwrap())
	require.NoError(t, http.NewResponseController(rw).Flush())
	assert.True(t, rec.Flushed)
}
