package middleware_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/mocks"
)

const sessionCookie = "tasks_session"

// identityEcho writes the resolved identity and credential so tests can
// assert what reached the handler.
func identityEcho(t *testing.T, called *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		id, ok := domain.IdentityFromContext(r.Context())
		if !ok {
			t.Error("IdentityFromContext() ok = false, want true")
		}
		_, _ = fmt.Fprintf(w, "%s|%s", id, middleware.CredentialFromContext(r.Context()))
	})
}

func TestAuthenticate_BearerToken(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockIdentityResolver(t)
	resolver.EXPECT().Resolve(mock.Anything, "tok-1").Return(domain.Identity("alice@example.com"), nil)

	var called bool
	handler := middleware.Authenticate(resolver, sessionCookie)(identityEcho(t, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", http.NoBody)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatal("handler was not called")
	}
	if got := rec.Body.String(); got != "alice@example.com|tok-1" {
		t.Errorf("body = %q, want %q", got, "alice@example.com|tok-1")
	}
}

func TestAuthenticate_SchemeIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockIdentityResolver(t)
	resolver.EXPECT().Resolve(mock.Anything, "tok-1").Return(domain.Identity("alice@example.com"), nil)

	var called bool
	handler := middleware.Authenticate(resolver, sessionCookie)(identityEcho(t, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", http.NoBody)
	req.Header.Set("Authorization", "bearer tok-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("handler was not called for lowercase bearer scheme")
	}
}

func TestAuthenticate_SessionCookie(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockIdentityResolver(t)
	resolver.EXPECT().Resolve(mock.Anything, "cookie-tok").Return(domain.Identity("bob@example.com"), nil)

	var called bool
	handler := middleware.Authenticate(resolver, sessionCookie)(identityEcho(t, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", http.NoBody)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "cookie-tok"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatal("handler was not called")
	}
	if got := rec.Body.String(); got != "bob@example.com|cookie-tok" {
		t.Errorf("body = %q, want %q", got, "bob@example.com|cookie-tok")
	}
}

func TestAuthenticate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setup      func(*http.Request)
		resolveErr error
		resolveID  domain.Identity
		wantCall   bool
		wantStatus int
	}{
		{
			name:       "no credential",
			setup:      func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-bearer scheme",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Basic dXNlcjpwYXNz") },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") },
			resolveErr: errors.Join(domain.ErrUnauthorized, errors.New("token is malformed")),
			wantCall:   true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty identity",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer odd") },
			resolveID:  "",
			wantCall:   true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "revocation store down",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer tok") },
			resolveErr: fmt.Errorf("checking revocation: %w", domain.ErrUnavailable),
			wantCall:   true,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolver := mocks.NewMockIdentityResolver(t)
			if tt.wantCall {
				resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(tt.resolveID, tt.resolveErr)
			}

			handler := middleware.Authenticate(resolver, sessionCookie)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Error("handler called for rejected request")
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/tasks", http.NoBody)
			tt.setup(req)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
			}
			if tt.wantStatus == http.StatusUnauthorized && rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("WWW-Authenticate header missing on 401")
			}
		})
	}
}

func TestCredentialFromContext_Empty(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if got := middleware.CredentialFromContext(req.Context()); got != "" {
		t.Errorf("CredentialFromContext() = %q, want empty", got)
	}
}
