package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
	"github.com/jsamuelsen11/pracsphere-tasks/mocks"
)

const testCookie = "tasks_session"

type testDeps struct {
	tasks    *mocks.MockTaskService
	accounts *mocks.MockAccountService
	registry *mocks.MockHealthRegistry
	resolver *mocks.MockIdentityResolver
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, testDeps) {
	t.Helper()
	deps := testDeps{
		tasks:    mocks.NewMockTaskService(t),
		accounts: mocks.NewMockAccountService(t),
		registry: mocks.NewMockHealthRegistry(t),
		resolver: mocks.NewMockIdentityResolver(t),
	}

	calendar := task.Calendar{Now: func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }}
	routes := adapthttp.Routes{
		Tasks:        handlers.NewTaskHandler(deps.tasks, calendar, dto.IngestLimits{MaxBodyBytes: 1 << 20}),
		Accounts:     handlers.NewAccountHandler(deps.accounts, handlers.SessionCookie{Name: testCookie}),
		Health:       handlers.NewHealthHandler(deps.registry, nil),
		Authenticate: middleware.Authenticate(deps.resolver, testCookie),
	}

	return adapthttp.NewRouter(routes, middlewares...), deps
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/register"},
		{http.MethodPost, "/api/login"},
		{http.MethodPost, "/api/logout"},
		{http.MethodGet, "/api/me"},
		{http.MethodGet, "/api/tasks"},
		{http.MethodPost, "/api/tasks"},
		{http.MethodPatch, "/api/tasks"},
		{http.MethodDelete, "/api/tasks"},
		{http.MethodGet, "/api/tasks/summary"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, deps := newTestRouter(t, testMW)
	deps.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	router, _ := newTestRouter(t, tag("outer"), tag("inner"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if got := strings.Join(order, ","); got != "outer,inner" {
		t.Errorf("middleware order = %q, want %q", got, "outer,inner")
	}
}

func TestRouter_TaskRoutesRequireIdentity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/tasks", ""},
		{http.MethodPost, "/api/tasks", `{"title":"a","description":"b","dueDate":"2025-03-12"}`},
		{http.MethodPatch, "/api/tasks", `{"id":"abc","status":"completed"}`},
		{http.MethodDelete, "/api/tasks", `{"id":"abc"}`},
		{http.MethodGet, "/api/tasks/summary", ""},
		{http.MethodGet, "/api/me", ""},
		{http.MethodPost, "/api/logout", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()

			// No service expectations: a call would fail the mock.
			router, _ := newTestRouter(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestRouter_IntegrationListTasks(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t)

	deps.resolver.EXPECT().Resolve(mock.Anything, "tok").Return(domain.Identity("alice@example.com"), nil)
	deps.tasks.EXPECT().ListTasks(mock.Anything, domain.Identity("alice@example.com"), task.Filter{}).
		Return([]task.Task{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "tok"})
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_SummaryNotShadowed(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t)

	deps.resolver.EXPECT().Resolve(mock.Anything, "tok").Return(domain.Identity("alice@example.com"), nil)
	deps.tasks.EXPECT().Summary(mock.Anything, domain.Identity("alice@example.com")).Return(task.Summary{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks/summary", nil)
	req.Header.Set("Authorization", "Bearer tok")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/register", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
