// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/handlers"
)

// Routes groups the handlers and the authentication gate the router mounts.
type Routes struct {
	Tasks    *handlers.TaskHandler
	Accounts *handlers.AccountHandler
	Health   *handlers.HealthHandler
	// Authenticate gates every route that needs a caller identity.
	Authenticate func(http.Handler) http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given, the first one
// outermost.
func NewRouter(routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusNotFound, "no route for "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusMethodNotAllowed, req.Method+" is not allowed on "+req.URL.Path)
	})

	// Health endpoints (outside /api prefix).
	r.Get("/health/live", routes.Health.Liveness)
	r.Get("/health/ready", routes.Health.Readiness)

	r.Route("/api", func(r chi.Router) {
		// Public account endpoints.
		r.Post("/register", routes.Accounts.Register)
		r.Post("/login", routes.Accounts.Login)

		// Everything below requires a caller identity.
		r.Group(func(r chi.Router) {
			r.Use(routes.Authenticate)

			r.Post("/logout", routes.Accounts.Logout)
			r.Get("/me", routes.Accounts.Me)

			// Tasks are addressed by body, not by path.
			r.Get("/tasks", routes.Tasks.ListTasks)
			r.Post("/tasks", routes.Tasks.CreateTask)
			r.Patch("/tasks", routes.Tasks.UpdateStatus)
			r.Delete("/tasks", routes.Tasks.DeleteTask)
			r.Get("/tasks/summary", routes.Tasks.Summary)
		})
	})

	return r
}
