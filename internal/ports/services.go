package ports

import (
	"context"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/account"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
)

// TaskService defines the service port for a caller's personal tasks.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method takes the resolved caller identity explicitly and returns
// domain.ErrUnauthorized without touching the store when it is empty.
type TaskService interface {
	// ListTasks returns the caller's tasks that satisfy filter. No ordering
	// is guaranteed.
	ListTasks(ctx context.Context, owner domain.Identity, filter task.Filter) ([]task.Task, error)

	// Summary returns the caller's task counters as of today.
	Summary(ctx context.Context, owner domain.Identity) (task.Summary, error)

	// CreateTask validates the canonical payload and stores a new pending
	// task owned by the caller.
	// Returns domain.ErrValidation if a required field is missing.
	CreateTask(ctx context.Context, owner domain.Identity, payload *task.Payload) (*task.Task, error)

	// UpdateStatus sets the status of the caller's task. An id that does not
	// exist or belongs to someone else is a silent no-op, not an error.
	// Returns domain.ErrValidation if the id is blank or the status unknown.
	UpdateStatus(ctx context.Context, owner domain.Identity, id string, status task.Status) error

	// DeleteTask removes the caller's task with the same silent no-op
	// semantics as UpdateStatus.
	DeleteTask(ctx context.Context, owner domain.Identity, id string) error
}

// AccountService defines the service port for registration and sessions.
type AccountService interface {
	// Register validates and stores a new account.
	// Returns domain.ErrConflict if the email is already registered.
	Register(ctx context.Context, reg account.Registration) (*account.User, error)

	// Login verifies credentials and issues a session token.
	// Returns domain.ErrUnauthorized for unknown emails and wrong passwords alike.
	Login(ctx context.Context, email, password string) (*account.Session, error)

	// Logout revokes the presented session token where revocation is supported.
	Logout(ctx context.Context, token string) error
}
