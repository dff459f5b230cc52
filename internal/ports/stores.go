package ports

import (
	"context"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/account"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
)

// TaskStore defines the persistence port for task records. Every method is
// scoped to an owner; implementations must include the owner in the query
// filter of every read and mutation. Single calls must be atomic.
type TaskStore interface {
	// ListForOwner returns all tasks whose owner equals owner.
	ListForOwner(ctx context.Context, owner domain.Identity) ([]task.Task, error)

	// Create persists t with the given owner and returns the stored entity
	// including its newly assigned ID. The owner argument wins over t.Owner.
	Create(ctx context.Context, owner domain.Identity, t *task.Task) (*task.Task, error)

	// UpdateStatus sets the status of the task matching (id, owner).
	// The boolean reports whether a record matched; zero matches is not an
	// error. Malformed ids match nothing.
	UpdateStatus(ctx context.Context, owner domain.Identity, id string, status task.Status) (bool, error)

	// Delete removes the task matching (id, owner), reporting whether a
	// record matched.
	Delete(ctx context.Context, owner domain.Identity, id string) (bool, error)
}

// UserStore defines the persistence port for accounts.
type UserStore interface {
	// CreateUser stores a new account and returns it with its assigned ID.
	// Returns domain.ErrConflict if the email is taken.
	CreateUser(ctx context.Context, u *account.User) (*account.User, error)

	// FindUserByEmail returns the account with exactly this email.
	// Returns domain.ErrNotFound if none exists.
	FindUserByEmail(ctx context.Context, email string) (*account.User, error)
}

// EventPublisher emits task lifecycle events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event task.Event) error
}
