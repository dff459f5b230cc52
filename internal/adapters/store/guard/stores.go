package guard

import (
	"context"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/account"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

// Compile-time checks that the decorators implement the persistence ports.
var (
	_ ports.TaskStore = (*TaskStore)(nil)
	_ ports.UserStore = (*UserStore)(nil)
)

// TaskStore guards a ports.TaskStore.
type TaskStore struct {
	guard *Guard
	next  ports.TaskStore
}

// Tasks wraps next.
func (g *Guard) Tasks(next ports.TaskStore) *TaskStore {
	return &TaskStore{guard: g, next: next}
}

// ListForOwner lists the owner's tasks under the guard.
func (s *TaskStore) ListForOwner(ctx context.Context, owner domain.Identity) ([]task.Task, error) {
	var out []task.Task
	err := s.guard.do(ctx, "list_tasks", func(ctx context.Context) error {
		var err error
		out, err = s.next.ListForOwner(ctx, owner)
		return err
	})
	return out, err
}

// Create stores a task for owner under the guard.
func (s *TaskStore) Create(ctx context.Context, owner domain.Identity, t *task.Task) (*task.Task, error) {
	var out *task.Task
	err := s.guard.do(ctx, "create_task", func(ctx context.Context) error {
		var err error
		out, err = s.next.Create(ctx, owner, t)
		return err
	})
	return out, err
}

// UpdateStatus sets the status of an owned task under the guard. The
// matched result is passed through unchanged.
func (s *TaskStore) UpdateStatus(ctx context.Context, owner domain.Identity, id string, status task.Status) (bool, error) {
	var matched bool
	err := s.guard.do(ctx, "update_task_status", func(ctx context.Context) error {
		var err error
		matched, err = s.next.UpdateStatus(ctx, owner, id, status)
		return err
	})
	return matched, err
}

// Delete removes an owned task under the guard.
func (s *TaskStore) Delete(ctx context.Context, owner domain.Identity, id string) (bool, error) {
	var matched bool
	err := s.guard.do(ctx, "delete_task", func(ctx context.Context) error {
		var err error
		matched, err = s.next.Delete(ctx, owner, id)
		return err
	})
	return matched, err
}

// UserStore guards a ports.UserStore.
type UserStore struct {
	guard *Guard
	next  ports.UserStore
}

// Users wraps next.
func (g *Guard) Users(next ports.UserStore) *UserStore {
	return &UserStore{guard: g, next: next}
}

// CreateUser stores a new account under the guard.
func (s *UserStore) CreateUser(ctx context.Context, u *account.User) (*account.User, error) {
	var out *account.User
	err := s.guard.do(ctx, "create_user", func(ctx context.Context) error {
		var err error
		out, err = s.next.CreateUser(ctx, u)
		return err
	})
	return out, err
}

// FindUserByEmail looks up an account under the guard. A missing account
// stays domain.ErrNotFound and does not count against the breaker.
func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (*account.User, error) {
	var out *account.User
	err := s.guard.do(ctx, "find_user", func(ctx context.Context) error {
		var err error
		out, err = s.next.FindUserByEmail(ctx, email)
		return err
	})
	return out, err
}
