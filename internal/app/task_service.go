// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService on top of a TaskStore. It scopes
// every store call to the caller, validates input, and emits lifecycle
// events for mutations that matched a record.
type TaskService struct {
	store     ports.TaskStore
	publisher ports.EventPublisher
	calendar  task.Calendar
	logger    *slog.Logger
}

// NewTaskService creates a TaskService. A nil publisher disables event
// emission; a nil logger discards log output.
func NewTaskService(
	store ports.TaskStore,
	publisher ports.EventPublisher,
	calendar task.Calendar,
	logger *slog.Logger,
) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		store:     store,
		publisher: publisher,
		calendar:  calendar,
		logger:    logger,
	}
}

// ListTasks returns the caller's tasks that satisfy filter.
func (s *TaskService) ListTasks(ctx context.Context, owner domain.Identity, filter task.Filter) ([]task.Task, error) {
	if owner.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("invalid: %q", filter.Status))
	}

	tasks, err := s.store.ListForOwner(ctx, owner)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListTasks"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return filter.Apply(tasks), nil
}

// Summary returns the caller's dashboard counters as of the calendar's today.
func (s *TaskService) Summary(ctx context.Context, owner domain.Identity) (task.Summary, error) {
	tasks, err := s.ListTasks(ctx, owner, task.Filter{})
	if err != nil {
		return task.Summary{}, err
	}
	return task.Summarize(tasks, s.calendar.Today()), nil
}

// CreateTask validates payload and stores a new pending task owned by the caller.
func (s *TaskService) CreateTask(ctx context.Context, owner domain.Identity, payload *task.Payload) (*task.Task, error) {
	if owner.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if payload == nil {
		return nil, domain.NewValidationError("body", domain.MsgRequired)
	}

	t, err := payload.Build(owner)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating task",
		slog.String("due_date", t.DueDate.String()),
		slog.Int("images", len(t.Images)),
	)

	created, err := s.store.Create(ctx, owner, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.publish(ctx, task.EventCreated, created.ID, owner, created.Status)
	return created, nil
}

// UpdateStatus sets the status of the caller's task. Zero matches is not an error.
func (s *TaskService) UpdateStatus(ctx context.Context, owner domain.Identity, id string, status task.Status) error {
	if owner.IsZero() {
		return domain.ErrUnauthorized
	}

	fields := make(map[string]string)
	id = strings.TrimSpace(id)
	if id == "" {
		fields["id"] = domain.MsgRequired
	}
	if !status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", status)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}

	matched, err := s.store.UpdateStatus(ctx, owner, id, status)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task status",
			slog.String("operation", "UpdateStatus"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "updated task status",
		slog.String("id", id),
		slog.String("status", status.String()),
		slog.Bool("matched", matched),
	)

	if matched {
		s.publish(ctx, task.EventStatusChanged, id, owner, status)
	}
	return nil
}

// DeleteTask removes the caller's task. Zero matches is not an error.
func (s *TaskService) DeleteTask(ctx context.Context, owner domain.Identity, id string) error {
	if owner.IsZero() {
		return domain.ErrUnauthorized
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.NewValidationError("id", domain.MsgRequired)
	}

	matched, err := s.store.Delete(ctx, owner, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "deleted task",
		slog.String("id", id),
		slog.Bool("matched", matched),
	)

	if matched {
		s.publish(ctx, task.EventDeleted, id, owner, "")
	}
	return nil
}

// publish emits a lifecycle event. Failures are logged and never surface to
// the caller because the mutation has already been committed.
func (s *TaskService) publish(ctx context.Context, typ task.EventType, id string, owner domain.Identity, status task.Status) {
	if s.publisher == nil {
		return
	}

	event := task.Event{
		Type:       typ,
		TaskID:     id,
		Owner:      owner,
		Status:     status,
		OccurredAt: s.calendar.Time(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish task event",
			slog.String("operation", "publish"),
			slog.String("event", string(typ)),
			slog.String("id", id),
			slog.Any("error", err),
		)
	}
}
