// Package task holds the Task entity, its status lifecycle, the canonical
// creation payload, and the read-time derivations (overdue, summary).
package task

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
)

// Task is a personal task record owned by exactly one caller identity.
type Task struct {
	ID          string
	Title       string
	Description string
	DueDate     Date
	Status      Status
	// Images holds data URIs in submission order. Nil and empty both mean
	// "no images".
	Images []string
	Owner  domain.Identity
}

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.Description) == "" {
		fields["description"] = domain.MsgRequired
	}
	if t.DueDate.IsZero() {
		fields["dueDate"] = domain.MsgRequired
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	if t.Owner.IsZero() {
		fields["owner"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsOverdue reports whether the task is still pending past its due date.
// A completed task is never overdue. The result must be derived on every
// read; it is never stored.
func (t *Task) IsOverdue(today Date) bool {
	return t.Status == StatusPending && t.DueDate.Before(today)
}

// HasImages reports whether the task carries at least one inline image.
func (t *Task) HasImages() bool {
	return len(t.Images) > 0
}
