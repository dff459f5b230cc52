package task

import (
	"time"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
)

// EventType names a task lifecycle change.
type EventType string

const (
	EventCreated       EventType = "task.created"
	EventStatusChanged EventType = "task.status_changed"
	EventDeleted       EventType = "task.deleted"
)

// Event records a lifecycle change that actually affected a stored task.
// Mutations that matched no record never produce an Event.
type Event struct {
	Type       EventType
	TaskID     string
	Owner      domain.Identity
	Status     Status
	OccurredAt time.Time
}
