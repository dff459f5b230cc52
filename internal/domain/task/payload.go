package task

import (
	"strings"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
)

// Payload is the canonical task-creation request produced by ingestion,
// independent of whether the client sent JSON or a multipart form.
type Payload struct {
	Title       string
	Description string
	DueDate     string
	Images      []string
}

// Build validates the payload and returns a new pending Task owned by owner.
// Surrounding whitespace is trimmed from the text fields. A payload with no
// images yields a Task whose Images is nil. No Task is returned when any
// field fails validation.
func (p *Payload) Build(owner domain.Identity) (*Task, error) {
	fields := make(map[string]string)

	title := strings.TrimSpace(p.Title)
	if title == "" {
		fields["title"] = domain.MsgRequired
	}
	description := strings.TrimSpace(p.Description)
	if description == "" {
		fields["description"] = domain.MsgRequired
	}

	var due Date
	switch raw := strings.TrimSpace(p.DueDate); {
	case raw == "":
		fields["dueDate"] = domain.MsgRequired
	default:
		parsed, err := ParseDate(raw)
		if err != nil {
			fields["dueDate"] = "must be a date (YYYY-MM-DD)"
		}
		due = parsed
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	t := &Task{
		Title:       title,
		Description: description,
		DueDate:     due,
		Status:      StatusPending,
		Owner:       owner,
	}
	if len(p.Images) > 0 {
		t.Images = append([]string(nil), p.Images...)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
