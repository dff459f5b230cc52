// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/account"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
)

// Acknowledgement messages returned by mutating task endpoints. They are the
// same whether or not a record matched.
const (
	MsgTaskUpdated = "Task updated"
	MsgTaskDeleted = "Task deleted"
)

// TaskResponse represents a single task in HTTP responses. Overdue is
// derived at response time and never stored.
type TaskResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Status      string   `json:"status"`
	Images      []string `json:"images,omitempty"`
	Overdue     bool     `json:"overdue"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO as of today.
func ToTaskResponse(t *task.Task, today task.Date) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate.String(),
		Status:      t.Status.String(),
		Images:      t.Images,
		Overdue:     t.IsOverdue(today),
	}
}

// ToTaskListResponse converts tasks to response DTOs. The result is never
// nil so an empty list encodes as [].
func ToTaskListResponse(tasks []task.Task, today task.Date) []TaskResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i], today)
	}
	return items
}

// SummaryResponse carries the dashboard counters.
type SummaryResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
}

// ToSummaryResponse converts a domain Summary to an HTTP response DTO.
func ToSummaryResponse(s task.Summary) SummaryResponse {
	return SummaryResponse{
		Total:     s.Total,
		Pending:   s.Pending,
		Completed: s.Completed,
		Overdue:   s.Overdue,
	}
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents a registered account. The password hash is never
// part of a response.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToUserResponse converts a domain User to an HTTP response DTO.
func ToUserResponse(u *account.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// SessionResponse carries an issued session token.
type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// ToSessionResponse converts a domain Session to an HTTP response DTO.
func ToSessionResponse(s *account.Session) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// MeResponse describes the authenticated caller.
type MeResponse struct {
	Email string `json:"email"`
}
