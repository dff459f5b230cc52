package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/account"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
)

// UpdateStatusRequest represents the JSON body for PATCH /api/tasks.
type UpdateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Validate checks that both fields are present and the status is known.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateStatusRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	switch {
	case r.Status == "":
		fields["status"] = domain.MsgRequired
	case !task.Status(r.Status).IsValid():
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// DeleteTaskRequest represents the JSON body for DELETE /api/tasks.
type DeleteTaskRequest struct {
	ID string `json:"id"`
}

// Validate checks that the id is present.
func (r *DeleteTaskRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return domain.NewValidationError("id", domain.MsgRequired)
	}
	return nil
}

// RegisterRequest represents the JSON body for POST /api/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate normalizes and checks the registration fields.
func (r *RegisterRequest) Validate() error {
	reg := r.Registration()
	return reg.Validate()
}

// Registration converts the request to a normalized domain registration.
func (r *RegisterRequest) Registration() account.Registration {
	reg := account.Registration{Name: r.Name, Email: r.Email, Password: r.Password}
	reg.Normalize()
	return reg
}

// LoginRequest represents the JSON body for POST /api/login. It is not
// validated field by field: any missing credential is reported as 401 by
// the account service, the same as a wrong one.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
