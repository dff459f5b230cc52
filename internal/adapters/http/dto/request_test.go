package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestUpdateStatusRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateStatusRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid completed",
			req:  dto.UpdateStatusRequest{ID: "abc", Status: "completed"},
		},
		{
			name: "valid pending",
			req:  dto.UpdateStatusRequest{ID: "abc", Status: "pending"},
		},
		{
			name:      "missing id",
			req:       dto.UpdateStatusRequest{Status: "completed"},
			wantErr:   true,
			wantField: "id",
		},
		{
			name:      "whitespace id",
			req:       dto.UpdateStatusRequest{ID: "  ", Status: "completed"},
			wantErr:   true,
			wantField: "id",
		},
		{
			name:      "missing status",
			req:       dto.UpdateStatusRequest{ID: "abc"},
			wantErr:   true,
			wantField: "status",
		},
		{
			name:      "unknown status",
			req:       dto.UpdateStatusRequest{ID: "abc", Status: "archived"},
			wantErr:   true,
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateStatusRequest_Validate_BothFields(t *testing.T) {
	t.Parallel()

	req := dto.UpdateStatusRequest{}
	err := req.Validate()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("len(Fields) = %d, want 2, got %v", len(verr.Fields), verr.Fields)
	}
}

func TestDeleteTaskRequest_Validate(t *testing.T) {
	t.Parallel()

	ok := dto.DeleteTaskRequest{ID: "abc"}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	missing := dto.DeleteTaskRequest{ID: " "}
	requireValidationField(t, missing.Validate(), "id")
}

func TestRegisterRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		wantField string
	}{
		{
			name: "valid",
			req:  dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "s3cretpass"},
		},
		{
			name:      "bad email",
			req:       dto.RegisterRequest{Name: "Alice", Email: "alice", Password: "s3cretpass"},
			wantField: "email",
		},
		{
			name:      "weak password",
			req:       dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password"},
			wantField: "password",
		},
		{
			name:      "blank name",
			req:       dto.RegisterRequest{Name: "   ", Email: "alice@example.com", Password: "s3cretpass"},
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestRegisterRequest_Registration_Normalizes(t *testing.T) {
	t.Parallel()

	req := dto.RegisterRequest{Name: " Alice ", Email: " alice@example.com\n", Password: " pass w0rd "}
	reg := req.Registration()

	if reg.Name != "Alice" || reg.Email != "alice@example.com" {
		t.Errorf("Registration() = %+v, want trimmed name and email", reg)
	}
	if reg.Password != " pass w0rd " {
		t.Errorf("Registration().Password = %q, want untouched", reg.Password)
	}
}
