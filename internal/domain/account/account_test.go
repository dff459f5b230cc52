package account

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
)

func validRegistration() Registration {
	return Registration{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "analytical1",
	}
}

func TestRegistration_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Registration)
		wantField string
	}{
		{name: "valid registration passes", modify: func(_ *Registration) {}},
		{name: "empty name", modify: func(r *Registration) { r.Name = "" }, wantField: "name"},
		{name: "long name", modify: func(r *Registration) { r.Name = strings.Repeat("a", 101) }, wantField: "name"},
		{name: "empty email", modify: func(r *Registration) { r.Email = "" }, wantField: "email"},
		{name: "malformed email", modify: func(r *Registration) { r.Email = "ada@" }, wantField: "email"},
		{name: "short password", modify: func(r *Registration) { r.Password = "a1" }, wantField: "password"},
		{name: "password without digit", modify: func(r *Registration) { r.Password = "onlyletters" }, wantField: "password"},
		{name: "password without letter", modify: func(r *Registration) { r.Password = "1234567890" }, wantField: "password"},
		{name: "password at bcrypt limit", modify: func(r *Registration) { r.Password = strings.Repeat("a", 71) + "1" }},
		{name: "password over bcrypt limit", modify: func(r *Registration) { r.Password = strings.Repeat("a", 72) + "1" }, wantField: "password"},
		{name: "multibyte password over bcrypt limit", modify: func(r *Registration) { r.Password = strings.Repeat("é", 36) + "1" }, wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := validRegistration()
			tt.modify(&r)
			err := r.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *domain.ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields = %v, want key %q", verr.Fields, tt.wantField)
			}
		})
	}
}

func TestRegistration_Normalize_KeepsEmailCase(t *testing.T) {
	t.Parallel()

	r := Registration{Name: "  Ada ", Email: " Ada@Example.com "}
	r.Normalize()

	if r.Name != "Ada" {
		t.Errorf("Name = %q, want %q", r.Name, "Ada")
	}
	if r.Email != "Ada@Example.com" {
		t.Errorf("Email = %q, want %q", r.Email, "Ada@Example.com")
	}
}

func TestUser_Identity(t *testing.T) {
	t.Parallel()

	u := User{Email: "ada@example.com"}
	if got := u.Identity(); got != domain.Identity("ada@example.com") {
		t.Errorf("Identity() = %q, want %q", got, "ada@example.com")
	}
}
