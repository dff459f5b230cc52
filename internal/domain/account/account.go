// Package account holds the credential-bearing user record whose email is the
// caller identity used to own tasks.
package account

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
)

const (
	minPasswordLen = 8
	// bcrypt ignores input past 72 bytes and x/crypto rejects it outright.
	maxPasswordLen = 72
	maxNameLen     = 100
	maxEmailLen    = 254
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is a registered account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity returns the ownership key for tasks created by this user.
func (u *User) Identity() domain.Identity {
	return domain.Identity(u.Email)
}

// Registration is a sign-up request before the password is hashed.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// Normalize trims surrounding whitespace from the name and email. The email
// is otherwise kept as typed because it becomes the identity verbatim.
func (r *Registration) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

// Validate checks the registration fields.
// Returns a *domain.ValidationError with per-field details, or nil.
func (r *Registration) Validate() error {
	fields := make(map[string]string)

	switch n := len([]rune(r.Name)); {
	case n == 0:
		fields["name"] = domain.MsgRequired
	case n > maxNameLen:
		fields["name"] = "must be at most 100 characters"
	}

	switch {
	case r.Email == "":
		fields["email"] = domain.MsgRequired
	case len(r.Email) > maxEmailLen || !emailRegex.MatchString(r.Email):
		fields["email"] = "invalid email format"
	}

	if msg := passwordProblem(r.Password); msg != "" {
		fields["password"] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func passwordProblem(password string) string {
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return "must be 8-72 bytes"
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return "must contain a letter and a digit"
	}
	return ""
}

// Session is an issued login token.
type Session struct {
	Token     string
	ExpiresAt time.Time
}
