package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/account"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

// Compile-time check that AccountService implements ports.AccountService.
var _ ports.AccountService = (*AccountService)(nil)

// AccountService implements ports.AccountService with bcrypt password
// hashing, a UserStore, and a TokenIssuer.
type AccountService struct {
	users    ports.UserStore
	tokens   ports.TokenIssuer
	hashCost int
	now      func() time.Time
	logger   *slog.Logger
}

// AccountOption configures an AccountService.
type AccountOption func(*AccountService)

// WithHashCost overrides the bcrypt cost. Values outside bcrypt's accepted
// range fall back to bcrypt.DefaultCost.
func WithHashCost(cost int) AccountOption {
	return func(s *AccountService) {
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			cost = bcrypt.DefaultCost
		}
		s.hashCost = cost
	}
}

// WithNow overrides the clock used to stamp new accounts.
func WithNow(now func() time.Time) AccountOption {
	return func(s *AccountService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewAccountService creates an AccountService.
func NewAccountService(users ports.UserStore, tokens ports.TokenIssuer, logger *slog.Logger, opts ...AccountOption) *AccountService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &AccountService{
		users:    users,
		tokens:   tokens,
		hashCost: bcrypt.DefaultCost,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates reg, hashes the password and stores the account.
func (s *AccountService) Register(ctx context.Context, reg account.Registration) (*account.User, error) {
	reg.Normalize()
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	created, err := s.users.CreateUser(ctx, &account.User{
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if !errors.Is(err, domain.ErrConflict) {
			s.logger.ErrorContext(ctx, "failed to register account",
				slog.String("operation", "Register"),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "registered account", slog.String("user_id", created.ID))
	return created, nil
}

// Login verifies the credentials and issues a session. Unknown emails and
// wrong passwords both yield domain.ErrUnauthorized.
func (s *AccountService) Login(ctx context.Context, email, password string) (*account.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		s.logger.ErrorContext(ctx, "failed to look up account",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.tokens.Issue(ctx, user)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue session",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "issued session", slog.String("user_id", user.ID))
	return session, nil
}

// Logout revokes token.
func (s *AccountService) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return domain.ErrUnauthorized
	}
	if err := s.tokens.Revoke(ctx, token); err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			s.logger.ErrorContext(ctx, "failed to revoke session",
				slog.String("operation", "Logout"),
				slog.Any("error", err),
			)
		}
		return err
	}
	return nil
}
