package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/account"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

// Compile-time check that UserStore implements ports.UserStore.
var _ ports.UserStore = (*UserStore)(nil)

type userRow struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(254);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(72);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (userRow) TableName() string { return "users" }

// UserStore persists accounts in the users table.
type UserStore struct {
	db *gorm.DB
}

// CreateUser inserts u. A duplicate email yields domain.ErrConflict.
func (s *UserStore) CreateUser(ctx context.Context, u *account.User) (*account.User, error) {
	row := userRow{
		ID:           uuid.NewString(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("email %q: %w", u.Email, domain.ErrConflict)
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	created := *u
	created.ID = row.ID
	return &created, nil
}

// FindUserByEmail returns the account registered under email.
func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (*account.User, error) {
	var row userRow
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}

	return &account.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}, nil
}
