package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/account"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

// Compile-time check that UserStore implements ports.UserStore.
var _ ports.UserStore = (*UserStore)(nil)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// UserStore persists accounts in a Mongo collection with a unique email index.
type UserStore struct {
	collection *mongo.Collection
}

// NewUserStore wraps collection.
func NewUserStore(collection *mongo.Collection) *UserStore {
	return &UserStore{collection: collection}
}

// CreateUser inserts u. A duplicate email yields domain.ErrConflict.
func (s *UserStore) CreateUser(ctx context.Context, u *account.User) (*account.User, error) {
	res, err := s.collection.InsertOne(ctx, userDocument{
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.PasswordHash,
		CreatedAt: u.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("email %q: %w", u.Email, domain.ErrConflict)
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, errors.New("unexpected insert id type")
	}

	created := *u
	created.ID = id.Hex()
	return &created, nil
}

// FindUserByEmail returns the account registered under email.
func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (*account.User, error) {
	var doc userDocument
	if err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}

	return &account.User{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		CreatedAt:    doc.CreatedAt,
	}, nil
}
