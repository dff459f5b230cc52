// Package mongostore implements the task and account persistence ports on
// MongoDB. Tasks live in one collection keyed by ObjectID with the owner's
// email in the userEmail field.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Default collection names.
const (
	TasksCollection = "tasks"
	UsersCollection = "users"
)

// Config holds connection settings.
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Client owns the Mongo connection shared by the task and user stores.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials Mongo and verifies the connection with a ping.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	return &Client{client: client, db: client.Database(cfg.Database)}, nil
}

// Tasks returns a TaskStore over the tasks collection.
func (c *Client) Tasks() *TaskStore {
	return NewTaskStore(c.db.Collection(TasksCollection))
}

// Users returns a UserStore over the users collection.
func (c *Client) Users() *UserStore {
	return NewUserStore(c.db.Collection(UsersCollection))
}

// EnsureIndexes creates the owner index on tasks and the unique email index
// on users. It is idempotent.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	_, err := c.db.Collection(TasksCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: fieldOwner, Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("creating task owner index: %w", err)
	}

	_, err = c.db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating user email index: %w", err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string { return "mongo" }

// HealthCheck implements ports.HealthChecker.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}

// Close disconnects from Mongo.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
