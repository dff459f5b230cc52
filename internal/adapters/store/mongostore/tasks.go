package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

// Compile-time check that TaskStore implements ports.TaskStore.
var _ ports.TaskStore = (*TaskStore)(nil)

const (
	fieldID     = "_id"
	fieldOwner  = "userEmail"
	fieldStatus = "status"
)

// taskDocument is the stored shape of a task.
type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	DueDate     string             `bson:"dueDate"`
	Status      string             `bson:"status"`
	Images      []string           `bson:"images,omitempty"`
	UserEmail   string             `bson:"userEmail"`
}

func toDocument(t *task.Task, owner domain.Identity) taskDocument {
	doc := taskDocument{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate.String(),
		Status:      string(t.Status),
		UserEmail:   owner.String(),
	}
	if len(t.Images) > 0 {
		doc.Images = t.Images
	}
	return doc
}

func (d *taskDocument) toTask() (task.Task, error) {
	due, err := task.ParseDate(d.DueDate)
	if err != nil {
		return task.Task{}, fmt.Errorf("task %s: %w", d.ID.Hex(), err)
	}
	t := task.Task{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		DueDate:     due,
		Status:      task.Status(d.Status),
		Owner:       domain.Identity(d.UserEmail),
	}
	if len(d.Images) > 0 {
		t.Images = d.Images
	}
	return t, nil
}

// TaskStore persists tasks in a Mongo collection.
type TaskStore struct {
	collection *mongo.Collection
}

// NewTaskStore wraps collection.
func NewTaskStore(collection *mongo.Collection) *TaskStore {
	return &TaskStore{collection: collection}
}

// ListForOwner returns every task whose userEmail equals owner.
func (s *TaskStore) ListForOwner(ctx context.Context, owner domain.Identity) ([]task.Task, error) {
	cur, err := s.collection.Find(ctx, bson.M{fieldOwner: owner.String()})
	if err != nil {
		return nil, fmt.Errorf("finding tasks: %w", err)
	}
	defer cur.Close(ctx)

	tasks := make([]task.Task, 0)
	for cur.Next(ctx) {
		var doc taskDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding task: %w", err)
		}
		t, err := doc.toTask()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// Create inserts t under owner and returns it with its new ObjectID.
func (s *TaskStore) Create(ctx context.Context, owner domain.Identity, t *task.Task) (*task.Task, error) {
	res, err := s.collection.InsertOne(ctx, toDocument(t, owner))
	if err != nil {
		return nil, fmt.Errorf("inserting task: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, errors.New("unexpected insert id type")
	}

	created := *t
	created.ID = id.Hex()
	created.Owner = owner
	if len(t.Images) > 0 {
		created.Images = append([]string(nil), t.Images...)
	}
	return &created, nil
}

// UpdateStatus sets status on the task matching (id, owner).
func (s *TaskStore) UpdateStatus(ctx context.Context, owner domain.Identity, id string, status task.Status) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := s.collection.UpdateOne(ctx,
		bson.M{fieldID: oid, fieldOwner: owner.String()},
		bson.M{"$set": bson.M{fieldStatus: string(status)}},
	)
	if err != nil {
		return false, fmt.Errorf("updating task: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// Delete removes the task matching (id, owner).
func (s *TaskStore) Delete(ctx context.Context, owner domain.Identity, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := s.collection.DeleteOne(ctx, bson.M{fieldID: oid, fieldOwner: owner.String()})
	if err != nil {
		return false, fmt.Errorf("deleting task: %w", err)
	}
	return res.DeletedCount > 0, nil
}
