package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

// Compile-time check that TaskStore implements ports.TaskStore.
var _ ports.TaskStore = (*TaskStore)(nil)

type taskRow struct {
	ID          string   `gorm:"primaryKey;type:varchar(36)"`
	Title       string   `gorm:"type:text;not null"`
	Description string   `gorm:"type:text;not null"`
	DueDate     string   `gorm:"type:varchar(10);not null"`
	Status      string   `gorm:"type:varchar(16);not null"`
	Images      []string `gorm:"type:text;serializer:json"`
	UserEmail   string   `gorm:"type:varchar(254);not null;index"`
}

func (taskRow) TableName() string { return "tasks" }

func (r *taskRow) toTask() (task.Task, error) {
	due, err := task.ParseDate(r.DueDate)
	if err != nil {
		return task.Task{}, fmt.Errorf("task %s: %w", r.ID, err)
	}
	t := task.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     due,
		Status:      task.Status(r.Status),
		Owner:       domain.Identity(r.UserEmail),
	}
	if len(r.Images) > 0 {
		t.Images = r.Images
	}
	return t, nil
}

// TaskStore persists tasks in the tasks table.
type TaskStore struct {
	db *gorm.DB
}

// ListForOwner returns every task whose user_email equals owner.
func (s *TaskStore) ListForOwner(ctx context.Context, owner domain.Identity) ([]task.Task, error) {
	var rows []taskRow
	if err := s.db.WithContext(ctx).Where("user_email = ?", owner.String()).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("finding tasks: %w", err)
	}

	tasks := make([]task.Task, 0, len(rows))
	for i := range rows {
		t, err := rows[i].toTask()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Create inserts t under owner with a new UUID.
func (s *TaskStore) Create(ctx context.Context, owner domain.Identity, t *task.Task) (*task.Task, error) {
	row := taskRow{
		ID:          uuid.NewString(),
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate.String(),
		Status:      string(t.Status),
		UserEmail:   owner.String(),
	}
	if len(t.Images) > 0 {
		row.Images = append([]string(nil), t.Images...)
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("inserting task: %w", err)
	}

	created := *t
	created.ID = row.ID
	created.Owner = owner
	created.Images = row.Images
	return &created, nil
}

// UpdateStatus sets status on the row matching (id, owner).
func (s *TaskStore) UpdateStatus(ctx context.Context, owner domain.Identity, id string, status task.Status) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&taskRow{}).
		Where("id = ? AND user_email = ?", id, owner.String()).
		Update("status", string(status))
	if res.Error != nil {
		return false, fmt.Errorf("updating task: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes the row matching (id, owner).
func (s *TaskStore) Delete(ctx context.Context, owner domain.Identity, id string) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_email = ?", id, owner.String()).
		Delete(&taskRow{})
	if res.Error != nil {
		return false, fmt.Errorf("deleting task: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
