package sqlstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/account"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
)

const (
	alice = domain.Identity("alice@example.com")
	bob   = domain.Identity("bob@example.com")
)

func setupDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(context.Background(), Config{
		Driver:       DriverSQLite,
		DSN:          "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })
	return db
}

func newTask(title string) *task.Task {
	return &task.Task{
		Title:       title,
		Description: title + " details",
		DueDate:     task.NewDate(2025, 3, 12),
		Status:      task.StatusPending,
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "oracle"})
	assert.Error(t, err)
}

func TestTaskStore_CreateAndList(t *testing.T) {
	ctx := context.Background()
	store := setupDB(t).Tasks()

	withImages := newTask("Sketch")
	withImages.Images = []string{"data:image/png;base64,AAAA", "data:image/jpeg;base64,BBBB"}

	created, err := store.Create(ctx, alice, withImages)
	require.NoError(t, err)
	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err, "created id should be a uuid")
	assert.Equal(t, alice, created.Owner)

	_, err = store.Create(ctx, alice, newTask("Plain"))
	require.NoError(t, err)

	got, err := store.ListForOwner(ctx, alice)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byTitle := map[string]task.Task{}
	for _, tk := range got {
		byTitle[tk.Title] = tk
	}

	if diff := cmp.Diff(withImages.Images, byTitle["Sketch"].Images); diff != "" {
		t.Errorf("images mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, byTitle["Plain"].Images)
	assert.Equal(t, task.NewDate(2025, 3, 12), byTitle["Plain"].DueDate)
	assert.Equal(t, task.StatusPending, byTitle["Plain"].Status)
}

func TestTaskStore_OwnerIsolation(t *testing.T) {
	ctx := context.Background()
	store := setupDB(t).Tasks()

	mine, err := store.Create(ctx, alice, newTask("Mine"))
	require.NoError(t, err)

	got, err := store.ListForOwner(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, got)

	matched, err := store.UpdateStatus(ctx, bob, mine.ID, task.StatusCompleted)
	require.NoError(t, err)
	assert.False(t, matched, "foreign owner must not match")

	matched, err = store.Delete(ctx, bob, mine.ID)
	require.NoError(t, err)
	assert.False(t, matched, "foreign owner must not match")

	got, err = store.ListForOwner(ctx, alice)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, task.StatusPending, got[0].Status)
}

func TestTaskStore_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	store := setupDB(t).Tasks()

	created, err := store.Create(ctx, alice, newTask("Toggle"))
	require.NoError(t, err)

	// Repeating a status is not an error; pending is restorable afterwards.
	for _, status := range []task.Status{task.StatusCompleted, task.StatusCompleted, task.StatusPending} {
		matched, err := store.UpdateStatus(ctx, alice, created.ID, status)
		require.NoError(t, err)
		assert.True(t, matched)

		got, err := store.ListForOwner(ctx, alice)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, status, got[0].Status)
	}

	matched, err := store.UpdateStatus(ctx, alice, "not-a-uuid", task.StatusCompleted)
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestTaskStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := setupDB(t).Tasks()

	created, err := store.Create(ctx, alice, newTask("Remove me"))
	require.NoError(t, err)

	matched, err := store.Delete(ctx, alice, created.ID)
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = store.Delete(ctx, alice, created.ID)
	require.NoError(t, err)
	assert.False(t, matched, "second delete should match nothing")

	got, err := store.ListForOwner(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	users := setupDB(t).Users()

	stamp := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	created, err := users.CreateUser(ctx, &account.User{
		Name: "Alice", Email: "alice@example.com", PasswordHash: "$2a$hash", CreatedAt: stamp,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = users.CreateUser(ctx, &account.User{Name: "Alice 2", Email: "alice@example.com", PasswordHash: "x", CreatedAt: stamp})
	assert.True(t, errors.Is(err, domain.ErrConflict), "error = %v, want ErrConflict", err)

	found, err := users.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "$2a$hash", found.PasswordHash)

	_, err = users.FindUserByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, domain.ErrNotFound), "error = %v, want ErrNotFound", err)
}

func TestDB_HealthCheck(t *testing.T) {
	db := setupDB(t)
	assert.Equal(t, "database", db.Name())
	assert.NoError(t, db.HealthCheck(context.Background()))
}
