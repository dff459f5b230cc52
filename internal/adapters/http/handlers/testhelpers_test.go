package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
)

const alice = domain.Identity("alice@example.com")

var testNow = time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC)

var testCalendar = task.Calendar{Now: func() time.Time { return testNow }}

func validTask() task.Task {
	return task.Task{
		ID:          "65f0c0ffee0000000000abcd",
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		DueDate:     task.NewDate(2025, time.March, 9),
		Status:      task.StatusPending,
		Owner:       alice,
	}
}

// asCaller returns r carrying id as the authenticated identity, the way the
// authentication middleware leaves it.
func asCaller(r *http.Request, id domain.Identity) *http.Request {
	return r.WithContext(domain.WithIdentity(r.Context(), id))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

