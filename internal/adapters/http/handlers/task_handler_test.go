package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
	"github.com/jsamuelsen11/pracsphere-tasks/mocks"
)

func newTaskHandler(t *testing.T) (*handlers.TaskHandler, *mocks.MockTaskService) {
	t.Helper()
	svc := mocks.NewMockTaskService(t)
	limits := dto.IngestLimits{MaxBodyBytes: 1 << 20, MaxImages: 4}
	return handlers.NewTaskHandler(svc, testCalendar, limits), svc
}

// --- ListTasks ---

func TestListTasks_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().ListTasks(mock.Anything, alice, task.Filter{}).Return([]task.Task{validTask()}, nil)

	rec := httptest.NewRecorder()
	req := asCaller(httptest.NewRequest(http.MethodGet, "/api/tasks", nil), alice)
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.TaskResponse](t, rec)
	if len(resp) != 1 {
		t.Fatalf("len(resp) = %d, want 1", len(resp))
	}
	if !resp[0].Overdue {
		t.Error("Overdue = false, want true for pending task due yesterday")
	}
	if resp[0].DueDate != "2025-03-09" {
		t.Errorf("DueDate = %q, want %q", resp[0].DueDate, "2025-03-09")
	}
}

func TestListTasks_EmptyIsArray(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().ListTasks(mock.Anything, alice, task.Filter{}).Return([]task.Task{}, nil)

	rec := httptest.NewRecorder()
	req := asCaller(httptest.NewRequest(http.MethodGet, "/api/tasks", nil), alice)
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %s, want []", got)
	}
}

func TestListTasks_StatusFilter(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().ListTasks(mock.Anything, alice, task.Filter{Status: task.StatusCompleted}).Return(nil, nil)

	rec := httptest.NewRecorder()
	req := asCaller(httptest.NewRequest(http.MethodGet, "/api/tasks?status=completed", nil), alice)
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestListTasks_InvalidStatusFilter(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().ListTasks(mock.Anything, alice, task.Filter{Status: "bad"}).
		Return(nil, domain.NewValidationError("status", `invalid: "bad"`))

	rec := httptest.NewRecorder()
	req := asCaller(httptest.NewRequest(http.MethodGet, "/api/tasks?status=bad", nil), alice)
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestListTasks_NoIdentity(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestListTasks_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().ListTasks(mock.Anything, alice, task.Filter{}).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := asCaller(httptest.NewRequest(http.MethodGet, "/api/tasks", nil), alice)
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
}

// --- Summary ---

func TestSummary_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().Summary(mock.Anything, alice).
		Return(task.Summary{Total: 3, Pending: 2, Completed: 1, Overdue: 1}, nil)

	rec := httptest.NewRecorder()
	req := asCaller(httptest.NewRequest(http.MethodGet, "/api/tasks/summary", nil), alice)
	h.Summary(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SummaryResponse](t, rec)
	want := dto.SummaryResponse{Total: 3, Pending: 2, Completed: 1, Overdue: 1}
	if resp != want {
		t.Errorf("resp = %+v, want %+v", resp, want)
	}
}

// --- CreateTask ---

func TestCreateTask_JSON(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	created := validTask()
	svc.EXPECT().CreateTask(mock.Anything, alice, &task.Payload{
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		DueDate:     "2025-03-09",
	}).Return(&created, nil)

	body := jsonBody(t, dto.CreateTaskJSON{Title: "Buy groceries", Description: "Milk, eggs, bread", DueDate: "2025-03-09"})
	rec := httptest.NewRecorder()
	req := asCaller(httptest.NewRequest(http.MethodPost, "/api/tasks", body), alice)
	req.Header.Set("Content-Type", "application/json")
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.ID != created.ID {
		t.Errorf("ID = %q, want %q", resp.ID, created.ID)
	}
	if resp.Status != "pending" {
		t.Errorf("Status = %q, want %q", resp.Status, "pending")
	}
}

func TestCreateTask_Multipart(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	created := validTask()
	created.Images = []string{"data:image/png;base64,iVBORw=="}
	svc.EXPECT().CreateTask(mock.Anything, alice, mock.MatchedBy(func(p *task.Payload) bool {
		return p.Title == "Photos" && len(p.Images) == 1 &&
			strings.HasPrefix(p.Images[0], "data:image/png;base64,")
	})).Return(&created, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("title", "Photos")
	_ = mw.WriteField("description", "Holiday")
	_ = mw.WriteField("dueDate", "2025-03-12")
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="images"; filename="a.png"`)
	hdr.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("CreatePart() error = %v", err)
	}
	_, _ = part.Write([]byte("\x89PNG\r\n\x1a\n"))
	_ = mw.Close()

	rec := httptest.NewRecorder()
	req := asCaller(httptest.NewRequest(http.MethodPost, "/api/tasks", &buf), alice)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if len(resp.Images) != 1 {
		t.Errorf("len(Images) = %d, want 1", len(resp.Images))
	}
}

func TestCreateTask_ValidationError(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().CreateTask(mock.Anything, alice, mock.Anything).
		Return(nil, domain.NewValidationError("title", domain.MsgRequired))

	rec := httptest.NewRecorder()
	req := asCaller(httptest.NewRequest(http.MethodPost, "/api/tasks",
		strings.NewReader(`{"description":"x","dueDate":"2025-03-12"}`)), alice)
	req.Header.Set("Content-Type", "application/json")
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.title" {
		t.Errorf("Errors = %+v, want one error at body.title", resp.Errors)
	}
}

func TestCreateTask_UnsupportedContentType(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := asCaller(httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader("title=x")), alice)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateTask_PayloadTooLarge(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockTaskService(t)
	h := handlers.NewTaskHandler(svc, testCalendar, dto.IngestLimits{MaxBodyBytes: 32})

	rec := httptest.NewRecorder()
	req := asCaller(httptest.NewRequest(http.MethodPost, "/api/tasks",
		strings.NewReader(`{"title":"`+strings.Repeat("x", 64)+`"}`)), alice)
	req.Header.Set("Content-Type", "application/json")
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusRequestEntityTooLarge)
}

func TestCreateTask_NoIdentitySkipsBody(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusUnauthorized)
}

// --- UpdateStatus ---

func TestUpdateStatus_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().UpdateStatus(mock.Anything, alice, "abc", task.StatusCompleted).Return(nil)

	body := jsonBody(t, dto.UpdateStatusRequest{ID: "abc", Status: "completed"})
	rec := httptest.NewRecorder()
	req := asCaller(httptest.NewRequest(http.MethodPatch, "/api/tasks", body), alice)
	h.UpdateStatus(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.MessageResponse](t, rec)
	if resp.Message != "Task updated" {
		t.Errorf("Message = %q, want %q", resp.Message, "Task updated")
	}
}

func TestUpdateStatus_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"missing id", `{"status":"completed"}`},
		{"missing status", `{"id":"abc"}`},
		{"unknown status", `{"id":"abc","status":"done"}`},
		{"invalid JSON", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newTaskHandler(t)

			rec := httptest.NewRecorder()
			req := asCaller(httptest.NewRequest(http.MethodPatch, "/api/tasks", strings.NewReader(tt.body)), alice)
			h.UpdateStatus(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

func TestUpdateStatus_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().UpdateStatus(mock.Anything, alice, "abc", task.StatusPending).Return(domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := asCaller(httptest.NewRequest(http.MethodPatch, "/api/tasks",
		strings.NewReader(`{"id":"abc","status":"pending"}`)), alice)
	h.UpdateStatus(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
}

// --- DeleteTask ---

func TestDeleteTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().DeleteTask(mock.Anything, alice, "abc").Return(nil)

	rec := httptest.NewRecorder()
	req := asCaller(httptest.NewRequest(http.MethodDelete, "/api/tasks", strings.NewReader(`{"id":"abc"}`)), alice)
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.MessageResponse](t, rec)
	if resp.Message != "Task deleted" {
		t.Errorf("Message = %q, want %q", resp.Message, "Task deleted")
	}
}

func TestDeleteTask_MissingID(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := asCaller(httptest.NewRequest(http.MethodDelete, "/api/tasks", strings.NewReader(`{}`)), alice)
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestDeleteTask_NoIdentity(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/tasks", strings.NewReader(`{"id":"abc"}`))
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusUnauthorized)
}
