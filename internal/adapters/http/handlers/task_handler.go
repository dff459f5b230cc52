package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

// TaskHandler handles HTTP requests for the caller's tasks. Every route it
// serves sits behind the authentication middleware.
type TaskHandler struct {
	svc      ports.TaskService
	calendar task.Calendar
	limits   dto.IngestLimits
}

// NewTaskHandler creates a new TaskHandler. The calendar decides "today" for
// the overdue flag in responses; limits bound creation bodies.
func NewTaskHandler(svc ports.TaskService, calendar task.Calendar, limits dto.IngestLimits) *TaskHandler {
	return &TaskHandler{svc: svc, calendar: calendar, limits: limits}
}

// ListTasks handles GET /api/tasks. An optional ?status= narrows the list.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	filter := task.Filter{Status: task.Status(r.URL.Query().Get("status"))}
	tasks, err := h.svc.ListTasks(r.Context(), owner, filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks, h.calendar.Today()))
}

// Summary handles GET /api/tasks/summary.
func (h *TaskHandler) Summary(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.Summary(r.Context(), owner)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSummaryResponse(summary))
}

// CreateTask handles POST /api/tasks with either a JSON or a multipart body.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	body, err := dto.DecodeCreateTask(w, r, h.limits)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	created, err := h.svc.CreateTask(r.Context(), owner, body.Payload())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(created, h.calendar.Today()))
}

// UpdateStatus handles PATCH /api/tasks. The response is the same whether
// or not the id matched one of the caller's tasks.
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), owner, req.ID, task.Status(req.Status)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: dto.MsgTaskUpdated})
}

// DeleteTask handles DELETE /api/tasks with the same acknowledgement
// semantics as UpdateStatus.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerIdentity(w, r)
	if !ok {
		return
	}

	var req dto.DeleteTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.svc.DeleteTask(r.Context(), owner, req.ID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: dto.MsgTaskDeleted})
}
