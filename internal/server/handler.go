package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taskhive/taskhive/internal/store"
	"github.com/taskhive/taskhive/internal/task"
	"github.com/taskhive/taskhive/pkg/telemetry"
)

// REST handles HTTP requests for the task service.
type REST struct {
	store  *store.Store
	logger *slog.Logger
}

// NewREST creates a new REST handler over the given store.
func NewREST(s *store.Store, logger *slog.Logger) *REST {
	return &REST{store: s, logger: logger}
}

// CreateTaskRequest is the JSON body for POST /tasks.
type CreateTaskRequest struct {
	TaskName    string `json:"taskName"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

// UpdateStatusRequest is the JSON body for PATCH /tasks/{name}.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AssignRequest is the JSON body for POST /tasks/{name}/assign.
type AssignRequest struct {
	Assignee string `json:"assignee"`
}

// CommentRequest is the JSON body for POST /tasks/{name}/comments.
type CommentRequest struct {
	Comment string `json:"comment"`
}

// TaskListResponse wraps list and delete-all results.
type TaskListResponse struct {
	Tasks []*task.Task `json:"tasks"`
}

// CommentsResponse wraps get-comments results.
type CommentsResponse struct {
	Comments []string `json:"comments"`
}

// CreateTask handles POST /tasks.
func (h *REST) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request format")
		return
	}
	if strings.TrimSpace(req.TaskName) == "" {
		writeError(w, http.StatusBadRequest, "empty task name")
		return
	}

	t, err := h.store.Create(req.TaskName, req.Description, req.Priority, req.DueDate)
	h.count("create", err)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	telemetry.StoreTasks.Set(float64(h.store.Len()))

	h.logger.Info("task created", slog.String("task", t.Name))
	writeJSON(w, http.StatusOK, t)
}

// ListTasks handles GET /tasks.
func (h *REST) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks := h.store.List()
	h.count("list", nil)
	writeJSON(w, http.StatusOK, TaskListResponse{Tasks: tasks})
}

// GetTask handles GET /tasks/{name}.
func (h *REST) GetTask(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	t, err := h.store.Get(name)
	h.count("get", err)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// UpdateTaskStatus handles PATCH /tasks/{name}.
func (h *REST) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request format")
		return
	}
	if req.Status == "" {
		writeError(w, http.StatusBadRequest, "status not provided")
		return
	}
	status, err := task.ParseStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.store.UpdateStatus(name, status)
	h.count("update_status", err)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	h.logger.Info("task status updated",
		slog.String("task", name),
		slog.String("status", string(status)),
	)
	writeJSON(w, http.StatusOK, t)
}

// AssignTask handles POST /tasks/{name}/assign.
func (h *REST) AssignTask(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request format")
		return
	}
	if strings.TrimSpace(req.Assignee) == "" {
		writeError(w, http.StatusBadRequest, "assignee not provided")
		return
	}

	t, err := h.store.Assign(name, req.Assignee)
	h.count("assign", err)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	h.logger.Info("task assigned",
		slog.String("task", name),
		slog.String("assignee", req.Assignee),
	)
	writeJSON(w, http.StatusOK, t)
}

// AddTaskComment handles POST /tasks/{name}/comments.
func (h *REST) AddTaskComment(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request format")
		return
	}
	if strings.TrimSpace(req.Comment) == "" {
		writeError(w, http.StatusBadRequest, "comment not provided")
		return
	}

	t, err := h.store.AddComment(name, req.Comment)
	h.count("add_comment", err)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	h.logger.Info("comment added", slog.String("task", name))
	writeJSON(w, http.StatusOK, t)
}

// GetTaskComments handles GET /tasks/{name}/comments.
func (h *REST) GetTaskComments(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	comments, err := h.store.Comments(name)
	h.count("get_comments", err)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CommentsResponse{Comments: comments})
}

// DeleteTask handles DELETE /tasks/{name}.
func (h *REST) DeleteTask(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	t, err := h.store.Delete(name)
	h.count("delete", err)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	telemetry.StoreTasks.Set(float64(h.store.Len()))

	h.logger.Info("task deleted", slog.String("task", name))
	writeJSON(w, http.StatusOK, t)
}

// DeleteAllTasks handles DELETE /tasks.
func (h *REST) DeleteAllTasks(w http.ResponseWriter, r *http.Request) {
	tasks := h.store.DeleteAll()
	h.count("delete_all", nil)
	telemetry.StoreTasks.Set(0)

	h.logger.Info("all tasks deleted", slog.Int("count", len(tasks)))
	writeJSON(w, http.StatusOK, TaskListResponse{Tasks: tasks})
}

// Healthz handles GET /healthz.
func (h *REST) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// Readyz handles GET /readyz. The store is in-process, so ready == alive.
func (h *REST) Readyz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

// writeStoreError maps typed store errors onto HTTP status codes.
// AlreadyExists maps to 409 rather than the generic 500 class.
func (h *REST) writeStoreError(w http.ResponseWriter, err error) {
	var invalid *task.InvalidInputError
	var notFound *task.NotFoundError
	var exists *task.AlreadyExistsError

	switch {
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &exists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("store error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *REST) count(op string, err error) {
	outcome := "ok"
	if err != nil {
		var invalid *task.InvalidInputError
		var notFound *task.NotFoundError
		var exists *task.AlreadyExistsError
		switch {
		case errors.As(err, &invalid):
			outcome = "invalid_input"
		case errors.As(err, &notFound):
			outcome = "not_found"
		case errors.As(err, &exists):
			outcome = "already_exists"
		default:
			outcome = "error"
		}
	}
	telemetry.StoreOperations.WithLabelValues(op, outcome).Inc()
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"message": msg},
	})
}
