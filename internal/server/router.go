package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the REST handler onto the task routes. The route shapes
// mirror the public API: collection verbs on /tasks, record verbs on
// /tasks/{name}, and sub-resources for assignment and comments.
func NewRouter(h *REST, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(RequestLogger(logger))
	r.Use(MaxBodySize(1 << 20)) // 1MB limit

	r.Get("/healthz", h.Healthz)
	r.Get("/readyz", h.Readyz)

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", h.CreateTask)
		r.Get("/", h.ListTasks)
		r.Delete("/", h.DeleteAllTasks)

		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", h.GetTask)
			r.Patch("/", h.UpdateTaskStatus)
			r.Delete("/", h.DeleteTask)
			r.Post("/assign", h.AssignTask)
			r.Post("/comments", h.AddTaskComment)
			r.Get("/comments", h.GetTaskComments)
		})
	})

	return r
}
