// Package store holds every task record in memory behind a single mutex.
// Each exported method is one critical section: it either fully applies or
// fully fails, and never performs I/O while holding the lock.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/taskhive/taskhive/internal/task"
)

// Store maps unique task names to task records. The zero value is not usable;
// construct with New. List order is insertion order.
type Store struct {
	mu    sync.Mutex
	tasks map[string]*task.Task
	order []string
}

// New creates an empty Store.
func New() *Store {
	return &Store{tasks: make(map[string]*task.Task)}
}

// Create inserts a new pending task. Fails with AlreadyExistsError if the
// name is taken and InvalidInputError if the name is empty.
func (s *Store) Create(name, description, priority, dueDate string) (*task.Task, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &task.InvalidInputError{Field: "taskName", Reason: "empty task name"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[name]; ok {
		return nil, &task.AlreadyExistsError{Name: name}
	}

	t := task.New(name, description, priority, dueDate, time.Now().UTC())
	s.tasks[name] = t
	s.order = append(s.order, name)
	return t.Clone(), nil
}

// Get returns a snapshot of the named task.
func (s *Store) Get(name string) (*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[name]
	if !ok {
		return nil, &task.NotFoundError{Name: name}
	}
	return t.Clone(), nil
}

// List returns snapshots of every task in insertion order. Never fails.
func (s *Store) List() []*task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// UpdateStatus sets the task's status and refreshes updated_at.
func (s *Store) UpdateStatus(name string, status task.Status) (*task.Task, error) {
	if !status.Valid() {
		return nil, &task.InvalidInputError{Field: "status", Reason: "invalid status value: " + string(status)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[name]
	if !ok {
		return nil, &task.NotFoundError{Name: name}
	}
	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	return t.Clone(), nil
}

// Assign sets the task's assignee and refreshes updated_at.
func (s *Store) Assign(name, assignee string) (*task.Task, error) {
	if strings.TrimSpace(assignee) == "" {
		return nil, &task.InvalidInputError{Field: "assignee", Reason: "assignee not provided"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[name]
	if !ok {
		return nil, &task.NotFoundError{Name: name}
	}
	t.Assignee = &assignee
	t.UpdatedAt = time.Now().UTC()
	return t.Clone(), nil
}

// AddComment appends a comment and refreshes updated_at. Comments are
// append-only and keep insertion order.
func (s *Store) AddComment(name, comment string) (*task.Task, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, &task.InvalidInputError{Field: "comment", Reason: "comment not provided"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[name]
	if !ok {
		return nil, &task.NotFoundError{Name: name}
	}
	t.Comments = append(t.Comments, comment)
	t.UpdatedAt = time.Now().UTC()
	return t.Clone(), nil
}

// Comments returns the task's ordered comment list.
func (s *Store) Comments(name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[name]
	if !ok {
		return nil, &task.NotFoundError{Name: name}
	}
	out := make([]string, len(t.Comments))
	copy(out, t.Comments)
	return out, nil
}

// Delete removes the named task and returns its final state.
func (s *Store) Delete(name string) (*task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[name]
	if !ok {
		return nil, &task.NotFoundError{Name: name}
	}
	delete(s.tasks, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return t.Clone(), nil
}

// DeleteAll removes every task and returns the pre-deletion list. Never fails.
func (s *Store) DeleteAll() []*task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.snapshotLocked()
	s.tasks = make(map[string]*task.Task)
	s.order = nil
	return out
}

// Len reports the number of stored tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *Store) snapshotLocked() []*task.Task {
	out := make([]*task.Task, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.tasks[name].Clone())
	}
	return out
}
