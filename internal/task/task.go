package task

import "time"

// Status represents the states a task can be in.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid returns true if s is one of the three known states.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

// ParseStatus converts raw client input into a Status.
// Returns InvalidInputError for anything outside the enum.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", &InvalidInputError{Field: "status", Reason: "invalid status value: " + raw}
	}
	return s, nil
}

// Task is the core domain entity: a named unit of work tracked by the store.
// The JSON tags are the wire contract; Name is the sole lookup key and is
// immutable after creation, as are Description, Priority and DueDate.
type Task struct {
	Name        string    `json:"taskName"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     string    `json:"dueDate"`
	Assignee    *string   `json:"assignee"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Comments    []string  `json:"comments"`
}

// New returns a pending task with both timestamps set to now.
func New(name, description, priority, dueDate string, now time.Time) *Task {
	return &Task{
		Name:        name,
		Description: description,
		Status:      StatusPending,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		Comments:    []string{},
	}
}

// Clone returns a deep copy. The store hands out clones so callers can never
// mutate shared state outside its lock.
func (t *Task) Clone() *Task {
	c := *t
	if t.Assignee != nil {
		a := *t.Assignee
		c.Assignee = &a
	}
	c.Comments = make([]string, len(t.Comments))
	copy(c.Comments, t.Comments)
	return &c
}
