package task

import "fmt"

// NotFoundError is returned when a task name does not exist in the store.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task '%s' not found", e.Name)
}

// AlreadyExistsError is returned when a create collides with an existing name.
type AlreadyExistsError struct {
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("task '%s' already exists", e.Name)
}

// InvalidInputError is returned when a required field is missing or a value
// falls outside its enum.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
