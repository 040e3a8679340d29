package task_test

import (
	"strings"
	"testing"

	"github.com/taskhive/taskhive/internal/task"
)

func TestNotFoundError(t *testing.T) {
	err := &task.NotFoundError{Name: "buy-milk"}
	if !strings.Contains(err.Error(), "buy-milk") {
		t.Errorf("error message should contain task name, got: %q", err.Error())
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := &task.AlreadyExistsError{Name: "buy-milk"}
	if !strings.Contains(err.Error(), "buy-milk") {
		t.Errorf("error message should contain task name, got: %q", err.Error())
	}
}

func TestInvalidInputError(t *testing.T) {
	err := &task.InvalidInputError{Field: "status", Reason: "invalid status value: done"}
	msg := err.Error()
	if !strings.Contains(msg, "status") {
		t.Errorf("error message should contain field, got: %q", msg)
	}
	if !strings.Contains(msg, "done") {
		t.Errorf("error message should contain reason, got: %q", msg)
	}
}

func TestAllErrorTypesImplementError(t *testing.T) {
	// Compile-time interface checks via assignment to error variables.
	var _ error = &task.NotFoundError{}
	var _ error = &task.AlreadyExistsError{}
	var _ error = &task.InvalidInputError{}
}
