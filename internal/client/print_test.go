package client_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskhive/taskhive/internal/client"
	"github.com/taskhive/taskhive/internal/task"
)

func TestPrintTask(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	tk := task.New("buy-milk", "2% milk", "high", "2026-09-01", now)
	alice := "alice"
	tk.Assignee = &alice
	tk.Comments = append(tk.Comments, "got 2 gallons")

	var sb strings.Builder
	client.PrintTask(&sb, tk)
	out := sb.String()

	assert.Contains(t, out, "Task: buy-milk\n")
	assert.Contains(t, out, "Description: 2% milk\n")
	assert.Contains(t, out, "Status: pending\n")
	assert.Contains(t, out, "Priority: high\n")
	assert.Contains(t, out, "Due Date: 2026-09-01\n")
	assert.Contains(t, out, "Assignee: alice\n")
	assert.Contains(t, out, "Created: 2026-08-28T12:00:00Z\n")
	assert.Contains(t, out, "  - got 2 gallons\n")
}

func TestPrintTask_NoAssigneeNoComments(t *testing.T) {
	tk := task.New("buy-milk", "2% milk", "", "", time.Now().UTC())

	var sb strings.Builder
	client.PrintTask(&sb, tk)
	out := sb.String()

	assert.NotContains(t, out, "Assignee:")
	assert.NotContains(t, out, "Comments:")
}

func TestPrintTaskList_Empty(t *testing.T) {
	var sb strings.Builder
	client.PrintTaskList(&sb, nil)
	assert.Equal(t, "No tasks found\n", sb.String())
}

func TestPrintTaskList(t *testing.T) {
	now := time.Now().UTC()
	tasks := []*task.Task{
		task.New("one", "", "", "", now),
		task.New("two", "", "", "", now),
	}

	var sb strings.Builder
	client.PrintTaskList(&sb, tasks)
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "Tasks:\n------\n"))
	assert.Contains(t, out, "Task: one\n")
	assert.Contains(t, out, "Task: two\n")
}
