package client

import (
	"fmt"
	"io"
	"time"

	"github.com/taskhive/taskhive/internal/task"
)

// PrintTask writes a task in the field-per-line text format used by the CLI.
func PrintTask(w io.Writer, t *task.Task) {
	fmt.Fprintf(w, "Task: %s\n", t.Name)
	fmt.Fprintf(w, "Description: %s\n", t.Description)
	fmt.Fprintf(w, "Status: %s\n", t.Status)
	fmt.Fprintf(w, "Priority: %s\n", t.Priority)
	fmt.Fprintf(w, "Due Date: %s\n", t.DueDate)

	if t.Assignee != nil && *t.Assignee != "" {
		fmt.Fprintf(w, "Assignee: %s\n", *t.Assignee)
	}

	fmt.Fprintf(w, "Created: %s\n", t.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Updated: %s\n", t.UpdatedAt.Format(time.RFC3339))

	if len(t.Comments) > 0 {
		fmt.Fprintln(w, "Comments:")
		for _, c := range t.Comments {
			fmt.Fprintf(w, "  - %s\n", c)
		}
	}
	fmt.Fprintln(w)
}

// PrintTaskList writes a header followed by every task, or a placeholder when
// the list is empty.
func PrintTaskList(w io.Writer, tasks []*task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}
	fmt.Fprintln(w, "Tasks:")
	fmt.Fprintln(w, "------")
	for _, t := range tasks {
		PrintTask(w, t)
	}
}
