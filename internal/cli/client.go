package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskhive/taskhive/internal/client"
	"github.com/taskhive/taskhive/internal/task"
)

// addClientCommands registers the subcommands that talk to a running server
// over HTTP. They all honor the persistent --server flag.
func addClientCommands(root *cobra.Command) {
	var priority, dueDate string

	createCmd := &cobra.Command{
		Use:   "create NAME DESCRIPTION",
		Short: "Create a new task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serverURL)
			if _, err := c.CreateTask(cmd.Context(), args[0], args[1], priority, dueDate); err != nil {
				return err
			}
			fmt.Printf("Task '%s' created successfully\n", args[0])
			return nil
		},
	}
	createCmd.Flags().StringVar(&priority, "priority", "", "task priority")
	createCmd.Flags().StringVar(&dueDate, "due-date", "", "task due date")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := client.New(serverURL)
			tasks, err := c.ListTasks(cmd.Context())
			if err != nil {
				return err
			}
			client.PrintTaskList(os.Stdout, tasks)
			return nil
		},
	}

	getCmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Get a specific task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serverURL)
			t, err := c.GetTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			client.PrintTask(os.Stdout, t)
			return nil
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update NAME STATUS",
		Short: "Update task status (pending | in-progress | completed)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := task.ParseStatus(args[1]); err != nil {
				return err
			}
			c := client.New(serverURL)
			if _, err := c.UpdateStatus(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Task '%s' status updated to '%s'\n", args[0], args[1])
			return nil
		},
	}

	assignCmd := &cobra.Command{
		Use:   "assign NAME ASSIGNEE",
		Short: "Assign task to someone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serverURL)
			if _, err := c.AssignTask(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Task '%s' assigned to '%s'\n", args[0], args[1])
			return nil
		},
	}

	commentCmd := &cobra.Command{
		Use:   "comment NAME TEXT",
		Short: "Add comment to task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serverURL)
			if _, err := c.AddComment(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Comment added to task '%s'\n", args[0])
			return nil
		},
	}

	commentsCmd := &cobra.Command{
		Use:   "comments NAME",
		Short: "List a task's comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serverURL)
			comments, err := c.GetComments(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(comments) == 0 {
				fmt.Println("No comments found")
				return nil
			}
			for _, text := range comments {
				fmt.Printf("  - %s\n", text)
			}
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(serverURL)
			if _, err := c.DeleteTask(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Task '%s' deleted successfully\n", args[0])
			return nil
		},
	}

	deleteAllCmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := client.New(serverURL)
			if _, err := c.DeleteAllTasks(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("All tasks deleted successfully")
			return nil
		},
	}

	root.AddCommand(createCmd, listCmd, getCmd, updateCmd, assignCmd,
		commentCmd, commentsCmd, deleteCmd, deleteAllCmd)
}
