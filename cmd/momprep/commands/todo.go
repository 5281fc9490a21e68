// ABOUTME: CLI commands for the tagged to-do list
// ABOUTME: todo add appends a Pending task; todo list shows the table
package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/momprep/internal/models"
)

var todoTag string

// NewTodoCmd creates the todo command group
func NewTodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the to-do list",
		Long: `Manage tasks tagged by where they can be done.

Tags:
  Mobile/Nursing   one-handed, on the phone
  Laptop/Focus     needs a keyboard and quiet`,
	}

	cmd.AddCommand(newTodoAddCmd())
	cmd.AddCommand(newTodoListCmd())

	return cmd
}

func newTodoAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <task>",
		Short: "Add a task",
		Example: `  momprep todo add "Email recruiter"
  momprep todo add "Write system design doc" --tag laptop`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := models.ParseTag(todoTag)
			if err != nil {
				return err
			}

			a, err := openApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			task := strings.Join(args, " ")
			todos, err := a.coach.AddTask(cmd.Context(), task, tag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return printJSON(out, todos[len(todos)-1])
			}
			info(out, "Added %q [%s]", task, tag)
			return nil
		},
	}

	cmd.Flags().StringVar(&todoTag, "tag", string(models.TagMobile), "Tag: Mobile/Nursing (mobile) or Laptop/Focus (laptop)")

	return cmd
}

func newTodoListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			todos, err := a.coach.Tasks(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				if todos == nil {
					todos = []models.TodoItem{}
				}
				return printJSON(out, todos)
			}

			if len(todos) == 0 {
				info(out, "No tasks")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "TASK\tTAG\tSTATUS\n")
			fmt.Fprintf(w, "----\t---\t------\n")
			for _, todo := range todos {
				fmt.Fprintf(w, "%s\t%s\t%s\n", truncate(todo.Task, 50), todo.Tag, todo.Status)
			}
			return w.Flush()
		},
	}
}
