package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/daybook/internal/todos"
)

func newTodosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todos",
		Short: "Manage todos",
	}

	cmd.AddCommand(newTodosListCmd())
	cmd.AddCommand(newTodosAddCmd())
	cmd.AddCommand(newTodosEditCmd())
	cmd.AddCommand(newTodosRmCmd())

	return cmd
}

func newTodosListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all todos",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			c := todos.NewController(client)
			if err := c.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to list todos: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tDUE\tPRIORITY\tSTATUS")
			for _, t := range c.Items() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					t.ID, t.Title, t.DueDate.UTC().Format(time.RFC3339), t.Priority, t.Status)
			}
			return w.Flush()
		},
	}
}

func newTodosAddCmd() *cobra.Command {
	var (
		title       string
		description string
		due         string
		priority    string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a todo",
		Long: `Create a todo. Fields left unset fall back to the collection
defaults: medium priority, pending status and a due date of now.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			c := todos.NewController(client)
			if err := c.OpenCreate(); err != nil {
				return err
			}
			if err := c.MutateDraft(func(t *todos.Todo) {
				t.Title = title
				t.Description = description
				t.Priority = priority
				t.Status = status
			}); err != nil {
				return err
			}
			if due != "" {
				dueDate, err := parseTimeFlag("due", due)
				if err != nil {
					return err
				}
				_ = c.MutateDraft(func(t *todos.Todo) { t.DueDate = dueDate })
			}

			if err := c.Submit(cmd.Context()); err != nil {
				return fmt.Errorf("failed to create todo: %w", err)
			}

			fmt.Printf("Todo %q created\n", title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Todo title")
	cmd.Flags().StringVar(&description, "description", "", "Longer description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (RFC 3339, default: now)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: low, medium or high (default: medium)")
	cmd.Flags().StringVar(&status, "status", "", "Status: pending, in_progress or completed (default: pending)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTodosEditCmd() *cobra.Command {
	var (
		title       string
		description string
		due         string
		priority    string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a todo",
		Long: `Update a todo. Only the fields given as flags change; everything
else keeps its current value. The full record is sent to the
backend.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			c := todos.NewController(client)
			if err := c.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to fetch todos: %w", err)
			}
			if err := c.OpenEdit(args[0]); err != nil {
				return err
			}

			dueDate, err := parseOptionalTimeFlag(cmd, "due", due)
			if err != nil {
				return err
			}

			if err := c.MutateDraft(func(t *todos.Todo) {
				if cmd.Flags().Changed("title") {
					t.Title = title
				}
				if cmd.Flags().Changed("description") {
					t.Description = description
				}
				if cmd.Flags().Changed("priority") {
					t.Priority = priority
				}
				if cmd.Flags().Changed("status") {
					t.Status = status
				}
				if cmd.Flags().Changed("due") {
					t.DueDate = dueDate
				}
			}); err != nil {
				return err
			}

			if err := c.Submit(cmd.Context()); err != nil {
				return fmt.Errorf("failed to update todo: %w", err)
			}

			fmt.Printf("Todo %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&due, "due", "", "New due date (RFC 3339)")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority: low, medium or high")
	cmd.Flags().StringVar(&status, "status", "", "New status: pending, in_progress or completed")

	return cmd
}

func newTodosRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			if err := todos.NewController(client).Remove(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete todo: %w", err)
			}

			fmt.Printf("Todo %s deleted\n", args[0])
			return nil
		},
	}
}
