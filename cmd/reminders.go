package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/daybook/internal/reminders"
)

func newRemindersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Manage reminders",
	}

	cmd.AddCommand(newRemindersListCmd())
	cmd.AddCommand(newRemindersAddCmd())
	cmd.AddCommand(newRemindersEditCmd())
	cmd.AddCommand(newRemindersToggleCmd())
	cmd.AddCommand(newRemindersRmCmd())

	return cmd
}

func newRemindersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			c := reminders.NewController(client)
			if err := c.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to list reminders: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tDUE\tPRIORITY\tDONE")
			for _, r := range c.Items() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
					r.ID, r.Title, r.DueDate.UTC().Format(time.RFC3339), r.Priority, r.Completed)
			}
			return w.Flush()
		},
	}
}

func newRemindersAddCmd() *cobra.Command {
	var (
		title       string
		description string
		due         string
		priority    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a reminder",
		Long: `Create a reminder. New reminders start uncompleted with medium
priority and a due date of now unless overridden.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			dueDate, err := parseOptionalTimeFlag(cmd, "due", due)
			if err != nil {
				return err
			}

			c := reminders.NewController(client)
			if err := c.OpenCreate(); err != nil {
				return err
			}
			if err := c.MutateDraft(func(r *reminders.Reminder) {
				r.Title = title
				r.Description = description
				r.Priority = priority
				if cmd.Flags().Changed("due") {
					r.DueDate = dueDate
				}
			}); err != nil {
				return err
			}

			if err := c.Submit(cmd.Context()); err != nil {
				return fmt.Errorf("failed to create reminder: %w", err)
			}

			fmt.Printf("Reminder %q created\n", title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Reminder title")
	cmd.Flags().StringVar(&description, "description", "", "Longer description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (RFC 3339, default: now)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: low, medium or high (default: medium)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newRemindersEditCmd() *cobra.Command {
	var (
		title       string
		description string
		due         string
		priority    string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a reminder",
		Long: `Update a reminder. Only the fields given as flags change; everything
else keeps its current value. Use "reminders toggle" to flip the
completed flag.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			dueDate, err := parseOptionalTimeFlag(cmd, "due", due)
			if err != nil {
				return err
			}

			c := reminders.NewController(client)
			if err := c.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to fetch reminders: %w", err)
			}
			if err := c.OpenEdit(args[0]); err != nil {
				return err
			}

			if err := c.MutateDraft(func(r *reminders.Reminder) {
				if cmd.Flags().Changed("title") {
					r.Title = title
				}
				if cmd.Flags().Changed("description") {
					r.Description = description
				}
				if cmd.Flags().Changed("priority") {
					r.Priority = priority
				}
				if cmd.Flags().Changed("due") {
					r.DueDate = dueDate
				}
			}); err != nil {
				return err
			}

			if err := c.Submit(cmd.Context()); err != nil {
				return fmt.Errorf("failed to update reminder: %w", err)
			}

			fmt.Printf("Reminder %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&due, "due", "", "New due date (RFC 3339)")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority: low, medium or high")

	return cmd
}

func newRemindersToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a reminder's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			c := reminders.NewController(client)
			if err := c.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to fetch reminders: %w", err)
			}

			for _, r := range c.Items() {
				if r.ID != args[0] {
					continue
				}
				toggled := r.Toggled()
				if err := c.Replace(cmd.Context(), r.ID, toggled); err != nil {
					return fmt.Errorf("failed to toggle reminder: %w", err)
				}
				fmt.Printf("Reminder %s completed=%t\n", r.ID, toggled.Completed)
				return nil
			}
			return fmt.Errorf("no reminder with id %q", args[0])
		},
	}
}

func newRemindersRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			if err := reminders.NewController(client).Remove(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete reminder: %w", err)
			}

			fmt.Printf("Reminder %s deleted\n", args[0])
			return nil
		},
	}
}
