package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/daybook/internal/events"
)

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage calendar events",
	}

	cmd.AddCommand(newEventsListCmd())
	cmd.AddCommand(newEventsAddCmd())
	cmd.AddCommand(newEventsEditCmd())
	cmd.AddCommand(newEventsRmCmd())

	return cmd
}

func newEventsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all events",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			c := events.NewController(client)
			if err := c.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tSTART\tEND\tLOCATION\tPRIORITY")
			for _, e := range c.Items() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.Title,
					e.StartDate.UTC().Format(time.RFC3339),
					e.EndDate.UTC().Format(time.RFC3339),
					e.Location, e.Priority)
			}
			return w.Flush()
		},
	}
}

func newEventsAddCmd() *cobra.Command {
	var (
		title       string
		description string
		start       string
		end         string
		location    string
		priority    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an event",
		Long: `Create a calendar event. An event given only a start date ends at
that same instant; an end date before the start is rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			startDate, err := parseOptionalTimeFlag(cmd, "start", start)
			if err != nil {
				return err
			}
			endDate, err := parseOptionalTimeFlag(cmd, "end", end)
			if err != nil {
				return err
			}

			c := events.NewController(client)
			if err := c.OpenCreate(); err != nil {
				return err
			}
			if err := c.MutateDraft(func(e *events.Event) {
				e.Title = title
				e.Description = description
				e.Location = location
				e.Priority = priority
				if cmd.Flags().Changed("start") {
					e.StartDate = startDate
					e.EndDate = startDate
				}
				if cmd.Flags().Changed("end") {
					e.EndDate = endDate
				}
			}); err != nil {
				return err
			}

			if err := c.Submit(cmd.Context()); err != nil {
				return fmt.Errorf("failed to create event: %w", err)
			}

			fmt.Printf("Event %q created\n", title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&description, "description", "", "Longer description")
	cmd.Flags().StringVar(&start, "start", "", "Start date (RFC 3339, default: now)")
	cmd.Flags().StringVar(&end, "end", "", "End date (RFC 3339, default: the start date)")
	cmd.Flags().StringVar(&location, "location", "", "Where the event takes place")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: low, medium or high (default: medium)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newEventsEditCmd() *cobra.Command {
	var (
		title       string
		description string
		start       string
		end         string
		location    string
		priority    string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update an event",
		Long: `Update an event. Only the fields given as flags change; everything
else keeps its current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			startDate, err := parseOptionalTimeFlag(cmd, "start", start)
			if err != nil {
				return err
			}
			endDate, err := parseOptionalTimeFlag(cmd, "end", end)
			if err != nil {
				return err
			}

			c := events.NewController(client)
			if err := c.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to fetch events: %w", err)
			}
			if err := c.OpenEdit(args[0]); err != nil {
				return err
			}

			if err := c.MutateDraft(func(e *events.Event) {
				if cmd.Flags().Changed("title") {
					e.Title = title
				}
				if cmd.Flags().Changed("description") {
					e.Description = description
				}
				if cmd.Flags().Changed("start") {
					e.StartDate = startDate
				}
				if cmd.Flags().Changed("end") {
					e.EndDate = endDate
				}
				if cmd.Flags().Changed("location") {
					e.Location = location
				}
				if cmd.Flags().Changed("priority") {
					e.Priority = priority
				}
			}); err != nil {
				return err
			}

			if err := c.Submit(cmd.Context()); err != nil {
				return fmt.Errorf("failed to update event: %w", err)
			}

			fmt.Printf("Event %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&start, "start", "", "New start date (RFC 3339)")
	cmd.Flags().StringVar(&end, "end", "", "New end date (RFC 3339)")
	cmd.Flags().StringVar(&location, "location", "", "New location")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority: low, medium or high")

	return cmd
}

func newEventsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			if err := events.NewController(client).Remove(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete event: %w", err)
			}

			fmt.Printf("Event %s deleted\n", args[0])
			return nil
		},
	}
}
