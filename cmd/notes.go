package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/teemow/daybook/internal/notes"
)

func newNotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage notes",
	}

	cmd.AddCommand(newNotesListCmd())
	cmd.AddCommand(newNotesAddCmd())
	cmd.AddCommand(newNotesEditCmd())
	cmd.AddCommand(newNotesRmCmd())

	return cmd
}

func newNotesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			c := notes.NewController(client)
			if err := c.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to list notes: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tTAGS\tCOLOR")
			for _, n := range c.Items() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					n.ID, n.Title, strings.Join(n.Tags, ","), n.Color)
			}
			return w.Flush()
		},
	}
}

func newNotesAddCmd() *cobra.Command {
	var (
		title   string
		content string
		tags    string
		color   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			c := notes.NewController(client)
			if err := c.OpenCreate(); err != nil {
				return err
			}
			if err := c.MutateDraft(func(n *notes.Note) {
				n.Title = title
				n.Content = content
				n.Tags = notes.ParseTags(tags)
				n.Color = color
			}); err != nil {
				return err
			}

			if err := c.Submit(cmd.Context()); err != nil {
				return fmt.Errorf("failed to create note: %w", err)
			}

			fmt.Printf("Note %q created\n", title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&content, "content", "", "Note body")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&color, "color", "", "Background color (default: "+notes.DefaultColor+")")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newNotesEditCmd() *cobra.Command {
	var (
		title   string
		content string
		tags    string
		color   string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a note",
		Long: `Update a note. Only the fields given as flags change; everything
else keeps its current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			c := notes.NewController(client)
			if err := c.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to fetch notes: %w", err)
			}
			if err := c.OpenEdit(args[0]); err != nil {
				return err
			}

			if err := c.MutateDraft(func(n *notes.Note) {
				if cmd.Flags().Changed("title") {
					n.Title = title
				}
				if cmd.Flags().Changed("content") {
					n.Content = content
				}
				if cmd.Flags().Changed("tags") {
					n.Tags = notes.ParseTags(tags)
				}
				if cmd.Flags().Changed("color") {
					n.Color = color
				}
			}); err != nil {
				return err
			}

			if err := c.Submit(cmd.Context()); err != nil {
				return fmt.Errorf("failed to update note: %w", err)
			}

			fmt.Printf("Note %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&content, "content", "", "New body")
	cmd.Flags().StringVar(&tags, "tags", "", "New comma-separated tags")
	cmd.Flags().StringVar(&color, "color", "", "New background color")

	return cmd
}

func newNotesRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := newBackend()
			if err != nil {
				return err
			}

			if err := notes.NewController(client).Remove(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete note: %w", err)
			}

			fmt.Printf("Note %s deleted\n", args[0])
			return nil
		},
	}
}
