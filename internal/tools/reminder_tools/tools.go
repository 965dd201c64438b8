package reminder_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/daybook/internal/reminders"
	"github.com/teemow/daybook/internal/server"
	"github.com/teemow/daybook/internal/tools/common"
)

// RegisterReminderTools registers all reminder-related tools with the MCP server.
func RegisterReminderTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List reminders tool (read-only, always available)
	listTool := mcp.NewTool("reminders_list",
		mcp.WithDescription("List all reminders for the authenticated user"),
	)

	s.AddTool(listTool, common.InstrumentedToolHandler("reminders_list", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		c := sc.Reminders()
		if err := c.Refresh(ctx); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list reminders: %v", err)), nil
		}

		result, _ := json.MarshalIndent(c.Items(), "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	if readOnly {
		return nil
	}

	// Create reminder tool
	createTool := mcp.NewTool("reminders_create",
		mcp.WithDescription("Create a new reminder"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the reminder"),
		),
		mcp.WithString("description",
			mcp.Description("Longer description of the reminder"),
		),
		mcp.WithString("dueDate",
			mcp.Description("Due date (RFC3339 format, default: now)"),
		),
		mcp.WithString("priority",
			mcp.Description("Priority: low, medium or high (default: medium)"),
		),
	)

	s.AddTool(createTool, common.InstrumentedToolHandler("reminders_create", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		title, err := common.RequireString(args, "title")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		c := sc.Reminders()
		if err := c.OpenCreate(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		_ = c.MutateDraft(func(r *reminders.Reminder) {
			r.Title = title
			r.Description = common.OptionalString(args, "description", "")
			r.Priority = common.OptionalString(args, "priority", r.Priority)
			if due := common.OptionalTime(args, "dueDate"); !due.IsZero() {
				r.DueDate = due
			}
		})

		if err := c.Submit(ctx); err != nil {
			_ = c.Cancel()
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create reminder: %v", err)), nil
		}

		result, _ := json.MarshalIndent(c.Items(), "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Reminder created successfully:\n%s", string(result))), nil
	}))

	// Update reminder tool
	updateTool := mcp.NewTool("reminders_update",
		mcp.WithDescription("Update an existing reminder"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The ID of the reminder to update"),
		),
		mcp.WithString("title",
			mcp.Description("New title for the reminder"),
		),
		mcp.WithString("description",
			mcp.Description("New description for the reminder"),
		),
		mcp.WithString("dueDate",
			mcp.Description("New due date (RFC3339 format)"),
		),
		mcp.WithString("priority",
			mcp.Description("New priority: low, medium or high"),
		),
	)

	s.AddTool(updateTool, common.InstrumentedToolHandler("reminders_update", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		id, err := common.RequireString(args, "id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		c := sc.Reminders()
		if err := c.Refresh(ctx); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch reminders: %v", err)), nil
		}
		if err := c.OpenEdit(id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		_ = c.MutateDraft(func(r *reminders.Reminder) {
			r.Title = common.OptionalString(args, "title", r.Title)
			r.Description = common.OptionalString(args, "description", r.Description)
			r.Priority = common.OptionalString(args, "priority", r.Priority)
			if due := common.OptionalTime(args, "dueDate"); !due.IsZero() {
				r.DueDate = due
			}
		})

		if err := c.Submit(ctx); err != nil {
			_ = c.Cancel()
			return mcp.NewToolResultError(fmt.Sprintf("Failed to update reminder: %v", err)), nil
		}

		result, _ := json.MarshalIndent(c.Items(), "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Reminder updated successfully:\n%s", string(result))), nil
	}))

	// Toggle completed tool
	toggleTool := mcp.NewTool("reminders_toggle_completed",
		mcp.WithDescription("Toggle a reminder's completed flag"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The ID of the reminder to toggle"),
		),
	)

	s.AddTool(toggleTool, common.InstrumentedToolHandler("reminders_toggle_completed", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		id, err := common.RequireString(args, "id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		c := sc.Reminders()
		if err := c.Refresh(ctx); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch reminders: %v", err)), nil
		}

		var toggled *reminders.Reminder
		for _, item := range c.Items() {
			if item.ID == id {
				t := item.Toggled()
				toggled = &t
				break
			}
		}
		if toggled == nil {
			return mcp.NewToolResultError(fmt.Sprintf("no reminder with id %q", id)), nil
		}

		if err := c.Replace(ctx, id, *toggled); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to toggle reminder: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Reminder %s completed=%t", id, toggled.Completed)), nil
	}))

	// Delete reminder tool
	deleteTool := mcp.NewTool("reminders_delete",
		mcp.WithDescription("Delete a reminder"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The ID of the reminder to delete"),
		),
	)

	s.AddTool(deleteTool, common.InstrumentedToolHandler("reminders_delete", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		id, err := common.RequireString(args, "id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := sc.Reminders().Remove(ctx, id); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete reminder: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Reminder %s deleted successfully", id)), nil
	}))

	return nil
}
