package event_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/daybook/internal/events"
	"github.com/teemow/daybook/internal/server"
	"github.com/teemow/daybook/internal/tools/common"
)

// RegisterEventTools registers all event-related tools with the MCP server.
func RegisterEventTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List events tool (read-only, always available)
	listTool := mcp.NewTool("events_list",
		mcp.WithDescription("List all calendar events for the authenticated user"),
	)

	s.AddTool(listTool, common.InstrumentedToolHandler("events_list", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		c := sc.Events()
		if err := c.Refresh(ctx); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list events: %v", err)), nil
		}

		result, _ := json.MarshalIndent(c.Items(), "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	if readOnly {
		return nil
	}

	// Create event tool
	createTool := mcp.NewTool("events_create",
		mcp.WithDescription("Create a new calendar event"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the event"),
		),
		mcp.WithString("description",
			mcp.Description("Longer description of the event"),
		),
		mcp.WithString("startDate",
			mcp.Description("Start date (RFC3339 format, default: now)"),
		),
		mcp.WithString("endDate",
			mcp.Description("End date (RFC3339 format, default: start date)"),
		),
		mcp.WithString("location",
			mcp.Description("Where the event takes place"),
		),
		mcp.WithString("priority",
			mcp.Description("Priority: low, medium or high (default: medium)"),
		),
	)

	s.AddTool(createTool, common.InstrumentedToolHandler("events_create", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		title, err := common.RequireString(args, "title")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		c := sc.Events()
		if err := c.OpenCreate(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		_ = c.MutateDraft(func(e *events.Event) {
			e.Title = title
			e.Description = common.OptionalString(args, "description", "")
			e.Location = common.OptionalString(args, "location", "")
			e.Priority = common.OptionalString(args, "priority", e.Priority)
			if start := common.OptionalTime(args, "startDate"); !start.IsZero() {
				e.StartDate = start
				e.EndDate = start
			}
			if end := common.OptionalTime(args, "endDate"); !end.IsZero() {
				e.EndDate = end
			}
		})

		if err := c.Submit(ctx); err != nil {
			_ = c.Cancel()
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create event: %v", err)), nil
		}

		result, _ := json.MarshalIndent(c.Items(), "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Event created successfully:\n%s", string(result))), nil
	}))

	// Update event tool
	updateTool := mcp.NewTool("events_update",
		mcp.WithDescription("Update an existing calendar event"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The ID of the event to update"),
		),
		mcp.WithString("title",
			mcp.Description("New title for the event"),
		),
		mcp.WithString("description",
			mcp.Description("New description for the event"),
		),
		mcp.WithString("startDate",
			mcp.Description("New start date (RFC3339 format)"),
		),
		mcp.WithString("endDate",
			mcp.Description("New end date (RFC3339 format)"),
		),
		mcp.WithString("location",
			mcp.Description("New location for the event"),
		),
		mcp.WithString("priority",
			mcp.Description("New priority: low, medium or high"),
		),
	)

	s.AddTool(updateTool, common.InstrumentedToolHandler("events_update", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		id, err := common.RequireString(args, "id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		c := sc.Events()
		if err := c.Refresh(ctx); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch events: %v", err)), nil
		}
		if err := c.OpenEdit(id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		_ = c.MutateDraft(func(e *events.Event) {
			e.Title = common.OptionalString(args, "title", e.Title)
			e.Description = common.OptionalString(args, "description", e.Description)
			e.Location = common.OptionalString(args, "location", e.Location)
			e.Priority = common.OptionalString(args, "priority", e.Priority)
			if start := common.OptionalTime(args, "startDate"); !start.IsZero() {
				e.StartDate = start
			}
			if end := common.OptionalTime(args, "endDate"); !end.IsZero() {
				e.EndDate = end
			}
		})

		if err := c.Submit(ctx); err != nil {
			_ = c.Cancel()
			return mcp.NewToolResultError(fmt.Sprintf("Failed to update event: %v", err)), nil
		}

		result, _ := json.MarshalIndent(c.Items(), "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Event updated successfully:\n%s", string(result))), nil
	}))

	// Delete event tool
	deleteTool := mcp.NewTool("events_delete",
		mcp.WithDescription("Delete a calendar event"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The ID of the event to delete"),
		),
	)

	s.AddTool(deleteTool, common.InstrumentedToolHandler("events_delete", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		id, err := common.RequireString(args, "id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := sc.Events().Remove(ctx, id); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete event: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Event %s deleted successfully", id)), nil
	}))

	return nil
}
