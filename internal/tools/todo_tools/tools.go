package todo_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/daybook/internal/server"
	"github.com/teemow/daybook/internal/todos"
	"github.com/teemow/daybook/internal/tools/common"
)

// RegisterTodoTools registers all todo-related tools with the MCP server.
func RegisterTodoTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List todos tool (read-only, always available)
	listTool := mcp.NewTool("todos_list",
		mcp.WithDescription("List all todos for the authenticated user"),
	)

	s.AddTool(listTool, common.InstrumentedToolHandler("todos_list", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		c := sc.Todos()
		if err := c.Refresh(ctx); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list todos: %v", err)), nil
		}

		result, _ := json.MarshalIndent(c.Items(), "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	if readOnly {
		return nil
	}

	// Create todo tool
	createTool := mcp.NewTool("todos_create",
		mcp.WithDescription("Create a new todo"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the todo"),
		),
		mcp.WithString("description",
			mcp.Description("Longer description of the todo"),
		),
		mcp.WithString("dueDate",
			mcp.Description("Due date (RFC3339 format, default: now)"),
		),
		mcp.WithString("priority",
			mcp.Description("Priority: low, medium or high (default: medium)"),
		),
		mcp.WithString("status",
			mcp.Description("Status: pending, in_progress or completed (default: pending)"),
		),
	)

	s.AddTool(createTool, common.InstrumentedToolHandler("todos_create", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		title, err := common.RequireString(args, "title")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		c := sc.Todos()
		if err := c.OpenCreate(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		_ = c.MutateDraft(func(t *todos.Todo) {
			t.Title = title
			t.Description = common.OptionalString(args, "description", "")
			t.Priority = common.OptionalString(args, "priority", t.Priority)
			t.Status = common.OptionalString(args, "status", t.Status)
			if due := common.OptionalTime(args, "dueDate"); !due.IsZero() {
				t.DueDate = due
			}
		})

		if err := c.Submit(ctx); err != nil {
			_ = c.Cancel()
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create todo: %v", err)), nil
		}

		result, _ := json.MarshalIndent(c.Items(), "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Todo created successfully:\n%s", string(result))), nil
	}))

	// Update todo tool
	updateTool := mcp.NewTool("todos_update",
		mcp.WithDescription("Update an existing todo"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The ID of the todo to update"),
		),
		mcp.WithString("title",
			mcp.Description("New title for the todo"),
		),
		mcp.WithString("description",
			mcp.Description("New description for the todo"),
		),
		mcp.WithString("dueDate",
			mcp.Description("New due date (RFC3339 format)"),
		),
		mcp.WithString("priority",
			mcp.Description("New priority: low, medium or high"),
		),
		mcp.WithString("status",
			mcp.Description("New status: pending, in_progress or completed"),
		),
	)

	s.AddTool(updateTool, common.InstrumentedToolHandler("todos_update", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		id, err := common.RequireString(args, "id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		c := sc.Todos()
		if err := c.Refresh(ctx); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch todos: %v", err)), nil
		}
		if err := c.OpenEdit(id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		_ = c.MutateDraft(func(t *todos.Todo) {
			t.Title = common.OptionalString(args, "title", t.Title)
			t.Description = common.OptionalString(args, "description", t.Description)
			t.Priority = common.OptionalString(args, "priority", t.Priority)
			t.Status = common.OptionalString(args, "status", t.Status)
			if due := common.OptionalTime(args, "dueDate"); !due.IsZero() {
				t.DueDate = due
			}
		})

		if err := c.Submit(ctx); err != nil {
			_ = c.Cancel()
			return mcp.NewToolResultError(fmt.Sprintf("Failed to update todo: %v", err)), nil
		}

		result, _ := json.MarshalIndent(c.Items(), "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Todo updated successfully:\n%s", string(result))), nil
	}))

	// Delete todo tool
	deleteTool := mcp.NewTool("todos_delete",
		mcp.WithDescription("Delete a todo"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The ID of the todo to delete"),
		),
	)

	s.AddTool(deleteTool, common.InstrumentedToolHandler("todos_delete", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		id, err := common.RequireString(args, "id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := sc.Todos().Remove(ctx, id); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete todo: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Todo %s deleted successfully", id)), nil
	}))

	return nil
}
