package note_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/daybook/internal/notes"
	"github.com/teemow/daybook/internal/server"
	"github.com/teemow/daybook/internal/tools/common"
)

// RegisterNoteTools registers all note-related tools with the MCP server.
func RegisterNoteTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List notes tool (read-only, always available)
	listTool := mcp.NewTool("notes_list",
		mcp.WithDescription("List all notes for the authenticated user"),
	)

	s.AddTool(listTool, common.InstrumentedToolHandler("notes_list", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		c := sc.Notes()
		if err := c.Refresh(ctx); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list notes: %v", err)), nil
		}

		result, _ := json.MarshalIndent(c.Items(), "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	if readOnly {
		return nil
	}

	// Create note tool
	createTool := mcp.NewTool("notes_create",
		mcp.WithDescription("Create a new note"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the note"),
		),
		mcp.WithString("content",
			mcp.Description("The body text of the note"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated list of tags"),
		),
		mcp.WithString("color",
			mcp.Description("Background color as a hex code (default: #FFE4B5)"),
		),
	)

	s.AddTool(createTool, common.InstrumentedToolHandler("notes_create", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		title, err := common.RequireString(args, "title")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		c := sc.Notes()
		if err := c.OpenCreate(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		_ = c.MutateDraft(func(n *notes.Note) {
			n.Title = title
			n.Content = common.OptionalString(args, "content", "")
			n.Color = common.OptionalString(args, "color", n.Color)
			if tags, ok := args["tags"].(string); ok && tags != "" {
				n.Tags = notes.ParseTags(tags)
			}
		})

		if err := c.Submit(ctx); err != nil {
			_ = c.Cancel()
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create note: %v", err)), nil
		}

		result, _ := json.MarshalIndent(c.Items(), "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Note created successfully:\n%s", string(result))), nil
	}))

	// Update note tool
	updateTool := mcp.NewTool("notes_update",
		mcp.WithDescription("Update an existing note"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The ID of the note to update"),
		),
		mcp.WithString("title",
			mcp.Description("New title for the note"),
		),
		mcp.WithString("content",
			mcp.Description("New body text for the note"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated list of tags (replaces existing tags)"),
		),
		mcp.WithString("color",
			mcp.Description("New background color as a hex code"),
		),
	)

	s.AddTool(updateTool, common.InstrumentedToolHandler("notes_update", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		id, err := common.RequireString(args, "id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		c := sc.Notes()
		if err := c.Refresh(ctx); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch notes: %v", err)), nil
		}
		if err := c.OpenEdit(id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		_ = c.MutateDraft(func(n *notes.Note) {
			n.Title = common.OptionalString(args, "title", n.Title)
			n.Content = common.OptionalString(args, "content", n.Content)
			n.Color = common.OptionalString(args, "color", n.Color)
			if tags, ok := args["tags"].(string); ok && tags != "" {
				n.Tags = notes.ParseTags(tags)
			}
		})

		if err := c.Submit(ctx); err != nil {
			_ = c.Cancel()
			return mcp.NewToolResultError(fmt.Sprintf("Failed to update note: %v", err)), nil
		}

		result, _ := json.MarshalIndent(c.Items(), "", "  ")
		return mcp.NewToolResultText(fmt.Sprintf("Note updated successfully:\n%s", string(result))), nil
	}))

	// Delete note tool
	deleteTool := mcp.NewTool("notes_delete",
		mcp.WithDescription("Delete a note"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The ID of the note to delete"),
		),
	)

	s.AddTool(deleteTool, common.InstrumentedToolHandler("notes_delete", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		id, err := common.RequireString(args, "id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := sc.Notes().Remove(ctx, id); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete note: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Note %s deleted successfully", id)), nil
	}))

	return nil
}
