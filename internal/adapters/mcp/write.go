package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"skillet/internal/application/commands"
	"skillet/internal/ports"
)

// RegisterWriteTools adds the snapshot-mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.SnapshotStore) {
	s.AddTool(importSnapshotTool(), importSnapshotHandler(store))
	s.AddTool(deleteSnapshotTool(), deleteSnapshotHandler(store))
}

// --- import_snapshot ---

func importSnapshotTool() mcp.Tool {
	return mcp.NewTool("import_snapshot",
		mcp.WithDescription("Store a configuration XML document as a named snapshot so it can be diffed later."),
		mcp.WithString("name",
			mcp.Description("Snapshot name"),
			mcp.Required(),
		),
		mcp.WithString("body",
			mcp.Description("Configuration document XML"),
			mcp.Required(),
		),
		mcp.WithString("device",
			mcp.Description("Device hostname the document came from"),
		),
	)
}

func importSnapshotHandler(store ports.SnapshotStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		body := req.GetString("body", "")
		device := req.GetString("device", "")

		snap, err := commands.NewImportCommand(store, name, device, body).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Stored snapshot %d (%s)", snap.ID, snap.Name)), nil
	}
}

// --- delete_snapshot ---

func deleteSnapshotTool() mcp.Tool {
	return mcp.NewTool("delete_snapshot",
		mcp.WithDescription("Delete a stored snapshot by ID or name."),
		mcp.WithString("ref",
			mcp.Description("Snapshot ID or name"),
			mcp.Required(),
		),
	)
}

func deleteSnapshotHandler(store ports.SnapshotStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref := req.GetString("ref", "")
		if ref == "" {
			return toolError(fmt.Errorf("ref is required"))
		}

		if err := commands.NewDeleteSnapshotCommand(store, ref).Execute(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Deleted snapshot %s", ref)), nil
	}
}
