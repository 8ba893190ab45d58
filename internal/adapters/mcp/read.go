package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"skillet/internal/application/commands"
	"skillet/internal/domain"
	"skillet/internal/ports"
)

// RegisterReadTools adds all read-only snapshot tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.SnapshotStore, engine *domain.Engine) {
	s.AddTool(listSnapshotsTool(), listSnapshotsHandler(store))
	s.AddTool(showSnapshotTool(), showSnapshotHandler(store))
	s.AddTool(diffTool(), diffHandler(store, engine))
	s.AddTool(setCLIDiffTool(), setCLIDiffHandler(store, engine))
}

// --- list_snapshots ---

func listSnapshotsTool() mcp.Tool {
	return mcp.NewTool("list_snapshots",
		mcp.WithDescription("List all stored configuration snapshots, newest first."),
	)
}

func listSnapshotsHandler(store ports.SnapshotStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snaps, err := commands.NewListSnapshotsCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(snaps) == 0 {
			return mcp.NewToolResultText("No snapshots stored."), nil
		}

		var sb strings.Builder
		for _, snap := range snaps {
			fmt.Fprintf(&sb, "%d  %s  %s  %s  %s\n",
				snap.ID, snap.Name, snap.Device, snap.Source,
				snap.TakenAt.Format("2006-01-02 15:04:05"))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- show_snapshot ---

func showSnapshotTool() mcp.Tool {
	return mcp.NewTool("show_snapshot",
		mcp.WithDescription("Show a stored snapshot's configuration XML by ID or name."),
		mcp.WithString("ref",
			mcp.Description("Snapshot ID or name"),
			mcp.Required(),
		),
	)
}

func showSnapshotHandler(store ports.SnapshotStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref := req.GetString("ref", "")
		if ref == "" {
			return toolError(fmt.Errorf("ref is required"))
		}

		snap, err := commands.NewShowSnapshotCommand(store, ref).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(snap.Body), nil
	}
}

// --- diff ---

func diffTool() mcp.Tool {
	return mcp.NewTool("diff",
		mcp.WithDescription("Diff two snapshots and return the XML patch set: for each changed subtree, the container xpath and the element to apply there, in dependency order."),
		mcp.WithString("previous",
			mcp.Description("ID or name of the earlier snapshot"),
			mcp.Required(),
		),
		mcp.WithString("latest",
			mcp.Description("ID or name of the later snapshot"),
			mcp.Required(),
		),
	)
}

func diffHandler(store ports.SnapshotStore, engine *domain.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		previous := req.GetString("previous", "")
		latest := req.GetString("latest", "")
		if previous == "" || latest == "" {
			return toolError(fmt.Errorf("previous and latest are required"))
		}

		snippets, err := commands.NewDiffCommand(store, engine, previous, latest).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(snippets) == 0 {
			return mcp.NewToolResultText("No differences."), nil
		}

		var sb strings.Builder
		for _, s := range snippets {
			fmt.Fprintf(&sb, "name: %s\nxpath: %s\nelement: %s\n\n", s.Name, s.XPath, s.Element)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- setcli_diff ---

func setCLIDiffTool() mcp.Tool {
	return mcp.NewTool("setcli_diff",
		mcp.WithDescription("Diff two snapshots as set-format CLI commands: every command present in the later snapshot but not the earlier one."),
		mcp.WithString("previous",
			mcp.Description("ID or name of the earlier snapshot"),
			mcp.Required(),
		),
		mcp.WithString("latest",
			mcp.Description("ID or name of the later snapshot"),
			mcp.Required(),
		),
	)
}

func setCLIDiffHandler(store ports.SnapshotStore, engine *domain.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		previous := req.GetString("previous", "")
		latest := req.GetString("latest", "")
		if previous == "" || latest == "" {
			return toolError(fmt.Errorf("previous and latest are required"))
		}

		diffs, err := commands.NewSetCLIDiffCommand(store, engine, previous, latest).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(diffs) == 0 {
			return mcp.NewToolResultText("No differences."), nil
		}
		return mcp.NewToolResultText(strings.Join(diffs, "\n")), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
