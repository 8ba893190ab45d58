package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "skillet/internal/adapters/mcp"
	"skillet/internal/adapters/sqlite"
	"skillet/internal/config"
	"skillet/internal/domain"
)

func main() {
	dbFlag := flag.String("db", config.DBPath(), "path to the snapshot database")
	flag.Parse()

	store := sqlite.NewStore()
	if err := store.Open(*dbFlag); err != nil {
		log.Fatalf("skillet-mcp: %v", err)
	}
	defer store.Close()

	engine := domain.NewEngine(domain.WithLogger(func(string, ...any) {}))

	mcpServer := server.NewMCPServer(
		"skillet-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store, engine)
	mcpadapter.RegisterWriteTools(mcpServer, store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("skillet-mcp: %v", err)
	}
}
