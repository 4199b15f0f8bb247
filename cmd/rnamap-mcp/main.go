package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"rnamap/internal/adapters/filesystem"
	mcpadapter "rnamap/internal/adapters/mcp"
	"rnamap/internal/adapters/sqlite"
	"rnamap/internal/config"
	"rnamap/internal/ports"
)

func main() {
	configFlag := flag.String("config", config.Path(), "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		config.Default().NewLogger(os.Stderr).Error("rnamap-mcp: loading config", "error", err)
		os.Exit(1)
	}
	// stdout carries the protocol
	logger := cfg.NewLogger(os.Stderr)

	files := filesystem.NewStore()

	history, closeHistory := openHistory(cfg, logger)
	defer closeHistory()

	mcpServer := server.NewMCPServer(
		"rnamap-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, files, history)
	mcpadapter.RegisterWriteTools(mcpServer, files, history, logger)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("rnamap-mcp failed", "error", err)
		os.Exit(1)
	}
}

// openHistory opens the history store when enabled. A store that cannot be
// opened is logged and left out; the server then runs without history tools.
func openHistory(cfg *config.Config, logger *slog.Logger) (ports.HistoryStore, func()) {
	if !cfg.HistoryEnabled() {
		return nil, func() {}
	}
	h := sqlite.NewHistory()
	if err := h.Open(cfg.History.Path); err != nil {
		logger.Warn("history unavailable, conversions will not be recorded", "error", err)
		return nil, func() {}
	}
	logger.Debug("history opened", "path", h.Path())
	return h, func() { h.Close() }
}
