package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"rnamap/internal/adapters/format"
	"rnamap/internal/application/commands"
	"rnamap/internal/ports"
)

// RegisterReadTools adds the tools that never write files or history
func RegisterReadTools(s *server.MCPServer, files ports.FileStore, history ports.HistoryStore) {
	s.AddTool(inspectTool(), inspectHandler(files))
	s.AddTool(summaryTool(), summaryHandler(files))
	if history != nil {
		s.AddTool(historyListTool(), historyListHandler(history))
		s.AddTool(historyShowTool(), historyShowHandler(history))
	}
}

// --- inspect ---

func inspectTool() mcp.Tool {
	return mcp.NewTool("inspect",
		mcp.WithDescription("Decompose both variants of an alignment and report their node lists (U(i) unpaired, P(i,j) paired) and the mapping summary. Give either input_path or alignment."),
		mcp.WithString("input_path",
			mcp.Description("Path to a four-line alignment file (header, sequence, header, structure)"),
		),
		mcp.WithString("alignment",
			mcp.Description("Alignment text, used instead of input_path"),
		),
	)
}

func inspectHandler(files ports.FileStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewInspectCommand(files, req.GetString("input_path", ""))
		cmd.Alignment = req.GetString("alignment", "")

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		if err := format.WriteReport(&sb, result.Conversion); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- summary ---

func summaryTool() mcp.Tool {
	return mcp.NewTool("summary",
		mcp.WithDescription("Read an existing text mapping file and report matched, deleted and inserted nodes. Fails when its DISTANCE line disagrees with its entries."),
		mcp.WithString("mapping_path",
			mcp.Description("Path to a mapping file starting with a DISTANCE line"),
			mcp.Required(),
		),
	)
}

func summaryHandler(files ports.FileStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("mapping_path", "")
		if path == "" {
			return toolError(fmt.Errorf("mapping_path is required"))
		}

		result, err := commands.NewSummaryCommand(files, format.TextCodec{}, path).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(format.SummaryLine(result.Mapping))
		sb.WriteByte('\n')
		fmt.Fprintf(&sb, "deleted template nodes: %s\n", joinInts(result.Deleted))
		fmt.Fprintf(&sb, "inserted target nodes:  %s\n", joinInts(result.Inserted))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- history_list ---

func historyListTool() mcp.Tool {
	return mcp.NewTool("history_list",
		mcp.WithDescription("List recorded conversions, newest first."),
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum number of runs (default %d, 0 for all)", commands.DefaultHistoryLimit)),
		),
	)
}

func historyListHandler(history ports.HistoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := req.GetInt("limit", commands.DefaultHistoryLimit)

		runs, err := commands.NewHistoryListCommand(history, limit).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		if err := format.WriteRuns(&sb, runs); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- history_show ---

func historyShowTool() mcp.Tool {
	return mcp.NewTool("history_show",
		mcp.WithDescription("Show a recorded conversion and its mapping in the text format."),
		mcp.WithString("id",
			mcp.Description("Run ID or a unique prefix of it"),
			mcp.Required(),
		),
	)
}

func historyShowHandler(history ports.HistoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		run, err := commands.NewHistoryShowCommand(history, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		if err := format.WriteRun(&sb, run); err != nil {
			return toolError(err)
		}
		sb.WriteByte('\n')
		if err := (format.TextCodec{}).Encode(&sb, run.Mapping()); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func joinInts(ns []int) string {
	if len(ns) == 0 {
		return "none"
	}
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, " ")
}
