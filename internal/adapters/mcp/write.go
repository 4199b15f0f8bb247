package mcp

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"rnamap/internal/adapters/format"
	"rnamap/internal/application"
	"rnamap/internal/application/commands"
	"rnamap/internal/ports"
)

// RegisterWriteTools adds the tools that write mappings or record history.
// history may be nil to disable recording.
func RegisterWriteTools(s *server.MCPServer, files ports.FileStore, history ports.HistoryStore, logger *slog.Logger) {
	s.AddTool(convertTool(), convertHandler(files, history, logger))
	if history != nil {
		s.AddTool(historyDeleteTool(), historyDeleteHandler(history, logger))
	}
}

// --- convert ---

func convertTool() mcp.Tool {
	return mcp.NewTool("convert",
		mcp.WithDescription("Convert an Infernal alignment into a template-to-target node mapping. Returns the mapping, or writes it when output_path is set. Give either input_path or alignment."),
		mcp.WithString("input_path",
			mcp.Description("Path to a four-line alignment file (header, sequence, header, structure)"),
		),
		mcp.WithString("alignment",
			mcp.Description("Alignment text, used instead of input_path"),
		),
		mcp.WithString("output_path",
			mcp.Description("File to write the mapping to. Omit to return it."),
		),
		mcp.WithString("format",
			mcp.Description("Output format"),
			mcp.Enum("text", "json", "yaml"),
		),
	)
}

func convertHandler(files ports.FileStore, history ports.HistoryStore, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		outputFormat, err := application.ParseOutputFormat("format", req.GetString("format", ""))
		if err != nil {
			return toolError(err)
		}
		enc, err := format.NewEncoder(outputFormat)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewConvertCommand(files, history, logger, req.GetString("input_path", ""))
		cmd.Alignment = req.GetString("alignment", "")
		outputPath := req.GetString("output_path", "")
		if outputPath != "" {
			cmd.OutputPath = outputPath
			cmd.Encoder = enc
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if outputPath != "" {
			msg := fmt.Sprintf("Wrote mapping to %s (%s, run %s)",
				outputPath, format.SummaryLine(result.Conversion.Mapping), format.ShortID(result.Run.ID))
			if len(result.Previous) > 0 {
				msg += fmt.Sprintf("\nSame input as run %s", format.ShortID(result.Previous[0].ID))
			}
			return mcp.NewToolResultText(msg), nil
		}

		var buf bytes.Buffer
		if err := enc.Encode(&buf, result.Conversion.Mapping); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(buf.String()), nil
	}
}

// --- history_delete ---

func historyDeleteTool() mcp.Tool {
	return mcp.NewTool("history_delete",
		mcp.WithDescription("Delete a recorded conversion and its entries."),
		mcp.WithString("id",
			mcp.Description("Run ID or a unique prefix of it"),
			mcp.Required(),
		),
	)
}

func historyDeleteHandler(history ports.HistoryStore, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		run, err := commands.NewHistoryDeleteCommand(history, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		logger.Info("run deleted", "run", run.ID)
		return mcp.NewToolResultText(fmt.Sprintf("Deleted run %s (%s)", format.ShortID(run.ID), run.SequenceName)), nil
	}
}
