package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

// Tool name constants.
const (
	ToolNameCounts     = "tally_counts"
	ToolNameStatistics = "tally_statistics"
	ToolNameExport     = "tally_export"
)

// Input types (auto-generate JSON schemas via struct tags).

// ValuesInput is the input schema for the tally_counts and tally_statistics tools.
type ValuesInput struct {
	Values []any `json:"values" jsonschema:"non-negative integers to count"`
}

// ExportInput is the input schema for the tally_export tool.
type ExportInput struct {
	Format string `json:"format" jsonschema:"export format (array json xml csv)"`
	Values []any  `json:"values" jsonschema:"non-negative integers to count"`
}

// Output types.

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// CountsResult is the payload of the tally_counts tool.
type CountsResult struct {
	Counts map[int]int        `json:"counts"`
	Named  []tally.NamedCount `json:"named"`
}

// ExportResult is the payload of the tally_export tool.
type ExportResult struct {
	Format  string `json:"format"`
	Content string `json:"content"`
}

func (s *Server) handleCounts(
	_ context.Context, _ *mcpsdk.CallToolRequest, input ValuesInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	engine, err := s.newEngine(input.Values)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(CountsResult{
		Counts: engine.Counts().Map(),
		Named:  engine.FormattedCounts(),
	})
}

func (s *Server) handleStatistics(
	_ context.Context, _ *mcpsdk.CallToolRequest, input ValuesInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	engine, err := s.newEngine(input.Values)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(engine.Statistics())
}

func (s *Server) handleExport(
	_ context.Context, _ *mcpsdk.CallToolRequest, input ExportInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	format, err := tally.ParseFormat(input.Format)
	if err != nil {
		return errorResult(err)
	}

	engine, err := s.newEngine(input.Values)
	if err != nil {
		return errorResult(err)
	}

	payload, err := engine.Export(format.String())
	if err != nil {
		return errorResult(err)
	}

	data := payload.Data

	// The array format has no wire encoding of its own.
	if format == tally.FormatArray {
		data, err = tally.Encode(tally.FormatJSON, payload.Document)
		if err != nil {
			return errorResult(err)
		}
	}

	out := ExportResult{Format: format.String(), Content: string(data)}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: out.Content},
		},
	}, ToolOutput{Data: out}, nil
}

func (s *Server) newEngine(raw []any) (*tally.Engine, error) {
	values, err := tally.Coerce(raw)
	if err != nil {
		return nil, err
	}

	return s.engines.get(values)
}

// Result helpers.

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}
