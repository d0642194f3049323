package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

func queryInputSchema() mcp.ToolInputSchema {
	return mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"databaseName": map[string]interface{}{
				"type":        "string",
				"description": "Name of the database to run the query against",
			},
			"query": map[string]interface{}{
				"type":        "string",
				"description": "AQL query to be executed",
			},
		},
		Required: []string{"databaseName", "query"},
	}
}

func (s *ArangoMCP) toolReadQuery() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "readQuery",
		Description: "Executes a read-only AQL query against a database and returns the materialized results.",
		InputSchema: queryInputSchema(),
	}, s.handleQuery
}

func (s *ArangoMCP) toolReadWriteQuery() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "readWriteQuery",
		Description: "Executes an AQL query that may modify data. Only available when the server was started with --enable-write.",
		InputSchema: queryInputSchema(),
	}, s.handleQuery
}

// handleQuery serves both query tools: the write gate is enforced at
// registration time, not here.
func (s *ArangoMCP) handleQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := getArgs(request.Params.Arguments)
	if !ok {
		return mcp.NewToolResultError(ErrInvalidArguments.Error()), nil
	}

	databaseName, ok := getStringArg(args, "databaseName")
	if !ok || databaseName == "" {
		return mcp.NewToolResultError(ErrDatabaseRequired.Error()), nil
	}

	query, ok := getStringArg(args, "query")
	if !ok || query == "" {
		return mcp.NewToolResultError(ErrQueryRequired.Error()), nil
	}

	db, err := s.conns.getOrCreate(ctx, databaseName)
	if err != nil {
		s.logger.Error("Error resolving database", zap.String("database", databaseName), zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	results, err := runQuery(ctx, db, query, nil)
	if err != nil {
		s.logger.Error("Error executing query", zap.String("database", databaseName), zap.String("query", query), zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.logger.Debug("Query executed", zap.String("database", databaseName), zap.Int("rows", len(results)))

	jsonData, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(ErrSerializingJSON.Error()), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}
