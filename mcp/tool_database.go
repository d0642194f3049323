package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

func (s *ArangoMCP) toolListDatabases() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "listDatabases",
		Description: "Lists the databases accessible on the ArangoDB server.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListDatabases
}

func (s *ArangoMCP) handleListDatabases(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.listDatabaseNames(ctx)
	if err != nil {
		s.logger.Error("Error listing databases", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := make([]map[string]interface{}, 0, len(names))
	for _, name := range names {
		results = append(results, map[string]interface{}{"name": name})
	}

	jsonData, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(ErrSerializingJSON.Error()), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (s *ArangoMCP) toolListCollections() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "listCollections",
		Description: "Lists the collections of a database, excluding system collections.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"databaseName": map[string]interface{}{
					"type":        "string",
					"description": "Name of the database whose collections are listed",
				},
			},
			Required: []string{"databaseName"},
		},
	}, s.handleListCollections
}

func (s *ArangoMCP) handleListCollections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := getArgs(request.Params.Arguments)
	if !ok {
		return mcp.NewToolResultError(ErrInvalidArguments.Error()), nil
	}

	databaseName, ok := getStringArg(args, "databaseName")
	if !ok || databaseName == "" {
		return mcp.NewToolResultError(ErrDatabaseRequired.Error()), nil
	}

	db, err := s.conns.getOrCreate(ctx, databaseName)
	if err != nil {
		s.logger.Error("Error resolving database", zap.String("database", databaseName), zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	collections, err := listCollections(ctx, db)
	if err != nil {
		s.logger.Error("Error listing collections", zap.String("database", databaseName), zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := make([]map[string]interface{}, 0, len(collections))
	for _, name := range collections {
		results = append(results, map[string]interface{}{"name": name})
	}

	jsonData, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(ErrSerializingJSON.Error()), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}
