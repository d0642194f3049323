package main

import (
	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/LeuciRemi/arango-mcp-server/mcp"
)

// The cli struct represents all command-line flags and positional arguments.
// Credentials are both-or-neither: a username without a password is ignored.
var cli struct {
	EnableWrite bool   `default:"false" help:"Expose the readWriteQuery tool in addition to the read-only tools."`
	URL         string `arg:"" help:"ArangoDB server base URL (e.g. http://localhost:8529)."`
	Username    string `arg:"" optional:"" help:"Username for basic authentication."`
	Password    string `arg:"" optional:"" help:"Password for basic authentication."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("arango-mcp-server"),
		kong.Description("MCP server exposing ArangoDB queries, collections and documents over stdio."),
		kong.UsageOnError(),
	)

	logger := mcp.NewLogger()
	defer logger.Sync() //nolint:errcheck

	mcpServer, err := mcp.NewMcpServer(mcp.Config{
		URL:         cli.URL,
		Username:    cli.Username,
		Password:    cli.Password,
		EnableWrite: cli.EnableWrite,
	}, logger)
	if err != nil {
		logger.Fatal("Error setting up MCP server", zap.Error(err))
	}

	// Start server in stdio
	if err = mcpServer.Start(); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
