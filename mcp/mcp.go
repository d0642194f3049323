package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// NewMcpServer creates a new MCP server instance and registers all tools and
// resources. The ArangoDB client dials lazily, so an unreachable server does
// not prevent startup; only the startup collection enumeration is skipped.
func NewMcpServer(cfg Config, logger *zap.Logger) (*ArangoMCP, error) {
	client, err := newArangoClient(cfg)
	if err != nil {
		return nil, err
	}

	arangoMCP := &ArangoMCP{
		server: server.NewMCPServer(
			serverName,
			serverVersion,
			server.WithToolCapabilities(true),
			server.WithResourceCapabilities(false, true),
		),
		client: client,
		conns:  newConnectionCache(client),
		cfg:    cfg,
		logger: logger,
	}

	// Register tools and resources
	arangoMCP.registerTools()
	arangoMCP.registerResources(context.Background())

	return arangoMCP, nil
}

// Start starts the MCP server in stdio mode
func (s *ArangoMCP) Start() error {
	return server.ServeStdio(s.server)
}
