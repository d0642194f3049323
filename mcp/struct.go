package mcp

import (
	driver "github.com/arangodb/go-driver"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

type ArangoMCP struct {
	server *server.MCPServer
	client driver.Client
	conns  *connectionCache
	cfg    Config
	logger *zap.Logger
}

// Config holds the process-wide startup configuration. It is parsed once
// from the command line and read-only afterwards.
type Config struct {
	URL         string
	Username    string
	Password    string
	EnableWrite bool
}

// hasCredentials reports whether basic authentication should be applied.
// Credentials are both-or-neither: a lone username counts as none.
func (c Config) hasCredentials() bool {
	return c.Username != "" && c.Password != ""
}
