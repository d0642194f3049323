package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// tools assembles the tool set for the current configuration. The mutating
// query tool is part of the set only when writes were enabled at startup.
func (s *ArangoMCP) tools() []server.ServerTool {
	readQuery, readQueryHandler := s.toolReadQuery()
	listDatabases, listDatabasesHandler := s.toolListDatabases()
	listCollections, listCollectionsHandler := s.toolListCollections()

	tools := []server.ServerTool{
		{Tool: readQuery, Handler: readQueryHandler},
		{Tool: listDatabases, Handler: listDatabasesHandler},
		{Tool: listCollections, Handler: listCollectionsHandler},
	}

	if s.cfg.EnableWrite {
		readWriteQuery, readWriteQueryHandler := s.toolReadWriteQuery()
		tools = append(tools, server.ServerTool{Tool: readWriteQuery, Handler: readWriteQueryHandler})
	}

	return tools
}

func (s *ArangoMCP) registerTools() {
	s.server.AddTools(s.tools()...)
}
