package mcp

// Server identity
const (
	serverName    = "ArangoDB MCP"
	serverVersion = "1.0.0"
)

// Resource URI scheme
const (
	resourceScheme = "arangodb"
	resourcePrefix = resourceScheme + ":///"
)

const (
	sampleDocumentLimit = 10
	systemDatabase      = "_system"
	systemNamePrefix    = "_"
	resourceMIMEType    = "application/json"
)
