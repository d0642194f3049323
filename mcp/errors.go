package mcp

import "errors"

// Connection errors
var (
	ErrCreatingClient  = errors.New("error creating database client")
	ErrOpeningDatabase = errors.New("error opening database")
)

// Argument errors
var (
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrDatabaseRequired = errors.New("databaseName is required")
	ErrQueryRequired    = errors.New("query is required")
)

// Resource URI errors
var (
	ErrInvalidResourceURI  = errors.New("invalid resource URI")
	ErrEmptyDatabaseName   = errors.New("database name cannot be empty")
	ErrEmptyCollectionName = errors.New("collection name cannot be empty")
	ErrEmptyDocumentID     = errors.New("document id cannot be empty")
)

// Query errors
var (
	ErrExecutingQuery = errors.New("error executing query")
	ErrReadingResults = errors.New("error reading results")
)

// Listing errors
var (
	ErrListingDatabases       = errors.New("error listing databases")
	ErrListingCollections     = errors.New("error listing collections")
	ErrInvalidCollectionShape = errors.New("unexpected collection listing shape")
)

// Document errors
var (
	ErrOpeningCollection = errors.New("error opening collection")
	ErrCountingDocuments = errors.New("error counting documents")
	ErrReadingDocument   = errors.New("error reading document")
)

// Serialization errors
var (
	ErrSerializingJSON = errors.New("error serializing JSON")
)
