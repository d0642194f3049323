package mcp

import (
	"context"
	"fmt"
	"strings"

	driver "github.com/arangodb/go-driver"
)

// runQuery executes an AQL query and materializes the full cursor into a
// slice. Results are never cached; every call runs the query again.
func runQuery(ctx context.Context, db driver.Database, query string, bindVars map[string]interface{}) ([]interface{}, error) {
	cursor, err := db.Query(ctx, query, bindVars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer cursor.Close()

	results := make([]interface{}, 0)
	for cursor.HasMore() {
		var doc interface{}
		if _, err = cursor.ReadDocument(ctx, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadingResults, err)
		}
		results = append(results, doc)
	}

	return results, nil
}

// collectionInfo is the per-collection shape the COLLECTIONS() AQL function
// returns. Both fields must be non-empty; anything else aborts the listing.
type collectionInfo struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// listCollections returns the collection names of a database, excluding
// system collections (names starting with '_').
func listCollections(ctx context.Context, db driver.Database) ([]string, error) {
	cursor, err := db.Query(ctx, "FOR c IN COLLECTIONS() RETURN { _id: c._id, name: c.name }", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListingCollections, err)
	}
	defer cursor.Close()

	names := make([]string, 0)
	for cursor.HasMore() {
		var info collectionInfo
		if _, err = cursor.ReadDocument(ctx, &info); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrListingCollections, err)
		}
		if info.ID == "" || info.Name == "" {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidCollectionShape, info)
		}
		if !strings.HasPrefix(info.Name, systemNamePrefix) {
			names = append(names, info.Name)
		}
	}

	return names, nil
}

// listDatabaseNames returns the names of all databases accessible with the
// configured credentials.
func (s *ArangoMCP) listDatabaseNames(ctx context.Context) ([]string, error) {
	dbs, err := s.client.AccessibleDatabases(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListingDatabases, err)
	}

	names := make([]string, 0, len(dbs))
	for _, db := range dbs {
		names = append(names, db.Name())
	}

	return names, nil
}
