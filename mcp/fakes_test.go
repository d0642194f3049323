package mcp

import (
	"context"
	"encoding/json"

	driver "github.com/arangodb/go-driver"
	"go.uber.org/zap"
)

// The fakes implement only the driver methods the server touches; the
// embedded interfaces cover the rest.

type fakeClient struct {
	driver.Client

	dbs    []driver.Database
	dbsErr error
}

func (c *fakeClient) AccessibleDatabases(ctx context.Context) ([]driver.Database, error) {
	return c.dbs, c.dbsErr
}

type fakeDatabase struct {
	driver.Database

	name       string
	queryDocs  []interface{}
	queryErr   error
	collection driver.Collection
	colErr     error
	lastQuery  string
	lastBind   map[string]interface{}
}

func (f *fakeDatabase) Name() string { return f.name }

func (f *fakeDatabase) Query(ctx context.Context, query string, bindVars map[string]interface{}) (driver.Cursor, error) {
	f.lastQuery = query
	f.lastBind = bindVars
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeCursor{docs: f.queryDocs}, nil
}

func (f *fakeDatabase) Collection(ctx context.Context, name string) (driver.Collection, error) {
	if f.colErr != nil {
		return nil, f.colErr
	}
	return f.collection, nil
}

type fakeCursor struct {
	driver.Cursor

	docs []interface{}
	next int
}

func (c *fakeCursor) HasMore() bool { return c.next < len(c.docs) }

// ReadDocument decodes through JSON, like the real cursor does.
func (c *fakeCursor) ReadDocument(ctx context.Context, result interface{}) (driver.DocumentMeta, error) {
	doc := c.docs[c.next]
	c.next++

	data, err := json.Marshal(doc)
	if err != nil {
		return driver.DocumentMeta{}, err
	}
	if err = json.Unmarshal(data, result); err != nil {
		return driver.DocumentMeta{}, err
	}
	return driver.DocumentMeta{}, nil
}

func (c *fakeCursor) Close() error { return nil }

type fakeCollection struct {
	driver.Collection

	count  int64
	doc    map[string]interface{}
	docErr error
}

func (c *fakeCollection) Count(ctx context.Context) (int64, error) { return c.count, nil }

func (c *fakeCollection) ReadDocument(ctx context.Context, key string, result interface{}) (driver.DocumentMeta, error) {
	if c.docErr != nil {
		return driver.DocumentMeta{}, c.docErr
	}

	data, err := json.Marshal(c.doc)
	if err != nil {
		return driver.DocumentMeta{}, err
	}
	if err = json.Unmarshal(data, result); err != nil {
		return driver.DocumentMeta{}, err
	}
	return driver.DocumentMeta{}, nil
}

// newTestServer wires an ArangoMCP around a fake database factory, without
// an MCP server or a real client.
func newTestServer(open func(ctx context.Context, name string) (driver.Database, error)) *ArangoMCP {
	return &ArangoMCP{
		conns: &connectionCache{
			open: open,
			dbs:  make(map[string]driver.Database),
		},
		logger: zap.NewNop(),
	}
}

// singleDatabase is a factory that always hands out the same fake.
func singleDatabase(db driver.Database) func(ctx context.Context, name string) (driver.Database, error) {
	return func(ctx context.Context, name string) (driver.Database, error) {
		return db, nil
	}
}
