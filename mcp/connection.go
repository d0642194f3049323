package mcp

import (
	"context"
	"fmt"
	"sync"

	driver "github.com/arangodb/go-driver"
	"github.com/arangodb/go-driver/http"
)

// newArangoClient builds the process-wide ArangoDB client from the startup
// configuration. No connection is established here; the driver dials lazily
// on first use.
func newArangoClient(cfg Config) (driver.Client, error) {
	conn, err := http.NewConnection(http.ConnectionConfig{
		Endpoints: []string{cfg.URL},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreatingClient, err)
	}

	clientCfg := driver.ClientConfig{
		Connection: conn,
	}
	if cfg.hasCredentials() {
		clientCfg.Authentication = driver.BasicAuthentication(cfg.Username, cfg.Password)
	}

	client, err := driver.NewClient(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreatingClient, err)
	}

	return client, nil
}

// connectionCache hands out one database handle per database name for the
// lifetime of the process. Handles are created on first lookup and never
// evicted or refreshed, even if the underlying database is dropped; repeated
// lookups return the exact same handle so driver-internal state is shared
// across callers.
type connectionCache struct {
	mu   sync.Mutex
	open func(ctx context.Context, name string) (driver.Database, error)
	dbs  map[string]driver.Database
}

func newConnectionCache(client driver.Client) *connectionCache {
	return &connectionCache{
		open: client.Database,
		dbs:  make(map[string]driver.Database),
	}
}

// getOrCreate returns the cached handle for name, creating it on first use.
// The mutex covers the whole check-then-create sequence, so two racing
// first-time lookups cannot end up with two handles for the same name.
// A failed creation is not cached; the next lookup tries again.
func (c *connectionCache) getOrCreate(ctx context.Context, name string) (driver.Database, error) {
	if name == "" {
		return nil, ErrDatabaseRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if db, ok := c.dbs[name]; ok {
		return db, nil
	}

	db, err := c.open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrOpeningDatabase, name, err)
	}
	c.dbs[name] = db

	return db, nil
}
