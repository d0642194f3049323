package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	driver "github.com/arangodb/go-driver"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// registerResources registers one resource per collection of every accessible
// non-system database, plus the two URI templates so collections and
// documents stay readable when the startup enumeration is out of date. A
// failed enumeration registers no collection resources at all; the templates
// are registered regardless.
func (s *ArangoMCP) registerResources(ctx context.Context) {
	resources, err := s.listCollectionResources(ctx)
	if err != nil {
		s.logger.Error("Error listing collection resources", zap.Error(err))
	}
	for _, resource := range resources {
		s.server.AddResource(resource, s.readResource)
	}

	s.server.AddResourceTemplate(mcp.NewResourceTemplate(
		resourcePrefix+"{database}/{collection}",
		"Collection summary",
		mcp.WithTemplateDescription("Document count and sample documents of a collection"),
		mcp.WithTemplateMIMEType(resourceMIMEType),
	), s.readResource)

	s.server.AddResourceTemplate(mcp.NewResourceTemplate(
		resourcePrefix+"{database}/{collection}/{documentId}",
		"Document",
		mcp.WithTemplateDescription("A single document fetched by id"),
		mcp.WithTemplateMIMEType(resourceMIMEType),
	), s.readResource)
}

// listCollectionResources fans out over every accessible database except
// _system and lists their collections concurrently. Any failing branch fails
// the whole enumeration; partial results are never returned.
func (s *ArangoMCP) listCollectionResources(ctx context.Context) ([]mcp.Resource, error) {
	names, err := s.listDatabaseNames(ctx)
	if err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	perDatabase := make([][]mcp.Resource, len(names))

	for i, name := range names {
		if name == systemDatabase {
			continue
		}

		g.Go(func() error {
			db, err := s.conns.getOrCreate(ctx, name)
			if err != nil {
				return err
			}

			collections, err := listCollections(ctx, db)
			if err != nil {
				return fmt.Errorf("database %q: %w", name, err)
			}

			resources := make([]mcp.Resource, 0, len(collections))
			for _, collection := range collections {
				addr := ResourceAddress{Database: name, Collection: collection}
				resources = append(resources, mcp.NewResource(
					addr.URI(),
					collection,
					mcp.WithResourceDescription(fmt.Sprintf("Collection %s in database %s", collection, name)),
					mcp.WithMIMEType(resourceMIMEType),
				))
			}
			perDatabase[i] = resources

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var resources []mcp.Resource
	for _, dbResources := range perDatabase {
		resources = append(resources, dbResources...)
	}

	return resources, nil
}

// readResource serves both collection and document reads; the URI shape
// decides which.
func (s *ArangoMCP) readResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	addr, err := parseResourceURI(request.Params.URI)
	if err != nil {
		return nil, err
	}

	db, err := s.conns.getOrCreate(ctx, addr.Database)
	if err != nil {
		s.logger.Error("Error resolving database", zap.String("uri", request.Params.URI), zap.Error(err))
		return nil, err
	}

	var payload interface{}
	if addr.IsDocument() {
		payload, err = readDocument(ctx, db, addr)
	} else {
		payload, err = collectionSummary(ctx, db, addr)
	}
	if err != nil {
		s.logger.Error("Error reading resource", zap.String("uri", request.Params.URI), zap.Error(err))
		return nil, err
	}

	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerializingJSON, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: resourceMIMEType,
			Text:     string(jsonData),
		},
	}, nil
}

// collectionSummary returns the document count and up to sampleDocumentLimit
// sample documents of a collection.
func collectionSummary(ctx context.Context, db driver.Database, addr ResourceAddress) (interface{}, error) {
	col, err := db.Collection(ctx, addr.Collection)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrOpeningCollection, addr.Collection, err)
	}

	count, err := col.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCountingDocuments, err)
	}

	samples, err := runQuery(ctx, db, "FOR doc IN @@collection LIMIT @limit RETURN doc", map[string]interface{}{
		"@collection": addr.Collection,
		"limit":       sampleDocumentLimit,
	})
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"collection":      addr.Collection,
		"database":        addr.Database,
		"documentCount":   count,
		"sampleDocuments": samples,
	}, nil
}

// readDocument fetches a single document by id.
func readDocument(ctx context.Context, db driver.Database, addr ResourceAddress) (interface{}, error) {
	col, err := db.Collection(ctx, addr.Collection)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrOpeningCollection, addr.Collection, err)
	}

	var doc map[string]interface{}
	if _, err = col.ReadDocument(ctx, addr.DocumentID, &doc); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrReadingDocument, addr.DocumentID, err)
	}

	return doc, nil
}
