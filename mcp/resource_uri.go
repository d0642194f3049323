package mcp

import (
	"fmt"
	"strings"
)

// ResourceAddress is a parsed arangodb:/// resource URI. DocumentID is empty
// for collection addresses.
type ResourceAddress struct {
	Database   string
	Collection string
	DocumentID string
}

// IsDocument reports whether the address points at a single document rather
// than a whole collection.
func (a ResourceAddress) IsDocument() bool {
	return a.DocumentID != ""
}

// URI rebuilds the resource URI by concatenation. Round-trips exactly with
// parseResourceURI for components that contain no '/'.
func (a ResourceAddress) URI() string {
	if a.IsDocument() {
		return resourcePrefix + a.Database + "/" + a.Collection + "/" + a.DocumentID
	}
	return resourcePrefix + a.Database + "/" + a.Collection
}

// parseResourceURI parses arangodb:///<database>/<collection>[/<documentId>].
// Components are split on the literal '/' with no percent-decoding, so
// identifiers containing '/' are unsupported by the scheme.
func parseResourceURI(uri string) (ResourceAddress, error) {
	if !strings.HasPrefix(uri, resourcePrefix) {
		return ResourceAddress{}, fmt.Errorf("%w: must start with %q", ErrInvalidResourceURI, resourcePrefix)
	}

	parts := strings.Split(strings.TrimPrefix(uri, resourcePrefix), "/")
	if len(parts) != 2 && len(parts) != 3 {
		return ResourceAddress{}, fmt.Errorf("%w: expected %s<database>/<collection>[/<documentId>]", ErrInvalidResourceURI, resourcePrefix)
	}

	addr := ResourceAddress{
		Database:   parts[0],
		Collection: parts[1],
	}
	if addr.Database == "" {
		return ResourceAddress{}, fmt.Errorf("%w: %w", ErrInvalidResourceURI, ErrEmptyDatabaseName)
	}
	if addr.Collection == "" {
		return ResourceAddress{}, fmt.Errorf("%w: %w", ErrInvalidResourceURI, ErrEmptyCollectionName)
	}

	if len(parts) == 3 {
		addr.DocumentID = parts[2]
		if addr.DocumentID == "" {
			return ResourceAddress{}, fmt.Errorf("%w: %w", ErrInvalidResourceURI, ErrEmptyDocumentID)
		}
	}

	return addr, nil
}
