package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResourceURI_Collection(t *testing.T) {
	addr, err := parseResourceURI("arangodb:///mydb/items")
	require.NoError(t, err)

	assert.Equal(t, ResourceAddress{Database: "mydb", Collection: "items"}, addr)
	assert.False(t, addr.IsDocument())
}

func TestParseResourceURI_Document(t *testing.T) {
	addr, err := parseResourceURI("arangodb:///mydb/items/12345")
	require.NoError(t, err)

	assert.Equal(t, ResourceAddress{Database: "mydb", Collection: "items", DocumentID: "12345"}, addr)
	assert.True(t, addr.IsDocument())
}

func TestParseResourceURI_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		wantErr error
	}{
		{"wrong scheme", "foo:///a/b", ErrInvalidResourceURI},
		{"no prefix", "a/b", ErrInvalidResourceURI},
		{"missing slashes", "arangodb://a/b", ErrInvalidResourceURI},
		{"one component", "arangodb:///onlyone", ErrInvalidResourceURI},
		{"four components", "arangodb:///a/b/c/d", ErrInvalidResourceURI},
		{"empty database", "arangodb:////b", ErrEmptyDatabaseName},
		{"empty collection", "arangodb:///a/", ErrEmptyCollectionName},
		{"empty document id", "arangodb:///a/b/", ErrEmptyDocumentID},
		{"empty", "", ErrInvalidResourceURI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseResourceURI(tt.uri)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResourceAddress_URIRoundTrip(t *testing.T) {
	addrs := []ResourceAddress{
		{Database: "mydb", Collection: "items"},
		{Database: "mydb", Collection: "items", DocumentID: "abc-123"},
		{Database: "a", Collection: "b", DocumentID: "c"},
	}

	for _, addr := range addrs {
		t.Run(addr.URI(), func(t *testing.T) {
			parsed, err := parseResourceURI(addr.URI())
			require.NoError(t, err)
			assert.Equal(t, addr, parsed)
		})
	}
}
