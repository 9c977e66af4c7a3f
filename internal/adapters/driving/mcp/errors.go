// Package mcp provides an MCP (Model Context Protocol) server adapter for artgraph.
// It lets AI assistants fetch, group and graph artworks through the
// collection service.
package mcp

import "errors"

// ErrMissingCollectionService is returned when the collection service is not provided.
var ErrMissingCollectionService = errors.New("mcp: collection service is required")
