package mcp

import (
	"github.com/custodia-labs/artgraph/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Collections fetches and aggregates artwork collections.
	Collections driving.CollectionService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Collections == nil {
		return ErrMissingCollectionService
	}
	return nil
}
