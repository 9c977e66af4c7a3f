// Package tui provides an interactive terminal user interface for artgraph.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/artgraph/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Collections fetches and serves artwork collections.
	Collections driving.CollectionService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(collections driving.CollectionService, settings driving.SettingsService) *Ports {
	return &Ports{
		Collections: collections,
		Settings:    settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Collections == nil {
		return ErrMissingCollectionService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
