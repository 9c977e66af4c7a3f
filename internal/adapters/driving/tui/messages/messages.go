// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewBrowse lists the groups of the current collection.
	ViewBrowse
	// ViewFetch is the artist filter input that starts a fetch.
	ViewFetch
	// ViewArtwork shows a single artwork.
	ViewArtwork
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewBrowse:
		return "browse"
	case ViewFetch:
		return "fetch"
	case ViewArtwork:
		return "artwork"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// CollectionLoaded carries a stored collection. Seq identifies the
// request; views drop results whose Seq is not their latest.
type CollectionLoaded struct {
	Seq        int
	Collection *domain.Collection
	Err        error
}

// FetchCompleted carries the collection produced by a fetch cycle.
type FetchCompleted struct {
	Seq        int
	Query      domain.ArtworkQuery
	Collection *domain.Collection
	Err        error
}

// CollectionSelected signals a collection should be browsed.
type CollectionSelected struct {
	Collection *domain.Collection
}

// ArtworkSelected signals an artwork was chosen for the detail view.
type ArtworkSelected struct {
	Artwork domain.Artwork
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings domain.Settings
	Err      error
}

// SettingsSaved signals a setting was saved or reset.
type SettingsSaved struct {
	Key string
	Err error
}

// ConfigReloaded signals the config file changed on disk.
type ConfigReloaded struct{}
