package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/views/artwork"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/views/browse"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/views/fetch"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/views/settings"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	menuView     *menu.View
	browseView   *browse.View
	fetchView    *fetch.View
	artworkView  *artwork.View
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menu.NewView(s),
		browseView:   browse.NewView(s, km, ports.Collections),
		fetchView:    fetch.NewView(s, km, ports.Collections),
		artworkView:  artwork.NewView(s),
		settingsView: settings.NewView(s, ports.Settings),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.browseView.WithContext(ctx)
	a.fetchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("artgraph"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.updateCurrent(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.CollectionLoaded:
		a.browseView, cmd = a.browseView.Update(msg)
		return a, cmd

	case messages.FetchCompleted:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.fetchView, cmd = a.fetchView.Update(msg)
		return a, cmd

	case messages.CollectionSelected:
		a.err = nil
		a.browseView.SetCollection(msg.Collection)
		a.currentView = messages.ViewBrowse
		return a, nil

	case messages.ArtworkSelected:
		a.artworkView.SetArtwork(msg.Artwork)
		a.currentView = messages.ViewArtwork
		return a, nil

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ConfigReloaded:
		if a.currentView == messages.ViewSettings {
			return a, a.settingsView.Init()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewFetch:
			a.fetchView, cmd = a.fetchView.Update(msg)
		case messages.ViewBrowse:
			a.browseView, cmd = a.browseView.Update(msg)
		case messages.ViewMenu, messages.ViewArtwork, messages.ViewSettings, messages.ViewHelp:
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a.updateCurrent(msg)
}

// updateCurrent forwards msg to the active view.
func (a *App) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewBrowse:
		a.browseView, cmd = a.browseView.Update(msg)
	case messages.ViewFetch:
		a.fetchView, cmd = a.fetchView.Update(msg)
	case messages.ViewArtwork:
		a.artworkView, cmd = a.artworkView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
			a.currentView = messages.ViewMenu
		}
	}

	return a, cmd
}

// switchTo activates view and returns its initial command.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view

	switch view {
	case messages.ViewBrowse:
		// Returning from an artwork keeps the open bucket.
		if a.browseView.Collection() == nil {
			return a.browseView.Init()
		}
	case messages.ViewFetch:
		return a.fetchView.Init()
	case messages.ViewSettings:
		a.settingsView.Reset()
		return a.settingsView.Init()
	case messages.ViewMenu, messages.ViewArtwork, messages.ViewHelp:
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewBrowse:
		return a.browseView.View()
	case messages.ViewFetch:
		return a.fetchView.View()
	case messages.ViewArtwork:
		return a.artworkView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewMenu:
	}
	return a.menuView.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back
  ctrl+c      Quit

Browse:
  j/k, ↑/↓    Navigate groups
  tab, g      Cycle period / creator / provider
  enter       Open group, then artwork
  f           Fetch a new collection
  r           Reload the latest collection

Fetch:
  (type)      Artist filter, empty for all
  tab         Switch to colours
  enter       Fetch

Settings:
  enter       Edit value
  x           Reset to default

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.browseView.SetDimensions(width, height)
	a.fetchView.SetDimensions(width, height)
	a.artworkView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
