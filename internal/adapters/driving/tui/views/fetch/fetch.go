// Package fetch provides the view that starts a fetch cycle for an artist.
package fetch

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driving"
)

// View collects an artist filter and colour tokens and runs a fetch.
// Only the most recent request is honoured; completions of earlier
// requests are dropped.
type View struct {
	styles    *styles.Styles
	artist    *input.Field
	colours   *input.Field
	statusbar *status.Bar

	collections driving.CollectionService
	ctx         context.Context

	seq      int
	fetching bool
	err      error

	width  int
	height int
	ready  bool
}

// NewView creates a new fetch view.
func NewView(s *styles.Styles, km *keymap.KeyMap, collections driving.CollectionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:      s,
		artist:      input.NewArtistField(s),
		colours:     input.NewColourField(s),
		statusbar:   status.NewBar(s, km),
		collections: collections,
		ctx:         context.Background(),
		width:       80,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.artist.Init()
}

// Update handles messages for the fetch view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.FetchCompleted:
		return v.handleFetchCompleted(msg)

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.artist, cmd = v.artist.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case tea.KeyTab, tea.KeyShiftTab:
		if v.artist.Focused() {
			v.artist.Blur()
			return v, v.colours.Focus()
		}
		v.colours.Blur()
		return v, v.artist.Focus()

	case tea.KeyEnter:
		query := domain.NewArtworkQuery(v.artist.Value(), v.colours.Tokens()...)
		return v, v.startFetch(query)
	}

	var cmd tea.Cmd
	if v.colours.Focused() {
		v.colours, cmd = v.colours.Update(msg)
	} else {
		v.artist, cmd = v.artist.Update(msg)
	}
	return v, cmd
}

// startFetch issues a new fetch request, superseding any in flight.
func (v *View) startFetch(query domain.ArtworkQuery) tea.Cmd {
	v.seq++
	v.fetching = true
	v.err = nil
	v.statusbar.SetState(status.StateFetching)
	v.statusbar.SetMessage(query.String())

	seq := v.seq
	ctx := v.ctx
	return func() tea.Msg {
		if v.collections == nil {
			return messages.FetchCompleted{Seq: seq, Query: query, Err: ErrNoCollectionService}
		}
		collection, err := v.collections.Fetch(ctx, query, driving.FetchOptions{})
		return messages.FetchCompleted{Seq: seq, Query: query, Collection: collection, Err: err}
	}
}

// handleFetchCompleted applies the result of the latest request.
func (v *View) handleFetchCompleted(msg messages.FetchCompleted) (*View, tea.Cmd) {
	if msg.Seq != v.seq {
		return v, nil
	}

	v.fetching = false
	if msg.Err != nil {
		v.setError(msg.Err)
		return v, nil
	}

	v.statusbar.Clear()
	collection := msg.Collection
	return v, func() tea.Msg {
		return messages.CollectionSelected{Collection: collection}
	}
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the fetch view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections,
		v.styles.Title.Render("Fetch artworks"),
		v.styles.Muted.Render("Leave the artist empty to fetch every creator."),
		"",
		v.artist.View(),
		v.colours.View(),
		"",
	)

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections,
		v.styles.Help.Render("[enter] fetch  [tab] next field  [esc] back"),
		"",
		v.statusbar.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.artist.SetWidth(width)
	v.colours.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Fetching reports whether a request is in flight.
func (v *View) Fetching() bool {
	return v.fetching
}

// Seq returns the sequence number of the latest request.
func (v *View) Seq() int {
	return v.seq
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Artist returns the artist filter input value.
func (v *View) Artist() string {
	return v.artist.Value()
}

// SetArtist sets the artist filter.
func (v *View) SetArtist(artist string) {
	v.artist.SetValue(artist)
}

// SetColours sets the colour tokens.
func (v *View) SetColours(colours string) {
	v.colours.SetValue(colours)
}

// Reset clears the inputs and any error.
func (v *View) Reset() {
	v.artist.Reset()
	v.colours.Reset()
	v.colours.Blur()
	v.artist.Focus()
	v.err = nil
	v.statusbar.Clear()
}
