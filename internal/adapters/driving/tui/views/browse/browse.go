// Package browse provides the view that groups the current collection.
package browse

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driving"
)

// View lists the groups of a collection and drills into one bucket.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	collections driving.CollectionService
	ctx         context.Context

	collection *domain.Collection
	field      domain.GroupField
	groups     []domain.Group[domain.Artwork]
	selected   int

	// bucket is non-nil while drilled into a group.
	bucket    *list.ArtworkList
	drilled   bool
	statusbar *status.Bar

	seq     int
	loading bool
	err     error

	width  int
	height int
	ready  bool
}

// NewView creates a new browse view.
func NewView(s *styles.Styles, km *keymap.KeyMap, collections driving.CollectionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:      s,
		keymap:      km,
		collections: collections,
		ctx:         context.Background(),
		field:       domain.GroupByPeriodField,
		bucket:      list.NewArtworkList(s),
		statusbar:   status.NewBar(s, km),
		width:       80,
		height:      24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the latest stored collection.
func (v *View) Init() tea.Cmd {
	return v.loadLatest()
}

// loadLatest returns a command that loads the latest collection.
func (v *View) loadLatest() tea.Cmd {
	v.seq++
	v.loading = true
	v.statusbar.SetState(status.StateLoading)

	seq := v.seq
	ctx := v.ctx
	return func() tea.Msg {
		if v.collections == nil {
			return messages.CollectionLoaded{Seq: seq, Err: fmt.Errorf("collection service not available")}
		}
		collection, err := v.collections.Get(ctx, driving.LatestCollection)
		return messages.CollectionLoaded{Seq: seq, Collection: collection, Err: err}
	}
}

// Update handles messages for the browse view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.drilled {
			return v.handleBucketKey(msg)
		}
		return v.handleGroupsKey(msg)

	case messages.CollectionLoaded:
		if msg.Seq != v.seq {
			return v, nil
		}
		v.loading = false
		switch {
		case errors.Is(msg.Err, domain.ErrNotFound):
			v.SetCollection(nil)
		case msg.Err != nil:
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		default:
			v.SetCollection(msg.Collection)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleGroupsKey handles key presses on the group list.
func (v *View) handleGroupsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.selected < len(v.groups)-1 {
			v.selected++
		}
	case keymap.Matches(key, v.keymap.Regroup):
		v.SetField(nextField(v.field))
	case keymap.Matches(key, v.keymap.Select):
		if v.selected < len(v.groups) {
			g := v.groups[v.selected]
			v.bucket.SetArtworks(g.Key, g.Items)
			v.drilled = true
		}
	case keymap.Matches(key, v.keymap.Reload):
		return v, v.loadLatest()
	case keymap.Matches(key, v.keymap.Fetch):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewFetch}
		}
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}
	return v, nil
}

// handleBucketKey handles key presses inside a bucket.
func (v *View) handleBucketKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		v.drilled = false
		return v, nil
	case keymap.Matches(key, v.keymap.Select):
		artwork := v.bucket.SelectedArtwork()
		if artwork == nil {
			return v, nil
		}
		selected := *artwork
		return v, func() tea.Msg {
			return messages.ArtworkSelected{Artwork: selected}
		}
	}

	var cmd tea.Cmd
	v.bucket, cmd = v.bucket.Update(msg)
	return v, cmd
}

// nextField cycles period, creator, provider.
func nextField(field domain.GroupField) domain.GroupField {
	fields := domain.AllGroupFields()
	for i, f := range fields {
		if f == field {
			return fields[(i+1)%len(fields)]
		}
	}
	return fields[0]
}

// SetCollection replaces the browsed collection and regroups it.
func (v *View) SetCollection(collection *domain.Collection) {
	v.collection = collection
	v.err = nil
	v.loading = false
	v.drilled = false
	// Results of requests issued before this point are stale.
	v.seq++
	v.regroup()

	if collection == nil {
		v.statusbar.Clear()
		return
	}
	v.statusbar.SetState(status.StateBrowsing)
	v.statusbar.SetCounts(len(collection.Artworks), collection.Excluded)
}

// SetField changes the grouping of the current collection.
func (v *View) SetField(field domain.GroupField) {
	v.field = field
	v.drilled = false
	v.regroup()
}

func (v *View) regroup() {
	v.selected = 0
	v.groups = nil
	if v.collection == nil {
		return
	}
	idx, err := v.collection.Group(v.field)
	if err != nil {
		v.err = err
		return
	}
	v.groups = idx.Groups()
}

// View renders the browse view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Browse"))
	if v.collection != nil {
		b.WriteString(v.styles.Muted.Render("  " + v.collection.Query.String()))
	}
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading collection..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	case v.collection == nil:
		b.WriteString(v.styles.Muted.Render("No collections stored. Press f to fetch one."))
		b.WriteString("\n")
	case v.drilled:
		b.WriteString(v.bucket.View())
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[enter] details  [esc] groups"))
		b.WriteString("\n")
	default:
		b.WriteString(v.renderGroups())
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

// renderGroups renders the group keys with their counts.
func (v *View) renderGroups() string {
	var b strings.Builder

	tabs := make([]string, 0, 3)
	for _, f := range domain.AllGroupFields() {
		if f == v.field {
			tabs = append(tabs, v.styles.Field(f).Render("["+string(f)+"]"))
		} else {
			tabs = append(tabs, v.styles.Muted.Render(" "+string(f)+" "))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	if len(v.groups) == 0 {
		b.WriteString(v.styles.Muted.Render("No artworks in this collection."))
		b.WriteString("\n")
		return b.String()
	}

	maxKey := v.width - 16
	if maxKey < 10 {
		maxKey = 10
	}

	for i, g := range v.groups {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}
		key := runewidth.FillRight(runewidth.Truncate(g.Key, maxKey, "…"), maxKey)
		count := fmt.Sprintf("%5d", len(g.Items))

		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(indicator + key + count))
		} else {
			b.WriteString(v.styles.GroupKey.Render(indicator+key) + v.styles.Count.Render(count))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.bucket.SetDimensions(width, height-8)
	v.statusbar.SetWidth(width)
}

// Collection returns the browsed collection.
func (v *View) Collection() *domain.Collection {
	return v.collection
}

// Field returns the current grouping.
func (v *View) Field() domain.GroupField {
	return v.field
}

// Groups returns the groups of the current collection.
func (v *View) Groups() []domain.Group[domain.Artwork] {
	return v.groups
}

// SelectedIndex returns the selected group index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Drilled reports whether a bucket is open.
func (v *View) Drilled() bool {
	return v.drilled
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
