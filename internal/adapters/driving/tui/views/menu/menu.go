// Package menu provides the start screen of the TUI.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/styles"
)

// Item is one entry of the menu. Shortcut jumps straight to it.
type Item struct {
	Label    string
	Hint     string
	Shortcut string
	View     messages.ViewType
	Quit     bool
}

// View is the start menu.
type View struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates the start menu.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		keys:   keymap.DefaultKeyMap(),
		items: []Item{
			{Label: "Browse", Hint: "group the latest collection", Shortcut: "b", View: messages.ViewBrowse},
			{Label: "Fetch", Hint: "fetch artworks by artist", Shortcut: "f", View: messages.ViewFetch},
			{Label: "Settings", Hint: "API key, provider, paging", Shortcut: "s", View: messages.ViewSettings},
			{Label: "Help", Shortcut: "?", View: messages.ViewHelp},
			{Label: "Quit", Shortcut: "q", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Up):
			v.selected = max(v.selected-1, 0)
		case key.Matches(msg, v.keys.Down):
			v.selected = min(v.selected+1, len(v.items)-1)
		case key.Matches(msg, v.keys.Select):
			return v, v.choose(v.items[v.selected])
		default:
			for i, item := range v.items {
				if msg.String() == item.Shortcut {
					v.selected = i
					return v, v.choose(item)
				}
			}
		}
	}

	return v, nil
}

// choose returns the command that opens item.
func (v *View) choose(item Item) tea.Cmd {
	if item.Quit {
		return tea.Quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("artgraph"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Europeana artworks by period, creator and provider"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		label := fmt.Sprintf("[%s] %-9s", item.Shortcut, item.Label)
		cursor := "  "
		if i == v.selected {
			cursor = "> "
			label = v.styles.Selected.Render(label)
		} else {
			label = v.styles.Normal.Render(label)
		}
		b.WriteString(cursor + label)
		if item.Hint != "" {
			b.WriteString(" " + v.styles.Muted.Render(item.Hint))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("j/k move · enter select · letter jumps"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
