// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// ArtworkList displays the artworks of one bucket in a navigable list.
type ArtworkList struct {
	title    string
	artworks []*domain.Artwork
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewArtworkList creates a new artwork list component.
func NewArtworkList(s *styles.Styles) *ArtworkList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ArtworkList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *ArtworkList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *ArtworkList) Update(msg tea.Msg) (*ArtworkList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the list.
func (l *ArtworkList) View() string {
	if len(l.artworks) == 0 {
		return l.styles.Muted.Render("No artworks")
	}

	lines := make([]string, 0, len(l.artworks)*2+2)

	header := l.styles.Subtitle.Render(fmt.Sprintf("%s (%d)", l.title, len(l.artworks)))
	lines = append(lines, header, "")

	// Each artwork takes two lines
	visible := (l.height - 2) / 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.artworks) {
		end = len(l.artworks)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderArtwork(i, l.artworks[i]))
	}

	return strings.Join(lines, "\n")
}

// renderArtwork formats a single artwork as a title line and a byline.
func (l *ArtworkList) renderArtwork(index int, a *domain.Artwork) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	maxTitle := l.width - 4
	if maxTitle < 10 {
		maxTitle = 10
	}
	title := runewidth.Truncate(a.Title, maxTitle, "…")

	var titleLine string
	if index == l.selected {
		titleLine = l.styles.Selected.Render(indicator + title)
	} else {
		titleLine = l.styles.Normal.Render(indicator + title)
	}

	byline := strings.Join(a.Creators, ", ") + " · " + a.TimePeriod
	byline = runewidth.Truncate(byline, maxTitle, "…")

	return titleLine + "\n" + l.styles.Muted.Render("    "+byline)
}

// SetArtworks replaces the listed artworks and resets the selection.
func (l *ArtworkList) SetArtworks(title string, artworks []*domain.Artwork) {
	l.title = title
	l.artworks = artworks
	l.selected = 0
}

// Title returns the list header.
func (l *ArtworkList) Title() string {
	return l.title
}

// Artworks returns the listed artworks.
func (l *ArtworkList) Artworks() []*domain.Artwork {
	return l.artworks
}

// Selected returns the index of the selected artwork.
func (l *ArtworkList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *ArtworkList) SetSelected(index int) {
	if index >= 0 && index < len(l.artworks) {
		l.selected = index
	}
}

// SelectedArtwork returns the currently selected artwork, or nil if none.
func (l *ArtworkList) SelectedArtwork() *domain.Artwork {
	if l.selected < 0 || l.selected >= len(l.artworks) {
		return nil
	}
	return l.artworks[l.selected]
}

// MoveUp moves selection up.
func (l *ArtworkList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ArtworkList) MoveDown() {
	if l.selected < len(l.artworks)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *ArtworkList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of artworks.
func (l *ArtworkList) Count() int {
	return len(l.artworks)
}

// IsEmpty returns whether the list is empty.
func (l *ArtworkList) IsEmpty() bool {
	return len(l.artworks) == 0
}
