// Package artwork provides the artwork detail view for the TUI.
package artwork

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// View shows every field of one artwork.
type View struct {
	styles *styles.Styles

	artwork      *domain.Artwork
	scrollOffset int
	width        int
	height       int
	ready        bool
}

// NewView creates a new artwork view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// SetArtwork sets the artwork to display.
func (v *View) SetArtwork(a domain.Artwork) {
	v.artwork = &a
	v.scrollOffset = 0
}

// Artwork returns the displayed artwork.
func (v *View) Artwork() *domain.Artwork {
	return v.artwork
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the artwork view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.scrollOffset > 0 {
				v.scrollOffset--
			}
		case "down", "j":
			if v.scrollOffset < v.maxScrollOffset() {
				v.scrollOffset++
			}
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewBrowse}
			}
		}
	}

	return v, nil
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// title, blank, blank, help
	available := v.height - 4
	if available < 1 {
		available = 1
	}
	return available
}

func (v *View) maxScrollOffset() int {
	maxOffset := len(v.buildContent()) - v.visibleLines()
	if maxOffset < 0 {
		return 0
	}
	return maxOffset
}

// buildContent builds the content lines for display.
func (v *View) buildContent() []string {
	if v.artwork == nil {
		return nil
	}
	a := v.artwork

	lines := []string{
		v.formatField("ID", a.ID),
		v.formatField("Period", a.TimePeriod),
		v.formatField("Provider", a.Provider),
		v.formatField("Image", a.ImageURL),
		"",
		v.styles.Subtitle.Render("Creators"),
	}
	for _, c := range a.Creators {
		lines = append(lines, "  "+v.styles.Normal.Render(c))
	}
	return lines
}

func (v *View) formatField(label, value string) string {
	if value == "" {
		value = "-"
	}
	maxValue := v.width - 14
	if maxValue < 10 {
		maxValue = 10
	}
	return v.styles.Label.Render(label) + v.styles.Normal.Render(runewidth.Truncate(value, maxValue, "…"))
}

// View renders the artwork view.
func (v *View) View() string {
	var b strings.Builder

	if v.artwork == nil {
		b.WriteString(v.styles.Muted.Render("No artwork selected."))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return b.String()
	}

	b.WriteString(v.styles.Title.Render(v.artwork.Title))
	b.WriteString("\n\n")

	lines := v.buildContent()
	end := v.scrollOffset + v.visibleLines()
	if end > len(lines) {
		end = len(lines)
	}
	b.WriteString(strings.Join(lines[v.scrollOffset:end], "\n"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] scroll  [esc] back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}
