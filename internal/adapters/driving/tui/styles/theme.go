// Package styles provides the colour theme and lipgloss styles of the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// Theme is the colour palette of the TUI. The three grouping fields each
// get their own colour so the active grouping is recognisable at a glance.
type Theme struct {
	Period   lipgloss.Color
	Creator  lipgloss.Color
	Provider lipgloss.Color

	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Bar        lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
}

// DefaultTheme returns the gallery palette.
func DefaultTheme() *Theme {
	return &Theme{
		Period:     lipgloss.Color("#C8A45D"), // gilt
		Creator:    lipgloss.Color("#7FA7C9"), // delft blue
		Provider:   lipgloss.Color("#D98E73"), // terracotta
		Background: lipgloss.Color("#1C1B1A"),
		Foreground: lipgloss.Color("#E8E1D3"),
		Muted:      lipgloss.Color("#8A8378"),
		Border:     lipgloss.Color("#4A4640"),
		Bar:        lipgloss.Color("#141312"),
		Success:    lipgloss.Color("#9CBF8A"),
		Error:      lipgloss.Color("#D9655B"),
	}
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style

	// Browse view.
	GroupKey lipgloss.Style
	Count    lipgloss.Style

	// Label is the fixed-width field name column of detail views.
	Label lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style

	fields map[domain.GroupField]lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	return &Styles{
		theme: theme,

		Title:    fg(theme.Period).Bold(true),
		Subtitle: fg(theme.Creator).Bold(true),
		Normal:   fg(theme.Foreground),
		Muted:    fg(theme.Muted),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(theme.Background).Background(theme.Period),
		Help:     fg(theme.Muted),

		GroupKey: fg(theme.Foreground),
		Count:    fg(theme.Provider),
		Label:    fg(theme.Creator).Bold(true).Width(12),

		Error:   fg(theme.Error),
		Success: fg(theme.Success),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		StatusBar: fg(theme.Muted).Background(theme.Bar).Padding(0, 1),

		fields: map[domain.GroupField]lipgloss.Style{
			domain.GroupByPeriodField:   fg(theme.Period).Bold(true),
			domain.GroupByCreatorField:  fg(theme.Creator).Bold(true),
			domain.GroupByProviderField: fg(theme.Provider).Bold(true),
		},
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Field returns the style of a grouping field's tab. Unknown fields render
// as Subtitle.
func (s *Styles) Field(field domain.GroupField) lipgloss.Style {
	if style, ok := s.fields[field]; ok {
		return style
	}
	return s.Subtitle
}
