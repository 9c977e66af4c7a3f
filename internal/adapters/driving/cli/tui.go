package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/tui/messages"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for artgraph.

The TUI browses the latest stored collection grouped by period, creator
or provider, drills into a group and fetches new collections by artist.

Controls:
  ↑/k, ↓/j - Navigate
  Tab      - Cycle grouping
  Enter    - Select
  f        - Fetch
  Esc      - Back
  ctrl+c   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// newTUIProgram builds the bubbletea program for the current services.
// Tests replace it to avoid taking over the terminal.
var newTUIProgram = func(model tea.Model) *tea.Program {
	return tea.NewProgram(model, tea.WithAltScreen())
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	collections, err := requireCollections()
	if err != nil {
		return err
	}
	settings, err := requireSettings()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(collections, settings))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	p := newTUIProgram(app)

	// The TUI is long-running: pick up settings edited elsewhere.
	watchConfig(ctx, func() {
		p.Send(messages.ConfigReloaded{})
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
