// Package cli implements the artgraph command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/artgraph/internal/core/ports/driving"
	"github.com/custodia-labs/artgraph/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Global flags.
var (
	verbose      bool
	outputFormat string
	configDir    string
	dataDir      string
	ephemeral    bool
)

// Services available to commands. Set by SetServices or the bootstrap.
var (
	settingsService   driving.SettingsService
	collectionService driving.CollectionService
	configWatcher     ConfigWatcher
)

// ConfigWatcher reloads configuration when it changes on disk.
type ConfigWatcher interface {
	Watch(ctx context.Context, onChange func()) error
}

// Services bundles the driving ports used by the commands.
type Services struct {
	Settings    driving.SettingsService
	Collections driving.CollectionService

	// Watcher is optional; long-running commands use it to pick up
	// configuration edits.
	Watcher ConfigWatcher

	// Close releases resources held by the services. Optional.
	Close func() error
}

// Options are the global flags a bootstrap needs to build services.
type Options struct {
	ConfigDir string
	DataDir   string
	Ephemeral bool
}

// Bootstrap builds services once flags are parsed.
type Bootstrap func(opts Options) (*Services, error)

// annotationNoServices marks commands that run without services.
const annotationNoServices = "artgraph/no-services"

var (
	bootstrap     Bootstrap
	closeServices func() error
)

var rootCmd = &cobra.Command{
	Use:   "artgraph",
	Short: "Explore museum artworks from the Europeana collection",
	Long: `artgraph fetches artwork records from the Europeana search API,
normalises them into a canonical shape and groups them by time period,
creator or provider.

Fetched collections are stored locally so they can be grouped, graphed
and browsed without another request.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", string(FormatText), "output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.artgraph)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.artgraph/data)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep settings and collections in memory only")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the services used by commands.
func SetServices(s *Services) {
	if s == nil {
		settingsService, collectionService, configWatcher, closeServices = nil, nil, nil, nil
		return
	}
	settingsService = s.Settings
	collectionService = s.Collections
	configWatcher = s.Watcher
	closeServices = s.Close
}

// SetBootstrap registers the function that builds services from flags.
// It runs before any command that has no services injected.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if _, err := ParseFormat(outputFormat); err != nil {
		return err
	}

	if cmd.Annotations[annotationNoServices] == "true" {
		return nil
	}
	if bootstrap == nil || collectionService != nil {
		return nil
	}

	services, err := bootstrap(Options{
		ConfigDir: configDir,
		DataDir:   dataDir,
		Ephemeral: ephemeral,
	})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}

// requireCollections returns the collection service or an error.
func requireCollections() (driving.CollectionService, error) {
	if collectionService == nil {
		return nil, errors.New("collection service not configured")
	}
	return collectionService, nil
}

// requireSettings returns the settings service or an error.
func requireSettings() (driving.SettingsService, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	return settingsService, nil
}
