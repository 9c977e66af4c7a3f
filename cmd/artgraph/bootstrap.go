package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/artgraph/internal/adapters/driven/config/file"
	"github.com/custodia-labs/artgraph/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/artgraph/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/artgraph/internal/adapters/driving/cli"
	"github.com/custodia-labs/artgraph/internal/connectors/europeana"
	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driven"
	"github.com/custodia-labs/artgraph/internal/core/services"
	"github.com/custodia-labs/artgraph/internal/logger"
	"github.com/custodia-labs/artgraph/internal/normalisers"
	europeananormaliser "github.com/custodia-labs/artgraph/internal/normalisers/europeana"
)

// APIKeyEnv overrides the stored API key for the current process.
const APIKeyEnv = "ARTGRAPH_API_KEY"

// bootstrap wires the driven adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	var (
		configStore driven.ConfigStore
		collections driven.CollectionStore
		watcher     cli.ConfigWatcher
		closeFn     func() error
	)

	if opts.Ephemeral {
		logger.Debug("Using in-memory settings and collections")
		configStore = memory.NewConfigStore()
		collections = memory.NewCollectionStore()
	} else {
		fileStore, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("opening config: %w", err)
		}
		store, err := sqlite.NewStore(opts.DataDir)
		if err != nil {
			return nil, fmt.Errorf("opening store: %w", err)
		}
		logger.Debug("Config: %s, store: %s", fileStore.Path(), store.Path())

		configStore = fileStore
		collections = store.CollectionStore()
		watcher = fileStore
		closeFn = store.Close
	}

	settings := services.NewSettingsService(configStore)
	if key := os.Getenv(APIKeyEnv); key != "" {
		if err := settings.Override(domain.SettingAPIKey, key); err != nil {
			return nil, fmt.Errorf("%s: %w", APIKeyEnv, err)
		}
	}

	registry := normalisers.NewRegistry(europeananormaliser.New())
	collectionService := services.NewCollectionService(
		settings,
		europeana.NewFactory(nil),
		registry,
		collections,
	)

	return &cli.Services{
		Settings:    settings,
		Collections: collectionService,
		Watcher:     watcher,
		Close:       closeFn,
	}, nil
}
