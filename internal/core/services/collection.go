package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driven"
	"github.com/custodia-labs/artgraph/internal/core/ports/driving"
	"github.com/custodia-labs/artgraph/internal/logger"
)

// Ensure CollectionService implements the interface.
var _ driving.CollectionService = (*CollectionService)(nil)

// CollectionService runs fetch cycles and serves stored collections.
type CollectionService struct {
	settings driving.SettingsService
	factory  driven.ConnectorFactory
	registry driven.NormaliserRegistry
	store    driven.CollectionStore

	now   func() time.Time
	newID func() string
}

// NewCollectionService creates a new collection service.
func NewCollectionService(
	settings driving.SettingsService,
	factory driven.ConnectorFactory,
	registry driven.NormaliserRegistry,
	store driven.CollectionStore,
) *CollectionService {
	return &CollectionService{
		settings: settings,
		factory:  factory,
		registry: registry,
		store:    store,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Fetch runs one fetch cycle for query and stores the result.
// Any connector error aborts the cycle and leaves the store untouched.
func (s *CollectionService) Fetch(ctx context.Context, query domain.ArtworkQuery, opts driving.FetchOptions) (*domain.Collection, error) {
	query.Artist = domain.NormaliseArtist(query.Artist)

	connector, err := s.connector(ctx, opts.Pages)
	if err != nil {
		return nil, err
	}
	defer connector.Close()

	if err := connector.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate connector: %w", err)
	}

	done := logger.Timed("Fetch " + query.String())
	defer done()

	collection := &domain.Collection{
		Query:    query,
		URL:      connector.ArtworkURL(query),
		Artworks: []domain.Artwork{},
	}

	docsCh, errsCh := connector.Search(ctx, query)
	if err := s.processRecords(ctx, collection, docsCh, errsCh); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	collection.ID = s.newID()
	collection.FetchedAt = s.now().UTC()

	if err := s.store.Save(ctx, collection); err != nil {
		return nil, fmt.Errorf("save collection: %w", err)
	}

	logger.Info("Fetched %d artworks (%d excluded, %d total results)",
		len(collection.Artworks), collection.Excluded, collection.TotalResults)
	return collection, nil
}

// processRecords normalises every record of a search into collection,
// preserving record order.
//
//nolint:gocognit // Consumes two channels until both are drained
func (s *CollectionService) processRecords(
	ctx context.Context,
	collection *domain.Collection,
	docsCh <-chan domain.RawDocument,
	errsCh <-chan error,
) error {
	for docsCh != nil || errsCh != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err, ok := <-errsCh:
			if !ok {
				errsCh = nil
				continue
			}
			if sc, done := driven.IsSearchComplete(err); done {
				collection.TotalResults = sc.TotalResults
				if sc.URL != "" {
					collection.URL = sc.URL
				}
				logger.Debug("Search complete after %d page(s)", sc.Pages)
				continue
			}
			if err != nil {
				return fmt.Errorf("connector error: %w", err)
			}

		case raw, ok := <-docsCh:
			if !ok {
				docsCh = nil
				continue
			}
			s.processOneRecord(ctx, collection, &raw)
		}
	}
	return nil
}

// processOneRecord appends the record's artwork or counts its exclusion.
func (s *CollectionService) processOneRecord(ctx context.Context, collection *domain.Collection, raw *domain.RawDocument) {
	result, err := s.registry.Normalise(ctx, raw)
	if err != nil {
		collection.Excluded++
		if errors.Is(err, domain.ErrUnsupportedType) {
			logger.Warn("Skipping %s: %v", raw.URI, err)
		} else {
			logger.Debug("Failed to normalise %s: %v", raw.URI, err)
		}
		return
	}
	if result.Excluded || result.Artwork == nil {
		collection.Excluded++
		logger.Debug("Excluded %s: %s", raw.URI, result.Reason)
		return
	}
	collection.Artworks = append(collection.Artworks, *result.Artwork)
}

// Colours fetches the colour palette facet for artist.
func (s *CollectionService) Colours(ctx context.Context, artist string) (*driving.ColourPalette, error) {
	artist = domain.NormaliseArtist(artist)

	connector, err := s.connector(ctx, 0)
	if err != nil {
		return nil, err
	}
	defer connector.Close()

	if err := connector.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate connector: %w", err)
	}

	facets, err := connector.ColourFacets(ctx, artist)
	if err != nil {
		return nil, err
	}

	colours := facets.ColourPalette()
	logger.Debug("Colour palette for %s: %d colours", artist, len(colours))
	return &driving.ColourPalette{
		Artist:  artist,
		URL:     connector.ColourFacetURL(artist),
		Colours: colours,
	}, nil
}

// ArtworkURL returns the request URL Fetch would issue first.
func (s *CollectionService) ArtworkURL(ctx context.Context, query domain.ArtworkQuery) (string, error) {
	query.Artist = domain.NormaliseArtist(query.Artist)

	connector, err := s.connector(ctx, 0)
	if err != nil {
		return "", err
	}
	defer connector.Close()
	return connector.ArtworkURL(query), nil
}

// ColourFacetURL returns the request URL Colours would issue.
func (s *CollectionService) ColourFacetURL(ctx context.Context, artist string) (string, error) {
	connector, err := s.connector(ctx, 0)
	if err != nil {
		return "", err
	}
	defer connector.Close()
	return connector.ColourFacetURL(domain.NormaliseArtist(artist)), nil
}

// connector builds a connector from the current settings.
func (s *CollectionService) connector(ctx context.Context, pages int) (driven.Connector, error) {
	if s.factory == nil {
		return nil, fmt.Errorf("create connector: connector factory not configured")
	}

	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if pages > 0 {
		settings.MaxPages = pages
	}

	connector, err := s.factory.Create(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}
	return connector, nil
}

// Get retrieves a stored collection.
func (s *CollectionService) Get(ctx context.Context, id string) (*domain.Collection, error) {
	if id == "" || id == driving.LatestCollection {
		return s.store.Latest(ctx)
	}
	return s.store.Get(ctx, id)
}

// List returns summaries of stored collections, newest first.
func (s *CollectionService) List(ctx context.Context) ([]domain.CollectionSummary, error) {
	return s.store.List(ctx)
}

// Delete removes a stored collection.
func (s *CollectionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.store.Delete(ctx, id)
}

// Groups indexes a stored collection by field.
func (s *CollectionService) Groups(
	ctx context.Context,
	id string,
	field domain.GroupField,
) (*domain.GroupIndex[domain.Artwork], error) {
	collection, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return collection.Group(field)
}

// Graph derives the graph of a stored collection.
func (s *CollectionService) Graph(ctx context.Context, id string) (*domain.Graph, error) {
	collection, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return collection.Graph(), nil
}
