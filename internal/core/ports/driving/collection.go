package driving

import (
	"context"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// LatestCollection selects the most recent collection wherever an ID is expected.
const LatestCollection = "latest"

// CollectionService fetches, stores and aggregates artwork collections.
type CollectionService interface {
	// Fetch runs one fetch cycle for query and stores the result.
	Fetch(ctx context.Context, query domain.ArtworkQuery, opts FetchOptions) (*domain.Collection, error)

	// Colours fetches the colour palette facet for artist.
	Colours(ctx context.Context, artist string) (*ColourPalette, error)

	// ArtworkURL returns the request URL Fetch would issue first.
	ArtworkURL(ctx context.Context, query domain.ArtworkQuery) (string, error)

	// ColourFacetURL returns the request URL Colours would issue.
	ColourFacetURL(ctx context.Context, artist string) (string, error)

	// Get retrieves a stored collection. An empty ID or LatestCollection
	// selects the most recent one.
	Get(ctx context.Context, id string) (*domain.Collection, error)

	// List returns summaries of stored collections, newest first.
	List(ctx context.Context) ([]domain.CollectionSummary, error)

	// Delete removes a stored collection.
	Delete(ctx context.Context, id string) error

	// Groups indexes a stored collection by field.
	Groups(ctx context.Context, id string, field domain.GroupField) (*domain.GroupIndex[domain.Artwork], error)

	// Graph derives the graph of a stored collection.
	Graph(ctx context.Context, id string) (*domain.Graph, error)
}

// FetchOptions tunes a fetch cycle.
type FetchOptions struct {
	// Pages overrides the configured page limit when positive.
	Pages int
}

// ColourPalette is the result of a colour facet query.
type ColourPalette struct {
	Artist  string   `json:"artist" yaml:"artist"`
	URL     string   `json:"url" yaml:"url"`
	Colours []string `json:"colours" yaml:"colours"`
}
