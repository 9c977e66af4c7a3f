package mcp

import (
	"context"

	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driving"
)

// mockCollectionService is a mock implementation of driving.CollectionService.
// Groups and Graph derive their results from collection.
type mockCollectionService struct {
	collection *domain.Collection
	summaries  []domain.CollectionSummary
	palette    *driving.ColourPalette
	err        error

	lastQuery domain.ArtworkQuery
	lastOpts  driving.FetchOptions
	lastID    string
	lastField domain.GroupField
}

func (m *mockCollectionService) Fetch(
	_ context.Context,
	query domain.ArtworkQuery,
	opts driving.FetchOptions,
) (*domain.Collection, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.collection, m.err
}

func (m *mockCollectionService) Colours(_ context.Context, _ string) (*driving.ColourPalette, error) {
	return m.palette, m.err
}

func (m *mockCollectionService) ArtworkURL(_ context.Context, query domain.ArtworkQuery) (string, error) {
	return "mock://artworks?" + query.String(), m.err
}

func (m *mockCollectionService) ColourFacetURL(_ context.Context, artist string) (string, error) {
	return "mock://facets?artist=" + artist, m.err
}

func (m *mockCollectionService) Get(_ context.Context, id string) (*domain.Collection, error) {
	m.lastID = id
	if m.err != nil {
		return nil, m.err
	}
	if m.collection == nil {
		return nil, domain.ErrNotFound
	}
	return m.collection, nil
}

func (m *mockCollectionService) List(_ context.Context) ([]domain.CollectionSummary, error) {
	return m.summaries, m.err
}

func (m *mockCollectionService) Delete(_ context.Context, id string) error {
	m.lastID = id
	return m.err
}

func (m *mockCollectionService) Groups(
	ctx context.Context,
	id string,
	field domain.GroupField,
) (*domain.GroupIndex[domain.Artwork], error) {
	m.lastField = field
	collection, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return collection.Group(field)
}

func (m *mockCollectionService) Graph(ctx context.Context, id string) (*domain.Graph, error) {
	collection, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return collection.Graph(), nil
}

// testCollection returns a small collection with two periods and a
// shared creator.
func testCollection() *domain.Collection {
	return &domain.Collection{
		ID:           "col-1",
		Query:        domain.NewArtworkQuery("Vermeer"),
		URL:          "mock://artworks",
		TotalResults: 3,
		Excluded:     1,
		Artworks: []domain.Artwork{
			{
				ID:         "/1/a",
				Title:      "The Milkmaid",
				TimePeriod: "17th century",
				Creators:   []string{"Johannes Vermeer"},
				Provider:   "Rijksmuseum",
			},
			{
				ID:         "/1/b",
				Title:      "Sketch",
				TimePeriod: "18th century",
				Creators:   []string{"Johannes Vermeer", "Pupil"},
				Provider:   "Rijksmuseum",
			},
		},
	}
}
