package services

import (
	"context"

	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driven"
)

// mockConnector implements driven.Connector for testing.
type mockConnector struct {
	docs        []domain.RawDocument
	searchErr   error
	complete    *driven.SearchComplete
	facets      *domain.FacetResponse
	facetsErr   error
	validateErr error

	closed    bool
	lastQuery domain.ArtworkQuery
}

func (m *mockConnector) Type() string { return "mock" }

func (m *mockConnector) Validate(_ context.Context) error { return m.validateErr }

func (m *mockConnector) ArtworkURL(query domain.ArtworkQuery) string {
	return "mock://artworks?" + query.String()
}

func (m *mockConnector) ColourFacetURL(artist string) string {
	return "mock://facets?artist=" + artist
}

func (m *mockConnector) Search(ctx context.Context, query domain.ArtworkQuery) (<-chan domain.RawDocument, <-chan error) {
	m.lastQuery = query
	docs := make(chan domain.RawDocument)
	errs := make(chan error, 1)

	go func() {
		defer close(docs)
		defer close(errs)

		for _, doc := range m.docs {
			select {
			case <-ctx.Done():
				return
			case docs <- doc:
			}
		}

		if m.searchErr != nil {
			errs <- m.searchErr
			return
		}
		if m.complete != nil {
			errs <- m.complete
		}
	}()

	return docs, errs
}

func (m *mockConnector) ColourFacets(_ context.Context, artist string) (*domain.FacetResponse, error) {
	m.lastQuery = domain.ArtworkQuery{Artist: artist}
	return m.facets, m.facetsErr
}

func (m *mockConnector) Close() error {
	m.closed = true
	return nil
}

// mockConnectorFactory implements driven.ConnectorFactory.
type mockConnectorFactory struct {
	connector    *mockConnector
	createErr    error
	lastSettings domain.Settings
}

func (f *mockConnectorFactory) Create(_ context.Context, settings domain.Settings) (driven.Connector, error) {
	f.lastSettings = settings
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.connector, nil
}

// mockNormaliser implements driven.Normaliser with a func field.
type mockNormaliser struct {
	mimeTypes     []string
	normaliseFunc func(raw *domain.RawDocument) (*driven.NormaliseResult, error)
}

func (m *mockNormaliser) SupportedMIMETypes() []string { return m.mimeTypes }

func (m *mockNormaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	return m.normaliseFunc(raw)
}

// recordDoc builds a record document as the Europeana connector emits it.
func recordDoc(uri, content string) domain.RawDocument {
	return domain.RawDocument{
		URI:      uri,
		MIMEType: "application/vnd.europeana.record+json",
		Content:  []byte(content),
	}
}
