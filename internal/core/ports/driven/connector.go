package driven

import (
	"context"
	"errors"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// Connector fetches artwork records from a search API.
type Connector interface {
	// Type returns the connector type identifier.
	Type() string

	// Validate checks the connector is configured well enough to query.
	// It does not contact the API.
	Validate(ctx context.Context) error

	// ArtworkURL returns the first-page request URL for query.
	ArtworkURL(query domain.ArtworkQuery) string

	// ColourFacetURL returns the colour facet request URL for artist.
	ColourFacetURL(artist string) string

	// Search fetches the records matching query.
	// Each record is sent on the document channel in response order.
	// On success a SearchComplete is sent on the error channel before
	// both channels close. Any other error ends the search.
	Search(ctx context.Context, query domain.ArtworkQuery) (<-chan domain.RawDocument, <-chan error)

	// ColourFacets fetches the colour facet for artist.
	ColourFacets(ctx context.Context, artist string) (*domain.FacetResponse, error)

	// Close releases resources. Later calls fail with ErrConnectorClosed.
	Close() error
}

// SearchComplete is sent on the error channel when a search completes.
type SearchComplete struct {
	// URL is the first-page request URL.
	URL string

	// TotalResults is the server-reported number of matching records.
	TotalResults int

	// Pages is the number of pages fetched.
	Pages int
}

// Error implements the error interface.
// This allows SearchComplete to be sent on the error channel.
func (*SearchComplete) Error() string {
	return "search complete"
}

// IsSearchComplete checks if an error is actually a successful completion.
func IsSearchComplete(err error) (*SearchComplete, bool) {
	var sc *SearchComplete
	if errors.As(err, &sc) {
		return sc, true
	}
	return nil, false
}
