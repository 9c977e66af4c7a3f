package driven

import (
	"context"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// Normaliser transforms raw records into artworks.
// Each normaliser handles specific MIME types.
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Normalise transforms a raw document into an artwork.
	// A record that yields no artwork is reported through Excluded,
	// not as an error.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
type NormaliseResult struct {
	// Artwork is the canonical artwork. Nil when Excluded is set.
	Artwork *domain.Artwork

	// Excluded reports that the record was dropped.
	Excluded bool

	// Reason explains an exclusion.
	Reason string
}
