package driven

import (
	"context"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// CollectionStore persists fetched collections.
// Artwork order within a collection must survive a round trip.
type CollectionStore interface {
	// Save stores a collection, replacing any collection with the same ID.
	Save(ctx context.Context, collection *domain.Collection) error

	// Get retrieves a collection by ID.
	// Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Collection, error)

	// Latest retrieves the most recently fetched collection.
	// Returns ErrNotFound if the store is empty.
	Latest(ctx context.Context) (*domain.Collection, error)

	// List returns summaries of all collections, newest first.
	List(ctx context.Context) ([]domain.CollectionSummary, error)

	// Delete removes a collection and its artworks.
	// Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}
