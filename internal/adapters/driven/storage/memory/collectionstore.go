package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driven"
)

// Ensure CollectionStore implements the interface.
var _ driven.CollectionStore = (*CollectionStore)(nil)

// CollectionStore is an in-memory implementation of driven.CollectionStore.
// Collections are copied on the way in and out.
type CollectionStore struct {
	mu          sync.RWMutex
	collections map[string]storedCollection
	seq         int
}

type storedCollection struct {
	collection domain.Collection
	seq        int
}

// NewCollectionStore creates a new in-memory collection store.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{
		collections: make(map[string]storedCollection),
	}
}

// Save stores a collection.
func (s *CollectionStore) Save(_ context.Context, collection *domain.Collection) error {
	if collection == nil || collection.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.collections[collection.ID] = storedCollection{collection: cloneCollection(collection), seq: s.seq}
	return nil
}

// Get retrieves a collection by ID.
func (s *CollectionStore) Get(_ context.Context, id string) (*domain.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.collections[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := cloneCollection(&stored.collection)
	return &c, nil
}

// Latest retrieves the most recently fetched collection.
func (s *CollectionStore) Latest(ctx context.Context) (*domain.Collection, error) {
	ordered := s.ordered()
	if len(ordered) == 0 {
		return nil, domain.ErrNotFound
	}
	return s.Get(ctx, ordered[0].collection.ID)
}

// List returns summaries of all collections, newest first.
func (s *CollectionStore) List(_ context.Context) ([]domain.CollectionSummary, error) {
	ordered := s.ordered()
	summaries := make([]domain.CollectionSummary, 0, len(ordered))
	for i := range ordered {
		summaries = append(summaries, ordered[i].collection.Summary())
	}
	return summaries, nil
}

// Delete removes a collection.
func (s *CollectionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.collections, id)
	return nil
}

// ordered returns stored collections newest first. Equal fetch times
// fall back to save order.
func (s *CollectionStore) ordered() []storedCollection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]storedCollection, 0, len(s.collections))
	for _, c := range s.collections {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].collection.FetchedAt, out[j].collection.FetchedAt
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return out[i].seq > out[j].seq
	})
	return out
}

func cloneCollection(c *domain.Collection) domain.Collection {
	out := *c
	out.Query.Colours = append([]string(nil), c.Query.Colours...)
	out.Artworks = make([]domain.Artwork, len(c.Artworks))
	for i, a := range c.Artworks {
		a.Creators = append([]string(nil), a.Creators...)
		out.Artworks[i] = a
	}
	return out
}
