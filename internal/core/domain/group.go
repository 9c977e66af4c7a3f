package domain

// GroupIndex maps derived keys to the items sharing that key.
// Keys keep first-encounter order and each bucket keeps input order.
// Buckets hold pointers into the grouped slice; items are never copied.
type GroupIndex[T any] struct {
	keys    []string
	buckets map[string][]*T
}

// Group is one key and its bucket, as returned by GroupIndex.Groups.
type Group[T any] struct {
	Key   string
	Items []*T
}

// KeyFunc extracts the group keys of one item.
type KeyFunc[T any] func(item *T) []string

// SingleKey adapts a one-key extractor to a KeyFunc.
func SingleKey[T any](fn func(item *T) string) KeyFunc[T] {
	return func(item *T) []string {
		return []string{fn(item)}
	}
}

// GroupBy builds a GroupIndex over items. An item is added to the bucket
// of every distinct key its extractor returns, once per key.
func GroupBy[T any](items []T, keyFn KeyFunc[T]) *GroupIndex[T] {
	idx := &GroupIndex[T]{
		buckets: make(map[string][]*T),
	}

	for i := range items {
		item := &items[i]
		keys := keyFn(item)
		for j, key := range keys {
			if containsKey(keys[:j], key) {
				continue
			}
			if _, ok := idx.buckets[key]; !ok {
				idx.keys = append(idx.keys, key)
			}
			idx.buckets[key] = append(idx.buckets[key], item)
		}
	}

	return idx
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// Keys returns the group keys in first-encounter order.
func (g *GroupIndex[T]) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the bucket for key, or nil if the key is absent.
func (g *GroupIndex[T]) Get(key string) []*T {
	return g.buckets[key]
}

// Has reports whether key has a bucket.
func (g *GroupIndex[T]) Has(key string) bool {
	_, ok := g.buckets[key]
	return ok
}

// Len returns the number of keys.
func (g *GroupIndex[T]) Len() int {
	return len(g.keys)
}

// Total returns the sum of all bucket sizes.
func (g *GroupIndex[T]) Total() int {
	total := 0
	for _, bucket := range g.buckets {
		total += len(bucket)
	}
	return total
}

// Groups returns every key with its bucket, in key order.
func (g *GroupIndex[T]) Groups() []Group[T] {
	out := make([]Group[T], 0, len(g.keys))
	for _, key := range g.keys {
		out = append(out, Group[T]{Key: key, Items: g.buckets[key]})
	}
	return out
}

// GroupField names an artwork grouping.
type GroupField string

const (
	GroupByPeriodField   GroupField = "period"
	GroupByCreatorField  GroupField = "creator"
	GroupByProviderField GroupField = "provider"
)

// AllGroupFields returns the supported groupings.
func AllGroupFields() []GroupField {
	return []GroupField{GroupByPeriodField, GroupByCreatorField, GroupByProviderField}
}

// ParseGroupField parses a grouping name.
func ParseGroupField(s string) (GroupField, error) {
	switch GroupField(s) {
	case GroupByPeriodField, GroupByCreatorField, GroupByProviderField:
		return GroupField(s), nil
	}
	return "", ErrInvalidInput
}

// GroupByTimePeriod groups artworks by their time period.
// Each artwork lands in exactly one bucket.
func GroupByTimePeriod(artworks []Artwork) *GroupIndex[Artwork] {
	return GroupBy(artworks, SingleKey(func(a *Artwork) string {
		return a.TimePeriod
	}))
}

// GroupByCreator groups artworks by each of their creators.
// An artwork with N distinct creators lands in N buckets.
func GroupByCreator(artworks []Artwork) *GroupIndex[Artwork] {
	return GroupBy(artworks, func(a *Artwork) []string {
		return a.Creators
	})
}

// GroupByProvider groups artworks by their data provider.
func GroupByProvider(artworks []Artwork) *GroupIndex[Artwork] {
	return GroupBy(artworks, SingleKey(func(a *Artwork) string {
		return a.Provider
	}))
}

// GroupArtworks dispatches to the grouping named by field.
func GroupArtworks(artworks []Artwork, field GroupField) (*GroupIndex[Artwork], error) {
	switch field {
	case GroupByPeriodField:
		return GroupByTimePeriod(artworks), nil
	case GroupByCreatorField:
		return GroupByCreator(artworks), nil
	case GroupByProviderField:
		return GroupByProvider(artworks), nil
	}
	return nil, ErrInvalidInput
}
