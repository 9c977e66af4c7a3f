package domain

import "time"

// Collection is the outcome of one fetch cycle: the canonical artworks
// in record order together with the query that produced them.
// A collection is immutable once stored.
type Collection struct {
	ID           string       `json:"id" yaml:"id"`
	Query        ArtworkQuery `json:"query" yaml:"query"`
	URL          string       `json:"url" yaml:"url"`
	TotalResults int          `json:"totalResults" yaml:"totalResults"`

	// Excluded counts raw records dropped for lacking an image.
	Excluded  int       `json:"excluded" yaml:"excluded"`
	FetchedAt time.Time `json:"fetchedAt" yaml:"fetchedAt"`
	Artworks  []Artwork `json:"artworks" yaml:"artworks"`
}

// CollectionSummary is the list view of a collection.
type CollectionSummary struct {
	ID           string       `json:"id" yaml:"id"`
	Query        ArtworkQuery `json:"query" yaml:"query"`
	TotalResults int          `json:"totalResults" yaml:"totalResults"`
	Artworks     int          `json:"artworks" yaml:"artworks"`
	Excluded     int          `json:"excluded" yaml:"excluded"`
	FetchedAt    time.Time    `json:"fetchedAt" yaml:"fetchedAt"`
}

// Summary returns the list view of c.
func (c *Collection) Summary() CollectionSummary {
	return CollectionSummary{
		ID:           c.ID,
		Query:        c.Query,
		TotalResults: c.TotalResults,
		Artworks:     len(c.Artworks),
		Excluded:     c.Excluded,
		FetchedAt:    c.FetchedAt,
	}
}

// Group indexes the collection's artworks by field.
func (c *Collection) Group(field GroupField) (*GroupIndex[Artwork], error) {
	return GroupArtworks(c.Artworks, field)
}

// Graph derives the artwork graph of the collection.
func (c *Collection) Graph() *Graph {
	return BuildGraph(c.Artworks)
}
