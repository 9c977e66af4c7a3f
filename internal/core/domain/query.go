package domain

import "strings"

// AllArtists is the artist filter that matches every creator.
const AllArtists = "all"

// ArtworkQuery describes one artwork search.
type ArtworkQuery struct {
	// Artist is AllArtists or a creator name.
	Artist string `json:"artist" yaml:"artist"`

	// Colours are colour palette tokens, e.g. "#FFFFFF".
	Colours []string `json:"colours,omitempty" yaml:"colours,omitempty"`
}

// NewArtworkQuery builds a query, treating an empty artist as AllArtists.
func NewArtworkQuery(artist string, colours ...string) ArtworkQuery {
	return ArtworkQuery{Artist: NormaliseArtist(artist), Colours: colours}
}

// NormaliseArtist maps an empty or blank artist filter to AllArtists.
func NormaliseArtist(artist string) string {
	if strings.TrimSpace(artist) == "" {
		return AllArtists
	}
	return artist
}

// IsAllArtists reports whether the query matches every creator.
func (q ArtworkQuery) IsAllArtists() bool {
	return q.Artist == AllArtists
}

// String renders the query for logs and listings.
func (q ArtworkQuery) String() string {
	var b strings.Builder
	b.WriteString("artist=")
	b.WriteString(q.Artist)
	if len(q.Colours) > 0 {
		b.WriteString(" colours=")
		b.WriteString(strings.Join(q.Colours, ","))
	}
	return b.String()
}
