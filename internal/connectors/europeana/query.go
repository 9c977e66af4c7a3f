package europeana

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// Facet and profile parameter values.
const (
	ProfileRich   = "rich"
	ProfileFacets = "facets"
	SortByScore   = "score+desc"

	// CursorStart begins cursor paging.
	CursorStart = "*"
)

// QueryBuilder builds search request URLs. It holds no state beyond its
// configuration, so the same inputs always produce the same URL.
type QueryBuilder struct {
	APIKey   string
	Provider string
	BaseURL  string
	Rows     int
}

// ArtworkURL builds the artwork search URL for artist, filtered by colours
// in the given order. An artist of "all" matches every creator.
func (b QueryBuilder) ArtworkURL(artist string, colours []string) string {
	var sb strings.Builder
	b.writeBase(&sb, artist)
	sb.WriteString("&profile=")
	sb.WriteString(ProfileRich)
	sb.WriteString("&media=true&rows=")
	sb.WriteString(strconv.Itoa(b.Rows))
	sb.WriteString("&sort=")
	sb.WriteString(SortByScore)
	for _, colour := range colours {
		sb.WriteString("&colourpalette=")
		sb.WriteString(encodeComponent(colour))
	}
	return sb.String()
}

// ColourFacetURL builds the colour palette facet URL for artist.
func (b QueryBuilder) ColourFacetURL(artist string) string {
	var sb strings.Builder
	b.writeBase(&sb, artist)
	sb.WriteString("&profile=")
	sb.WriteString(ProfileFacets)
	sb.WriteString("&media=true&rows=0&facet=")
	sb.WriteString(domain.FacetColourPalette)
	return sb.String()
}

// writeBase writes the endpoint, key, artist clause and provider clause.
func (b QueryBuilder) writeBase(sb *strings.Builder, artist string) {
	sb.WriteString(b.BaseURL)
	sb.WriteString("?wskey=")
	sb.WriteString(encodeComponent(b.APIKey))
	sb.WriteString("&query=")
	sb.WriteString(artistClause(artist))
	sb.WriteString("&qf=DATA_PROVIDER:(%22")
	sb.WriteString(encodeComponent(b.Provider))
	sb.WriteString("%22)")
}

// artistClause returns the query value for artist.
func artistClause(artist string) string {
	if domain.NormaliseArtist(artist) == domain.AllArtists {
		return "*"
	}
	return "who:(" + encodeComponent(artist) + ")"
}

// WithCursor appends a paging cursor to a search URL.
func WithCursor(searchURL, cursor string) string {
	return searchURL + "&cursor=" + encodeComponent(cursor)
}

// encodeComponent percent-encodes s like encodeURIComponent.
func encodeComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	// QueryEscape encodes characters encodeURIComponent leaves intact.
	for enc, ch := range unreservedMarks {
		escaped = strings.ReplaceAll(escaped, enc, ch)
	}
	return escaped
}

var unreservedMarks = map[string]string{
	"%21": "!",
	"%27": "'",
	"%28": "(",
	"%29": ")",
	"%2A": "*",
}

// redactKey hides the wskey value of a request URL.
func redactKey(searchURL string) string {
	i := strings.Index(searchURL, "wskey=")
	if i < 0 {
		return searchURL
	}
	start := i + len("wskey=")
	end := strings.IndexByte(searchURL[start:], '&')
	if end < 0 {
		return searchURL[:start] + "REDACTED"
	}
	return searchURL[:start] + "REDACTED" + searchURL[start+end:]
}
