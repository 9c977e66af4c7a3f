package europeana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testBaseURL = "https://api.europeana.eu/record/v2/search.json"

func testBuilder() QueryBuilder {
	return QueryBuilder{
		APIKey:   "api2demo",
		Provider: "Rijksmuseum",
		BaseURL:  testBaseURL,
		Rows:     50,
	}
}

func TestQueryBuilder_ArtworkURL(t *testing.T) {
	t.Run("all artists without colours", func(t *testing.T) {
		got := testBuilder().ArtworkURL("all", nil)

		assert.Equal(t, testBaseURL+
			"?wskey=api2demo&query=*&qf=DATA_PROVIDER:(%22Rijksmuseum%22)"+
			"&profile=rich&media=true&rows=50&sort=score+desc", got)
		assert.NotContains(t, got, "colourpalette")
	})

	t.Run("artist with colours in input order", func(t *testing.T) {
		got := testBuilder().ArtworkURL("Rembrandt van Rijn", []string{"#FFFFFF", "#000000"})

		assert.Equal(t, testBaseURL+
			"?wskey=api2demo&query=who:(Rembrandt%20van%20Rijn)&qf=DATA_PROVIDER:(%22Rijksmuseum%22)"+
			"&profile=rich&media=true&rows=50&sort=score+desc"+
			"&colourpalette=%23FFFFFF&colourpalette=%23000000", got)
	})

	t.Run("empty artist means all", func(t *testing.T) {
		assert.Equal(t, testBuilder().ArtworkURL("all", nil), testBuilder().ArtworkURL("", nil))
	})

	t.Run("is deterministic", func(t *testing.T) {
		colours := []string{"#123456"}
		assert.Equal(t, testBuilder().ArtworkURL("Vermeer", colours), testBuilder().ArtworkURL("Vermeer", colours))
	})

	t.Run("uses configured rows", func(t *testing.T) {
		b := testBuilder()
		b.Rows = 12
		assert.Contains(t, b.ArtworkURL("all", nil), "&rows=12&")
	})
}

func TestQueryBuilder_ColourFacetURL(t *testing.T) {
	t.Run("all artists", func(t *testing.T) {
		got := testBuilder().ColourFacetURL("all")

		assert.Equal(t, testBaseURL+
			"?wskey=api2demo&query=*&qf=DATA_PROVIDER:(%22Rijksmuseum%22)"+
			"&profile=facets&media=true&rows=0&facet=COLOURPALETTE", got)
	})

	t.Run("artist scoped", func(t *testing.T) {
		got := testBuilder().ColourFacetURL("Rembrandt")

		assert.Contains(t, got, "query=who:(Rembrandt)")
		assert.Contains(t, got, "facet=COLOURPALETTE")
		assert.Contains(t, got, "qf=DATA_PROVIDER:(%22Rijksmuseum%22)")
	})

	t.Run("provider is encoded", func(t *testing.T) {
		b := testBuilder()
		b.Provider = "Van Gogh Museum"
		assert.Contains(t, b.ColourFacetURL("all"), "qf=DATA_PROVIDER:(%22Van%20Gogh%20Museum%22)")
	})
}

func TestWithCursor(t *testing.T) {
	assert.Equal(t, "u?a=1&cursor=*", WithCursor("u?a=1", CursorStart))
	assert.Equal(t, "u?a=1&cursor=AoE%2Fabc%3D", WithCursor("u?a=1", "AoE/abc="))
}

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Rembrandt", "Rembrandt"},
		{"Jan Steen", "Jan%20Steen"},
		{"Jan & Co", "Jan%20%26%20Co"},
		{"O'Keeffe (copy)!*", "O'Keeffe%20(copy)!*"},
		{"#FF0000", "%23FF0000"},
		{"a+b", "a%2Bb"},
		{"~-_.", "~-_."},
		{"who:/x", "who%3A%2Fx"},
		{"Hokusai 葛飾", "Hokusai%20%E8%91%9B%E9%A3%BE"},
		{"Émile", "%C3%89mile"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeComponent(tt.in))
		})
	}
}

func TestRedactKey(t *testing.T) {
	assert.Equal(t, "u?wskey=REDACTED&query=*", redactKey("u?wskey=secret&query=*"))
	assert.Equal(t, "u?wskey=REDACTED", redactKey("u?wskey=secret"))
	assert.Equal(t, "u?query=*", redactKey("u?query=*"))
}
