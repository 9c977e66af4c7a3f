package europeana

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

func decodeRecords(t *testing.T, data string) []domain.RawRecord {
	t.Helper()
	var records []domain.RawRecord
	require.NoError(t, json.Unmarshal([]byte(data), &records))
	return records
}

func TestParseArtworks(t *testing.T) {
	records := decodeRecords(t, `[
		{"id": "art1", "title": ["Title One"], "edmIsShownBy": ["url1"],
		 "edmTimespanLabel": [{"def": "1900"}], "edmAgentLabel": [{"def": "Alice"}]},
		{"id": "art2", "dcTitleLangAware": {"def": ["Title Two"]}, "edmIsShownBy": ["url2"],
		 "edmTimespanLabel": [{"def": "1900"}], "dcCreator": ["Bob"]},
		{"id": "art3", "edmIsShownBy": [], "edmTimespanLabel": [{"def": "1800"}],
		 "edmAgentLabel": [{"def": "Alice"}]},
		{"id": "art4", "edmIsShownBy": ["url4"]}
	]`)

	artworks := ParseArtworks(records)

	require.Len(t, artworks, 3)
	assert.Equal(t, domain.Artwork{
		ID: "art1", Title: "Title One", TimePeriod: "1900", Creators: []string{"Alice"},
		ImageURL: "url1", Provider: domain.UnknownProvider,
	}, artworks[0])
	assert.Equal(t, "Title Two", artworks[1].Title)
	assert.Equal(t, []string{"Bob"}, artworks[1].Creators)
	assert.Equal(t, domain.Artwork{
		ID: "art4", Title: "Untitled", TimePeriod: "Unknown Period", Creators: []string{"Unknown Artist"},
		ImageURL: "url4", Provider: domain.UnknownProvider,
	}, artworks[2])

	byPeriod := domain.GroupByTimePeriod(artworks)
	assert.Equal(t, 2, byPeriod.Len())
	assert.Len(t, byPeriod.Get("1900"), 2)
	assert.Len(t, byPeriod.Get("Unknown Period"), 1)

	byCreator := domain.GroupByCreator(artworks)
	assert.Equal(t, 3, byCreator.Len())
	assert.Len(t, byCreator.Get("Alice"), 1)
	assert.Len(t, byCreator.Get("Bob"), 1)
	assert.Len(t, byCreator.Get("Unknown Artist"), 1)
}

func TestParseArtworks_Scenario(t *testing.T) {
	records := decodeRecords(t, `[
		{"id": "a1", "title": ["T1"], "edmIsShownBy": ["u1"],
		 "edmTimespanLabel": [{"def": "1900"}], "edmAgentLabel": [{"def": "Alice"}]},
		{"id": "a2", "edmIsShownBy": []}
	]`)

	artworks := ParseArtworks(records)

	require.Len(t, artworks, 1)
	a := artworks[0]
	assert.Equal(t, "a1", a.ID)
	assert.Equal(t, "T1", a.Title)
	assert.Equal(t, "1900", a.TimePeriod)
	assert.Equal(t, []string{"Alice"}, a.Creators)

	byPeriod := domain.GroupByTimePeriod(artworks)
	assert.Equal(t, []string{"1900"}, byPeriod.Keys())
	assert.Equal(t, "a1", byPeriod.Get("1900")[0].ID)

	byCreator := domain.GroupByCreator(artworks)
	assert.Equal(t, []string{"Alice"}, byCreator.Keys())
	assert.Equal(t, "a1", byCreator.Get("Alice")[0].ID)
}

func TestNormaliseRecord_Exclusion(t *testing.T) {
	tests := []struct {
		name     string
		record   domain.RawRecord
		included bool
	}{
		{"absent image", domain.RawRecord{ID: "x"}, false},
		{"empty image list", domain.RawRecord{ID: "x", EdmIsShownBy: []string{}}, false},
		{"one image", domain.RawRecord{ID: "x", EdmIsShownBy: []string{"u"}}, true},
		{"several images", domain.RawRecord{ID: "x", EdmIsShownBy: []string{"u", "v"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := NormaliseRecord(tt.record)
			assert.Equal(t, tt.included, ok)
		})
	}
}

func TestNormaliseRecord_Invariants(t *testing.T) {
	records := decodeRecords(t, `[
		{"edmIsShownBy": ["u"]},
		{"edmIsShownBy": ["u"], "title": [""], "edmTimespanLabel": [{}], "edmAgentLabel": [{"def": ""}]},
		{"edmIsShownBy": ["u"], "title": 7, "edmTimespanLabel": "1900", "dcCreator": "Bob"},
		{"edmIsShownBy": ["u"], "edmAgentLabel": [null, {"def": 12}]}
	]`)

	for i, r := range records {
		a, ok := NormaliseRecord(r)
		require.True(t, ok, i)
		assert.NotEmpty(t, a.Title, i)
		assert.NotEmpty(t, a.TimePeriod, i)
		assert.NotEmpty(t, a.Creators, i)
		assert.NotEmpty(t, a.Provider, i)
	}
}

func TestNormaliseRecord_TwoCreatorsFanOut(t *testing.T) {
	a, ok := NormaliseRecord(domain.RawRecord{
		ID:            "duo",
		EdmIsShownBy:  []string{"u"},
		EdmAgentLabel: []domain.LangLabel{{Def: "Alice"}, {Def: "Bob"}},
	})
	require.True(t, ok)
	require.Len(t, a.Creators, 2)

	idx := domain.GroupByCreator([]domain.Artwork{a})
	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, "duo", idx.Get("Alice")[0].ID)
	assert.Equal(t, "duo", idx.Get("Bob")[0].ID)
}

func TestParseArtworks_Empty(t *testing.T) {
	artworks := ParseArtworks(nil)
	assert.NotNil(t, artworks)
	assert.Empty(t, artworks)
}
