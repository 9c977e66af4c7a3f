package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewArtworkQuery tests artist normalisation
func TestNewArtworkQuery(t *testing.T) {
	assert.True(t, NewArtworkQuery("").IsAllArtists())
	assert.True(t, NewArtworkQuery("  ").IsAllArtists())
	assert.True(t, NewArtworkQuery("all").IsAllArtists())

	q := NewArtworkQuery("Rembrandt", "#000000", "#FFFFFF")
	assert.False(t, q.IsAllArtists())
	assert.Equal(t, "Rembrandt", q.Artist)
	assert.Equal(t, []string{"#000000", "#FFFFFF"}, q.Colours)
}

// TestArtworkQuery_String tests the display form
func TestArtworkQuery_String(t *testing.T) {
	assert.Equal(t, "artist=all", NewArtworkQuery("").String())
	assert.Equal(t, "artist=Vermeer colours=#000000,#FFFFFF", NewArtworkQuery("Vermeer", "#000000", "#FFFFFF").String())
}
