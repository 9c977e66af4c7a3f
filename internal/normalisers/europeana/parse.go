package europeana

import (
	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// NormaliseRecord converts one raw record into an artwork.
// It reports false for records without an image.
func NormaliseRecord(r domain.RawRecord) (domain.Artwork, bool) {
	if !r.HasImage() {
		return domain.Artwork{}, false
	}
	return domain.Artwork{
		ID:         r.ID,
		Title:      resolveTitle(&r),
		TimePeriod: resolveTimePeriod(&r),
		Creators:   resolveCreators(&r),
		ImageURL:   r.EdmIsShownBy[0],
		Provider:   resolveProvider(&r),
	}, true
}

// ParseArtworks normalises records in order, skipping excluded ones.
// The result is never nil.
func ParseArtworks(records []domain.RawRecord) []domain.Artwork {
	artworks := make([]domain.Artwork, 0, len(records))
	for _, r := range records {
		if a, ok := NormaliseRecord(r); ok {
			artworks = append(artworks, a)
		}
	}
	return artworks
}
