package normalisers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driven"
	"github.com/custodia-labs/artgraph/internal/normalisers/europeana"
)

type stubNormaliser struct {
	mimeTypes []string
	title     string
}

func (s *stubNormaliser) SupportedMIMETypes() []string { return s.mimeTypes }

func (s *stubNormaliser) Normalise(_ context.Context, _ *domain.RawDocument) (*driven.NormaliseResult, error) {
	return &driven.NormaliseResult{Artwork: &domain.Artwork{Title: s.title}}, nil
}

func TestRegistry_Normalise(t *testing.T) {
	r := NewRegistry(europeana.New())

	result, err := r.Normalise(context.Background(), &domain.RawDocument{
		MIMEType: europeana.MIMETypeRecord,
		Content:  []byte(`{"id":"a1","title":["T1"],"edmIsShownBy":["u1"]}`),
	})

	require.NoError(t, err)
	require.NotNil(t, result.Artwork)
	assert.Equal(t, "T1", result.Artwork.Title)
}

func TestRegistry_UnsupportedType(t *testing.T) {
	r := NewRegistry(europeana.New())

	_, err := r.Normalise(context.Background(), &domain.RawDocument{MIMEType: "text/plain"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)

	_, err = r.Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistry_LaterRegistrationWins(t *testing.T) {
	r := NewRegistry(
		&stubNormaliser{mimeTypes: []string{"a", "b"}, title: "first"},
		&stubNormaliser{mimeTypes: []string{"b"}, title: "second"},
	)

	result, err := r.Normalise(context.Background(), &domain.RawDocument{MIMEType: "b"})
	require.NoError(t, err)
	assert.Equal(t, "second", result.Artwork.Title)

	assert.Equal(t, []string{"a", "b"}, r.SupportedMIMETypes())
}
