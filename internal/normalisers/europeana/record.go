package europeana

import (
	"context"
	"encoding/json"

	"github.com/custodia-labs/artgraph/internal/core/domain"
	"github.com/custodia-labs/artgraph/internal/core/ports/driven"
)

// MIMETypeRecord is the custom MIME type for Europeana search records.
const MIMETypeRecord = "application/vnd.europeana.record+json"

// Exclusion reasons.
const (
	ReasonNoImage     = "no image"
	ReasonUndecodable = "undecodable record"
)

// Ensure RecordNormaliser implements the interface.
var _ driven.Normaliser = (*RecordNormaliser)(nil)

// RecordNormaliser handles Europeana record documents.
type RecordNormaliser struct{}

// New creates a new record normaliser.
func New() *RecordNormaliser {
	return &RecordNormaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *RecordNormaliser) SupportedMIMETypes() []string {
	return []string{MIMETypeRecord}
}

// Normalise converts a record document into an artwork.
func (n *RecordNormaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	if !json.Valid(raw.Content) {
		return &driven.NormaliseResult{Excluded: true, Reason: ReasonUndecodable}, nil
	}

	var record domain.RawRecord
	if err := json.Unmarshal(raw.Content, &record); err != nil {
		return &driven.NormaliseResult{Excluded: true, Reason: ReasonUndecodable}, nil //nolint:nilerr // exclusion, not failure
	}

	artwork, ok := NormaliseRecord(record)
	if !ok {
		return &driven.NormaliseResult{Excluded: true, Reason: ReasonNoImage}, nil
	}
	return &driven.NormaliseResult{Artwork: &artwork}, nil
}
