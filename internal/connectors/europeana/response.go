package europeana

import (
	"encoding/json"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// SearchResponse is the decoded body of a search request.
type SearchResponse struct {
	Success      bool
	TotalResults int
	ItemsCount   int
	NextCursor   string
	Items        []json.RawMessage
	Error        string

	facets json.RawMessage
}

// FacetResponse returns the facets of the response.
func (r *SearchResponse) FacetResponse() *domain.FacetResponse {
	return &domain.FacetResponse{Facets: domain.DecodeFacets(r.facets)}
}

// UnmarshalJSON decodes a search response. The body must be a JSON object;
// fields of an unexpected shape are treated as absent. A missing success
// flag counts as success.
func (r *SearchResponse) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return ErrInvalidResponse
	}

	*r = SearchResponse{Success: true}
	if raw, ok := fields["success"]; ok {
		var success bool
		if err := json.Unmarshal(raw, &success); err == nil {
			r.Success = success
		}
	}
	_ = json.Unmarshal(fields["totalResults"], &r.TotalResults) //nolint:errcheck // optional
	_ = json.Unmarshal(fields["itemsCount"], &r.ItemsCount)     //nolint:errcheck // optional
	_ = json.Unmarshal(fields["nextCursor"], &r.NextCursor)     //nolint:errcheck // optional
	_ = json.Unmarshal(fields["error"], &r.Error)               //nolint:errcheck // optional

	var items []json.RawMessage
	if err := json.Unmarshal(fields["items"], &items); err == nil {
		r.Items = items
	}
	r.facets = fields["facets"]
	return nil
}

// recordID extracts the id of a raw item, if it has a textual one.
func recordID(item json.RawMessage) string {
	var rec domain.RawRecord
	if err := json.Unmarshal(item, &rec); err != nil {
		return ""
	}
	return rec.ID
}
