package domain

import "encoding/json"

// FacetColourPalette is the facet carrying the dominant image colours.
const FacetColourPalette = "COLOURPALETTE"

// FacetField is one value of a facet with its hit count.
type FacetField struct {
	Label string `json:"label"`
	Count int    `json:"count,omitempty"`
}

// Facet is a server-computed aggregation over the search results.
type Facet struct {
	Name   string       `json:"name"`
	Fields []FacetField `json:"fields"`
}

// FacetResponse is the facet part of a search response.
// Decoding is lenient: entries of an unexpected shape are dropped.
type FacetResponse struct {
	Facets []Facet `json:"facets,omitempty"`
}

// Labels returns the field labels of the facet named name, in response
// order. Lookup is case-sensitive. A missing facet yields an empty list.
func (r *FacetResponse) Labels(name string) []string {
	labels := []string{}
	if r == nil {
		return labels
	}
	for _, facet := range r.Facets {
		if facet.Name != name {
			continue
		}
		for _, field := range facet.Fields {
			labels = append(labels, field.Label)
		}
		return labels
	}
	return labels
}

// ColourPalette returns the colour labels of the colour palette facet.
func (r *FacetResponse) ColourPalette() []string {
	return r.Labels(FacetColourPalette)
}

// UnmarshalJSON decodes the facets list, skipping malformed entries.
func (r *FacetResponse) UnmarshalJSON(data []byte) error {
	*r = FacetResponse{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil //nolint:nilerr // absence of facets is not an error
	}
	r.Facets = DecodeFacets(fields["facets"])
	return nil
}

// DecodeFacets leniently decodes a JSON array of facets.
func DecodeFacets(raw json.RawMessage) []Facet {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	facets := make([]Facet, 0, len(items))
	for _, item := range items {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err != nil {
			continue
		}
		var name string
		if err := json.Unmarshal(obj["name"], &name); err != nil {
			continue
		}
		facets = append(facets, Facet{Name: name, Fields: decodeFacetFields(obj["fields"])})
	}
	return facets
}

func decodeFacetFields(raw json.RawMessage) []FacetField {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	fields := make([]FacetField, 0, len(items))
	for _, item := range items {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err != nil {
			continue
		}
		var count int
		_ = json.Unmarshal(obj["count"], &count) //nolint:errcheck // count is informational
		fields = append(fields, FacetField{Label: decodeText(obj["label"]), Count: count})
	}
	return fields
}
