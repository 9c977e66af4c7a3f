package domain

import (
	"bytes"
	"encoding/json"
)

// RawDocument represents opaque bytes fetched by a connector.
// It is the connector's output before normalisation.
type RawDocument struct {
	// URI identifies the record at its origin (the API record id).
	URI string

	// MIMEType is the content type (e.g., "application/vnd.europeana.record+json").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains connector-specific key-value pairs.
	Metadata map[string]any
}

// LangLabel is a language-aware label as the search API returns it.
type LangLabel struct {
	Def string `json:"def"`
}

// RawRecord is one item of a search response in the API's native shape.
// Every field is optional. Decoding is lenient: a field of an unexpected
// shape decodes as absent, and decoding never fails.
type RawRecord struct {
	ID               string              `json:"id,omitempty"`
	Title            []string            `json:"title,omitempty"`
	DCTitleLangAware map[string][]string `json:"dcTitleLangAware,omitempty"`
	EdmIsShownBy     []string            `json:"edmIsShownBy,omitempty"`
	EdmTimespanLabel []LangLabel         `json:"edmTimespanLabel,omitempty"`
	EdmAgentLabel    []LangLabel         `json:"edmAgentLabel,omitempty"`
	DCCreator        []string            `json:"dcCreator,omitempty"`
	DataProvider     []string            `json:"dataProvider,omitempty"`
}

// HasImage reports whether the record carries at least one image reference.
func (r *RawRecord) HasImage() bool {
	return len(r.EdmIsShownBy) > 0
}

// UnmarshalJSON decodes a record field by field, dropping fields whose
// shape does not match. A value that is not an object yields the zero record.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	*r = RawRecord{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil //nolint:nilerr // malformed records degrade to empty
	}

	r.ID = decodeText(fields["id"])
	r.Title = decodeTexts(fields["title"])
	r.DCTitleLangAware = decodeLangMap(fields["dcTitleLangAware"])
	r.EdmIsShownBy = decodeTexts(fields["edmIsShownBy"])
	r.EdmTimespanLabel = decodeLabels(fields["edmTimespanLabel"])
	r.EdmAgentLabel = decodeLabels(fields["edmAgentLabel"])
	r.DCCreator = decodeTexts(fields["dcCreator"])
	r.DataProvider = decodeTexts(fields["dataProvider"])
	return nil
}

// decodeText returns a JSON string, or the literal text of a JSON number.
// Anything else decodes as "".
func decodeText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err == nil {
		return n.String()
	}
	return ""
}

// decodeTexts decodes a JSON array of strings. Elements of another type
// keep their position as "" so first-element lookups stay exact.
func decodeTexts(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = decodeText(item)
	}
	return out
}

// decodeLabels decodes a JSON array of {"def": "..."} objects.
// Elements that are not objects, or lack a textual def, become empty labels.
func decodeLabels(raw json.RawMessage) []LangLabel {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil
	}
	out := make([]LangLabel, len(items))
	for i, item := range items {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err != nil {
			continue
		}
		out[i] = LangLabel{Def: decodeText(obj["def"])}
	}
	return out
}

// decodeLangMap decodes a language tag -> strings object.
func decodeLangMap(raw json.RawMessage) map[string][]string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil
	}
	out := make(map[string][]string, len(obj))
	for lang, values := range obj {
		if texts := decodeTexts(values); texts != nil {
			out[lang] = texts
		}
	}
	return out
}
