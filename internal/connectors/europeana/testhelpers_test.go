package europeana

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/artgraph/internal/core/domain"
)

// newTestServer serves handler and returns a config pointing at it.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Config) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &Config{
		APIKey:    "test-key",
		Provider:  "Rijksmuseum",
		BaseURL:   srv.URL + "/record/v2/search.json",
		Rows:      2,
		MaxPages:  1,
		RateLimit: 1000,
		Timeout:   5 * time.Second,
	}
	return srv, cfg
}

// writeJSON writes v as a JSON response with status.
func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// collect drains a search and returns its documents and errors.
func collect(docs <-chan domain.RawDocument, errs <-chan error) ([]domain.RawDocument, []error) {
	var gotDocs []domain.RawDocument
	for doc := range docs {
		gotDocs = append(gotDocs, doc)
	}
	var gotErrs []error
	for err := range errs {
		gotErrs = append(gotErrs, err)
	}
	return gotDocs, gotErrs
}
